//go:build tinygo

package main

import (
	"nanocalc/app"
	"nanocalc/hal"
)

func main() {
	app.Run(hal.New())
}
