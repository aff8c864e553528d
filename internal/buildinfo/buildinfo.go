// Package buildinfo carries version identifiers stamped at build time
// via -ldflags.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact build identifier for the window title and
// boot log.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
