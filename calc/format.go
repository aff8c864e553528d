package calc

import (
	"strconv"
	"strings"
)

// formatResult renders an arithmetic result back into operand text.
func formatResult(x float64) string {
	return trimZeroSuffix(strconv.FormatFloat(x, 'f', -1, 64))
}

// trimZeroSuffix drops an exact-zero fractional tail (".00" or ".0")
// so an integer result never shows a dead fraction. Any other fraction
// is kept as converted.
func trimZeroSuffix(s string) string {
	if strings.HasSuffix(s, ".00") {
		return s[:len(s)-3]
	}
	if strings.HasSuffix(s, ".0") {
		return s[:len(s)-2]
	}
	return s
}
