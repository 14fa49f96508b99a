package utils

import "unicode/utf8"

// CharLen counts runes, not bytes, so multi-byte digits count once each.
// Characters outside the BMP count once here but twice in a JS string length.
func CharLen(s string) int {
	return utf8.RuneCountInString(s)
}
