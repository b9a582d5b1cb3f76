package config

import (
	"strings"
	"unicode"

	"masterlist/misc"
)

// CleanFileName makes file name (not path) safe to use on current platform.
// Empty result is replaced with program name.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(forbiddenChars, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	out = trimName(out)
	if len(out) == 0 {
		out = misc.GetAppName()
	}
	return out
}
