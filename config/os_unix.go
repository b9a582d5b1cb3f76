//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const forbiddenChars = string(os.PathSeparator) + string(os.PathListSeparator)

func trimName(s string) string {
	return strings.TrimSpace(s)
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
