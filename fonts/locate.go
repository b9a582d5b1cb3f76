// Package fonts finds and loads TrueType/OpenType faces used for drawing.
package fonts

import (
	"masterlist/common"
	"masterlist/utils"
)

// Candidates returns default font files for the platform in order of
// preference. getenv is consulted for WINDIR on Windows.
func Candidates(goos string, getenv func(string) string) []string {
	switch goos {
	case "windows":
		winDir := `C:\Windows`
		if getenv != nil {
			if dir := getenv("WINDIR"); dir != "" {
				winDir = dir
			}
		}
		// filepath.Join would use host separators, candidates must be valid for target
		return []string{
			winDir + `\Fonts\arial.ttf`,
			winDir + `\Fonts\segoeui.ttf`,
			winDir + `\Fonts\calibri.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Helvetica.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSansCondensed.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
		}
	}
}

// Locate returns the first candidate for which exists reports true. When
// exists is nil regular files on the local file system are checked.
func Locate(candidates []string, exists func(string) bool) (string, error) {
	if exists == nil {
		exists = utils.FileExists
	}
	for _, c := range candidates {
		if exists(c) {
			return c, nil
		}
	}
	return "", common.Resource("no usable TTF font found among %d candidate(s), specify font file explicitly", len(candidates))
}
