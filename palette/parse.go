package palette

import (
	"strconv"
	"strings"

	"masterlist/common"
)

// ParseRGB parses "R,G,B" with exactly three integer parts in [0, 255].
// Spaces around parts are ignored.
func ParseRGB(value string) (RGB, error) {
	s := strings.TrimSpace(value)
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, common.Validation("color %q must be in format R,G,B (e.g. 255,255,255)", value)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return RGB{}, common.Validation("color %q must be in format R,G,B (e.g. 255,255,255)", value)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// ParseOptionalRGB returns nil for empty value.
func ParseOptionalRGB(value string) (*RGB, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	c, err := ParseRGB(value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (c RGB) String() string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B))
}
