package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for colors that are neither an SVG color name
// nor a #rrggbb or #rrggbbaa hex value.
var ErrInvalidColor = errors.New("scene: invalid color")

// ParseColor parses an SVG 1.1 color name (as listed in
// golang.org/x/image/colornames) or a hex color. The empty string is black.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colornames.Black, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex, s)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
}

// parseHex decodes rrggbb or rrggbbaa. Color channels are premultiplied as
// color.RGBA requires.
func parseHex(hex, orig string) (color.RGBA, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, orig, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}

	nc := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(nc).(color.RGBA), nil
}
