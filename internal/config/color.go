package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// colorNames maps common color names to RGBA values.
var colorNames = map[string]color.RGBA{
	"transparent": TransparentColor,
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 255, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"cyan":        {R: 0, G: 255, B: 255, A: 255},
	"magenta":     {R: 255, G: 0, B: 255, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
}

// ParseColor parses a color from a name or hex value.
// Hex values can be RRGGBB or RRGGBBAA, with or without a leading #.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	var parts [4]uint8
	parts[3] = 255
	names := [4]string{"red", "green", "blue", "alpha"}
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid %s component in color: %s", names[i], s)
		}
		parts[i] = uint8(v)
	}

	return color.RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

// BackgroundColor parses Background. ok is false when no background is set.
func (c *Config) BackgroundColor() (bg color.RGBA, ok bool, err error) {
	if strings.TrimSpace(c.Background) == "" {
		return color.RGBA{}, false, nil
	}
	bg, err = ParseColor(c.Background)
	if err != nil {
		return color.RGBA{}, false, err
	}
	return bg, true, nil
}
