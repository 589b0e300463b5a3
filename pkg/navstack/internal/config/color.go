package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or "0xRRGGBB", optionally with a
// trailing alpha byte.
func ParseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")

	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: color %q: want 6 or 8 hex digits", ErrInvalidConfig, s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %w", ErrInvalidConfig, s, err)
	}
	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}
	c := HexToColor(uint32(v >> 8))
	c.A = uint8(v)
	return c, nil
}
