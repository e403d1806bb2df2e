// color.go — hex color parsing and digest-driven color selection.
package pixel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a non-premultiplied color.
// The leading "#" is optional. Six-digit colors are fully opaque.
func ParseHex(s string) (color.NRGBA, error) {
	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 && len(hexStr) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected 6- or 8-char hex", s)
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(hexStr)/2; i++ {
		v, err := strconv.ParseUint(hexStr[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid channel in %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// selectColors picks the foreground from the palette using the digest's
// leading byte modulo the palette length, and pairs it with the configured
// background. Invert swaps the pair.
func selectColors(digest []byte, palette []string, background string, invert bool) (foreground, bg string) {
	foreground = palette[int(digest[0])%len(palette)]
	bg = background
	if invert {
		foreground, bg = bg, foreground
	}
	return foreground, bg
}
