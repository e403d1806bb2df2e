// raster.go — occupancy grid to encoded image bytes.
package pixel

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
)

// UnsupportedFormatError is returned when the requested output format has
// no encoder. It surfaces at serialization time, after grid and color work
// has already happened.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q: use png, jpeg, jpg or bmp", e.Format)
}

// opaqueFormat reports whether the format has no alpha channel. Backgrounds
// and foregrounds are flattened to fully opaque for these.
func opaqueFormat(format string) bool {
	switch format {
	case FormatJPEG, FormatJPG, FormatBMP:
		return true
	}
	return false
}

// rasterize draws the grid onto a square pixel buffer of edge length
// avatarSize+2*padding and encodes it in the requested format.
//
// Block size is avatarSize/dimension with integer truncation. Remainder
// pixels are not redistributed: they stay background-colored at the high
// edge, matching the historical output byte-for-byte.
func rasterize(grid Grid, fgHex, bgHex string, avatarSize, padding int, format string) ([]byte, error) {
	fg, err := ParseHex(fgHex)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseHex(bgHex)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	format = strings.ToLower(format)

	edge := avatarSize + 2*padding
	var img draw.Image
	if opaqueFormat(format) {
		fg.A, bg.A = 0xff, 0xff
		img = image.NewRGBA(image.Rect(0, 0, edge, edge))
	} else {
		img = image.NewNRGBA(image.Rect(0, 0, edge, edge))
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	blockSize := avatarSize / grid.Dimension()
	for row := range grid {
		for col, set := range grid[row] {
			if !set {
				continue
			}
			x := padding + col*blockSize
			y := padding + row*blockSize
			block := image.Rect(x, y, x+blockSize, y+blockSize)
			draw.Draw(img, block, &image.Uniform{C: fg}, image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG, FormatJPG:
		err = jpeg.Encode(&buf, img, nil)
	case FormatBMP:
		err = bmp.Encode(&buf, img)
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	return buf.Bytes(), nil
}
