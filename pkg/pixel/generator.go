// Package pixel renders symmetric pixel-grid identicons from hash digests.
//
// A generator consumes a hexadecimal digest string, derives a boolean
// occupancy grid plus a foreground/background color pair from the digest
// bytes, and rasterizes them into an encoded image. Generated grids are
// always mirrored about the vertical axis, so the same input yields the
// familiar "retro" symmetric mosaic.
package pixel

import (
	"encoding/hex"
	"fmt"
)

// Defaults applied by New and Generate when the corresponding Config or
// RenderSpec fields are zero.
const (
	DefaultGridSize   = 5
	DefaultAvatarSize = 120

	// DefaultBackground is fully transparent black. Opaque formats
	// flatten it to plain black.
	DefaultBackground = "#00000000"
)

// Supported output format identifiers.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatJPG  = "jpg"
	FormatBMP  = "bmp"
)

// RenderSpec holds per-call rendering parameters. The zero value is valid:
// zero fields fall back to the generator's configured defaults.
type RenderSpec struct {
	Size    int    // avatar edge length in pixels (default: 120)
	Padding int    // uniform padding in pixels added on each side
	Format  string // output format; empty uses the generator's format
}

// Config holds construction-time parameters for a Generator.
type Config struct {
	Size       int      // grid dimension, blocks per row/column (default: 5)
	Palette    []string // candidate foreground colors (default: HTMLColors)
	Background string   // hex background color (default: transparent black)
	Format     string   // default output format (default: png)
	Invert     bool     // swap foreground and background colors
}

// Generator is a pixel-grid identicon generator. Configuration is captured
// at construction and never mutated, so a single instance may be shared
// across concurrent calls.
type Generator struct {
	size       int
	palette    []string
	background string
	format     string
	invert     bool
	entropy    int
}

// New creates a Generator from cfg, applying defaults for zero fields.
// The palette is copied, so later mutation of cfg.Palette has no effect.
func New(cfg Config) *Generator {
	if cfg.Size <= 0 {
		cfg.Size = DefaultGridSize
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = HTMLColors
	}
	if cfg.Background == "" {
		cfg.Background = DefaultBackground
	}
	if cfg.Format == "" {
		cfg.Format = FormatPNG
	}

	return &Generator{
		size:       cfg.Size,
		palette:    append([]string(nil), cfg.Palette...),
		background: cfg.Background,
		format:     cfg.Format,
		invert:     cfg.Invert,
		entropy:    requiredEntropy(cfg.Size),
	}
}

// requiredEntropy is the digest bit-length a generator of the given grid
// dimension consumes: one bit per cell of the left half of the grid
// (ceil(size/2) columns; the right half is a mirror copy), plus 8 bits for
// the leading byte reserved for color selection.
func requiredEntropy(size int) int {
	return (size/2+size%2)*size + 8
}

// RequiredEntropy returns the digest bit-length this generator requires.
func (g *Generator) RequiredEntropy() int { return g.entropy }

// Size returns the configured grid dimension.
func (g *Generator) Size() int { return g.size }

// Generate renders the identicon for data, a hexadecimal digest string,
// and returns the encoded image bytes.
//
// Non-digest input is rejected: data must be valid, non-empty hex. Digest
// length beyond that is not re-validated here; callers are expected to go
// through the orchestrator's entropy gate, which guarantees enough bits
// for the configured grid dimension.
func (g *Generator) Generate(data string, spec RenderSpec) ([]byte, error) {
	digest, err := hex.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode digest %q: %w", data, err)
	}
	if len(digest) == 0 {
		return nil, fmt.Errorf("decode digest: empty input")
	}

	avatarSize := spec.Size
	if avatarSize <= 0 {
		avatarSize = DefaultAvatarSize
	}
	padding := spec.Padding
	if padding < 0 {
		padding = 0
	}
	format := spec.Format
	if format == "" {
		format = g.format
	}

	foreground, background := selectColors(digest, g.palette, g.background, g.invert)
	grid := buildGrid(digest, g.size)

	return rasterize(grid, foreground, background, avatarSize, padding, format)
}
