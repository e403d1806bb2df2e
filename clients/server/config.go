// config.go — YAML configuration for the avatar service.
package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pixfall/identicon/pkg/pixel"
)

// Config controls the avatar service. Zero fields are filled from
// DefaultConfig by LoadConfig.
type Config struct {
	Addr     string       `yaml:"addr"`     // listen address (default ":8080")
	Hash     string       `yaml:"hash"`     // digest function: "md5" or "sha1"
	Encoding string       `yaml:"encoding"` // input text encoding, IANA name
	Grid     GridConfig   `yaml:"grid"`
	Render   RenderConfig `yaml:"render"`
}

// GridConfig mirrors the pixel generator configuration.
type GridConfig struct {
	Size       int      `yaml:"size"`       // blocks per row/column
	Palette    []string `yaml:"palette"`    // foreground colors; empty uses the HTML named-color table
	Background string   `yaml:"background"` // hex background color
	Format     string   `yaml:"format"`     // default output format
	Invert     bool     `yaml:"invert"`     // swap foreground and background
}

// RenderConfig bounds per-request rendering parameters.
type RenderConfig struct {
	AvatarSize    int `yaml:"avatar_size"`     // default edge length in pixels
	Padding       int `yaml:"padding"`         // default padding in pixels
	MaxAvatarSize int `yaml:"max_avatar_size"` // upper bound for the size query param
	MaxPadding    int `yaml:"max_padding"`     // upper bound for the padding query param
}

// DefaultConfig returns the service defaults: MD5 over UTF-8 input feeding
// a 5x5 grid rendered at 120 px as PNG.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		Hash:     "md5",
		Encoding: "utf-8",
		Grid: GridConfig{
			Size:       pixel.DefaultGridSize,
			Background: pixel.DefaultBackground,
			Format:     pixel.FormatPNG,
		},
		Render: RenderConfig{
			AvatarSize:    pixel.DefaultAvatarSize,
			Padding:       0,
			MaxAvatarSize: 1024,
			MaxPadding:    256,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.Hash {
	case "md5", "sha1":
	default:
		return cfg, fmt.Errorf("config %s: unknown hash %q (use md5 or sha1)", path, cfg.Hash)
	}

	return cfg, nil
}
