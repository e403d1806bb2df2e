// identicon — deterministic avatar generation.
//
// Usage:
//
//	identicon -o <file> -data <string> [options]
//	identicon serve [-config <path>] [-addr <addr>]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "unknwon.dev/clog/v2"

	"github.com/pixfall/identicon/clients/server"
	"github.com/pixfall/identicon/pkg/hasher"
	"github.com/pixfall/identicon/pkg/identicon"
	"github.com/pixfall/identicon/pkg/pixel"
)

func main() {
	if err := log.NewConsole(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			log.Fatal("serve: %v", err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := runGenerate(os.Args[1:]); err != nil {
			log.Fatal("generate: %v", err)
		}
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("identicon", flag.ExitOnError)

	var (
		output     string
		data       string
		hashName   string
		encoding   string
		gridSize   int
		avatarSize int
		padding    int
		format     string
		background string
		invert     bool
	)

	fs.StringVar(&output, "o", "", "Output file path")
	fs.StringVar(&output, "output", "", "Output file path")
	fs.StringVar(&data, "data", "", "Input string (email, IP, any identifier)")
	fs.StringVar(&hashName, "hash", "md5", "Digest function: md5 or sha1")
	fs.StringVar(&encoding, "encoding", "utf-8", "Input text encoding (IANA name)")
	fs.IntVar(&gridSize, "size", pixel.DefaultGridSize, "Grid dimension in blocks")
	fs.IntVar(&avatarSize, "avatar-size", pixel.DefaultAvatarSize, "Avatar edge length in pixels")
	fs.IntVar(&padding, "padding", 0, "Padding in pixels on each side")
	fs.StringVar(&format, "format", "", "Output format: png, jpeg, jpg, bmp (default: from file extension)")
	fs.StringVar(&background, "background", pixel.DefaultBackground, "Background color, hex")
	fs.BoolVar(&invert, "invert", false, "Swap foreground and background colors")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}
	if data == "" {
		printUsage()
		return fmt.Errorf("input data is required (-data)")
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			format = pixel.FormatPNG
		}
	}

	var pre identicon.Preprocessor
	switch hashName {
	case "md5":
		pre = hasher.NewMD5(hasher.WithEncoding(encoding))
	case "sha1":
		pre = hasher.NewSHA1(hasher.WithEncoding(encoding))
	default:
		return fmt.Errorf("unknown hash %q (use md5 or sha1)", hashName)
	}

	ic, err := identicon.New(
		identicon.WithPreprocessors(pre),
		identicon.WithGenerator(pixel.New(pixel.Config{
			Size:       gridSize,
			Background: background,
			Invert:     invert,
		})),
	)
	if err != nil {
		return err
	}

	payload, err := ic.Generate(data, pixel.RenderSpec{
		Size:    avatarSize,
		Padding: padding,
		Format:  format,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, payload, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.Info("wrote %s (%d bytes)", output, len(payload))
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		configPath string
		addr       string
	)
	fs.StringVar(&configPath, "config", "", "Path to YAML config file")
	fs.StringVar(&addr, "addr", "", "Listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Local overrides may live in a .env file; missing is fine.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("IDENTICON_CONFIG")
	}

	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if env := os.Getenv("IDENTICON_ADDR"); env != "" {
		cfg.Addr = env
	}
	if addr != "" {
		cfg.Addr = addr
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Run()
}

func printUsage() {
	fmt.Print(`identicon — deterministic avatar generation

USAGE:
    identicon -o <file> -data <string> [options]
    identicon serve [-config <path>] [-addr <addr>]

GENERATE:
    -o, -output <path>     Output file (.png, .jpg, .jpeg, .bmp)
    -data <string>         Input to fingerprint (email, IP, any identifier)
    -hash <name>           Digest function: md5 (default) or sha1
    -encoding <name>       Input text encoding, IANA name (default: utf-8)
    -size <n>              Grid dimension in blocks (default: 5)
    -avatar-size <px>      Avatar edge length in pixels (default: 120)
    -padding <px>          Padding on each side (default: 0)
    -format <name>         Output format; default inferred from extension
    -background <hex>      Background color (default: transparent black)
    -invert                Swap foreground and background

SERVE:
    -config <path>         YAML config (or IDENTICON_CONFIG env var)
    -addr <addr>           Listen address (or IDENTICON_ADDR env var)

EXAMPLES:
    identicon -o avatar.png -data test@example.com
    identicon -o avatar.jpg -data 127.0.0.1 -size 7 -avatar-size 256
    identicon serve -config identicon.yaml
`)
}
