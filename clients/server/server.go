// Package server provides the identicon avatar HTTP service.
//
// One identicon pipeline is built from the configuration at startup and
// shared across requests: every stage is a pure function of its input plus
// configuration captured at construction, so no synchronization is needed.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "unknwon.dev/clog/v2"

	"github.com/pixfall/identicon/pkg/hasher"
	"github.com/pixfall/identicon/pkg/identicon"
	"github.com/pixfall/identicon/pkg/pixel"
)

// Server renders identicon avatars over HTTP.
type Server struct {
	cfg  Config
	icon *identicon.Identicon
}

// New builds a Server and its identicon pipeline from cfg.
func New(cfg Config) (*Server, error) {
	var pre identicon.Preprocessor
	switch cfg.Hash {
	case "", "md5":
		pre = hasher.NewMD5(hasher.WithEncoding(cfg.Encoding))
	case "sha1":
		pre = hasher.NewSHA1(hasher.WithEncoding(cfg.Encoding))
	default:
		return nil, fmt.Errorf("unknown hash %q (use md5 or sha1)", cfg.Hash)
	}

	gen := pixel.New(pixel.Config{
		Size:       cfg.Grid.Size,
		Palette:    cfg.Grid.Palette,
		Background: cfg.Grid.Background,
		Format:     cfg.Grid.Format,
		Invert:     cfg.Grid.Invert,
	})

	icon, err := identicon.New(
		identicon.WithPreprocessors(pre),
		identicon.WithGenerator(gen),
	)
	if err != nil {
		return nil, err
	}

	// Every failure mode of the pipeline is a deterministic configuration
	// mismatch (entropy shortfall, bad palette color, unknown encoding),
	// so one probe render surfaces them at startup instead of per request.
	if _, err := icon.Generate("startup-probe", pixel.RenderSpec{Size: 8}); err != nil {
		return nil, fmt.Errorf("configuration check: %w", err)
	}

	return &Server{cfg: cfg, icon: icon}, nil
}

// Handler returns the service's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /avatar/{data}", s.handleAvatar)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run() error {
	log.Info("identicon avatar service listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// handleAvatar renders GET /avatar/{data}?size=&padding=&format=.
// Responses are deterministic for a given configuration, so they are
// served with a long-lived immutable cache policy.
func (s *Server) handleAvatar(w http.ResponseWriter, r *http.Request) {
	data := r.PathValue("data")
	if data == "" {
		httpError(w, http.StatusBadRequest, "avatar data is required")
		return
	}

	spec, err := s.renderSpec(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := spec.Format
	if format == "" {
		format = s.cfg.Grid.Format
	}

	start := time.Now()
	payload, err := s.icon.Generate(data, spec)
	if err != nil {
		var ufe *pixel.UnsupportedFormatError
		if errors.As(err, &ufe) {
			avatarRequests.WithLabelValues(format, "client_error").Inc()
			httpError(w, http.StatusBadRequest, ufe.Error())
			return
		}
		avatarRequests.WithLabelValues(format, "server_error").Inc()
		log.Error("generate avatar for %q: %v", data, err)
		httpError(w, http.StatusInternalServerError, "avatar generation failed")
		return
	}
	renderSeconds.Observe(time.Since(start).Seconds())
	avatarRequests.WithLabelValues(format, "ok").Inc()

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(payload)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// renderSpec builds the per-request rendering parameters from query
// params, bounded by the configured maxima.
func (s *Server) renderSpec(r *http.Request) (pixel.RenderSpec, error) {
	spec := pixel.RenderSpec{
		Size:    s.cfg.Render.AvatarSize,
		Padding: s.cfg.Render.Padding,
		Format:  r.URL.Query().Get("format"),
	}

	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return spec, fmt.Errorf("invalid size %q", v)
		}
		if n > s.cfg.Render.MaxAvatarSize {
			return spec, fmt.Errorf("size %d exceeds maximum %d", n, s.cfg.Render.MaxAvatarSize)
		}
		spec.Size = n
	}

	if v := r.URL.Query().Get("padding"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return spec, fmt.Errorf("invalid padding %q", v)
		}
		if n > s.cfg.Render.MaxPadding {
			return spec, fmt.Errorf("padding %d exceeds maximum %d", n, s.cfg.Render.MaxPadding)
		}
		spec.Padding = n
	}

	return spec, nil
}

func contentType(format string) string {
	switch format {
	case pixel.FormatJPEG, pixel.FormatJPG:
		return "image/jpeg"
	case pixel.FormatBMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	http.Error(w, msg, code)
}
