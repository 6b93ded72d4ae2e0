package app

import (
	"fmt"

	"github.com/inkwell-hq/medium-reader/internal/config"
	"github.com/inkwell-hq/medium-reader/internal/logger"
	"github.com/inkwell-hq/medium-reader/internal/scraper"
	"github.com/inkwell-hq/medium-reader/pkg/mirrors"
)

// Reader wires the scraper service from configuration. It is the composition
// root shared by the CLI commands.
type Reader struct {
	cfg *config.Config
	svc *scraper.Service
}

// NewReader builds the reader runtime from config.
func NewReader(cfg *config.Config) (*Reader, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	registry := mirrors.Default()
	if cfg.MirrorsFile != "" {
		loaded, err := mirrors.Load(cfg.MirrorsFile)
		if err != nil {
			return nil, fmt.Errorf("load mirrors registry: %w", err)
		}
		registry = loaded
	}
	logger.InfoObj("mirror registry ready", "mirrors_meta", map[string]any{
		"count": len(registry.DefaultOrder()),
		"names": registry.DefaultOrder(),
	})

	svc := scraper.NewService(scraper.Options{
		Registry:           registry,
		SearchEndpoint:     cfg.SearchEndpoint,
		MirrorTimeout:      cfg.MirrorTimeout,
		AdequateChars:      cfg.AdequateContentChars,
		RestrictionMarkers: cfg.RestrictionMarkers,
	})

	return &Reader{cfg: cfg, svc: svc}, nil
}

// Service exposes the wired scraper service.
func (r *Reader) Service() *scraper.Service { return r.svc }
