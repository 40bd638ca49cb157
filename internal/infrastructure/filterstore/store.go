package filterstore

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/poetis/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Store serves the filter configuration loaded from a document on disk.
// Each load publishes a fresh value; published values are never mutated.
type Store struct {
	path    string
	current atomic.Pointer[domain.FilterConfig]
}

// NewStore creates a store for path and loads it once
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an in-memory configuration; Reload is a no-op
func NewStaticStore(cfg *domain.FilterConfig) *Store {
	s := &Store{}
	if cfg != nil {
		s.current.Store(cfg.Clone())
	}
	return s
}

// Path returns the document path, empty for static stores
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the document and swaps it in. On error the previous value stays.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	format, err := FormatFromPath(s.path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFilterConfiguration, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("[FILTER] failed to load filter document")
		return err
	}

	s.current.Store(cfg)
	log.Info().Str("path", s.path).Int("mods", cfg.ModCount()).Msg("[FILTER] filter configuration loaded")
	return nil
}

// Snapshot returns a private copy of the current configuration
func (s *Store) Snapshot() (*domain.FilterConfig, error) {
	cfg := s.current.Load()
	if cfg == nil {
		return nil, fmt.Errorf("%w: no configuration loaded", domain.ErrInvalidFilterConfiguration)
	}
	return cfg.Clone(), nil
}
