package mirrors

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package mirrors defines the registry of third-party mirroring services and
// their URL construction rules.

// Strategy names form the closed set of mirror URL construction rules.
const (
	// StrategyPrefixURL appends the full original article URL to the base.
	StrategyPrefixURL = "prefix_url"
	// StrategySlug appends only the extracted slug to the base.
	StrategySlug = "slug"
)

// Mirror is one mirroring service entry.
type Mirror struct {
	Name     string `yaml:"name"`
	BaseURL  string `yaml:"base_url"`
	Strategy string `yaml:"strategy"`
}

type buildFn func(base, rawURL, slug string) string

var strategies = map[string]buildFn{
	StrategyPrefixURL: func(base, rawURL, _ string) string { return base + rawURL },
	StrategySlug:      func(base, _, slug string) string { return base + slug },
}

// Registry is an immutable set of mirrors plus their fallback order. It is
// built once at startup and safe for concurrent reads.
type Registry struct {
	byName map[string]Mirror
	order  []string
}

// Default returns the built-in registry. Freedium and the archive prefix the
// full original URL onto their bases; readmedium substitutes the slug.
func Default() *Registry {
	reg, err := NewRegistry([]Mirror{
		{Name: "freedium", BaseURL: "https://freedium.cfd/", Strategy: StrategyPrefixURL},
		{Name: "readmedium", BaseURL: "https://readmedium.com/en/", Strategy: StrategySlug},
		{Name: "archive", BaseURL: "https://archive.ph/newest/", Strategy: StrategyPrefixURL},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in mirror registry invalid: %v", err))
	}
	return reg
}

// NewRegistry validates the entries and builds a registry. Entry order
// defines the default fallback order.
func NewRegistry(entries []Mirror) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("mirror registry contains no entries")
	}

	byName := make(map[string]Mirror, len(entries))
	order := make([]string, 0, len(entries))
	for i, m := range entries {
		m.Name = strings.ToLower(strings.TrimSpace(m.Name))
		m.BaseURL = strings.TrimSpace(m.BaseURL)
		m.Strategy = strings.ToLower(strings.TrimSpace(m.Strategy))

		if err := validateMirror(m); err != nil {
			return nil, fmt.Errorf("mirror[%d]: %w", i, err)
		}
		if _, exists := byName[m.Name]; exists {
			return nil, fmt.Errorf("duplicate mirror name %q", m.Name)
		}
		byName[m.Name] = m
		order = append(order, m.Name)
	}

	return &Registry{byName: byName, order: order}, nil
}

type registryFile struct {
	Mirrors []Mirror `yaml:"mirrors"`
}

// Load reads a mirror registry from a YAML file.
func Load(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("mirrors file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mirrors file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode mirrors file: %w", err)
	}

	return NewRegistry(file.Mirrors)
}

func validateMirror(m Mirror) error {
	if m.Name == "" {
		return errors.New("name is required")
	}
	if m.BaseURL == "" {
		return fmt.Errorf("base_url is required for mirror %q", m.Name)
	}
	if _, ok := strategies[m.Strategy]; !ok {
		return fmt.Errorf("unknown strategy %q for mirror %q", m.Strategy, m.Name)
	}
	return nil
}

// BuildURL returns the fetch URL for the named mirror. Unknown mirror names
// return the original URL unchanged.
func (r *Registry) BuildURL(rawURL, slug, mirrorName string) string {
	m, ok := r.byName[strings.ToLower(strings.TrimSpace(mirrorName))]
	if !ok {
		return rawURL
	}
	return strategies[m.Strategy](m.BaseURL, rawURL, slug)
}

// Has reports whether the named mirror is registered.
func (r *Registry) Has(mirrorName string) bool {
	_, ok := r.byName[strings.ToLower(strings.TrimSpace(mirrorName))]
	return ok
}

// DefaultOrder returns a copy of the mirror names in fallback order.
func (r *Registry) DefaultOrder() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
