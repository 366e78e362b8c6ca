package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

// ProfileFile is the name of the per-user endpoint profile file.
const ProfileFile = ".destinyrc"

// Profile is a named report service endpoint, e.g. a local backend and a
// shared one.
type Profile struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultProfilePath is ~/.destinyrc, or empty when the home directory is
// unknown.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ProfileFile)
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if section.HasKey("base_url") {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || !section.HasKey("base_url") {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	p := &Profile{
		Name:    name,
		BaseURL: section.Key("base_url").String(),
	}
	if section.HasKey("timeout") {
		timeout, err := section.Key("timeout").Duration()
		if err != nil {
			return nil, fmt.Errorf("profile %q: invalid timeout: %w", name, err)
		}
		p.Timeout = timeout
	}
	return p, nil
}
