// Package forge checks redirect targets against the hosting forge.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/adogh/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// RepositoryInfo describes a repository on the forge.
type RepositoryInfo struct {
	Owner    string `yaml:"owner"`
	Name     string `yaml:"name"`
	URL      string `yaml:"url,omitempty"`
	Archived bool   `yaml:"archived,omitempty"`
	Private  bool   `yaml:"private,omitempty"`
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetRepository fetches repository information from the forge
	GetRepository(ctx context.Context, owner, name string) (*RepositoryInfo, error)

	// ParseRepositoryURL extracts owner and repository name from a forge URL
	ParseRepositoryURL(url string) (owner, name string, err error)
}

// Verifier checks that a forge address points at an existing repository.
type Verifier interface {
	VerifyURL(ctx context.Context, url string) (*RepositoryInfo, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with the given forge implementations.
func NewManager(l logger.Logger, forges ...Forge) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: l,
	}
	for _, f := range forges {
		m.forges[f.Name()] = f
	}
	return m
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// VerifyURL checks that the repository behind url exists on some registered forge.
func (m *Manager) VerifyURL(ctx context.Context, url string) (*RepositoryInfo, error) {
	for _, f := range m.forges {
		owner, name, err := f.ParseRepositoryURL(url)
		if err != nil {
			continue
		}
		m.logger.Logf("Verifying %s/%s on %s", owner, name, f.Name())
		return f.GetRepository(ctx, owner, name)
	}
	return nil, fmt.Errorf("%w: no forge recognizes %s", ErrUnsupportedForge, url)
}
