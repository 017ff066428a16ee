// Package forge provides access to issue-tracking forges such as GitHub.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/dup-closer/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// CloseReasonDuplicate is the categorical state reason for closing an issue
// that restates an existing issue.
const CloseReasonDuplicate = "duplicate"

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetIssue fetches a snapshot of the referenced issue
	GetIssue(ctx context.Context, ref issue.Ref) (*issue.Info, error)

	// CreateComment posts a comment on the referenced issue
	CreateComment(ctx context.Context, ref issue.Ref, body string) (*issue.Comment, error)

	// CloseIssue closes the referenced issue with the given state reason
	CloseIssue(ctx context.Context, ref issue.Ref, reason string) (*issue.CloseResult, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager() *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
	}

	// Register forge implementations
	m.registerForges()

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges() {
	// Register GitHub forge
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}
