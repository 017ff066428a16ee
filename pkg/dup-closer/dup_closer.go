// Package dupcloser provides the core logic for closing issues as duplicates.
package dupcloser

import (
	"context"
	"fmt"

	"github.com/lerenn/dup-closer/pkg/dependencies"
	"github.com/lerenn/dup-closer/pkg/issue"
	"github.com/lerenn/dup-closer/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=dup_closer.go -destination=mocks/dup_closer.gen.go -package=mocks

// DupCloser interface provides duplicate-issue closing functionality.
type DupCloser interface {
	// CloseDuplicate closes the target issue as a duplicate, optionally
	// referencing the canonical issue it duplicates.
	CloseDuplicate(ctx context.Context, params CloseDuplicateParams) (*issue.CloseResult, error)
	// SetLogger sets the logger for this DupCloser instance.
	SetLogger(logger logger.Logger)
}

// NewDupCloserParams contains parameters for creating a new DupCloser instance.
type NewDupCloserParams struct {
	Dependencies *dependencies.Dependencies
}

type realDupCloser struct {
	deps *dependencies.Dependencies
}

// NewDupCloser creates a new DupCloser instance.
func NewDupCloser(params NewDupCloserParams) (DupCloser, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realDupCloser{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this DupCloser instance.
func (d *realDupCloser) SetLogger(logger logger.Logger) {
	d.deps.Logger = logger
}

// logf logs a formatted message using the current logger.
func (d *realDupCloser) logf(msg string, args ...interface{}) {
	if d.deps.Logger != nil {
		d.deps.Logger.Logf(msg, args...)
	}
}
