// Package dependencies provides a centralized dependency container for the dupclose application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"
	"time"

	"github.com/lerenn/dup-closer/pkg/config"
	"github.com/lerenn/dup-closer/pkg/forge"
	"github.com/lerenn/dup-closer/pkg/logger"
	"github.com/lerenn/dup-closer/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrForgesMissing = errors.New("forge manager dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
	ErrClockMissing  = errors.New("clock dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Config config.Manager
	Forges forge.ManagerInterface
	Logger logger.Logger
	Prompt prompt.Prompter
	Clock  func() time.Time
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		Forges: forge.NewManager(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		Clock:  time.Now,
		// Note: Config is intentionally left nil as it requires a config path
	}
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithForges sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForges(forges forge.ManagerInterface) *Dependencies {
	d.Forges = forges
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithClock sets the clock and returns the instance for chaining.
func (d *Dependencies) WithClock(clock func() time.Time) *Dependencies {
	d.Clock = clock
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.Forges == nil {
		return ErrForgesMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Prompt == nil {
		return ErrPromptMissing
	}
	if d.Clock == nil {
		return ErrClockMissing
	}
	return nil
}
