package config

import "errors"

// Configuration-specific errors.
var (
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrForgeEmpty      = errors.New("forge cannot be empty")
	ErrActorEmpty      = errors.New("actor cannot be empty")
)
