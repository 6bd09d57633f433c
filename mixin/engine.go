package mixin

import "log/slog"

// DefaultSchemaMember is the attached member Register reads by default.
const DefaultSchemaMember = "mergeMixin"

// Config holds engine configuration.
type Config struct {
	// SchemaMember is the attached member Register reads when none is given.
	SchemaMember string
	// OrderByDependencies installs the members of one mixin in dependency
	// order instead of declaration order.
	OrderByDependencies bool
	// Logger receives debug records for every installed member.
	Logger *slog.Logger
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		SchemaMember:        DefaultSchemaMember,
		OrderByDependencies: false,
	}
}

// Engine structures targets from merge schemas and folds chain
// transformers. An engine is not safe for concurrent structuring of the
// same target; callers serialize composition passes.
type Engine struct {
	registry *Registry
	config   Config
	log      *slog.Logger
}

// New creates an engine over registry. A nil registry gets a fresh one.
func New(registry *Registry, config Config) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}

	if config.SchemaMember == "" {
		config.SchemaMember = DefaultSchemaMember
	}

	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		registry: registry,
		config:   config,
		log:      log,
	}
}

// Registry returns the registry the engine resolves names against.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}
