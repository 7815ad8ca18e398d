package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/keyedit/internal/logging"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger used to trace handled keys at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithID sets the engine identifier reported in log fields.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}
