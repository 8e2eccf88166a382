package model

import "log/slog"

// Option configures a Model at construction time.
type Option func(*Model)

// WithLogger enables debug logging of mutation operations (AddObject,
// AddLink, RemoveLink, SetAttribute, UpdateObjectClass). Pass nil to
// disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}
