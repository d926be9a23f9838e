package fs

import (
	"github.com/aretw0/introspection"
)

// LoaderState exposes internal state for observability.
type LoaderState struct {
	Loads      int    `json:"loads"`
	LastSource string `json:"last_source,omitempty"`
	LastError  string `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (l *Loader) State() any {
	state := LoaderState{
		Loads:      l.loads,
		LastSource: l.lastSource,
	}
	if l.lastErr != nil {
		state.LastError = l.lastErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (l *Loader) ComponentType() string {
	return "fs-loader"
}

var _ introspection.Introspectable = (*Loader)(nil)
var _ introspection.Component = (*Loader)(nil)
