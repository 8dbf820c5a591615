// Package events names every trace entry the menu emits, grouped by the
// component that owns it.
package events

import "github.com/atyab/atyab-menu/internal/logging"

// Fields is the payload of a trace entry.
type Fields map[string]any

func emit(event string, fields Fields) {
	logging.Trace(event, fields)
}
