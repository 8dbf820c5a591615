package command

import (
	"github.com/atyab/atyab-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a side effect that runs outside the update loop, such
// as persisting a preference.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result is delivered back to the model when a request finishes.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Run()
		events.Command.Result(req.ID, req.Label, err)
		return Result{ID: req.ID, Label: req.Label, Err: err}
	}
}
