package textinput

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/logging"
)

// ViewCommandMsg is a view command travelling through the Bubble Tea loop.
type ViewCommandMsg struct {
	ID      entity.WidgetID
	Command entity.HostCommand
	Payload any
}

// CommandQueue buffers view commands until the UI loop drains them.
type CommandQueue struct {
	mu      sync.Mutex
	pending []ViewCommandMsg
}

// Compile-time interface check.
var _ port.ViewCommandDispatcher = (*CommandQueue)(nil)

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// DispatchViewCommand queues cmd for the view id. It never fails; unknown
// views are reported when the command is applied.
func (q *CommandQueue) DispatchViewCommand(ctx context.Context, id entity.WidgetID, cmd entity.HostCommand, payload any) error {
	q.mu.Lock()
	q.pending = append(q.pending, ViewCommandMsg{ID: id, Command: cmd, Payload: payload})
	depth := len(q.pending)
	q.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Stringer("widget_id", id).
		Str("command", string(cmd)).
		Int("queued", depth).
		Msg("view command queued")
	return nil
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain returns one tea.Cmd per queued command, in dispatch order.
func (q *CommandQueue) Drain() []tea.Cmd {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	cmds := make([]tea.Cmd, 0, len(pending))
	for _, msg := range pending {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return cmds
}
