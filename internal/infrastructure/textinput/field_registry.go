// Package textinput hosts terminal text fields that receive focus changes.
package textinput

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/logging"
)

var (
	// ErrViewNotFound is returned when a focus or blur targets an unmounted field.
	ErrViewNotFound = errors.New("text field not mounted")
	// ErrUnknownCommand is returned by Apply for command codes it cannot run.
	ErrUnknownCommand = errors.New("unknown view command")
)

// Field is one mounted text field.
type Field struct {
	ID    entity.WidgetID
	Label string
	Input textinput.Model
}

// FieldRegistry is the host-side table of mounted fields.
// It implements port.HostViews for the direct platform and executes
// ViewCommandMsg values for the command platform.
type FieldRegistry struct {
	mu      sync.Mutex
	fields  map[entity.WidgetID]*Field
	order   []entity.WidgetID
	pending []tea.Cmd
}

// Compile-time interface check.
var _ port.HostViews = (*FieldRegistry)(nil)

// NewFieldRegistry creates an empty registry.
func NewFieldRegistry() *FieldRegistry {
	return &FieldRegistry{fields: make(map[entity.WidgetID]*Field)}
}

// Mount adds a field. Mounting an id twice replaces the earlier field but
// keeps its position.
func (r *FieldRegistry) Mount(id entity.WidgetID, label string, input textinput.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fields[id]; !exists {
		r.order = append(r.order, id)
	}
	r.fields[id] = &Field{ID: id, Label: label, Input: input}
}

// Unmount removes a field and reports whether it was mounted.
func (r *FieldRegistry) Unmount(id entity.WidgetID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fields[id]; !exists {
		return false
	}
	delete(r.fields, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Field returns the mounted field for id.
// The returned pointer is owned by the registry; only the UI loop may mutate it.
func (r *FieldRegistry) Field(id entity.WidgetID) (*Field, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fields[id]
	return f, ok
}

// IDs returns the mounted ids in mount order.
func (r *FieldRegistry) IDs() []entity.WidgetID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.WidgetID(nil), r.order...)
}

// Focus focuses the field's text input. Like a native view hierarchy the
// registry keeps a single focused field, so every other field is blurred.
func (r *FieldRegistry) Focus(ctx context.Context, id entity.WidgetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.fields[id]
	if !ok {
		return fmt.Errorf("focus %d: %w", id, ErrViewNotFound)
	}
	for otherID, other := range r.fields {
		if otherID != id {
			other.Input.Blur()
		}
	}
	if cmd := f.Input.Focus(); cmd != nil {
		r.pending = append(r.pending, cmd)
	}

	logging.FromContext(ctx).Debug().Stringer("widget_id", id).Msg("host field focused")
	return nil
}

// Blur blurs the field's text input.
func (r *FieldRegistry) Blur(ctx context.Context, id entity.WidgetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.fields[id]
	if !ok {
		return fmt.Errorf("blur %d: %w", id, ErrViewNotFound)
	}
	f.Input.Blur()

	logging.FromContext(ctx).Debug().Stringer("widget_id", id).Msg("host field blurred")
	return nil
}

// Apply runs a queued view command against its field.
func (r *FieldRegistry) Apply(ctx context.Context, msg ViewCommandMsg) error {
	switch msg.Command {
	case entity.HostCommandFocusTextInput:
		return r.Focus(ctx, msg.ID)
	case entity.HostCommandBlurTextInput:
		return r.Blur(ctx, msg.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, msg.Command)
	}
}

// Update forwards msg to the field's text input.
func (r *FieldRegistry) Update(id entity.WidgetID, msg tea.Msg) tea.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.fields[id]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Drain returns and clears commands produced by the text inputs, such as the
// cursor blink started on focus.
func (r *FieldRegistry) Drain() []tea.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := r.pending
	r.pending = nil
	return cmds
}
