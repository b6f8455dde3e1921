// Package hostdispatch implements port.HostDispatcher for each supported platform.
//
// The platform is chosen once when the dispatcher is built. Direct hosts get
// focus and blur calls on the view itself, command hosts get a symbolic
// command addressed to the view, anything else gets nothing.
package hostdispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/domain/entity"
)

// ErrMissingHost is returned by New when the collaborator needed by the
// selected platform was not supplied.
var ErrMissingHost = errors.New("host collaborator missing for platform")

// New returns the dispatcher for platform.
func New(platform entity.Platform, views port.HostViews, commands port.ViewCommandDispatcher) (port.HostDispatcher, error) {
	switch platform {
	case entity.PlatformDirect:
		if views == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingHost, platform)
		}
		return NewDirect(views), nil
	case entity.PlatformCommand:
		if commands == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingHost, platform)
		}
		return NewCommand(commands), nil
	default:
		return None{}, nil
	}
}

// Direct calls Focus and Blur on the host view.
type Direct struct {
	views port.HostViews
}

var _ port.HostDispatcher = (*Direct)(nil)

// NewDirect creates a direct dispatcher.
func NewDirect(views port.HostViews) *Direct {
	return &Direct{views: views}
}

func (d *Direct) NotifyFocus(ctx context.Context, id entity.WidgetID) error {
	return d.views.Focus(ctx, id)
}

func (d *Direct) NotifyBlur(ctx context.Context, id entity.WidgetID) error {
	return d.views.Blur(ctx, id)
}

// Command routes focusTextInput and blurTextInput commands with a nil payload.
type Command struct {
	commands port.ViewCommandDispatcher
}

var _ port.HostDispatcher = (*Command)(nil)

// NewCommand creates a command dispatcher.
func NewCommand(commands port.ViewCommandDispatcher) *Command {
	return &Command{commands: commands}
}

func (c *Command) NotifyFocus(ctx context.Context, id entity.WidgetID) error {
	return c.commands.DispatchViewCommand(ctx, id, entity.HostCommandFocusTextInput, nil)
}

func (c *Command) NotifyBlur(ctx context.Context, id entity.WidgetID) error {
	return c.commands.DispatchViewCommand(ctx, id, entity.HostCommandBlurTextInput, nil)
}

// None drops every notification.
type None struct{}

var _ port.HostDispatcher = None{}

func (None) NotifyFocus(context.Context, entity.WidgetID) error { return nil }
func (None) NotifyBlur(context.Context, entity.WidgetID) error  { return nil }
