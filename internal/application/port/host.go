package port

import (
	"context"

	"github.com/bnema/textfocus/internal/domain/entity"
)

// HostDispatcher tells the host view system that focus moved.
// Errors come from the host and are returned to the caller as is.
type HostDispatcher interface {
	NotifyFocus(ctx context.Context, id entity.WidgetID) error
	NotifyBlur(ctx context.Context, id entity.WidgetID) error
}

// HostViews is a host that accepts focus and blur calls addressed to a view.
type HostViews interface {
	Focus(ctx context.Context, id entity.WidgetID) error
	Blur(ctx context.Context, id entity.WidgetID) error
}

// ViewCommandDispatcher is a host that routes symbolic commands to a view.
// The payload is nil for focus and blur commands.
type ViewCommandDispatcher interface {
	DispatchViewCommand(ctx context.Context, id entity.WidgetID, cmd entity.HostCommand, payload any) error
}
