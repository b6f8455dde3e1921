// Package port defines the boundaries between the focus use case and its collaborators.
package port

import (
	"context"

	"github.com/bnema/textfocus/internal/domain/entity"
)

// TextInputFocus is the surface widgets and UI controllers use to register
// text inputs and move keyboard focus between them.
type TextInputFocus interface {
	// CurrentlyFocused returns the widget believed to hold input focus.
	CurrentlyFocused() entity.OptionalWidgetID

	// Focus moves focus to id. Absent ids and the already focused id are ignored.
	Focus(ctx context.Context, id entity.OptionalWidgetID) error

	// Blur clears focus if id is the focused widget, otherwise does nothing.
	Blur(ctx context.Context, id entity.OptionalWidgetID) error

	RegisterInput(id entity.WidgetID)
	UnregisterInput(id entity.WidgetID)
	IsTextInput(id entity.WidgetID) bool
}

// FocusListener observes committed focus transitions.
type FocusListener interface {
	FocusChanged(ctx context.Context, change entity.FocusChange)
}
