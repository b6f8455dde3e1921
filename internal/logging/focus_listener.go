package logging

import (
	"context"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/domain/entity"
)

// FocusListener records every committed focus transition at info level.
type FocusListener struct{}

var _ port.FocusListener = FocusListener{}

// FocusChanged implements port.FocusListener.
func (FocusListener) FocusChanged(ctx context.Context, change entity.FocusChange) {
	event := FromContext(ctx).Info().
		Stringer("previous", change.Previous).
		Stringer("current", change.Current)
	if change.IsBlur() {
		event.Msg("text input blurred")
		return
	}
	event.Msg("text input focused")
}
