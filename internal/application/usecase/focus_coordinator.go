// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/logging"
)

// FocusCoordinator tracks which registered text input holds keyboard focus and
// forwards focus changes to the host. All calls relating to the keyboard
// should be funneled through one coordinator.
//
// Mutations are serialized by opMu, which stays held while the host is
// notified so dispatches reach the host in the same order the state changed.
// Reads only take stateMu, so CurrentlyFocused and IsTextInput are safe to call
// from inside a dispatch or listener. Focus, Blur and the registry mutators
// must not be called from there.
type FocusCoordinator struct {
	dispatcher port.HostDispatcher
	listeners  []port.FocusListener

	opMu    sync.Mutex
	stateMu sync.RWMutex
	focused entity.OptionalWidgetID
	inputs  map[entity.WidgetID]struct{}
}

// Compile-time interface check.
var _ port.TextInputFocus = (*FocusCoordinator)(nil)

// NewFocusCoordinator creates a coordinator with nothing focused and no
// registered inputs. A nil dispatcher records focus without notifying a host.
func NewFocusCoordinator(dispatcher port.HostDispatcher, listeners ...port.FocusListener) *FocusCoordinator {
	return &FocusCoordinator{
		dispatcher: dispatcher,
		listeners:  listeners,
		inputs:     make(map[entity.WidgetID]struct{}),
	}
}

// AddListener attaches a listener for subsequent transitions.
func (c *FocusCoordinator) AddListener(l port.FocusListener) {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.listeners = append(c.listeners, l)
}

// CurrentlyFocused returns the id of the focused text input, or None.
func (c *FocusCoordinator) CurrentlyFocused() entity.OptionalWidgetID {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.focused
}

// Focus makes id the focused input and notifies the host.
// No-op if id is None or already focused. The host error, if any, is returned
// unchanged and the new focus is kept.
func (c *FocusCoordinator) Focus(ctx context.Context, id entity.OptionalWidgetID) error {
	log := logging.FromContext(ctx)

	target, ok := id.Get()
	if !ok {
		log.Trace().Msg("focus request without widget ignored")
		return nil
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.stateMu.Lock()
	prev := c.focused
	if prev.Is(target) {
		c.stateMu.Unlock()
		log.Trace().Stringer("widget_id", target).Msg("widget already focused")
		return nil
	}
	c.focused = id
	c.stateMu.Unlock()

	log.Debug().
		Stringer("widget_id", target).
		Stringer("previous", prev).
		Msg("focusing text input")

	var err error
	if c.dispatcher != nil {
		err = c.dispatcher.NotifyFocus(ctx, target)
		if err != nil {
			log.Warn().Err(err).Stringer("widget_id", target).Msg("host focus failed")
		}
	}

	c.notifyLocked(ctx, entity.FocusChange{Previous: prev, Current: id})
	return err
}

// Blur clears focus if id is the focused input and notifies the host.
// Blurring anything else, including None, is ignored so a late blur from a
// stale widget cannot clobber newer focus.
func (c *FocusCoordinator) Blur(ctx context.Context, id entity.OptionalWidgetID) error {
	log := logging.FromContext(ctx)

	target, ok := id.Get()
	if !ok {
		log.Trace().Msg("blur request without widget ignored")
		return nil
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.stateMu.Lock()
	if !c.focused.Is(target) {
		current := c.focused
		c.stateMu.Unlock()
		log.Trace().
			Stringer("widget_id", target).
			Stringer("focused", current).
			Msg("blur of unfocused widget ignored")
		return nil
	}
	c.focused = entity.None()
	c.stateMu.Unlock()

	log.Debug().Stringer("widget_id", target).Msg("blurring text input")

	var err error
	if c.dispatcher != nil {
		err = c.dispatcher.NotifyBlur(ctx, target)
		if err != nil {
			log.Warn().Err(err).Stringer("widget_id", target).Msg("host blur failed")
		}
	}

	c.notifyLocked(ctx, entity.FocusChange{Previous: id, Current: entity.None()})
	return err
}

// RegisterInput marks id as a text input.
func (c *FocusCoordinator) RegisterInput(id entity.WidgetID) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.stateMu.Lock()
	c.inputs[id] = struct{}{}
	c.stateMu.Unlock()
}

// UnregisterInput forgets id. It leaves focus alone: hosts are expected to
// blur a widget before unmounting it.
func (c *FocusCoordinator) UnregisterInput(id entity.WidgetID) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.stateMu.Lock()
	delete(c.inputs, id)
	c.stateMu.Unlock()
}

// IsTextInput reports whether id is registered.
func (c *FocusCoordinator) IsTextInput(id entity.WidgetID) bool {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	_, ok := c.inputs[id]
	return ok
}

// RegisteredInputs returns the registered ids in ascending order.
func (c *FocusCoordinator) RegisteredInputs() []entity.WidgetID {
	c.stateMu.RLock()
	ids := make([]entity.WidgetID, 0, len(c.inputs))
	for id := range c.inputs {
		ids = append(ids, id)
	}
	c.stateMu.RUnlock()

	slices.Sort(ids)
	return ids
}

// notifyLocked must be called with c.opMu held.
func (c *FocusCoordinator) notifyLocked(ctx context.Context, change entity.FocusChange) {
	for _, l := range c.listeners {
		l.FocusChanged(ctx, change)
	}
}
