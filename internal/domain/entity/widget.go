// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "strconv"

// WidgetID is the opaque identity the host assigns to a focusable widget when
// it is created. No two live widgets share an id.
type WidgetID int64

// String renders the id in decimal, as used in logs and the status bar.
func (id WidgetID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OptionalWidgetID is either a WidgetID or nothing.
// The zero value is None.
type OptionalWidgetID struct {
	id    WidgetID
	valid bool
}

// Some wraps id as a present value.
func Some(id WidgetID) OptionalWidgetID {
	return OptionalWidgetID{id: id, valid: true}
}

// None returns the absent value.
func None() OptionalWidgetID {
	return OptionalWidgetID{}
}

// Get returns the wrapped id and whether it is present.
func (o OptionalWidgetID) Get() (WidgetID, bool) {
	return o.id, o.valid
}

// IsNone reports whether no id is present.
func (o OptionalWidgetID) IsNone() bool {
	return !o.valid
}

// Is reports whether o holds exactly id.
func (o OptionalWidgetID) Is(id WidgetID) bool {
	return o.valid && o.id == id
}

// String renders the id, or "none" when absent.
func (o OptionalWidgetID) String() string {
	if !o.valid {
		return "none"
	}
	return o.id.String()
}

// FocusChange describes one committed focus transition.
type FocusChange struct {
	Previous OptionalWidgetID
	Current  OptionalWidgetID
}

// IsBlur reports whether the transition left nothing focused.
func (c FocusChange) IsBlur() bool {
	return c.Current.IsNone()
}
