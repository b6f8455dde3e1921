package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalWidgetID_ZeroValueIsNone(t *testing.T) {
	var o OptionalWidgetID

	id, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, WidgetID(0), id)
	assert.True(t, o.IsNone())
	assert.Equal(t, None(), o)
	assert.Equal(t, "none", o.String())
}

func TestOptionalWidgetID_SomeZeroIsPresent(t *testing.T) {
	o := Some(0)

	id, ok := o.Get()
	assert.True(t, ok, "id 0 is a real widget, not a sentinel")
	assert.Equal(t, WidgetID(0), id)
	assert.True(t, o.Is(0))
	assert.NotEqual(t, None(), o)
}

func TestOptionalWidgetID_Is(t *testing.T) {
	assert.True(t, Some(7).Is(7))
	assert.False(t, Some(7).Is(8))
	assert.False(t, None().Is(0))
	assert.Equal(t, "7", Some(7).String())
}

func TestFocusChange_IsBlur(t *testing.T) {
	assert.True(t, FocusChange{Previous: Some(1), Current: None()}.IsBlur())
	assert.False(t, FocusChange{Previous: None(), Current: Some(1)}.IsBlur())
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"direct", PlatformDirect},
		{"DIRECT", PlatformDirect},
		{" command ", PlatformCommand},
		{"none", PlatformNone},
		{"", PlatformNone},
		{"windows", PlatformNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlatform(tt.in))
		})
	}
}
