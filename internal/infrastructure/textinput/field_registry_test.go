package textinput

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/textfocus/internal/application/usecase"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/infrastructure/hostdispatch"
)

func mountFields(r *FieldRegistry, ids ...entity.WidgetID) {
	for _, id := range ids {
		r.Mount(id, "field "+id.String(), textinput.New())
	}
}

func isFocused(t *testing.T, r *FieldRegistry, id entity.WidgetID) bool {
	t.Helper()
	f, ok := r.Field(id)
	require.True(t, ok, "field %d not mounted", id)
	return f.Input.Focused()
}

func TestFieldRegistry_MountOrder(t *testing.T) {
	r := NewFieldRegistry()
	mountFields(r, 3, 1, 2)
	r.Mount(1, "renamed", textinput.New())

	assert.Equal(t, []entity.WidgetID{3, 1, 2}, r.IDs())
	f, ok := r.Field(1)
	require.True(t, ok)
	assert.Equal(t, "renamed", f.Label)

	assert.True(t, r.Unmount(1))
	assert.False(t, r.Unmount(1))
	assert.Equal(t, []entity.WidgetID{3, 2}, r.IDs())
}

func TestFieldRegistry_FocusAndBlur(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	mountFields(r, 1)

	require.NoError(t, r.Focus(ctx, 1))
	assert.True(t, isFocused(t, r, 1))
	assert.NotEmpty(t, r.Drain(), "focus starts the cursor blink")
	assert.Empty(t, r.Drain())

	require.NoError(t, r.Blur(ctx, 1))
	assert.False(t, isFocused(t, r, 1))
}

func TestFieldRegistry_UnknownView(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()

	assert.ErrorIs(t, r.Focus(ctx, 42), ErrViewNotFound)
	assert.ErrorIs(t, r.Blur(ctx, 42), ErrViewNotFound)
}

func TestFieldRegistry_Apply(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	mountFields(r, 5)

	require.NoError(t, r.Apply(ctx, ViewCommandMsg{ID: 5, Command: entity.HostCommandFocusTextInput}))
	assert.True(t, isFocused(t, r, 5))

	require.NoError(t, r.Apply(ctx, ViewCommandMsg{ID: 5, Command: entity.HostCommandBlurTextInput}))
	assert.False(t, isFocused(t, r, 5))

	err := r.Apply(ctx, ViewCommandMsg{ID: 5, Command: entity.HostCommand("scrollTo")})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestFieldRegistry_UpdateTypesIntoField(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	mountFields(r, 1)
	require.NoError(t, r.Focus(ctx, 1))

	r.Update(1, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	assert.Nil(t, r.Update(99, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))

	f, _ := r.Field(1)
	assert.Equal(t, "hi", f.Input.Value())
}

func TestCommandQueue_DrainPreservesOrder(t *testing.T) {
	ctx := context.Background()
	q := NewCommandQueue()

	require.NoError(t, q.DispatchViewCommand(ctx, 1, entity.HostCommandFocusTextInput, nil))
	require.NoError(t, q.DispatchViewCommand(ctx, 1, entity.HostCommandBlurTextInput, nil))
	assert.Equal(t, 2, q.Len())

	cmds := q.Drain()
	require.Len(t, cmds, 2)
	assert.Equal(t, 0, q.Len())

	assert.Equal(t, ViewCommandMsg{ID: 1, Command: entity.HostCommandFocusTextInput}, cmds[0]())
	assert.Equal(t, ViewCommandMsg{ID: 1, Command: entity.HostCommandBlurTextInput}, cmds[1]())
}

func TestDirectHost_EndToEnd(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	mountFields(r, 1, 2)

	d, err := hostdispatch.New(entity.PlatformDirect, r, nil)
	require.NoError(t, err)
	c := usecase.NewFocusCoordinator(d)

	require.NoError(t, c.Focus(ctx, entity.Some(1)))
	assert.True(t, isFocused(t, r, 1))

	require.NoError(t, c.Focus(ctx, entity.Some(2)))
	assert.True(t, isFocused(t, r, 2))
	assert.False(t, isFocused(t, r, 1), "previous field resigns focus")

	err = c.Focus(ctx, entity.Some(9))
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.Equal(t, entity.Some(9), c.CurrentlyFocused())
	assert.True(t, isFocused(t, r, 2), "failed focus leaves the host untouched")
}

func TestFieldRegistry_SingleFocusedField(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	mountFields(r, 1, 2, 3)

	require.NoError(t, r.Focus(ctx, 1))
	require.NoError(t, r.Apply(ctx, ViewCommandMsg{ID: 3, Command: entity.HostCommandFocusTextInput}))

	assert.False(t, isFocused(t, r, 1))
	assert.False(t, isFocused(t, r, 2))
	assert.True(t, isFocused(t, r, 3))
}

func TestCommandHost_EndToEnd(t *testing.T) {
	ctx := context.Background()
	r := NewFieldRegistry()
	q := NewCommandQueue()
	mountFields(r, 7)

	d, err := hostdispatch.New(entity.PlatformCommand, nil, q)
	require.NoError(t, err)
	c := usecase.NewFocusCoordinator(d)

	require.NoError(t, c.Focus(ctx, entity.Some(7)))
	assert.False(t, isFocused(t, r, 7), "command is only queued")

	for _, cmd := range q.Drain() {
		msg, ok := cmd().(ViewCommandMsg)
		require.True(t, ok)
		assert.Nil(t, msg.Payload)
		require.NoError(t, r.Apply(ctx, msg))
	}
	assert.True(t, isFocused(t, r, 7))
}
