package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/textfocus/internal/application/usecase"
	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/infrastructure/hostdispatch"
	"github.com/bnema/textfocus/internal/infrastructure/textinput"
)

type formHarness struct {
	model       FocusFormModel
	coordinator *usecase.FocusCoordinator
	fields      *textinput.FieldRegistry
	commands    *textinput.CommandQueue
}

func newHarness(t *testing.T, platform entity.Platform, labels ...string) *formHarness {
	t.Helper()

	fields := textinput.NewFieldRegistry()
	commands := textinput.NewCommandQueue()
	dispatcher, err := hostdispatch.New(platform, fields, commands)
	require.NoError(t, err)
	coordinator := usecase.NewFocusCoordinator(dispatcher)

	h := &formHarness{
		coordinator: coordinator,
		fields:      fields,
		commands:    commands,
	}
	h.model = NewFocusFormModel(context.Background(), FocusFormDeps{
		Focus:     coordinator,
		Fields:    fields,
		Commands:  commands,
		Platform:  platform,
		Theme:     styles.NewTheme(),
		Labels:    labels,
		CharLimit: 64,
	})
	return h
}

func (h *formHarness) send(msg tea.Msg) {
	next, _ := h.model.Update(msg)
	h.model = next.(FocusFormModel)
}

func (h *formHarness) press(kt tea.KeyType) {
	h.send(tea.KeyMsg{Type: kt})
}

func (h *formHarness) hostFocused(t *testing.T, id entity.WidgetID) bool {
	t.Helper()
	f, ok := h.fields.Field(id)
	require.True(t, ok)
	return f.Input.Focused()
}

func TestFocusForm_MountsAndRegistersFields(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name", "Email", "Notes")

	assert.Equal(t, []entity.WidgetID{1, 2, 3}, h.fields.IDs())
	assert.Equal(t, []entity.WidgetID{1, 2, 3}, h.coordinator.RegisteredInputs())
	assert.True(t, h.coordinator.CurrentlyFocused().IsNone())
}

func TestFocusForm_TabCyclesFocus(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name", "Email")

	h.press(tea.KeyTab)
	assert.Equal(t, entity.Some(1), h.coordinator.CurrentlyFocused())
	assert.True(t, h.hostFocused(t, 1))

	h.press(tea.KeyTab)
	assert.Equal(t, entity.Some(2), h.coordinator.CurrentlyFocused())
	assert.True(t, h.hostFocused(t, 2))
	assert.False(t, h.hostFocused(t, 1), "only one field draws a cursor")

	h.press(tea.KeyTab)
	assert.Equal(t, entity.Some(1), h.coordinator.CurrentlyFocused())
	assert.True(t, h.hostFocused(t, 1))
	assert.False(t, h.hostFocused(t, 2))
}

func TestFocusForm_ShiftTabFromNothingFocusesLast(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "A", "B", "C")

	h.press(tea.KeyShiftTab)
	assert.Equal(t, entity.Some(3), h.coordinator.CurrentlyFocused())

	h.press(tea.KeyShiftTab)
	assert.Equal(t, entity.Some(2), h.coordinator.CurrentlyFocused())
}

func TestFocusForm_EscBlurs(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name")

	h.press(tea.KeyTab)
	require.True(t, h.hostFocused(t, 1))

	h.press(tea.KeyEsc)
	assert.True(t, h.coordinator.CurrentlyFocused().IsNone())
	assert.False(t, h.hostFocused(t, 1))

	h.press(tea.KeyEsc)
	assert.True(t, h.coordinator.CurrentlyFocused().IsNone())
}

func TestFocusForm_TypingGoesToFocusedField(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name", "Email")

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	h.press(tea.KeyTab)
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bob")})

	first, _ := h.fields.Field(1)
	second, _ := h.fields.Field(2)
	assert.Equal(t, "bob", first.Input.Value())
	assert.Empty(t, second.Input.Value())
}

func TestFocusForm_MountAndUnmount(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name")

	h.press(tea.KeyCtrlN)
	assert.True(t, h.coordinator.IsTextInput(2))
	assert.Equal(t, []entity.WidgetID{1, 2}, h.fields.IDs())

	h.press(tea.KeyShiftTab)
	require.Equal(t, entity.Some(2), h.coordinator.CurrentlyFocused())

	h.press(tea.KeyCtrlW)
	assert.False(t, h.coordinator.IsTextInput(2))
	assert.Equal(t, []entity.WidgetID{1}, h.fields.IDs())
	assert.True(t, h.coordinator.CurrentlyFocused().IsNone())
	assert.NoError(t, h.model.err)

	h.press(tea.KeyCtrlN)
	assert.Equal(t, []entity.WidgetID{1, 3}, h.fields.IDs(), "ids are never reused")
}

func TestFocusForm_CommandPlatformAppliesQueuedCommands(t *testing.T) {
	h := newHarness(t, entity.PlatformCommand, "Name", "Email")

	next, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	h.model = next.(FocusFormModel)

	assert.NotNil(t, cmd)
	assert.Equal(t, entity.Some(1), h.coordinator.CurrentlyFocused())
	assert.False(t, h.hostFocused(t, 1), "focus lands when the command is processed")
	assert.Zero(t, h.commands.Len(), "queued commands were handed to the loop")

	h.send(textinput.ViewCommandMsg{ID: 1, Command: entity.HostCommandFocusTextInput})
	assert.True(t, h.hostFocused(t, 1))

	h.press(tea.KeyEsc)
	h.send(textinput.ViewCommandMsg{ID: 1, Command: entity.HostCommandBlurTextInput})
	assert.False(t, h.hostFocused(t, 1))
	assert.NoError(t, h.model.err)
}

func TestFocusForm_CommandPlatformDropsBlurForUnmountedField(t *testing.T) {
	h := newHarness(t, entity.PlatformCommand, "Name")

	h.press(tea.KeyTab)
	h.send(textinput.ViewCommandMsg{ID: 1, Command: entity.HostCommandFocusTextInput})
	h.press(tea.KeyCtrlW)

	h.send(textinput.ViewCommandMsg{ID: 1, Command: entity.HostCommandBlurTextInput})
	assert.NoError(t, h.model.err)

	h.send(textinput.ViewCommandMsg{ID: 1, Command: entity.HostCommandFocusTextInput})
	assert.ErrorIs(t, h.model.err, textinput.ErrViewNotFound)
}

func TestFocusForm_NonePlatformTracksOnly(t *testing.T) {
	h := newHarness(t, entity.PlatformNone, "Name")

	h.press(tea.KeyTab)
	assert.Equal(t, entity.Some(1), h.coordinator.CurrentlyFocused())
	assert.False(t, h.hostFocused(t, 1))
}

func TestFocusForm_QuitAndView(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect, "Name")
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	h.press(tea.KeyTab)

	view := h.model.View()
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "focused: 1")
	assert.Contains(t, view, "direct")

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFocusForm_EmptyView(t *testing.T) {
	h := newHarness(t, entity.PlatformDirect)

	h.press(tea.KeyTab)
	assert.True(t, h.coordinator.CurrentlyFocused().IsNone())
	assert.Contains(t, h.model.View(), "No fields mounted")
}

func TestFocusForm_LongLabelsTruncated(t *testing.T) {
	long := "A label that is far too long for the column"
	h := newHarness(t, entity.PlatformDirect, "Name", long, "メール")

	assert.Equal(t, maxLabelWidth, h.model.labelColumn(h.fields.IDs()))
	view := h.model.View()
	assert.Contains(t, view, "A label that is far too…")
	assert.Contains(t, view, "メール")
}
