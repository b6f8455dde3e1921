// Package model contains the Bubble Tea models used by the CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/textfocus/internal/application/port"
	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/infrastructure/textinput"
	"github.com/bnema/textfocus/internal/logging"
)

const (
	maxLabelWidth = 24
	labelGap      = 2
)

// FocusFormDeps wires the form to the focus coordinator and its host.
type FocusFormDeps struct {
	Focus    port.TextInputFocus
	Fields   *textinput.FieldRegistry
	Commands *textinput.CommandQueue // optional, drained only when set
	Platform entity.Platform
	Theme    *styles.Theme

	Labels    []string
	CharLimit int
}

// FocusFormModel is a form of text fields acting as the focus host.
// Key gestures decide where focus goes; the coordinator records the decision
// and notifies the fields through the configured dispatcher.
type FocusFormModel struct {
	ctx  context.Context
	deps FocusFormDeps

	keys styles.FocusFormKeyMap
	help help.Model

	nextID  entity.WidgetID
	mounted int
	err     error
	width   int
}

// NewFocusFormModel creates the form and mounts one field per label.
func NewFocusFormModel(ctx context.Context, deps FocusFormDeps) FocusFormModel {
	m := FocusFormModel{
		ctx:    logging.WithComponent(ctx, "focus_form"),
		deps:   deps,
		keys:   styles.DefaultFocusFormKeyMap(),
		help:   styles.NewStyledHelp(deps.Theme),
		nextID: 1,
		width:  80,
	}
	for _, label := range deps.Labels {
		m.mount(label)
	}
	return m
}

// Init implements tea.Model.
func (m FocusFormModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FocusFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case textinput.ViewCommandMsg:
		m.applyViewCommand(msg)
		return m, m.flush()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if id, ok := m.deps.Focus.CurrentlyFocused().Get(); ok {
		return m, m.deps.Fields.Update(id, msg)
	}
	return m, nil
}

func (m FocusFormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Blur):
		m.setErr(m.deps.Focus.Blur(m.ctx, m.deps.Focus.CurrentlyFocused()))
	case key.Matches(msg, m.keys.Add):
		m.mount(fmt.Sprintf("Field %d", m.mounted+1))
	case key.Matches(msg, m.keys.Remove):
		if id, ok := m.deps.Focus.CurrentlyFocused().Get(); ok {
			m.unmount(id)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		if id, ok := m.deps.Focus.CurrentlyFocused().Get(); ok {
			return m, m.deps.Fields.Update(id, msg)
		}
		return m, nil
	}
	return m, m.flush()
}

// inputs returns the mounted fields that are registered text inputs.
func (m FocusFormModel) inputs() []entity.WidgetID {
	var ids []entity.WidgetID
	for _, id := range m.deps.Fields.IDs() {
		if m.deps.Focus.IsTextInput(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// step moves focus delta positions through the registered fields, wrapping.
// With nothing focused, forward starts at the first field and backward at the last.
func (m *FocusFormModel) step(delta int) {
	ids := m.inputs()
	if len(ids) == 0 {
		return
	}

	next := 0
	if delta < 0 {
		next = len(ids) - 1
	}
	if current, ok := m.deps.Focus.CurrentlyFocused().Get(); ok {
		for i, id := range ids {
			if id == current {
				next = ((i+delta)%len(ids) + len(ids)) % len(ids)
				break
			}
		}
	}

	m.setErr(m.deps.Focus.Focus(m.ctx, entity.Some(ids[next])))
}

func (m *FocusFormModel) mount(label string) {
	id := m.nextID
	m.nextID++
	m.mounted++

	m.deps.Fields.Mount(id, label, styles.NewFieldInput(m.deps.Theme, label, m.deps.CharLimit))
	m.deps.Focus.RegisterInput(id)

	logging.FromContext(logging.WithWidgetID(m.ctx, id)).Debug().Str("label", label).Msg("field mounted")
}

// unmount blurs the field before removing it; unregistering alone leaves
// focus pointing at the removed field.
func (m *FocusFormModel) unmount(id entity.WidgetID) {
	ctx := logging.WithWidgetID(m.ctx, id)
	m.setErr(m.deps.Focus.Blur(ctx, entity.Some(id)))
	m.deps.Fields.Unmount(id)
	m.deps.Focus.UnregisterInput(id)

	logging.FromContext(ctx).Debug().Msg("field unmounted")
}

func (m *FocusFormModel) applyViewCommand(msg textinput.ViewCommandMsg) {
	err := m.deps.Fields.Apply(m.ctx, msg)
	if errors.Is(err, textinput.ErrViewNotFound) && msg.Command == entity.HostCommandBlurTextInput {
		// Blur queued for a field that has since been unmounted.
		logging.FromContext(m.ctx).Debug().Stringer("widget_id", msg.ID).Msg("blur for unmounted field dropped")
		return
	}
	m.setErr(err)
}

func (m *FocusFormModel) setErr(err error) {
	m.err = err
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("host rejected focus change")
	}
}

// flush collects commands produced by the host: queued view commands first,
// then cursor commands from the text inputs.
func (m FocusFormModel) flush() tea.Cmd {
	var cmds []tea.Cmd
	if m.deps.Commands != nil {
		cmds = append(cmds, m.deps.Commands.Drain()...)
	}
	cmds = append(cmds, m.deps.Fields.Drain()...)
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m FocusFormModel) View() string {
	theme := m.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Title.Render("textfocus"))
	b.WriteString(" ")
	b.WriteString(theme.BadgeMuted.Render(string(m.deps.Platform)))
	b.WriteString("\n\n")

	ids := m.deps.Fields.IDs()
	column := m.labelColumn(ids)
	if len(ids) == 0 {
		b.WriteString(theme.Subtle.Render("No fields mounted. Press ctrl+n to add one."))
		b.WriteString("\n")
	}
	for _, id := range ids {
		f, ok := m.deps.Fields.Field(id)
		if !ok {
			continue
		}
		focused := f.Input.Focused()
		label := theme.Label
		if focused {
			label = theme.LabelFocused
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			label.Width(column+labelGap).Render(runewidth.Truncate(f.Label, column, "…")),
			theme.InputBox(f.Input.View(), focused),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// labelColumn is the display width of the widest label, capped at maxLabelWidth.
func (m FocusFormModel) labelColumn(ids []entity.WidgetID) int {
	width := 0
	for _, id := range ids {
		if f, ok := m.deps.Fields.Field(id); ok {
			width = max(width, runewidth.StringWidth(f.Label))
		}
	}
	return min(width, maxLabelWidth)
}

func (m FocusFormModel) statusLine() string {
	theme := m.deps.Theme

	inputs := m.inputs()
	names := make([]string, len(inputs))
	for i, id := range inputs {
		names[i] = id.String()
	}

	status := fmt.Sprintf("focused: %s  inputs: [%s]",
		m.deps.Focus.CurrentlyFocused(), strings.Join(names, " "))
	if m.err != nil {
		status += "  " + theme.ErrorStyle.Render(m.err.Error())
	}
	return theme.StatusBar.Width(m.width).Render(status)
}
