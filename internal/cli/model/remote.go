// Package model holds the Bubble Tea models of the CLI.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/remotenav/internal/bootstrap"
	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/infrastructure/layout"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/input"
)

const activityLines = 5

// preferredCodes lists, per action, the key codes tried when translating a
// simulator key. The first code the platform resolves to the action wins.
var preferredCodes = map[entity.Action][]int{
	entity.ActionUp:        {input.KeycodeUp, input.KeycodeGamepadDPadUp},
	entity.ActionDown:      {input.KeycodeDown, input.KeycodeGamepadDPadDown},
	entity.ActionLeft:      {input.KeycodeLeft, input.KeycodeGamepadDPadLeft},
	entity.ActionRight:     {input.KeycodeRight, input.KeycodeGamepadDPadRight},
	entity.ActionSelect:    {input.KeycodeGamepadA, input.KeycodeEnter},
	entity.ActionBack:      {input.KeycodeTizenBack, input.KeycodeWebOSBack, input.KeycodeGamepadB, input.KeycodeBackspace},
	entity.ActionPlayPause: {input.KeycodeTizenToggle, input.KeycodeGamepadX, input.KeycodeMediaToggle},
	entity.ActionInfo:      {input.KeycodeGamepadY, input.KeycodeInfo},
}

// RemoteCode returns the key code a device of platform p sends for action.
func RemoteCode(p input.Platform, action entity.Action) (int, bool) {
	for _, code := range preferredCodes[action] {
		mapped, ok := p.MapKeyCode(code)
		if !ok {
			continue
		}
		if remapped, ok := p.Remap[mapped]; ok {
			mapped = remapped
		}
		if mapped == action {
			return code, true
		}
	}
	return 0, false
}

// DrainMsg asks the model to run the tasks posted to the host loop from
// other goroutines, e.g. a config reload.
type DrainMsg struct{}

// activity is the shared, most-recent-first event log. Element callbacks
// append to it while the model is copied by value.
type activity struct {
	lines []string
}

func (a *activity) add(format string, args ...any) {
	a.lines = append([]string{fmt.Sprintf(format, args...)}, a.lines...)
	if len(a.lines) > activityLines {
		a.lines = a.lines[:activityLines]
	}
}

// RemoteModel simulates a TV remote driving a layout.
type RemoteModel struct {
	app    *bootstrap.App
	keys   styles.RemoteKeyMap
	help   help.Model
	theme  *styles.Theme
	screen *styles.ScreenRenderer
	log    *activity
	now    func() time.Time
}

// NewRemoteModel creates the simulator for app and installs activity
// callbacks on the layout elements.
func NewRemoteModel(app *bootstrap.App, theme *styles.Theme) RemoteModel {
	m := RemoteModel{
		app:    app,
		keys:   styles.DefaultRemoteKeyMap(),
		help:   styles.NewHelp(theme),
		theme:  theme,
		screen: styles.NewScreenRenderer(theme),
		log:    &activity{},
		now:    time.Now,
	}
	m.instrument()
	return m
}

func (m RemoteModel) instrument() {
	nav := m.app.Navigation
	log := m.log
	for _, el := range nav.Layout.Elements() {
		name := el.Name
		el.OnFocus = func(hasFocus bool, change entity.FocusChange) {
			if hasFocus && change.Action != "" {
				log.add("%s focused by %s", name, change.Action)
			}
		}
		handlers := entity.ActionHandlers{
			entity.ActionSelect: func(*entity.KeyEvent) { log.add("%s selected", name) },
		}
		if nav.Layout.RegionName(el) == layout.RegionUntracked {
			handlers[entity.ActionBack] = func(*entity.KeyEvent) {
				nav.Manager.SetFocus(nav.Context(), nav.Manager.DefaultFocus(), focus.Cause{Action: entity.ActionBack})
				log.add("%s dismissed", name)
			}
		}
		el.Handlers = handlers
		el.OnInput = func(action entity.Action, _ *entity.KeyEvent) bool {
			if action.IsMovement() {
				return false
			}
			log.add("%s received %s", name, action)
			return true
		}
	}
}

// Init implements tea.Model.
func (RemoteModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RemoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case DrainMsg:
		m.app.Loop.Drain()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m RemoteModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dialog):
		m.focusDialog()
		return m, nil
	}

	action, ok := m.actionFor(msg)
	if !ok {
		return m, nil
	}
	nav := m.app.Navigation
	code, ok := RemoteCode(nav.Platform, action)
	if !ok {
		m.log.add("%s has no %s key", nav.Platform.Name, action)
		return m, nil
	}
	handled := nav.PressKey(entity.KeyEvent{Code: code, Key: msg.String(), Time: m.now()})
	m.app.Loop.Drain()
	if !handled && action != entity.ActionBack {
		m.log.add("%s (%d) left to host", action, code)
	}
	return m, nil
}

func (m RemoteModel) actionFor(msg tea.KeyMsg) (entity.Action, bool) {
	bindings := []struct {
		binding key.Binding
		action  entity.Action
	}{
		{m.keys.Up, entity.ActionUp},
		{m.keys.Down, entity.ActionDown},
		{m.keys.Left, entity.ActionLeft},
		{m.keys.Right, entity.ActionRight},
		{m.keys.Select, entity.ActionSelect},
		{m.keys.Back, entity.ActionBack},
		{m.keys.PlayPause, entity.ActionPlayPause},
		{m.keys.Info, entity.ActionInfo},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return "", false
}

func (m RemoteModel) focusDialog() {
	nav := m.app.Navigation
	for _, el := range nav.Layout.Elements() {
		if nav.Layout.RegionName(el) == layout.RegionUntracked {
			nav.Manager.SetFocus(nav.Context(), el, focus.Cause{})
			m.log.add("%s opened", el.Name)
			return
		}
	}
	m.log.add("layout has no untracked element")
}

// Activity returns the recent events, most recent first.
func (m RemoteModel) Activity() []string {
	out := make([]string, len(m.log.lines))
	copy(out, m.log.lines)
	return out
}

// View implements tea.Model.
func (m RemoteModel) View() string {
	nav := m.app.Navigation
	iconStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)

	header := fmt.Sprintf("%s %s  %s  %s",
		iconStyle.Render(styles.IconRemote),
		m.theme.Title.Render(nav.Layout.Name),
		m.theme.BadgeMuted.Render(nav.Platform.Name),
		m.theme.Badge.Render(nav.Manager.Describe()),
	)

	guard := m.theme.Subtle.Render("back guard off")
	if nav.Guard != nil && nav.Guard.Active() {
		guard = m.theme.SuccessStyle.Render(styles.IconBack + " back guard on")
	}

	var events strings.Builder
	for i, line := range m.log.lines {
		style := m.theme.Subtle
		if i == 0 {
			style = m.theme.Normal
		}
		events.WriteString("  " + style.Render(line) + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.screen.Render(nav.Layout, nav.Manager.Current()),
		"",
		guard,
		events.String(),
		m.help.View(m.keys),
	)
}
