package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gt4500/internal/bridge"
	"github.com/vovakirdan/gt4500/internal/core"
)

// ConsoleModel is the Bubble Tea model for the fire-control console.
type ConsoleModel struct {
	bridge    *bridge.Bridge
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	table     table.Model
	last      *bridge.Salvo // Most recent salvo, nil before the first order
	notice    string        // One-shot status line (e.g. after reload)
	showLog   bool
	quitting  bool
}

// NewConsoleModel creates a console over the given bridge.
func NewConsoleModel(b *bridge.Bridge, cfg core.RuntimeConfig) ConsoleModel {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := ConsoleModel{
		bridge:    b,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		table:     newSalvoTable(cfg.ScreenH),
	}
	m.table.SetRows(salvoRows(b.History()))
	return m
}

// Init initializes the console.
func (m ConsoleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table = newSalvoTable(msg.Height)
		m.table.SetRows(salvoRows(m.bridge.History()))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ConsoleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if mode, ok := action.FiringMode(); ok {
		salvo := m.bridge.Fire(mode)
		m.last = &salvo
		m.notice = ""
		m.table.SetRows(salvoRows(m.bridge.History()))
		m.table.GotoTop()
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionReload:
		m.bridge.Reload()
		m.notice = "Stores reloaded."
		return m, nil
	case core.ActionToggleLog:
		m.showLog = !m.showLog
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Scrolling keys go to the salvo table
	if m.showLog {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the console.
func (m ConsoleModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.bridge.Status()

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(st.Title)+" FIRE CONTROL"), m.config.ScreenW))
	b.WriteString("\n\n")

	if m.showLog {
		if st.Salvos == 0 {
			b.WriteString(dimStyle.Render("No salvos fired yet."))
		} else {
			b.WriteString(panelStyle.Render(m.table.View()))
		}
	} else {
		b.WriteString(renderStores(st))
		b.WriteString("\n\n")

		switch {
		case m.notice != "":
			b.WriteString(dimStyle.Render(m.notice))
		case m.last != nil:
			b.WriteString(renderSalvo(*m.last))
		default:
			b.WriteString(dimStyle.Render("Awaiting orders."))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Salvos %d  Hits %d", st.Salvos, st.Hits)))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keyMapper.Keys())))

	return b.String()
}

// IsQuitting returns true if the user asked to leave the console.
func (m ConsoleModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the console Bubble Tea program for the given bridge.
func Run(b *bridge.Bridge, cfg core.RuntimeConfig) error {
	model := NewConsoleModel(b, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
