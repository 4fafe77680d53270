// Package tui is a terminal stand-in for the graphical palette spec.md
// §1 puts out of scope: a bubbletea program driving the Circuit Facade
// and rendering its truth table with lipgloss-styled borders. No
// literal bubbletea program is in the retrieval pack to copy from
// (HershLalwani/q-deck's contributed file is a DAG data structure, not
// a TUI); the Init/Update/View shape below is the library's own
// documented idiom, wired against circuitsim's own facade rather than
// q-deck's quantum one.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xDarkicex/circuitsim/engine"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	onStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea model for circuitsim's terminal browser: a
// live component list and, on demand, a rendered truth table.
type Model struct {
	circuit *engine.Circuit
	table   *engine.Table[bool]
	err     error
}

// New returns a Model driving circuit, which must already be powered on.
func New(circuit *engine.Circuit) Model {
	return Model{circuit: circuit}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			table, err := m.circuit.TruthTable()
			m.table = table
			m.err = err
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("circuitsim") + "\n\n")

	for _, inst := range m.circuit.Components() {
		stateStyle := offStyle
		label := "0"
		if inst.State {
			stateStyle, label = onStyle, "1"
		}
		fmt.Fprintf(&b, "  [%d] %-8s %-6s state=%s expr=%s\n",
			inst.ID, inst.Label, inst.Category, stateStyle.Render(label), inst.StateExpr)
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	case m.table != nil:
		b.WriteString(borderStyle.Render(engine.RenderBool(m.table)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("t: truth table   q: quit"))
	return b.String()
}
