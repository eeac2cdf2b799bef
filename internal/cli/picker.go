package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/licensescout/pkg/deps"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ecosystemPicker is the bubbletea model for choosing between multiple
// detected ecosystems in one project root.
type ecosystemPicker struct {
	ecosystems []*deps.Ecosystem
	cursor     int
	choice     *deps.Ecosystem
}

func (m ecosystemPicker) Init() tea.Cmd {
	return nil
}

func (m ecosystemPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.ecosystems)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.ecosystems[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ecosystemPicker) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Ecosystem"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, eco := range m.ecosystems {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%s %s", cursor, style.Render(eco.Name),
			listDimStyle.Render("("+eco.ManifestFile+")"))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// pickEcosystem lets the user choose among several detected ecosystems.
// It returns nil without error when the user cancels.
func pickEcosystem(found []*deps.Ecosystem) (*deps.Ecosystem, error) {
	out, err := tea.NewProgram(ecosystemPicker{ecosystems: found}).Run()
	if err != nil {
		return nil, err
	}
	return out.(ecosystemPicker).choice, nil
}
