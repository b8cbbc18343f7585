package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guiyumin/urlcat/internal/categorize"
	"github.com/spf13/cobra"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// interactiveModel classifies the input line on every keystroke
type interactiveModel struct {
	input   textinput.Model
	result  categorize.Result
	matched int
	history []string
}

func newInteractiveModel() interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.Prompt = promptStyle.Render("url> ")
	ti.CharLimit = 2048
	ti.Width = 72
	ti.Focus()

	return interactiveModel{input: ti}
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// keep the classified line above the prompt and start over
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				m.history = append(m.history, formatResult(v, m.result, true))
			}
			m.input.Reset()
			m.result = categorize.Result{}
			m.matched = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.classify()
	return m, cmd
}

func (m *interactiveModel) classify() {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		m.result = categorize.Result{}
		m.matched = 0
		return
	}
	m.result = categorize.Classify(v)
	m.matched = len(categorize.Matches(v))
}

func (m interactiveModel) View() string {
	var b strings.Builder
	for _, h := range m.history {
		b.WriteString(h)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if v := strings.TrimSpace(m.input.Value()); v != "" {
		b.WriteString(formatResult(v, m.result, true))
		if m.matched > 1 {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  %d providers matched, the last one wins", m.matched)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter: keep result  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Short:   "Classify URLs as you type",
	Aliases: []string{"i"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newInteractiveModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("interactive session failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
