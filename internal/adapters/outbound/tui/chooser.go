package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fixhook/fixhook/internal/domain"
)

var (
	buttonStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(fg).Background(faint)
	activeStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#1C1917")).Background(accent)
)

// chooserModel is a modal row of buttons, like an editor's notification actions.
type chooserModel struct {
	message string
	choices []domain.Choice
	cursor  int
	chosen  domain.Choice
	done    bool
}

func (m chooserModel) Init() tea.Cmd { return nil }

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h", "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case "right", "l", "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "enter", " ":
		m.chosen, m.done = m.choices[m.cursor], true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.chosen, m.done = domain.ChoiceCancel, true
		return m, tea.Quit
	default:
		for _, c := range m.choices {
			if key.String() == hotkey(c) {
				m.chosen, m.done = c, true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m chooserModel) View() string {
	if m.done {
		return ""
	}
	buttons := make([]string, len(m.choices))
	for i, c := range m.choices {
		style := buttonStyle
		if i == m.cursor {
			style = activeStyle
		}
		buttons[i] = style.Render(c.Label())
	}
	return fmt.Sprintf("%s\n\n  %s\n\n  %s\n",
		promptStyle.Render(m.message),
		strings.Join(buttons, " "),
		dimStyle.Render("←/→ move • enter select • "+hotkeys(m.choices)+" • esc cancel"))
}

func hotkeys(choices []domain.Choice) string {
	keys := make([]string, len(choices))
	for i, c := range choices {
		keys[i] = hotkey(c)
	}
	return strings.Join(keys, "/")
}

// TeaPrompter shows the choices as buttons on an interactive terminal.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

var _ domain.Prompter = (*TeaPrompter)(nil)

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Choose blocks until a button is picked. Closing the prompt counts as Cancel.
func (p *TeaPrompter) Choose(ctx context.Context, message string, choices []domain.Choice) (domain.Choice, error) {
	prog := tea.NewProgram(
		chooserModel{message: message, choices: choices},
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	m, ok := final.(chooserModel)
	if !ok || !m.done {
		return domain.ChoiceCancel, nil
	}
	return m.chosen, nil
}
