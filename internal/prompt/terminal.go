package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	noStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Terminal is the interactive Asker, rendering bubbletea prompts on stderr.
type Terminal struct{}

// textModel is a minimal single-line editor with a default value and
// inline validation.
type textModel struct {
	opts      TextOptions
	input     []rune
	errMsg    string
	cancelled bool
	done      bool
}

func (m textModel) Init() tea.Cmd { return nil }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		value := strings.TrimRight(string(m.input), "\n")
		if value == "" {
			value = m.opts.Default
		}
		if m.opts.Validate != nil {
			if err := m.opts.Validate(value); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
		}
		m.errMsg = ""
		m.done = true
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyCtrlU:
		m.input = nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m textModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.opts.Prompt))
	if m.opts.Default != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", m.opts.Default)))
	}
	b.WriteString("\n  > ")
	b.WriteString(string(m.input))
	b.WriteString("█")
	if m.errMsg != "" {
		b.WriteString("\n  " + errStyle.Render(m.errMsg))
	}
	b.WriteString("\n" + dimStyle.Render("  enter to accept • esc to cancel"))
	return b.String()
}

// Text prompts for a line of input. An empty submission takes the default;
// validation errors are shown inline and the prompt re-arms.
func (t Terminal) Text(opts TextOptions) (string, error) {
	p := tea.NewProgram(textModel{opts: opts}, tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	fmt.Fprintln(os.Stderr)
	final := result.(textModel)
	if final.cancelled {
		return "", ErrCancelled
	}
	value := string(final.input)
	if value == "" {
		value = opts.Default
	}
	return value, nil
}

// confirmModel is a y/n chooser.
type confirmModel struct {
	prompt   string
	cursor   int // 0 = yes, 1 = no
	accepted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.accepted = true
			return m, tea.Quit
		case "n", "N":
			m.accepted = false
			return m, tea.Quit
		case "left", "h":
			m.cursor = 0
		case "right", "l":
			m.cursor = 1
		case "enter", " ":
			m.accepted = m.cursor == 0
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.accepted = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	yes := "  Yes  "
	no := "  No  "
	if m.cursor == 0 {
		yes = okStyle.Render("▸ Yes ")
		no = dimStyle.Render("  No  ")
	} else {
		yes = dimStyle.Render("  Yes ")
		no = noStyle.Render("▸ No  ")
	}
	return fmt.Sprintf("%s\n\n  %s  %s\n\n%s",
		promptStyle.Render(m.prompt),
		yes, no,
		dimStyle.Render("  ←/→ to select • enter to confirm • y/n for quick select"))
}

// Confirm asks a yes/no question with the cursor on def.
func (t Terminal) Confirm(prompt string, def bool) (bool, error) {
	cursor := 0
	if !def {
		cursor = 1
	}
	p := tea.NewProgram(confirmModel{prompt: prompt, cursor: cursor}, tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(os.Stderr)
	return result.(confirmModel).accepted, nil
}

// multiSelectModel is a checkbox list with non-selectable separator rows.
type multiSelectModel struct {
	opts      MultiSelectOptions
	checked   []bool
	cursor    int
	errMsg    string
	cancelled bool
}

func (m multiSelectModel) selectable(i int) bool {
	return m.opts.Choices[i].Value != ""
}

func (m multiSelectModel) selected() []string {
	var out []string
	for i, c := range m.opts.Choices {
		if m.checked[i] && c.Value != "" {
			out = append(out, c.Value)
		}
	}
	return out
}

func (m *multiSelectModel) move(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.opts.Choices); i += delta {
		if m.selectable(i) {
			m.cursor = i
			return
		}
	}
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case " ", "x":
			if m.selectable(m.cursor) {
				m.checked[m.cursor] = !m.checked[m.cursor]
				m.errMsg = ""
			}
		case "enter":
			if m.opts.Validate != nil {
				if err := m.opts.Validate(m.selected()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s\n", promptStyle.Render(m.opts.Prompt)))
	b.WriteString(fmt.Sprintf("  %s\n\n", dimStyle.Render("↑/↓ navigate • space toggle • enter confirm • esc cancel")))

	for i, c := range m.opts.Choices {
		if c.Value == "" {
			b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(c.Label)))
			continue
		}
		cursor := "  "
		if i == m.cursor {
			cursor = promptStyle.Render("▸ ")
		}
		checkbox := "[ ]"
		if m.checked[i] {
			checkbox = okStyle.Render("[✓]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checkbox, c.Label))
	}
	if m.errMsg != "" {
		b.WriteString("\n  " + errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// MultiSelect shows a grouped checkbox prompt. Pre-checked choices start
// selected; confirmation is blocked until the validator accepts.
func (t Terminal) MultiSelect(opts MultiSelectOptions) ([]string, error) {
	m := multiSelectModel{opts: opts, checked: make([]bool, len(opts.Choices))}
	for i, c := range opts.Choices {
		if c.Checked {
			m.checked[i] = true
		}
	}
	// Land the cursor on the first selectable row.
	if len(opts.Choices) > 0 && !m.selectable(0) {
		m.move(1)
	}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(os.Stderr)
	final := result.(multiSelectModel)
	if final.cancelled {
		return nil, ErrCancelled
	}
	return final.selected(), nil
}
