package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// selectModel represents the Bubble Tea model for choice selection.
type selectModel struct {
	title           string
	choices         []Choice
	filteredChoices []Choice
	cursor          int
	filter          string
	selected        *Choice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, choices []Choice) selectModel {
	return selectModel{
		title:           title,
		choices:         choices,
		filteredChoices: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	m.handleNavigationKeys(key)
	m.handleFilterKeys(key)

	return m, nil
}

// handleSpecialKeys handles keys that end the program.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if len(m.filteredChoices) > 0 && m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	case "up", "down", "k", "j", "enter":
	default:
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []Choice{}
		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Value), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("? "+m.title) + "  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		line := "  " + formatChoice(choice)
		if m.cursor == i {
			line = selectedStyle.Render("> " + formatChoice(choice))
		}
		s.WriteString(line + "\n")
	}

	help := "Press Enter to select, Ctrl+C or q to quit"
	if m.filter != "" {
		help += ", Esc to clear filter"
	}
	s.WriteString("\n" + helpStyle.Render(help))

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice) string {
	if choice.Description == "" {
		return choice.Value
	}
	return fmt.Sprintf("%s (%s)", choice.Value, choice.Description)
}

// promptSelectBubbleTea runs the Bubble Tea program for choice selection.
func promptSelectBubbleTea(title string, choices []Choice) (Choice, error) {
	p := tea.NewProgram(initialSelectModel(title, choices))

	finalModel, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected model type")
	}

	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}

	return *model.selected, nil
}
