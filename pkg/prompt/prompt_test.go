//go:build unit

package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompt(input string) (*realPrompt, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &realPrompt{
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out
}

func TestRealPrompt_PromptForOrganization(t *testing.T) {
	tests := []struct {
		name        string
		defaultOrg  string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:       "empty input uses default",
			defaultOrg: "acme",
			input:      "\n",
			expected:   "acme",
		},
		{
			name:       "custom value",
			defaultOrg: "acme",
			input:      "  contoso  \n",
			expected:   "contoso",
		},
		{
			name:     "input without trailing newline",
			input:    "contoso",
			expected: "contoso",
		},
		{
			name:        "empty input without default",
			input:       "\n",
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "value with slash",
			input:       "acme/ProjA\n",
			expectedErr: ErrInvalidOrganization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompt(tt.input)

			result, err := p.PromptForOrganization("ADO organization", tt.defaultOrg)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptForOrganization_ShowsDefault(t *testing.T) {
	p, out := newTestPrompt("\n")

	_, err := p.PromptForOrganization("GitHub organization", "gh-org")
	require.NoError(t, err)
	assert.Equal(t, "GitHub organization [default: gh-org]: ", out.String())
}

func TestRealPrompt_PromptForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		defaultYes  bool
		input       string
		expected    bool
		expectError bool
	}{
		{name: "empty input default yes", defaultYes: true, input: "\n", expected: true},
		{name: "empty input default no", defaultYes: false, input: "\n", expected: false},
		{name: "yes", input: "y\n", expected: true},
		{name: "YES uppercase", input: "YES\n", expected: true},
		{name: "no", defaultYes: true, input: "n\n", expected: false},
		{name: "invalid input", input: "maybe\n", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompt(tt.input)

			result, err := p.PromptForConfirmation("Overwrite?", tt.defaultYes)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptSelect_NoChoices(t *testing.T) {
	p, _ := newTestPrompt("")

	_, err := p.PromptSelect("Pick one", nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestFormatChoice(t *testing.T) {
	assert.Equal(t, "pulls", formatChoice(Choice{Value: "pulls"}))
	assert.Equal(t, "closed (closed pull requests)",
		formatChoice(Choice{Value: "closed", Description: "closed pull requests"}))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func runKeys(m selectModel, keys ...string) selectModel {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(selectModel)
}

func TestSelectModel_Update(t *testing.T) {
	choices := []Choice{
		{Value: "pulls", Description: "open pull requests"},
		{Value: "closed", Description: "closed pull requests"},
	}

	tests := []struct {
		name     string
		keys     []string
		expected string
		quitting bool
	}{
		{name: "enter selects first", keys: []string{"enter"}, expected: "pulls"},
		{name: "down then enter", keys: []string{"down", "enter"}, expected: "closed"},
		{name: "cursor stays in bounds", keys: []string{"down", "down", "down", "up", "enter"}, expected: "pulls"},
		{name: "filter narrows choices", keys: []string{"c", "l", "enter"}, expected: "closed"},
		{name: "esc clears filter", keys: []string{"c", "esc", "enter"}, expected: "pulls"},
		{name: "backspace widens filter", keys: []string{"c", "l", "backspace", "backspace", "enter"}, expected: "pulls"},
		{name: "q quits", keys: []string{"q"}, quitting: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runKeys(initialSelectModel("Pick", choices), tt.keys...)

			if tt.quitting {
				assert.True(t, m.quitting)
				assert.Nil(t, m.selected)
				assert.Empty(t, m.View())
				return
			}
			require.NotNil(t, m.selected)
			assert.Equal(t, tt.expected, m.selected.Value)
		})
	}
}

func TestSelectModel_View(t *testing.T) {
	m := initialSelectModel("Pull request target", []Choice{{Value: "pulls"}, {Value: "closed"}})

	view := m.View()
	assert.Contains(t, view, "? Pull request target")
	assert.Contains(t, view, "> pulls")
	assert.Contains(t, view, "  closed")
	assert.NotContains(t, view, "Filter:")

	m = runKeys(m, "c")
	assert.Contains(t, m.View(), "Filter: c")
	assert.Contains(t, m.View(), "Esc to clear filter")
}
