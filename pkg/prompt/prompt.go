package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a selectable option with a short description.
type Choice struct {
	Value       string
	Description string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForOrganization prompts the user for an organization name.
	// An empty answer keeps defaultOrg; an empty answer without default is an error.
	PromptForOrganization(label, defaultOrg string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelect prompts the user to pick one of the choices.
	PromptSelect(title string, choices []Choice) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// PromptForOrganization prompts the user for an organization name.
func (p *realPrompt) PromptForOrganization(label, defaultOrg string) (string, error) {
	if defaultOrg != "" {
		fmt.Fprintf(p.out, "%s [default: %s]: ", label, defaultOrg)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		if defaultOrg == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyInput, label)
		}
		return defaultOrg, nil
	}
	if strings.ContainsAny(input, "/ ") {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrganization, input)
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelect prompts the user to pick one of the choices.
func (p *realPrompt) PromptSelect(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	return promptSelectBubbleTea(title, choices)
}
