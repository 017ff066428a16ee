// Package prompt provides interactive prompt functionality for dupclose.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter reading from standard input.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
// Any answer other than an affirmative one is treated as a refusal.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// autoPrompt answers every confirmation with a fixed value, for headless runs.
type autoPrompt struct {
	answer bool
}

// NewAutoPrompt creates a Prompter that always answers with the given value.
func NewAutoPrompt(answer bool) Prompter {
	return &autoPrompt{
		answer: answer,
	}
}

// PromptForConfirmation returns the configured answer without reading input.
func (p *autoPrompt) PromptForConfirmation(_ string, _ bool) (bool, error) {
	return p.answer, nil
}
