//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealPrompt_PromptForConfirmation(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		defaultYes bool
		input      string
		expected   bool
	}{
		{
			name:       "yes input",
			message:    "Continue?",
			defaultYes: false,
			input:      "y\n",
			expected:   true,
		},
		{
			name:       "YES input",
			message:    "Continue?",
			defaultYes: false,
			input:      "YES\n",
			expected:   true,
		},
		{
			name:       "no input",
			message:    "Continue?",
			defaultYes: true,
			input:      "n\n",
			expected:   false,
		},
		{
			name:       "empty input uses default no",
			message:    "Continue?",
			defaultYes: false,
			input:      "\n",
			expected:   false,
		},
		{
			name:       "empty input uses default yes",
			message:    "Continue?",
			defaultYes: true,
			input:      "\n",
			expected:   true,
		},
		{
			name:       "garbage input refuses",
			message:    "Continue?",
			defaultYes: true,
			input:      "maybe\n",
			expected:   false,
		},
		{
			name:       "whitespace input uses default",
			message:    "Continue?",
			defaultYes: false,
			input:      "   \n",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForConfirmation(tt.message, tt.defaultYes)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptForConfirmation_ReadError(t *testing.T) {
	// No trailing newline causes ReadString to fail with io.EOF
	p := &realPrompt{
		reader: bufio.NewReader(strings.NewReader("")),
	}

	_, err := p.PromptForConfirmation("Continue?", false)
	assert.Error(t, err)
}

func TestAutoPrompt_PromptForConfirmation(t *testing.T) {
	accept := NewAutoPrompt(true)
	result, err := accept.PromptForConfirmation("Continue?", false)
	assert.NoError(t, err)
	assert.True(t, result)

	reject := NewAutoPrompt(false)
	result, err = reject.PromptForConfirmation("Continue?", true)
	assert.NoError(t, err)
	assert.False(t, result)
}
