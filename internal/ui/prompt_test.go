package ui_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topmolt/topmolt-cli/internal/ui"
)

func TestInputUsesDefaultOnEmptyAnswer(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader("\n"), &out)

	answer, err := p.Input("Display name:", "traderbot", nil)
	require.NoError(t, err)
	assert.Equal(t, "traderbot", answer)
}

func TestInputRepeatsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader("Bad Name\ngood-name\n"), &out)

	answer, err := p.Input("Agent name:", "", func(value string) error {
		if strings.Contains(value, " ") {
			return fmt.Errorf("no spaces allowed")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "good-name", answer)
	assert.Contains(t, out.String(), "no spaces allowed")
}

func TestInputTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader("  traderbot  \n"), &out)

	answer, err := p.Input("Agent name:", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "traderbot", answer)
}

func TestInputErrorsOnEOF(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader(""), &out)

	_, err := p.Input("Agent name:", "", nil)
	assert.Error(t, err)
}

func TestSelectReturnsChosenValue(t *testing.T) {
	choices := []ui.Choice{
		{Label: "General Purpose", Value: "general"},
		{Label: "Trading & Investing", Value: "trading"},
	}

	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader("2\n"), &out)

	value, err := p.Select("Category?", choices)
	require.NoError(t, err)
	assert.Equal(t, "trading", value)
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	choices := []ui.Choice{{Label: "Only option", Value: "one"}}

	var out bytes.Buffer
	p := ui.NewPrompter(strings.NewReader("0\nnope\n1\n"), &out)

	value, err := p.Select("Pick:", choices)
	require.NoError(t, err)
	assert.Equal(t, "one", value)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"what\ny\n", false, true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := ui.NewPrompter(strings.NewReader(tt.input), &out)
		got, err := p.Confirm("Register this agent?", tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q default %v", tt.input, tt.def)
	}
}

func TestBoxPadsAllLines(t *testing.T) {
	box := ui.Box("short\na much longer line")
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "short")
	assert.Contains(t, lines[2], "a much longer line")
}
