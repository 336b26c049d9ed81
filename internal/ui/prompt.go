package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks sequential questions on a terminal. The reader and
// writer are injected so the wizard can be tested against buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Input asks for a line of text. An empty answer falls back to def. When
// validate is non-nil the question repeats until the answer passes.
func (p *Prompter) Input(label, def string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s %s", Green("?"), Bold(label))
		if def != "" {
			fmt.Fprintf(p.out, " %s", Gray("("+def+")"))
		}
		fmt.Fprint(p.out, " ")

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = def
		}
		if validate != nil {
			if err := validate(line); err != nil {
				fmt.Fprintf(p.out, "%s\n", Red("  ✗ "+err.Error()))
				continue
			}
		}
		return line, nil
	}
}

// Choice is one option of a Select prompt. Label is shown to the user,
// Value is returned.
type Choice struct {
	Label string
	Value string
}

// Select asks the user to pick one of the numbered choices.
func (p *Prompter) Select(label string, choices []Choice) (string, error) {
	fmt.Fprintf(p.out, "%s %s\n", Green("?"), Bold(label))
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %s %s\n", Cyan(strconv.Itoa(i+1)+")"), c.Label)
	}

	for {
		fmt.Fprintf(p.out, "  %s ", Gray("Choice [1-"+strconv.Itoa(len(choices))+"]:"))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(choices) {
			fmt.Fprintf(p.out, "%s\n", Red("  ✗ Enter a number between 1 and "+strconv.Itoa(len(choices))))
			continue
		}
		return choices[n-1].Value, nil
	}
}

// Confirm asks a yes/no question. An empty answer falls back to def.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}

	for {
		fmt.Fprintf(p.out, "%s %s %s ", Green("?"), Bold(label), Gray(hint))
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(p.out, "%s\n", Red("  ✗ Answer y or n"))
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
