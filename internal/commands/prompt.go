package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads interactive answers line by line. All input for a session
// goes through a single Prompter so buffering stays consistent.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps a reader/writer pair for interactive prompts.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the label and returns the trimmed answer.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// AskDefault prints the label with the current value; a blank answer keeps it.
func (p *Prompter) AskDefault(label, current string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// Confirm asks a y/n question; only "y" (case-insensitive) counts as yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", label)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// ReadLine returns the next raw input line, trimmed.
func (p *Prompter) ReadLine() (string, error) {
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
