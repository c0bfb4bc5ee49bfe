package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter implements domain.Prompter over a line-oriented reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and returns true only for "y" or "Y".
// End of input counts as "no".
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// Pause waits for Enter, ignoring end of input.
func (p *Prompter) Pause(message string) {
	fmt.Fprint(p.out, message)
	_, _ = p.in.ReadString('\n')
}
