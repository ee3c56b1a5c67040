// README: Terminal prompter for the linear intake dialogue.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal reads one line of free text per question. It implements
// grievance.Prompter.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	prompt *color.Color
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: color.New(color.FgCyan),
	}
}

// Ask prints the prompt and reads back one line with the trailing newline
// stripped. Leading/inner whitespace is preserved; trimming is the caller's
// decision. A final unterminated line at EOF is still returned.
func (t *Terminal) Ask(prompt string) (string, error) {
	t.prompt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Say(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}
