// Package ui provides the line-oriented terminal console shared by both games.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// LineWidth is the column at which prose is wrapped.
const LineWidth = 78

// ErrInputClosed is returned by Prompt once input is exhausted.
var ErrInputClosed = errors.New("input closed")

// Console reads one line per prompt and writes plain or coloured text.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// NewConsole creates a console. Callers decide on colour, normally with
// IsTerminal on the output.
func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: color,
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Prompt writes the prompt and returns the next line with surrounding space trimmed.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Println writes a line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Say writes text wrapped at LineWidth.
func (c *Console) Say(text string) {
	fmt.Fprintln(c.out, Wrap(text, LineWidth))
}

// Rule writes a horizontal rule of the given character.
func (c *Console) Rule(ch string) {
	fmt.Fprintln(c.out, strings.Repeat(ch, LineWidth))
}

// Styled returns text in the given colour when colour output is on.
func (c *Console) Styled(text string, color tcell.Color, bold bool) string {
	if !c.color {
		return text
	}
	return ansi(text, color, bold)
}

// ansi wraps text in truecolour escape codes.
func ansi(text string, color tcell.Color, bold bool) string {
	var b strings.Builder
	if bold {
		b.WriteString("\x1b[1m")
	}
	if r, g, bl := color.RGB(); r >= 0 && g >= 0 && bl >= 0 {
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", r, g, bl)
	}
	b.WriteString(text)
	b.WriteString("\x1b[0m")
	return b.String()
}

// Wrap fills text into lines of at most width columns, collapsing whitespace.
// Blank lines in the input separate paragraphs.
func Wrap(text string, width int) string {
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	out := make([]string, 0, len(paragraphs))

	for _, para := range paragraphs {
		words := strings.Fields(para)
		var lines []string
		var line strings.Builder
		for _, w := range words {
			if line.Len() > 0 && line.Len()+1+len(w) > width {
				lines = append(lines, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(w)
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
		out = append(out, strings.Join(lines, "\n"))
	}

	return strings.Join(out, "\n\n")
}
