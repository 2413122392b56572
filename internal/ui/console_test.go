package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/terminalquests/internal/world"
)

func TestPromptTrimsAndDetectsEOF(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  North \nlast"), &out, false)

	line, err := c.Prompt("Command: ")
	require.NoError(t, err)
	assert.Equal(t, "North", line)

	line, err = c.Prompt("Command: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.Prompt("Command: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Equal(t, "Command: Command: Command: ", out.String())
}

func TestPromptWrapsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	c := NewConsole(iotest.ErrReader(boom), &bytes.Buffer{}, false)

	_, err := c.Prompt("> ")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestWrap(t *testing.T) {
	text := strings.Repeat("word ", 40)
	wrapped := Wrap(text, LineWidth)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), LineWidth)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(wrapped))

	assert.Equal(t, "a b\n\nc", Wrap("a\nb\n\nc", 10))
	assert.Equal(t, "", Wrap("   ", 10))
}

func TestStyledFollowsColorFlag(t *testing.T) {
	plain := NewConsole(strings.NewReader(""), &bytes.Buffer{}, false)
	assert.Equal(t, "P", plain.Styled("P", tcell.ColorYellow, true))

	colored := NewConsole(strings.NewReader(""), &bytes.Buffer{}, true)
	assert.Equal(t, ansi("P", tcell.ColorYellow, true), colored.Styled("P", tcell.ColorYellow, true))
}

func TestBufferIsNotTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestAnsi(t *testing.T) {
	got := ansi("P", tcell.NewRGBColor(255, 0, 0), true)
	assert.Equal(t, "\x1b[1m\x1b[38;2;255;0;0mP\x1b[0m", got)
}

func TestSayAndRule(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)

	c.Say("hello   there")
	c.Rule("=")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hello there", lines[0])
	assert.Equal(t, strings.Repeat("=", LineWidth), lines[1])
}

func TestMiniMap(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)

	floor := &world.Floor{
		Size:    3,
		Visited: map[world.Pos]struct{}{{X: 0, Y: 0}: {}, {X: 1, Y: 0}: {}},
	}
	NewRenderer(c).MiniMap(floor, world.Pos{X: 1, Y: 0})

	want := "\nMini-map (V=visited, .=unknown, P=you)\n" +
		"V P .\n" +
		". . .\n" +
		". . .\n"
	assert.Equal(t, want, out.String())
}
