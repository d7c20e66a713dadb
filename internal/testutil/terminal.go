package testutil

import (
	"io"
	"strings"
	"sync"
)

var _ io.Writer = (*Terminal)(nil)

// Terminal is a minimal line-based terminal. It understands '\r' and '\n'
// and overwrites characters in place, so tests can check what a user would
// actually see. One rune is one cell.
type Terminal struct {
	mu     sync.Mutex
	raw    strings.Builder
	lines  []string
	line   []rune
	cursor int
}

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.raw.Write(p)
	for _, r := range string(p) {
		switch r {
		case '\r':
			t.cursor = 0
		case '\n':
			t.lines = append(t.lines, string(t.line))
			t.line = nil
			t.cursor = 0
		default:
			if t.cursor < len(t.line) {
				t.line[t.cursor] = r
			} else {
				t.line = append(t.line, r)
			}
			t.cursor++
		}
	}
	return len(p), nil
}

// Lines returns the committed lines, without trailing spaces.
func (t *Terminal) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, len(t.lines))
	for i, l := range t.lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// Current returns the line under the cursor, without trailing spaces.
func (t *Terminal) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return strings.TrimRight(string(t.line), " ")
}

// CurrentWidth returns the number of cells written on the current line.
func (t *Terminal) CurrentWidth() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.line)
}

// Raw returns every byte written so far.
func (t *Terminal) Raw() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.raw.String()
}
