package presenter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/mattn/go-runewidth"

	"github.com/hekt/live-dictation/internal/recognizer/model"
)

const (
	DefaultWidth = 80
	MinWidth     = 32

	listeningPrompt   = "[Listening... Speak now]"
	speakingPrefix    = "[Speaking... "
	speakingSuffix    = "]"
	transcriptionMark = "TRANSCRIPTION: "
	ellipsis          = "…"
)

var (
	carriageReturn = []byte("\r")
	newLine        = []byte("\n")
)

type State int

const (
	Listening State = iota
	Speaking
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case Speaking:
		return "speaking"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Presenter keeps exactly one status line on the terminal and prints
// finalized transcriptions above it.
// Every status write covers the whole width so shorter text never leaves
// remnants of a longer previous line.
type Presenter struct {
	writer io.Writer
	width  int
	state  State
	buf    bytes.Buffer
}

func New(writer io.Writer, width int) *Presenter {
	switch {
	case width <= 0:
		width = DefaultWidth
	case width < MinWidth:
		width = MinWidth
	}
	return &Presenter{
		writer: writer,
		width:  width,
		state:  Listening,
	}
}

func (p *Presenter) State() State {
	return p.state
}

// Listening shows the idle prompt.
func (p *Presenter) Listening() error {
	p.buf.Reset()
	p.writeStatus(listeningPrompt)
	p.state = Listening
	return p.flush()
}

// Present renders one Outcome.
func (p *Presenter) Present(outcome model.Outcome) error {
	switch o := outcome.(type) {
	case model.Final:
		return p.final(o.Text)
	case model.Partial:
		return p.partial(o.Text)
	default:
		return fmt.Errorf("unknown outcome type %T", outcome)
	}
}

func (p *Presenter) partial(text string) error {
	if text == "" {
		return nil
	}

	room := p.width - runewidth.StringWidth(speakingPrefix+speakingSuffix)
	if runewidth.StringWidth(text) > room {
		text = runewidth.TruncateLeft(text, runewidth.StringWidth(text)-room+runewidth.StringWidth(ellipsis), ellipsis)
	}

	p.buf.Reset()
	p.writeStatus(speakingPrefix + text + speakingSuffix)
	p.state = Speaking
	return p.flush()
}

func (p *Presenter) final(text string) error {
	p.buf.Reset()
	if text == "" {
		slog.Debug("Presenter: empty final result skipped")
	} else {
		p.clearLine()
		p.buf.WriteString(transcriptionMark)
		p.buf.WriteString(text)
		p.buf.Write(newLine)
	}
	p.writeStatus(listeningPrompt)
	p.state = Listening
	return p.flush()
}

func (p *Presenter) clearLine() {
	p.buf.Write(carriageReturn)
	p.buf.WriteString(runewidth.FillRight("", p.width))
	p.buf.Write(carriageReturn)
}

func (p *Presenter) writeStatus(line string) {
	p.buf.Write(carriageReturn)
	p.buf.WriteString(runewidth.FillRight(line, p.width))
	p.buf.Write(carriageReturn)
}

func (p *Presenter) flush() error {
	if _, err := p.writer.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}
