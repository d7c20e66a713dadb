package presenter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"

	"github.com/hekt/live-dictation/internal/recognizer/model"
	"github.com/hekt/live-dictation/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "default", width: 0, want: DefaultWidth},
		{name: "negative", width: -3, want: DefaultWidth},
		{name: "too narrow", width: 10, want: MinWidth},
		{name: "custom", width: 120, want: 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&testutil.Terminal{}, tt.width)
			if p.width != tt.want {
				t.Errorf("New() width = %d, want %d", p.width, tt.want)
			}
			if p.State() != Listening {
				t.Errorf("New() state = %v, want %v", p.State(), Listening)
			}
		})
	}
}

func TestPresenter_Listening(t *testing.T) {
	term := &testutil.Terminal{}
	p := New(term, 40)

	if err := p.Listening(); err != nil {
		t.Fatalf("Listening() error = %v", err)
	}

	want := "\r" + "[Listening... Speak now]" + strings.Repeat(" ", 16) + "\r"
	if diff := cmp.Diff(term.Raw(), want); diff != "" {
		t.Errorf("Listening() output mismatch (-got +want):\n%s", diff)
	}
}

func TestPresenter_Present(t *testing.T) {
	t.Run("partial then final", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 40)
		_ = p.Listening()

		steps := []struct {
			outcome     model.Outcome
			wantState   State
			wantCurrent string
			wantLines   []string
		}{
			{
				outcome:     model.Partial{Text: ""},
				wantState:   Listening,
				wantCurrent: "[Listening... Speak now]",
				wantLines:   []string{},
			},
			{
				outcome:     model.Partial{Text: "hello"},
				wantState:   Speaking,
				wantCurrent: "[Speaking... hello]",
				wantLines:   []string{},
			},
			{
				outcome:     model.Partial{Text: "hello world"},
				wantState:   Speaking,
				wantCurrent: "[Speaking... hello world]",
				wantLines:   []string{},
			},
			{
				outcome:     model.Final{Text: "hello world"},
				wantState:   Listening,
				wantCurrent: "[Listening... Speak now]",
				wantLines:   []string{"TRANSCRIPTION: hello world"},
			},
		}
		for i, s := range steps {
			if err := p.Present(s.outcome); err != nil {
				t.Fatalf("step %d: Present() error = %v", i, err)
			}
			if p.State() != s.wantState {
				t.Errorf("step %d: state = %v, want %v", i, p.State(), s.wantState)
			}
			if got := term.Current(); got != s.wantCurrent {
				t.Errorf("step %d: current line = %q, want %q", i, got, s.wantCurrent)
			}
			if diff := cmp.Diff(term.Lines(), s.wantLines); diff != "" {
				t.Errorf("step %d: lines mismatch (-got +want):\n%s", i, diff)
			}
		}
	})

	t.Run("shorter partial leaves no remnants", func(t *testing.T) {
		texts := []string{
			"a much longer hypothesis",
			"short",
			"x",
			"",
			"medium length",
		}
		term := &testutil.Terminal{}
		p := New(term, 50)

		prev := ""
		for _, text := range texts {
			if err := p.Present(model.Partial{Text: text}); err != nil {
				t.Fatalf("Present() error = %v", err)
			}
			want := "[Speaking... " + text + "]"
			if text == "" {
				want = "[Speaking... " + prev + "]"
			} else {
				prev = text
			}
			if got := term.Current(); got != want {
				t.Errorf("current line = %q, want %q", got, want)
			}
			if got := term.CurrentWidth(); got != 50 {
				t.Errorf("current line width = %d, want 50", got)
			}
		}
	})

	t.Run("final overwrites longer partial", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 60)

		_ = p.Present(model.Partial{Text: strings.Repeat("long ", 8)})
		_ = p.Present(model.Final{Text: "ok"})

		if diff := cmp.Diff(term.Lines(), []string{"TRANSCRIPTION: ok"}); diff != "" {
			t.Errorf("lines mismatch (-got +want):\n%s", diff)
		}
		if got := term.Current(); got != "[Listening... Speak now]" {
			t.Errorf("current line = %q, want listening prompt", got)
		}
	})

	t.Run("empty final only resets prompt", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 40)

		_ = p.Present(model.Partial{Text: "noise"})
		if err := p.Present(model.Final{Text: ""}); err != nil {
			t.Fatalf("Present() error = %v", err)
		}

		if got := term.Lines(); len(got) != 0 {
			t.Errorf("lines = %q, want none", got)
		}
		if got := term.Current(); got != "[Listening... Speak now]" {
			t.Errorf("current line = %q, want listening prompt", got)
		}
		if p.State() != Listening {
			t.Errorf("state = %v, want %v", p.State(), Listening)
		}
	})

	t.Run("one line per final", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 40)

		for _, text := range []string{"one", "two", "three"} {
			_ = p.Present(model.Partial{Text: text + " in progress"})
			_ = p.Present(model.Final{Text: text})
		}

		want := []string{"TRANSCRIPTION: one", "TRANSCRIPTION: two", "TRANSCRIPTION: three"}
		if diff := cmp.Diff(term.Lines(), want); diff != "" {
			t.Errorf("lines mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("long partial keeps newest words within width", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 40)

		text := strings.Repeat("word ", 20) + "latest"
		if err := p.Present(model.Partial{Text: text}); err != nil {
			t.Fatalf("Present() error = %v", err)
		}

		raw := strings.Trim(term.Raw(), "\r")
		if got := runewidth.StringWidth(raw); got != 40 {
			t.Errorf("rendered width = %d, want 40", got)
		}
		if !strings.HasSuffix(raw, "latest]") {
			t.Errorf("rendered line = %q, want to end with newest words", raw)
		}
		if !strings.HasPrefix(raw, "[Speaking... "+ellipsis) {
			t.Errorf("rendered line = %q, want truncation marker", raw)
		}
	})

	t.Run("wide characters are measured in cells", func(t *testing.T) {
		term := &testutil.Terminal{}
		p := New(term, 40)

		text := strings.Repeat("日本語", 10)
		if err := p.Present(model.Partial{Text: text}); err != nil {
			t.Fatalf("Present() error = %v", err)
		}

		raw := strings.Trim(term.Raw(), "\r")
		if got := runewidth.StringWidth(raw); got != 40 {
			t.Errorf("rendered width = %d, want 40", got)
		}
	})

	t.Run("write error", func(t *testing.T) {
		w := &testutil.IOWriterMock{
			WriteFunc: func(p []byte) (int, error) {
				return 0, errors.New("broken pipe")
			},
		}
		p := New(w, 40)

		if err := p.Present(model.Final{Text: "lost"}); err == nil {
			t.Error("Present() error = nil, want error")
		}
	})

	t.Run("unknown outcome", func(t *testing.T) {
		p := New(&testutil.Terminal{}, 40)
		if err := p.Present(nil); err == nil {
			t.Error("Present(nil) error = nil, want error")
		}
	})
}
