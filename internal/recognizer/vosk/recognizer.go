package vosk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	myvosk "github.com/hekt/live-dictation/internal/interfaces/vosk"
	"github.com/hekt/live-dictation/internal/punctuator"
	"github.com/hekt/live-dictation/internal/recognizer/model"
)

// Recognizer turns raw decoder calls into Outcomes.
// It is not safe for concurrent use; callers serialize Process calls.
type Recognizer struct {
	recognizer myvosk.VoskRecognizer
	punctuator punctuator.PunctuatorInterface
}

type Option func(*Recognizer)

// WithPunctuator post-processes final text, e.g. for Japanese models
// that emit space separated tokens.
func WithPunctuator(p punctuator.PunctuatorInterface) Option {
	return func(r *Recognizer) {
		r.punctuator = p
	}
}

func NewRecognizer(recognizer myvosk.VoskRecognizer, opts ...Option) (*Recognizer, error) {
	if recognizer == nil {
		return nil, errors.New("recognizer must be specified")
	}

	r := &Recognizer{recognizer: recognizer}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Process feeds one chunk of 16-bit little-endian mono audio to the decoder.
func (r *Recognizer) Process(chunk []byte) (model.Outcome, error) {
	switch n := r.recognizer.AcceptWaveform(chunk); {
	case n < 0:
		return nil, fmt.Errorf("decoder rejected waveform: code %d", n)
	case n == 0:
		t, err := parsePartialResult(r.recognizer.PartialResult())
		if err != nil {
			return nil, fmt.Errorf("failed to parse partial result: %w", err)
		}
		return model.Partial{Text: t}, nil
	default:
		t, err := parseResult(r.recognizer.Result())
		if err != nil {
			return nil, fmt.Errorf("failed to parse result: %w", err)
		}
		return model.Final{Text: r.punctuate(t)}, nil
	}
}

// Flush commits whatever the decoder is still holding, for use at end of input.
func (r *Recognizer) Flush() (model.Final, error) {
	t, err := parseResult(r.recognizer.FinalResult())
	if err != nil {
		return model.Final{}, fmt.Errorf("failed to parse final result: %w", err)
	}
	return model.Final{Text: r.punctuate(t)}, nil
}

func (r *Recognizer) punctuate(text string) string {
	if r.punctuator == nil || text == "" {
		return text
	}

	punctuated, err := r.punctuator.Punctuate(text)
	if err != nil {
		slog.Warn(fmt.Sprintf("failed to punctuate result, using raw text: %v", err))
		return text
	}
	return punctuated
}

// Close releases the decoder if it owns native resources.
func (r *Recognizer) Close() error {
	if c, ok := r.recognizer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func parsePartialResult(data string) (string, error) {
	var v struct {
		Partial string `json:"partial"`
	}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return "", err
	}
	return strings.TrimSpace(v.Partial), nil
}

func parseResult(data string) (string, error) {
	var v struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return "", err
	}
	return strings.TrimSpace(v.Text), nil
}
