package voskmodel

import (
	"errors"
	"fmt"
	"os"

	vosk "github.com/alphacep/vosk-api/go"

	myvosk "github.com/hekt/live-dictation/internal/interfaces/vosk"
	"github.com/hekt/live-dictation/internal/recognizer/model"
)

// SetLogLevel controls Kaldi's own logging. -1 silences it.
func SetLogLevel(level int) {
	vosk.SetLogLevel(level)
}

var _ myvosk.VoskRecognizer = (*Session)(nil)

// Session owns a loaded model and one recognizer bound to a sample rate.
type Session struct {
	*vosk.VoskRecognizer
	model *vosk.VoskModel
}

// Load reads the model directory at path and builds a recognizer for sampleRate.
// Every failure is reported as *model.ModelLoadError.
func Load(path string, sampleRate float64) (*Session, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &model.ModelLoadError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &model.ModelLoadError{Path: path, Err: errors.New("model path is not a directory")}
	}

	m, err := vosk.NewModel(path)
	if err != nil {
		return nil, &model.ModelLoadError{Path: path, Err: err}
	}

	rec, err := vosk.NewRecognizer(m, sampleRate)
	if err != nil {
		return nil, &model.ModelLoadError{
			Path: path,
			Err:  fmt.Errorf("failed to create recognizer: %w", err),
		}
	}

	return &Session{VoskRecognizer: rec, model: m}, nil
}

// Close drops the native handles. The binding frees them from finalizers,
// so the session must not be used afterwards.
func (s *Session) Close() error {
	s.VoskRecognizer = nil
	s.model = nil
	return nil
}
