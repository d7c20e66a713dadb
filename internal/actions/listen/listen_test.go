package listen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hekt/live-dictation/internal/recognizer/model"
)

func Test_printBanner(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want string
	}{
		{
			name: "microphone",
			args: Args{ModelPath: "models/en"},
			want: "--- Real-time Vosk Transcription ---\n" +
				"Model: models/en\n" +
				"Input: default microphone (Ctrl+C to stop)\n" +
				separator + "\n",
		},
		{
			name: "wav file",
			args: Args{ModelPath: "models/en", WAVPath: "speech.wav"},
			want: "--- Real-time Vosk Transcription ---\n" +
				"Model: models/en\n" +
				"Input: speech.wav\n" +
				separator + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			printBanner(buf, tt.args)
			if diff := cmp.Diff(buf.String(), tt.want); diff != "" {
				t.Errorf("printBanner() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("empty model path", func(t *testing.T) {
		if err := Run(context.Background(), Args{}); err == nil {
			t.Error("Run() error = nil, want error")
		}
	})

	t.Run("missing model fails before audio", func(t *testing.T) {
		dir := t.TempDir()
		args := Args{
			ModelPath: filepath.Join(dir, "missing-model"),
			// a file that does not exist either; it must never be opened
			WAVPath: filepath.Join(dir, "missing.wav"),
		}

		err := Run(context.Background(), args)

		var loadErr *model.ModelLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("Run() error = %v, want ModelLoadError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Run() error = %v, want to wrap os.ErrNotExist", err)
		}
	})
}
