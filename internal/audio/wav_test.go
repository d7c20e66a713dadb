package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"
)

func writeWAV(t *testing.T, sampleRate, channels int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create wav file: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write wav data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close wav encoder: %v", err)
	}
	return path
}

func TestWAVOpener_Open(t *testing.T) {
	cfg := Config{SampleRate: 16000, Channels: 1, BlockSize: 4}
	noop := func(Chunk) {}

	t.Run("missing file", func(t *testing.T) {
		o := &WAVOpener{Path: filepath.Join(t.TempDir(), "missing.wav")}
		_, err := o.Open(cfg, noop)

		var initErr *StreamInitError
		if !errors.As(err, &initErr) {
			t.Fatalf("Open() error = %v, want StreamInitError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Open() error = %v, want to wrap os.ErrNotExist", err)
		}
	})

	t.Run("not a wav file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "noise.wav")
		if err := os.WriteFile(path, []byte("definitely not riff data"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := (&WAVOpener{Path: path}).Open(cfg, noop)

		var initErr *StreamInitError
		if !errors.As(err, &initErr) {
			t.Errorf("Open() error = %v, want StreamInitError", err)
		}
	})

	t.Run("sample rate mismatch", func(t *testing.T) {
		path := writeWAV(t, 8000, 1, []int{1, 2, 3})
		_, err := (&WAVOpener{Path: path}).Open(cfg, noop)

		var initErr *StreamInitError
		if !errors.As(err, &initErr) {
			t.Errorf("Open() error = %v, want StreamInitError", err)
		}
	})

	t.Run("nil handler", func(t *testing.T) {
		path := writeWAV(t, 16000, 1, []int{1, 2, 3})
		if _, err := (&WAVOpener{Path: path}).Open(cfg, nil); err == nil {
			t.Error("Open() error = nil, want error")
		}
	})
}

func TestWAVStream(t *testing.T) {
	cfg := Config{SampleRate: 16000, Channels: 1, BlockSize: 4}

	t.Run("delivers fixed blocks in order", func(t *testing.T) {
		path := writeWAV(t, 16000, 1, []int{1, 2, 3, 4, 5, 6, 7, 8, -9, -10})

		var mu sync.Mutex
		var got [][]int16
		handler := func(c Chunk) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, append([]int16(nil), c.Samples...))
		}

		stream, err := (&WAVOpener{Path: path}).Open(cfg, handler)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if err := stream.Start(); err != nil {
			t.Fatalf("Start() error = %v", err)
		}

		finisher, ok := stream.(Finisher)
		if !ok {
			t.Fatal("wav stream does not implement Finisher")
		}
		select {
		case <-finisher.Finished():
		case <-time.After(5 * time.Second):
			t.Fatal("stream did not finish")
		}

		if err := stream.Stop(); err != nil {
			t.Errorf("Stop() error = %v", err)
		}
		if err := stream.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}

		want := [][]int16{{1, 2, 3, 4}, {5, 6, 7, 8}, {-9, -10}}
		mu.Lock()
		defer mu.Unlock()
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("delivered chunks mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("close without start", func(t *testing.T) {
		path := writeWAV(t, 16000, 1, []int{1, 2})
		stream, err := (&WAVOpener{Path: path}).Open(cfg, func(Chunk) {})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if err := stream.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
		if err := stream.Start(); err == nil {
			t.Error("Start() after Close() error = nil, want error")
		}
	})
}
