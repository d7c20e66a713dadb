package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var _ Opener = (*WAVOpener)(nil)

// WAVOpener replays a WAV file through the same handler protocol as a live device.
type WAVOpener struct {
	Path string
}

func (o *WAVOpener) Open(cfg Config, handler Handler) (Stream, error) {
	if handler == nil {
		return nil, &StreamInitError{Err: errors.New("handler must be specified")}
	}
	if cfg.BlockSize <= 0 {
		return nil, &StreamInitError{Err: fmt.Errorf("invalid block size: %d", cfg.BlockSize)}
	}

	file, err := os.Open(o.Path)
	if err != nil {
		return nil, &StreamInitError{Err: fmt.Errorf("failed to open wav file: %w", err)}
	}

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		file.Close()
		return nil, &StreamInitError{Err: fmt.Errorf("%s is not a valid wav file", o.Path)}
	}
	if err := checkFormat(cfg, int(decoder.SampleRate), int(decoder.NumChans), int(decoder.BitDepth)); err != nil {
		file.Close()
		return nil, &StreamInitError{Err: err}
	}

	return newWAVStream(file, decoder, cfg, handler), nil
}

func checkFormat(cfg Config, sampleRate, channels, bitDepth int) error {
	if sampleRate != cfg.SampleRate {
		return fmt.Errorf("sample rate must be %d Hz, got %d Hz", cfg.SampleRate, sampleRate)
	}
	if channels != cfg.Channels {
		return fmt.Errorf("channel count must be %d, got %d", cfg.Channels, channels)
	}
	if bitDepth != 16 {
		return fmt.Errorf("bit depth must be 16, got %d", bitDepth)
	}
	return nil
}

var (
	_ Stream   = (*wavStream)(nil)
	_ Finisher = (*wavStream)(nil)
)

type wavStream struct {
	file    io.Closer
	decoder *wav.Decoder
	cfg     Config
	handler Handler

	stopCh   chan struct{}
	finished chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	closed  bool
}

func newWAVStream(file io.Closer, decoder *wav.Decoder, cfg Config, handler Handler) *wavStream {
	return &wavStream{
		file:     file,
		decoder:  decoder,
		cfg:      cfg,
		handler:  handler,
		stopCh:   make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (s *wavStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("stream is closed")
	}
	if s.started {
		return errors.New("stream is already started")
	}
	s.started = true

	go s.run()
	return nil
}

func (s *wavStream) run() {
	defer close(s.finished)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.cfg.Channels,
			SampleRate:  s.cfg.SampleRate,
		},
		Data:           make([]int, s.cfg.BlockSize),
		SourceBitDepth: 16,
	}
	samples := make([]int16, s.cfg.BlockSize)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		n, err := s.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			slog.Error(fmt.Sprintf("failed to read wav data: %v", err))
			return
		}
		if n == 0 {
			slog.Debug("WAVStream: end of file")
			return
		}

		for i := 0; i < n; i++ {
			samples[i] = int16(buf.Data[i])
		}
		s.handler(Chunk{Samples: samples[:n]})
	}
}

func (s *wavStream) Finished() <-chan struct{} {
	return s.finished
}

func (s *wavStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopLocked()
}

func (s *wavStream) stopLocked() error {
	if !s.started || s.stopped {
		return nil
	}
	s.stopped = true
	close(s.stopCh)
	<-s.finished
	return nil
}

func (s *wavStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if err := s.stopLocked(); err != nil {
		return err
	}
	s.closed = true
	return s.file.Close()
}
