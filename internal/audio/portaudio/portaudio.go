package portaudio

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"

	"github.com/hekt/live-dictation/internal/audio"
)

const remedy = "install PortAudio (e.g. `brew install portaudio` or `apt install portaudio19-dev`) and rebuild"

var _ audio.Opener = (*Opener)(nil)

// Opener opens the default input device.
type Opener struct{}

func NewOpener() *Opener {
	return &Opener{}
}

func (o *Opener) Open(cfg audio.Config, handler audio.Handler) (audio.Stream, error) {
	if handler == nil {
		return nil, &audio.StreamInitError{Err: errors.New("handler must be specified")}
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, &audio.DependencyMissingError{
			Backend: "PortAudio",
			Remedy:  remedy,
			Err:     err,
		}
	}

	callback := func(in []int16, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
		handler(audio.Chunk{
			Samples: in,
			Status:  convertFlags(flags),
		})
	}

	stream, err := portaudio.OpenDefaultStream(
		cfg.Channels,
		0,
		float64(cfg.SampleRate),
		cfg.BlockSize,
		callback,
	)
	if err != nil {
		if err := portaudio.Terminate(); err != nil {
			slog.Error(fmt.Sprintf("failed to terminate portaudio: %v", err))
		}
		return nil, &audio.StreamInitError{Err: fmt.Errorf("failed to open default input stream: %w", err)}
	}

	return &Stream{stream: stream}, nil
}

func convertFlags(flags portaudio.StreamCallbackFlags) audio.StatusFlags {
	var status audio.StatusFlags
	if flags&portaudio.InputUnderflow != 0 {
		status |= audio.InputUnderflow
	}
	if flags&portaudio.InputOverflow != 0 {
		status |= audio.InputOverflow
	}
	return status
}

var _ audio.Stream = (*Stream)(nil)

// Stream owns the PortAudio library session; closing it terminates PortAudio.
type Stream struct {
	stream *portaudio.Stream
}

func (s *Stream) Start() error {
	return s.stream.Start()
}

func (s *Stream) Stop() error {
	return s.stream.Stop()
}

func (s *Stream) Close() error {
	closeErr := s.stream.Close()
	if err := portaudio.Terminate(); err != nil {
		return errors.Join(closeErr, fmt.Errorf("failed to terminate portaudio: %w", err))
	}
	return closeErr
}
