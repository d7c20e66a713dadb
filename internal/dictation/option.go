package dictation

import (
	"errors"
	"time"

	"github.com/hekt/live-dictation/internal/audio"
)

type Option func(*Dictation) error

func WithAudioConfig(cfg audio.Config) Option {
	return func(d *Dictation) error {
		if cfg.SampleRate <= 0 {
			return errors.New("sample rate must be positive")
		}
		if cfg.Channels != 1 {
			return errors.New("only mono input is supported")
		}
		if cfg.BlockSize <= 0 {
			return errors.New("block size must be positive")
		}
		d.audioConfig = cfg
		return nil
	}
}

// WithStallTimeout fails the session when no block arrives for timeout.
// Zero disables the check.
func WithStallTimeout(timeout time.Duration) Option {
	return func(d *Dictation) error {
		if timeout < 0 {
			return errors.New("stall timeout must not be negative")
		}
		d.stallTimeout = timeout
		return nil
	}
}
