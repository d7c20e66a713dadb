package listen

import (
	"errors"
	"time"

	"github.com/hekt/live-dictation/internal/presenter"
)

type options struct {
	width        int
	stallTimeout time.Duration
	punctuate    bool
	mecabDicDir  string
	voskLogLevel int
}

func defaultOptions() *options {
	return &options{
		width:        presenter.DefaultWidth,
		voskLogLevel: -1,
	}
}

type Option func(*options) error

func WithWidth(width int) Option {
	return func(o *options) error {
		if width < presenter.MinWidth {
			return errors.New("width must be greater than or equal to 32")
		}
		o.width = width
		return nil
	}
}

func WithStallTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout < 0 {
			return errors.New("stall timeout must not be negative")
		}
		o.stallTimeout = timeout
		return nil
	}
}

// WithPunctuation enables MeCab punctuation of final results.
// dicdir may be empty to use the system dictionary.
func WithPunctuation(dicdir string) Option {
	return func(o *options) error {
		o.punctuate = true
		o.mecabDicDir = dicdir
		return nil
	}
}

// WithDecoderLogs keeps Kaldi's own log output.
func WithDecoderLogs() Option {
	return func(o *options) error {
		o.voskLogLevel = 0
		return nil
	}
}
