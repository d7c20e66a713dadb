package dictation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hekt/live-dictation/internal/audio"
	"github.com/hekt/live-dictation/internal/recognizer/model"
)

// Engine is a loaded recognizer session.
//
//go:generate moq -rm -out engine_mock.go . Engine
type Engine interface {
	Process(chunk []byte) (model.Outcome, error)
	Flush() (model.Final, error)
	Close() error
}

//go:generate moq -rm -out presenter_mock.go . Presenter
type Presenter interface {
	Listening() error
	Present(outcome model.Outcome) error
}

// LoadEngineFunc loads the model and builds the recognizer.
type LoadEngineFunc func() (Engine, error)

var errSourceFinished = errors.New("audio source finished")

type Dictation struct {
	loadEngine   LoadEngineFunc
	opener       audio.Opener
	presenter    Presenter
	audioConfig  audio.Config
	stallTimeout time.Duration
}

func New(
	loadEngine LoadEngineFunc,
	opener audio.Opener,
	presenter Presenter,
	opts ...Option,
) (*Dictation, error) {
	if loadEngine == nil {
		return nil, errors.New("engine loader must be specified")
	}
	if opener == nil {
		return nil, errors.New("audio opener must be specified")
	}
	if presenter == nil {
		return nil, errors.New("presenter must be specified")
	}

	d := &Dictation{
		loadEngine:  loadEngine,
		opener:      opener,
		presenter:   presenter,
		audioConfig: audio.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return d, nil
}

// Start loads the engine, opens the stream and blocks until interrupted,
// the source runs out, or a fatal error occurs. Interrupts return nil.
// Once opened, the stream is stopped and closed exactly once on every path.
func (d *Dictation) Start(ctx context.Context) error {
	slog.Debug("dictation started")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := d.loadEngine()
	if err != nil {
		return fmt.Errorf("failed to load recognizer: %w", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close recognizer: %v", err))
		}
	}()

	// Loading a large model takes seconds; do not open the device if the
	// user gave up meanwhile.
	if ctx.Err() != nil {
		slog.Debug("dictation interrupted before audio was opened")
		return nil
	}

	activityCh := make(chan struct{}, 1)
	h := &chunkHandler{
		engine:     engine,
		presenter:  d.presenter,
		activityCh: activityCh,
	}

	stream, err := d.opener.Open(d.audioConfig, h.Handle)
	if err != nil {
		return asStreamInitError(err)
	}
	started := false
	defer func() {
		if started {
			if err := stream.Stop(); err != nil {
				slog.Error(fmt.Sprintf("failed to stop audio stream: %v", err))
			}
		}
		if err := stream.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close audio stream: %v", err))
		}
		slog.Debug("audio stream released")
	}()

	// The prompt goes first so that no partial can be overwritten by it.
	if err := h.Listening(); err != nil {
		return err
	}

	if err := stream.Start(); err != nil {
		return &audio.StreamInitError{Err: fmt.Errorf("failed to start stream: %w", err)}
	}
	started = true

	var finished <-chan struct{}
	if f, ok := stream.(audio.Finisher); ok {
		finished = f.Finished()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if d.stallTimeout > 0 {
		monitor := NewActivityMonitor(activityCh, d.stallTimeout)
		eg.Go(func() error {
			return monitor.Start(egCtx)
		})
	}
	eg.Go(func() error {
		select {
		case <-egCtx.Done():
			return egCtx.Err()
		case <-finished:
			return errSourceFinished
		}
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errSourceFinished):
		slog.Debug("audio source finished")
		h.Flush()
		return nil
	case errors.Is(err, context.Canceled):
		slog.Debug("dictation interrupted")
		return nil
	default:
		return err
	}
}

func asStreamInitError(err error) error {
	var initErr *audio.StreamInitError
	var depErr *audio.DependencyMissingError
	if errors.As(err, &initErr) || errors.As(err, &depErr) {
		return err
	}
	return &audio.StreamInitError{Err: err}
}

// chunkHandler is the audio callback. The engine is only touched under mu,
// so it stays correct even if a driver delivers blocks concurrently.
type chunkHandler struct {
	engine     Engine
	presenter  Presenter
	activityCh chan<- struct{}

	mu  sync.Mutex
	buf []byte
}

func (h *chunkHandler) Handle(chunk audio.Chunk) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			slog.Error(fmt.Sprintf("recovered from panic while processing audio chunk: %v", r))
		}
	}()

	// Never block the driver thread.
	select {
	case h.activityCh <- struct{}{}:
	default:
	}

	if chunk.Status != 0 {
		slog.Warn(audio.DriverStatusWarning{Flags: chunk.Status}.Error())
	}

	h.buf = audio.SamplesToBytes(h.buf, chunk.Samples)
	outcome, err := h.engine.Process(h.buf)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to process audio chunk: %v", err))
		return
	}
	if err := h.presenter.Present(outcome); err != nil {
		slog.Error(fmt.Sprintf("failed to present result: %v", err))
	}
}

// Listening shows the idle prompt under the same lock as chunk presentation.
func (h *chunkHandler) Listening() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.presenter.Listening()
}

// Flush presents whatever the decoder still holds.
func (h *chunkHandler) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()

	final, err := h.engine.Flush()
	if err != nil {
		slog.Error(fmt.Sprintf("failed to flush recognizer: %v", err))
		return
	}
	if final.Text == "" {
		return
	}
	if err := h.presenter.Present(final); err != nil {
		slog.Error(fmt.Sprintf("failed to present result: %v", err))
	}
}
