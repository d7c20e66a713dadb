package dictation

import (
	"context"
	"errors"
	"time"
)

// ErrAudioStalled is returned when the driver stops delivering blocks.
var ErrAudioStalled = errors.New("no audio received from the input device")

// ActivityMonitor fails when activityCh stays silent for longer than timeout.
type ActivityMonitor struct {
	activityCh <-chan struct{}
	timeout    time.Duration
}

func NewActivityMonitor(activityCh <-chan struct{}, timeout time.Duration) *ActivityMonitor {
	return &ActivityMonitor{
		activityCh: activityCh,
		timeout:    timeout,
	}
}

func (m *ActivityMonitor) Start(ctx context.Context) error {
	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.activityCh:
			// Go 1.23 timers drop stale ticks on Reset.
			timer.Reset(m.timeout)
		case <-timer.C:
			return ErrAudioStalled
		}
	}
}
