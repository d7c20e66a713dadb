package dictation

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestNewActivityMonitor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		activityCh := make(chan struct{})
		timeout := 1 * time.Second
		want := &ActivityMonitor{
			activityCh: activityCh,
			timeout:    timeout,
		}

		if got := NewActivityMonitor(activityCh, timeout); !reflect.DeepEqual(got, want) {
			t.Errorf("NewActivityMonitor() = %v, want %v", got, want)
		}
	})
}

func TestActivityMonitor_Start(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		m := NewActivityMonitor(make(chan struct{}), time.Microsecond)

		if got := m.Start(context.Background()); !errors.Is(got, ErrAudioStalled) {
			t.Errorf("ActivityMonitor.Start() = %v, want %v", got, ErrAudioStalled)
		}
	})

	t.Run("canceled by others", func(t *testing.T) {
		m := NewActivityMonitor(make(chan struct{}), time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var wg sync.WaitGroup
		wg.Add(1)
		var got error
		go func() {
			defer wg.Done()
			got = m.Start(ctx)
		}()

		cancel()
		wg.Wait()

		if !errors.Is(got, context.Canceled) {
			t.Errorf("ActivityMonitor.Start() = %v, want %v", got, context.Canceled)
		}
	})

	t.Run("extend timeout", func(t *testing.T) {
		activityCh := make(chan struct{})
		m := NewActivityMonitor(activityCh, 100*time.Millisecond)

		done := make(chan error, 1)
		go func() {
			done <- m.Start(context.Background())
		}()

		// keep the monitor alive for 300ms, well past a single timeout
		ticker := time.NewTicker(20 * time.Millisecond)
		deadline := time.After(300 * time.Millisecond)
	loop:
		for {
			select {
			case <-ticker.C:
				select {
				case activityCh <- struct{}{}:
				case err := <-done:
					t.Fatalf("unexpected timeout: %v", err)
				}
			case err := <-done:
				t.Fatalf("unexpected timeout: %v", err)
			case <-deadline:
				break loop
			}
		}
		ticker.Stop()

		// the timeout fires once activity stops
		select {
		case got := <-done:
			if !errors.Is(got, ErrAudioStalled) {
				t.Errorf("ActivityMonitor.Start() = %v, want %v", got, ErrAudioStalled)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("monitor did not time out")
		}
	})
}
