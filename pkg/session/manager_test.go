package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/greenscreenhq/greenscreen/pkg/session"
)

func TestWithLock_SerializesSameTerminal(t *testing.T) {
	m := session.NewManager()
	ctx := context.Background()

	var mu sync.Mutex
	active := 0
	maxActive := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "terminal-a", func(ctx context.Context) error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Errorf("max concurrent flows on one terminal = %d, want 1", maxActive)
	}
}

func TestWithLock_DistinctTerminalsRunConcurrently(t *testing.T) {
	m := session.NewManager()
	ctx := context.Background()

	aHolds := make(chan struct{})
	bDone := make(chan struct{})

	go func() {
		_ = m.WithLock(ctx, "terminal-a", func(ctx context.Context) error {
			close(aHolds)
			<-bDone
			return nil
		})
	}()

	<-aHolds
	done := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "terminal-b", func(ctx context.Context) error {
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flow on a distinct terminal was blocked")
	}
	close(bDone)
}

func TestWithLock_PropagatesError(t *testing.T) {
	m := session.NewManager()
	want := errors.New("boom")

	err := m.WithLock(context.Background(), "t", func(ctx context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestWithLock_CanceledContext(t *testing.T) {
	m := session.NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.WithLock(ctx, "t", func(ctx context.Context) error {
		t.Error("fn must not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
