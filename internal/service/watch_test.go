package service_test

import (
	"testing"
	"time"

	"todoboard/internal/board"
	"todoboard/internal/service"
)

func TestWatch_KeepsNewest(t *testing.T) {
	b := board.New()
	updates, stop := service.Watch(b)
	defer stop()

	b.AddTask("one", "Work", "")
	b.AddTask("two", "Work", "")
	b.AddTask("three", "Work", "")

	snap := <-updates
	if snap.Version != 3 {
		t.Errorf("expected version 3, got %d", snap.Version)
	}
	if len(snap.Tasks) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(snap.Tasks))
	}

	select {
	case s := <-updates:
		t.Errorf("expected no further snapshot, got version %d", s.Version)
	default:
	}
}

func TestWatch_Stop(t *testing.T) {
	b := board.New()
	updates, stop := service.Watch(b)
	stop()

	b.AddTask("one", "Work", "")

	s, ok := <-updates
	if ok {
		t.Errorf("expected closed channel after stop, got version %d", s.Version)
	}

	// A second stop is harmless.
	stop()
}

func TestWatch_StopReleasesBlockedReader(t *testing.T) {
	b := board.New()
	updates, stop := service.Watch(b)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range updates {
		}
	}()

	b.AddTask("one", "Work", "")
	stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reader still blocked after stop")
	}
}
