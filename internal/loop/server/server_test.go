package server

import (
	"errors"
	"testing"
	"time"
)

func TestRegisterRespectsLimit(t *testing.T) {
	s := NewServer(2)

	a, err := s.RegisterClient("a")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := s.RegisterClient("b"); err != nil {
		t.Fatalf("second register: %v", err)
	}
	if _, err := s.RegisterClient("c"); !errors.Is(err, ErrServerFull) {
		t.Fatalf("third register err = %v, want ErrServerFull", err)
	}
	if got := s.Players(); got != 2 {
		t.Fatalf("Players = %d, want 2", got)
	}

	s.UnregisterClient(a.ID)
	if _, ok := <-a.EventsCh; ok {
		t.Fatal("events channel still open after unregister")
	}
	if _, err := s.RegisterClient("c"); err != nil {
		t.Fatalf("register after a slot freed: %v", err)
	}
}

func TestUnlimitedServer(t *testing.T) {
	s := NewServer(0)
	for i := 0; i < 100; i++ {
		if _, err := s.RegisterClient(""); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	if got := s.Players(); got != 100 {
		t.Fatalf("Players = %d, want 100", got)
	}
}

func TestUnregisterUnknownIsNoop(t *testing.T) {
	s := NewServer(0)
	h, _ := s.RegisterClient("a")
	s.UnregisterClient(h.ID + 1)
	s.UnregisterClient(h.ID)
	s.UnregisterClient(h.ID)
	if got := s.Players(); got != 0 {
		t.Fatalf("Players = %d, want 0", got)
	}
}

func TestTopScores(t *testing.T) {
	s := NewServer(0)
	alice, _ := s.RegisterClient("alice")
	bob, _ := s.RegisterClient("bob")
	carol, _ := s.RegisterClient("carol")
	s.RegisterClient("idle")

	s.ReportScore(alice.ID, 500)
	s.ReportScore(alice.ID, 300) // Lower scores do not replace the best
	s.ReportScore(bob.ID, 900)
	s.ReportScore(carol.ID, 500)

	top := s.TopScores(5)
	want := []string{"bob", "alice", "carol"}
	if len(top) != len(want) {
		t.Fatalf("TopScores = %+v, want %v", top, want)
	}
	for i, name := range want {
		if top[i].Username != name {
			t.Fatalf("TopScores[%d] = %s, want %s", i, top[i].Username, name)
		}
	}
	if top[1].Score != 500 {
		t.Fatalf("alice best = %d, want 500", top[1].Score)
	}

	if got := s.TopScores(1); len(got) != 1 || got[0].Username != "bob" {
		t.Fatalf("TopScores(1) = %+v", got)
	}

	s.UnregisterClient(bob.ID)
	if got := s.TopScores(5); len(got) != 2 || got[0].Username != "alice" {
		t.Fatalf("TopScores after bob left = %+v", got)
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := NewServer(0)
	h, _ := s.RegisterClient("a")

	done := make(chan struct{})
	go func() {
		s.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case ev := <-h.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("event = %v, want shutdown", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("no shutdown event")
	}

	s.UnregisterClient(h.ID)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after the last client left")
	}
}

func TestShutdownTimesOut(t *testing.T) {
	s := NewServer(0)
	s.RegisterClient("stuck")

	start := time.Now()
	s.Shutdown(50 * time.Millisecond)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Shutdown took %v with a 50ms timeout", elapsed)
	}
}
