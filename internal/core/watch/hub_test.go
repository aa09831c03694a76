package watch

import (
	"sync"
	"testing"
	"time"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	var (
		mu       sync.Mutex
		received []Event
		wg       sync.WaitGroup
	)

	wg.Add(2)
	for i := 0; i < 2; i++ {
		cancel := hub.Subscribe(func(e Event) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
			wg.Done()
		})
		defer cancel()
	}

	hub.Publish(Event{TenantID: "tenant-1", Kind: KindTeam, ProjectID: "project-1"})

	waitDone(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(received))
	}
	for _, e := range received {
		if e.TenantID != "tenant-1" || e.Kind != KindTeam {
			t.Fatalf("unexpected event: %+v", e)
		}
	}
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	var (
		mu    sync.Mutex
		count int
	)
	cancel := hub.Subscribe(func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	cancel()
	cancel()
	cancel()

	hub.Publish(Event{TenantID: "tenant-1", Kind: KindEmployee})

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Fatalf("expected no delivery after cancel, got %d", count)
	}
}

func TestHub_SlowSubscriberDropsOldest(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	started := make(chan struct{})
	release := make(chan struct{})

	var (
		mu   sync.Mutex
		seen []Event
	)
	cancel := hub.Subscribe(func(e Event) {
		mu.Lock()
		seen = append(seen, e)
		mu.Unlock()
		if len(seen) == 1 {
			close(started)
			<-release
		}
	})
	defer cancel()

	hub.Publish(Event{TenantID: "tenant-1", Kind: KindTeam, MemberID: "first"})
	<-started

	// 購読者がブロックしている間にバッファを溢れさせる。
	for i := 0; i < subscriberBuffer*3; i++ {
		hub.Publish(Event{TenantID: "tenant-1", Kind: KindTeam, MemberID: "flood"})
	}
	hub.Publish(Event{TenantID: "tenant-1", Kind: KindTeam, MemberID: "last"})
	close(release)

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		last := ""
		if len(seen) > 1 {
			last = seen[len(seen)-1].MemberID
		}
		total := len(seen)
		mu.Unlock()

		if last == "last" {
			if total > subscriberBuffer+2 {
				t.Fatalf("expected drops under backpressure, delivered %d", total)
			}
			return
		}

		select {
		case <-deadline:
			t.Fatalf("latest event never delivered (got %d events)", total)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func waitDone(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
}
