package snowflake

import (
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	id := GenID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenID_Order(t *testing.T) {
	prev := GenID()

	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestGenStringID(t *testing.T) {
	id := GenStringID()
	if len(id) < 12 {
		t.Fatalf("expected at least 12 chars, got %q", id)
	}
}

func TestGenStringID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 500
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, goroutines*perRoutine)
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenStringID()

				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(ids) != goroutines*perRoutine {
		t.Fatalf("duplicate id found: want %d unique, got %d", goroutines*perRoutine, len(ids))
	}
}
