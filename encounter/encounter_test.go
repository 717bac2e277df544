package encounter_test

import (
	"sync"
	"testing"

	"github.com/louisbranch/partystate/encounter"
)

func TestNewStartsZeroed(t *testing.T) {
	flags, handle := encounter.New()

	if got := flags.TurnCount(); got != 0 {
		t.Fatalf("expected turn count 0, got %d", got)
	}
	handle.Do(func(rec *encounter.Record) {
		if rec.SuppressA || rec.SuppressB || rec.SuppressC {
			t.Fatalf("expected all suppress toggles off, got %+v", *rec)
		}
	})
}

func TestHandleWritesAreVisibleToReaders(t *testing.T) {
	flags, handle := encounter.New()

	rec := handle.Acquire()
	rec.TurnCount = 5
	rec.SuppressB = true
	handle.Release()

	if got := flags.TurnCount(); got != 5 {
		t.Fatalf("expected turn count 5, got %d", got)
	}
	handle.Do(func(rec *encounter.Record) {
		if !rec.SuppressB {
			t.Fatal("expected SuppressB set")
		}
		if rec.SuppressA || rec.SuppressC {
			t.Fatalf("expected other toggles off, got %+v", *rec)
		}
	})
}

func TestDoAndAcquireShareTheRecord(t *testing.T) {
	_, handle := encounter.New()

	handle.Do(func(rec *encounter.Record) { rec.TurnCount = 3 })

	rec := handle.Acquire()
	got := rec.TurnCount
	handle.Release()
	if got != 3 {
		t.Fatalf("expected Acquire to observe Do's write, got %d", got)
	}
}

func TestConcurrentTurnIncrements(t *testing.T) {
	flags, handle := encounter.New()

	const goroutines = 8
	const perGoroutine = 250

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				handle.Do(func(rec *encounter.Record) { rec.TurnCount++ })
			}
		}()
	}
	wg.Wait()

	if got := flags.TurnCount(); got != goroutines*perGoroutine {
		t.Fatalf("expected turn count %d, got %d", goroutines*perGoroutine, got)
	}
}
