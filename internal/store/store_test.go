package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
)

func TestStore_UpdateAppliesMutations(t *testing.T) {
	st := New()

	err := st.Update(func(w *World) error {
		w.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusAvailable})
		w.Tick = 5
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := st.Snapshot()
	if snap.Tick != 5 {
		t.Errorf("expected tick 5, got %d", snap.Tick)
	}
	if len(snap.Drivers) != 1 || snap.Drivers[0].ID != "driver-1" {
		t.Errorf("expected driver-1 in snapshot, got %+v", snap.Drivers)
	}
}

func TestStore_UpdatePassesErrorThrough(t *testing.T) {
	st := New()
	sentinel := errors.New("boom")

	err := st.Update(func(w *World) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

func TestStore_SnapshotIsDeepCopy(t *testing.T) {
	st := New()
	_ = st.Update(func(w *World) error {
		w.AddDriver(&domain.Driver{ID: "driver-1", Position: domain.Position{X: 1, Y: 1}})
		w.AddRide(&domain.Ride{ID: "ride-1", RejectedDriverIDs: []string{"driver-0"}})
		return nil
	})

	snap := st.Snapshot()

	// Mutating the snapshot must not leak into the store.
	snap.Drivers[0].Position = domain.Position{X: 50, Y: 50}
	snap.Rides[0].RejectedDriverIDs = append(snap.Rides[0].RejectedDriverIDs, "driver-9")

	fresh := st.Snapshot()
	if fresh.Drivers[0].Position != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("snapshot mutation leaked into store: %+v", fresh.Drivers[0].Position)
	}
	if len(fresh.Rides[0].RejectedDriverIDs) != 1 {
		t.Errorf("snapshot slice mutation leaked into store: %v", fresh.Rides[0].RejectedDriverIDs)
	}
}

func TestStore_SnapshotOrderedByCreation(t *testing.T) {
	st := New()
	_ = st.Update(func(w *World) error {
		for i := 0; i < 5; i++ {
			w.AddDriver(&domain.Driver{ID: fmt.Sprintf("driver-%d", i)})
		}
		return nil
	})

	snap := st.Snapshot()
	if len(snap.Drivers) != 5 {
		t.Fatalf("expected 5 drivers, got %d", len(snap.Drivers))
	}
	for i, d := range snap.Drivers {
		want := fmt.Sprintf("driver-%d", i)
		if d.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, d.ID)
		}
	}
}

func TestStore_Reset(t *testing.T) {
	st := New()
	_ = st.Update(func(w *World) error {
		w.Tick = 10
		w.AddDriver(&domain.Driver{ID: "driver-1"})
		w.AddRider(&domain.Rider{ID: "rider-1"})
		w.AddRide(&domain.Ride{ID: "ride-1"})
		return nil
	})

	st.Reset()

	snap := st.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("expected tick 0 after reset, got %d", snap.Tick)
	}
	if len(snap.Drivers) != 0 || len(snap.Riders) != 0 || len(snap.Rides) != 0 {
		t.Errorf("expected empty world after reset, got %d/%d/%d entities",
			len(snap.Drivers), len(snap.Riders), len(snap.Rides))
	}
}

func TestStore_ResetRestartsSequence(t *testing.T) {
	st := New()
	_ = st.Update(func(w *World) error {
		w.AddDriver(&domain.Driver{ID: "driver-old"})
		return nil
	})

	st.Reset()

	_ = st.Update(func(w *World) error {
		w.AddDriver(&domain.Driver{ID: "driver-new"})
		return nil
	})

	snap := st.Snapshot()
	if snap.Drivers[0].Seq != 1 {
		t.Errorf("expected sequence restart at 1, got %d", snap.Drivers[0].Seq)
	}
}

func TestStore_ConcurrentUpdatesSerialize(t *testing.T) {
	st := New()
	numGoroutines := 50
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_ = st.Update(func(w *World) error {
				w.Tick++
				return nil
			})
		}()
	}
	wg.Wait()

	snap := st.Snapshot()
	if snap.Tick != numGoroutines {
		t.Errorf("expected tick %d, got %d", numGoroutines, snap.Tick)
	}
}
