package service

import (
	"testing"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// fixture wires the full service stack over one in-memory store.
type fixture struct {
	store   *store.Store
	drivers *DriverService
	riders  *RiderService
	rides   *RideService
	sim     *SimService
}

func newFixture() *fixture {
	st := store.New()
	return &fixture{
		store:   st,
		drivers: NewDriverService(st),
		riders:  NewRiderService(st),
		rides:   NewRideService(st, NewMatcher()),
		sim:     NewSimService(st),
	}
}

// seedDriver inserts a driver directly, bypassing the service layer. A
// zero Status defaults to available and a zero LastBusyTick to never busy;
// completions stamp the post-increment tick, so tick zero is never a real
// last-busy value.
func (f *fixture) seedDriver(t *testing.T, d domain.Driver) {
	t.Helper()
	if d.Status == "" {
		d.Status = domain.DriverStatusAvailable
	}
	if d.LastBusyTick == 0 {
		d.LastBusyTick = domain.NeverBusy
	}
	_ = f.store.Update(func(w *store.World) error {
		driver := d
		w.AddDriver(&driver)
		return nil
	})
}

func (f *fixture) seedRider(t *testing.T, r domain.Rider) {
	t.Helper()
	_ = f.store.Update(func(w *store.World) error {
		rider := r
		w.AddRider(&rider)
		return nil
	})
}

func (f *fixture) seedRide(t *testing.T, r domain.Ride) {
	t.Helper()
	_ = f.store.Update(func(w *store.World) error {
		ride := r
		w.AddRide(&ride)
		return nil
	})
}

func (f *fixture) setTick(t *testing.T, tick int) {
	t.Helper()
	_ = f.store.Update(func(w *store.World) error {
		w.Tick = tick
		return nil
	})
}

// getDriver returns a copy of the stored driver, failing the test when the
// ID does not resolve.
func (f *fixture) getDriver(t *testing.T, id string) domain.Driver {
	t.Helper()
	var out domain.Driver
	found := false
	f.store.View(func(w *store.World) {
		if d, ok := w.Drivers[id]; ok {
			out = *d
			found = true
		}
	})
	if !found {
		t.Fatalf("driver %s not in store", id)
	}
	return out
}

// getRide returns a copy of the stored ride, failing the test when the ID
// does not resolve.
func (f *fixture) getRide(t *testing.T, id string) domain.Ride {
	t.Helper()
	var out domain.Ride
	found := false
	f.store.View(func(w *store.World) {
		if r, ok := w.Rides[id]; ok {
			out = *r.Clone()
			found = true
		}
	})
	if !found {
		t.Fatalf("ride %s not in store", id)
	}
	return out
}

// selectFor runs the matcher against the current world for a ride shape
// that does not need to be stored.
func (f *fixture) selectFor(t *testing.T, ride *domain.Ride) (string, bool) {
	t.Helper()
	matcher := NewMatcher()
	var (
		id string
		ok bool
	)
	f.store.View(func(w *store.World) {
		var d *domain.Driver
		d, ok = matcher.SelectDriver(w, ride)
		if ok {
			id = d.ID
		}
	})
	return id, ok
}
