package store

import (
	"sort"
	"sync"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
)

// World is the mutable simulation state: the tick counter plus every
// driver, rider, and ride keyed by ID. It must only be touched inside a
// Store transaction.
type World struct {
	Tick    int
	Drivers map[string]*domain.Driver
	Riders  map[string]*domain.Rider
	Rides   map[string]*domain.Ride

	seq uint64
}

func newWorld() World {
	return World{
		Drivers: make(map[string]*domain.Driver),
		Riders:  make(map[string]*domain.Rider),
		Rides:   make(map[string]*domain.Ride),
	}
}

// AddDriver inserts a driver and stamps its creation sequence.
func (w *World) AddDriver(d *domain.Driver) {
	w.seq++
	d.Seq = w.seq
	w.Drivers[d.ID] = d
}

// AddRider inserts a rider and stamps its creation sequence.
func (w *World) AddRider(r *domain.Rider) {
	w.seq++
	r.Seq = w.seq
	w.Riders[r.ID] = r
}

// AddRide inserts a ride and stamps its creation sequence.
func (w *World) AddRide(r *domain.Ride) {
	w.seq++
	r.Seq = w.seq
	w.Rides[r.ID] = r
}

// Snapshot deep-copies the world. Collections come back ordered by
// creation, so responses are stable across calls.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    w.Tick,
		Drivers: make([]domain.Driver, 0, len(w.Drivers)),
		Riders:  make([]domain.Rider, 0, len(w.Riders)),
		Rides:   make([]domain.Ride, 0, len(w.Rides)),
	}

	for _, d := range w.Drivers {
		snap.Drivers = append(snap.Drivers, *d)
	}
	for _, r := range w.Riders {
		snap.Riders = append(snap.Riders, *r)
	}
	for _, r := range w.Rides {
		snap.Rides = append(snap.Rides, *r.Clone())
	}

	sort.Slice(snap.Drivers, func(i, j int) bool { return snap.Drivers[i].Seq < snap.Drivers[j].Seq })
	sort.Slice(snap.Riders, func(i, j int) bool { return snap.Riders[i].Seq < snap.Riders[j].Seq })
	sort.Slice(snap.Rides, func(i, j int) bool { return snap.Rides[i].Seq < snap.Rides[j].Seq })

	return snap
}

// Snapshot is a deep copy of the world at a single point in time. Mutating
// it never affects the store.
type Snapshot struct {
	Tick    int
	Drivers []domain.Driver
	Riders  []domain.Rider
	Rides   []domain.Ride
}

// Store owns the world and serializes all access to it. Each Update or
// View call runs as one indivisible transaction; two operations never
// interleave their reads and writes.
type Store struct {
	mu    sync.RWMutex
	world World
}

// New creates an empty store with the tick counter at zero.
func New() *Store {
	return &Store{world: newWorld()}
}

// Update runs fn against the world under the write lock. An error from fn
// passes through unchanged; fn must run its guards before mutating so a
// failed transaction leaves the world untouched. fn must not retain the
// world or any entity pointer beyond the call.
func (s *Store) Update(fn func(w *World) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.world)
}

// View runs fn against the world under the read lock.
func (s *Store) View(fn func(w *World)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.world)
}

// Snapshot copies the current world in a transaction of its own.
func (s *Store) Snapshot() Snapshot {
	var snap Snapshot
	s.View(func(w *World) {
		snap = w.Snapshot()
	})
	return snap
}

// Reset discards every entity and returns the tick counter to zero.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = newWorld()
}
