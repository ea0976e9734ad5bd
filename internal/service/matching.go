package service

import (
	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// DriverSelector picks the best driver for a ride. Implementations must
// be pure queries with no side effects on the world.
type DriverSelector interface {
	SelectDriver(w *store.World, ride *domain.Ride) (*domain.Driver, bool)
}

// Ensure Matcher implements DriverSelector.
var _ DriverSelector = (*Matcher)(nil)

// Matcher ranks candidate drivers for a ride.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// rankKey orders candidates: nearest to pickup first, then the fewest
// accepted rides, then the longest idle, then creation order. The last
// component makes the key a strict total order, so selection never depends
// on map iteration order.
type rankKey struct {
	eta      int
	assigned int
	idle     int
	seq      uint64
}

func (k rankKey) less(other rankKey) bool {
	if k.eta != other.eta {
		return k.eta < other.eta
	}
	if k.assigned != other.assigned {
		return k.assigned < other.assigned
	}
	if k.idle != other.idle {
		return k.idle > other.idle // longer idle ranks higher
	}
	return k.seq < other.seq
}

// SelectDriver returns the best eligible driver for the ride, or false when
// none qualifies. Eligible means available and not previously rejected for
// this ride. The caller must hold the store transaction.
func (m *Matcher) SelectDriver(w *store.World, ride *domain.Ride) (*domain.Driver, bool) {
	var (
		best    *domain.Driver
		bestKey rankKey
	)

	for _, d := range w.Drivers {
		if d.Status != domain.DriverStatusAvailable {
			continue
		}
		if ride.HasRejected(d.ID) {
			continue
		}

		key := rankKey{
			eta:      d.Position.ManhattanTo(ride.Pickup),
			assigned: d.AssignedCount,
			idle:     idleTicks(w.Tick, d),
			seq:      d.Seq,
		}
		if best == nil || key.less(bestKey) {
			best = d
			bestKey = key
		}
	}

	return best, best != nil
}

// idleTicks measures ticks since the driver last completed a ride. A driver
// that never completed one counts as maximally idle.
func idleTicks(tick int, d *domain.Driver) int {
	if d.LastBusyTick == domain.NeverBusy {
		return tick + 999999
	}
	return tick - d.LastBusyTick
}
