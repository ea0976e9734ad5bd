package service

import (
	"context"
	"log"
	"time"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// SimService advances and inspects the simulation clock.
type SimService struct {
	store *store.Store
}

// NewSimService creates a new SimService.
func NewSimService(st *store.Store) *SimService {
	return &SimService{store: st}
}

// Tick advances the world one step and returns the post-tick snapshot,
// all in one transaction. Every in-progress ride's driver walks one
// Manhattan unit toward its current target; a driver standing on the
// dropoff after moving completes its ride.
func (s *SimService) Tick(ctx context.Context) store.Snapshot {
	var snap store.Snapshot

	_ = s.store.Update(func(w *store.World) error {
		w.Tick++

		for _, ride := range w.Rides {
			if ride.Status != domain.RideStatusInProgress {
				continue
			}
			driver, ok := w.Drivers[ride.DriverID]
			if !ok || driver.Status != domain.DriverStatusOnTrip {
				// Dangling or inconsistent reference, left behind by a
				// delete. Skipped, never an error.
				continue
			}
			advanceRide(w, ride, driver)
		}

		snap = w.Snapshot()
		return nil
	})

	return snap
}

// advanceRide walks the ride's driver one step. The phase flips to the
// dropoff leg before moving when the driver stands on the pickup. The
// dropoff check runs after the move and carries no phase guard: a driver
// passing through the dropoff on its way to pickup ends the ride there.
func advanceRide(w *store.World, ride *domain.Ride, driver *domain.Driver) {
	if !driver.HeadingToDropoff && driver.Position == ride.Pickup {
		driver.HeadingToDropoff = true
	}

	target := ride.Pickup
	if driver.HeadingToDropoff {
		target = ride.Dropoff
	}
	driver.Position = driver.Position.StepToward(target)

	if driver.Position != ride.Dropoff {
		return
	}

	ride.Status = domain.RideStatusCompleted
	driver.Status = domain.DriverStatusAvailable
	driver.CurrentRideID = ""
	driver.HeadingToDropoff = false
	driver.LastBusyTick = w.Tick

	if rider, ok := w.Riders[ride.RiderID]; ok {
		rider.Position = ride.Dropoff
	}
}

// State returns a consistent snapshot of the current world.
func (s *SimService) State(ctx context.Context) store.Snapshot {
	return s.store.Snapshot()
}

// Reset wipes every entity and returns the tick counter to zero.
func (s *SimService) Reset(ctx context.Context) {
	s.store.Reset()
}

// RunAutoTick advances the simulation on a fixed interval until ctx is
// cancelled. Manual Tick calls interleave as ordinary transactions.
func (s *SimService) RunAutoTick(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("auto-tick stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}
