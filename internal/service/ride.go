package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// RideService drives the ride lifecycle: request, accept, reject.
type RideService struct {
	store   *store.Store
	matcher DriverSelector
}

// NewRideService creates a new RideService.
func NewRideService(st *store.Store, matcher DriverSelector) *RideService {
	return &RideService{store: st, matcher: matcher}
}

// RideRequest contains the parameters for requesting a ride.
type RideRequest struct {
	RiderID string
	Pickup  domain.Position
	Dropoff domain.Position
}

// RequestRide creates a ride for the rider and dispatches it in the same
// transaction. The returned ride is awaiting_accept when a driver was
// claimed and failed when no eligible driver exists; it never stays
// waiting.
func (s *RideService) RequestRide(ctx context.Context, req RideRequest) (*domain.Ride, error) {
	var created *domain.Ride

	err := s.store.Update(func(w *store.World) error {
		if _, ok := w.Riders[req.RiderID]; !ok {
			return ErrRiderNotFound
		}

		ride := &domain.Ride{
			ID:      uuid.New().String(),
			RiderID: req.RiderID,
			Pickup:  req.Pickup,
			Dropoff: req.Dropoff,
			Status:  domain.RideStatusWaiting,
		}
		w.AddRide(ride)

		s.dispatch(w, ride)
		created = ride.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// AcceptRide moves an awaiting_accept ride into progress. The assigned
// driver goes on trip and its assignment counter increments here, at
// acceptance, which is what the fairness ranking keys on. The last-busy
// tick stays untouched until the ride completes.
func (s *RideService) AcceptRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	var accepted *domain.Ride

	err := s.store.Update(func(w *store.World) error {
		ride, ok := w.Rides[rideID]
		if !ok {
			return ErrRideNotFound
		}
		if ride.Status != domain.RideStatusAwaitingAccept {
			return ErrRideNotAwaitingAccept
		}
		driver, ok := w.Drivers[ride.DriverID]
		if !ok {
			return ErrNoDriverAssigned
		}

		ride.Status = domain.RideStatusInProgress
		driver.Status = domain.DriverStatusOnTrip
		driver.AssignedCount++
		accepted = ride.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

// RejectRide records the current driver's refusal, releases it, and tries
// the next candidate. Each call advances exactly one reassignment: the
// ride comes back awaiting_accept with a new driver, or failed when no
// eligible driver remains.
func (s *RideService) RejectRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	var rejected *domain.Ride

	err := s.store.Update(func(w *store.World) error {
		ride, ok := w.Rides[rideID]
		if !ok {
			return ErrRideNotFound
		}
		if ride.Status != domain.RideStatusAwaitingAccept {
			return ErrRideNotAwaitingAccept
		}
		driver, ok := w.Drivers[ride.DriverID]
		if !ok {
			return ErrNoDriverAssigned
		}

		ride.RejectedDriverIDs = append(ride.RejectedDriverIDs, driver.ID)
		driver.Status = domain.DriverStatusAvailable
		driver.CurrentRideID = ""

		s.dispatch(w, ride)
		rejected = ride.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// dispatch assigns the best eligible driver to the ride, or fails the ride
// when none qualifies. The caller must hold the store transaction.
func (s *RideService) dispatch(w *store.World, ride *domain.Ride) {
	driver, ok := s.matcher.SelectDriver(w, ride)
	if !ok {
		ride.Status = domain.RideStatusFailed
		ride.DriverID = ""
		return
	}

	ride.Status = domain.RideStatusAwaitingAccept
	ride.DriverID = driver.ID
	driver.Status = domain.DriverStatusAssigned
	driver.CurrentRideID = ride.ID
}
