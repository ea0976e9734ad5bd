package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// RiderService handles rider registration and removal.
type RiderService struct {
	store *store.Store
}

// NewRiderService creates a new RiderService.
func NewRiderService(st *store.Store) *RiderService {
	return &RiderService{store: st}
}

// CreateRiderRequest contains the parameters for registering a rider.
// An empty ID means generate one.
type CreateRiderRequest struct {
	ID       string
	Position domain.Position
}

// CreateRider registers a new rider at the given position.
func (s *RiderService) CreateRider(ctx context.Context, req CreateRiderRequest) (*domain.Rider, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	var created domain.Rider

	err := s.store.Update(func(w *store.World) error {
		if _, exists := w.Riders[id]; exists {
			return ErrRiderExists
		}

		rider := &domain.Rider{
			ID:       id,
			Position: req.Position,
		}
		w.AddRider(rider)
		created = *rider
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteRider removes a rider. Non-terminal rides belonging to it fail,
// and any driver still attached to one of those rides is released back to
// available with its assignment cleared.
func (s *RiderService) DeleteRider(ctx context.Context, riderID string) error {
	return s.store.Update(func(w *store.World) error {
		if _, ok := w.Riders[riderID]; !ok {
			return ErrRiderNotFound
		}

		for _, ride := range w.Rides {
			if ride.RiderID != riderID || ride.Status.Terminal() {
				continue
			}
			if driver, ok := w.Drivers[ride.DriverID]; ok {
				driver.Status = domain.DriverStatusAvailable
				driver.CurrentRideID = ""
				driver.HeadingToDropoff = false
			}
			ride.Status = domain.RideStatusFailed
			ride.DriverID = ""
		}

		delete(w.Riders, riderID)
		return nil
	})
}
