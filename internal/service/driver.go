package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/augustintsang/gigaml-takehome/internal/domain"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

// DriverService handles driver registration and removal.
type DriverService struct {
	store *store.Store
}

// NewDriverService creates a new DriverService.
func NewDriverService(st *store.Store) *DriverService {
	return &DriverService{store: st}
}

// CreateDriverRequest contains the parameters for registering a driver.
// An empty ID means generate one.
type CreateDriverRequest struct {
	ID       string
	Position domain.Position
}

// CreateDriver registers a new available driver at the given position.
func (s *DriverService) CreateDriver(ctx context.Context, req CreateDriverRequest) (*domain.Driver, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	var created domain.Driver

	err := s.store.Update(func(w *store.World) error {
		if _, exists := w.Drivers[id]; exists {
			return ErrDriverExists
		}

		driver := &domain.Driver{
			ID:           id,
			Position:     req.Position,
			Status:       domain.DriverStatusAvailable,
			LastBusyTick: domain.NeverBusy,
		}
		w.AddDriver(driver)
		created = *driver
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteDriver removes a driver. Any non-terminal ride still referencing
// it fails and detaches first, so the world never keeps a live assignment
// to a missing driver.
func (s *DriverService) DeleteDriver(ctx context.Context, driverID string) error {
	return s.store.Update(func(w *store.World) error {
		if _, ok := w.Drivers[driverID]; !ok {
			return ErrDriverNotFound
		}

		for _, ride := range w.Rides {
			if ride.DriverID != driverID || ride.Status.Terminal() {
				continue
			}
			ride.Status = domain.RideStatusFailed
			ride.DriverID = ""
		}

		delete(w.Drivers, driverID)
		return nil
	})
}
