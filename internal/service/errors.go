package service

import "errors"

var (
	// ErrDriverNotFound is returned when a driver ID does not resolve.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrRiderNotFound is returned when a rider ID does not resolve.
	ErrRiderNotFound = errors.New("rider not found")

	// ErrRideNotFound is returned when a ride ID does not resolve.
	ErrRideNotFound = errors.New("ride not found")

	// ErrDriverExists is returned when a supplied driver ID is already taken.
	ErrDriverExists = errors.New("driver id already exists")

	// ErrRiderExists is returned when a supplied rider ID is already taken.
	ErrRiderExists = errors.New("rider id already exists")

	// ErrRideNotAwaitingAccept is returned when accepting or rejecting a ride
	// that is not awaiting acceptance.
	ErrRideNotAwaitingAccept = errors.New("ride is not awaiting acceptance")

	// ErrNoDriverAssigned is returned when a ride's assigned driver no longer
	// resolves to a live driver.
	ErrNoDriverAssigned = errors.New("no driver assigned to this ride")
)
