package domain

// DriverStatus represents the current status of a driver.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusAssigned  DriverStatus = "assigned"
	DriverStatusOnTrip    DriverStatus = "on_trip"
	DriverStatusOffline   DriverStatus = "offline"
)

// NeverBusy is the LastBusyTick value of a driver that has not completed a
// ride yet. The matcher ranks such drivers as maximally idle.
const NeverBusy = -1

// Driver represents a driver in the simulation. CurrentRideID is empty
// unless the status is assigned or on_trip, and HeadingToDropoff is false
// unless the status is on_trip.
type Driver struct {
	ID               string
	Position         Position
	Status           DriverStatus
	AssignedCount    int
	LastBusyTick     int
	CurrentRideID    string
	HeadingToDropoff bool
	Seq              uint64 // insertion order, stamped by the store
}
