package domain

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	// RideStatusWaiting is transient: a ride leaves it inside the same
	// transaction that creates it, so it is never observable externally.
	RideStatusWaiting        RideStatus = "waiting"
	RideStatusAwaitingAccept RideStatus = "awaiting_accept"
	RideStatusInProgress     RideStatus = "in_progress"
	RideStatusCompleted      RideStatus = "completed"
	RideStatusFailed         RideStatus = "failed"
)

// Terminal reports whether the status admits no further transitions.
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusFailed
}

// Ride represents a ride request in the simulation. DriverID is empty
// unless the status is awaiting_accept or in_progress. RejectedDriverIDs
// only ever grows and never contains the current DriverID.
type Ride struct {
	ID                string
	RiderID           string
	Pickup            Position
	Dropoff           Position
	Status            RideStatus
	DriverID          string
	RejectedDriverIDs []string
	Seq               uint64 // insertion order, stamped by the store
}

// HasRejected reports whether the driver was previously rejected for this
// ride. Rejection is permanent per ride.
func (r *Ride) HasRejected(driverID string) bool {
	for _, id := range r.RejectedDriverIDs {
		if id == driverID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the ride.
func (r *Ride) Clone() *Ride {
	clone := *r
	if r.RejectedDriverIDs != nil {
		clone.RejectedDriverIDs = append([]string(nil), r.RejectedDriverIDs...)
	}
	return &clone
}
