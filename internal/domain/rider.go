package domain

// Rider represents a rider in the simulation. The position moves to a
// ride's dropoff when that ride completes.
type Rider struct {
	ID       string
	Position Position
	Seq      uint64 // insertion order, stamped by the store
}
