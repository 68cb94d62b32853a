package core

// TorpedoStore is the capability set a ship needs from a torpedo magazine.
// Ships never look inside a store; they only ask it to fire and whether it
// is empty.
type TorpedoStore interface {
	// Fire attempts to launch count torpedoes and reports whether it succeeded.
	Fire(count int) bool

	// IsEmpty reports whether the store has no torpedoes left.
	IsEmpty() bool
}
