// Package game provides the modal input-dispatch and turn-resolution core.
package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation and spawning. A seed of 0 means a time-derived seed.
	Seed int64
}
