package ranking

import "errors"

// Sentinel errors surfaced by the ranking service. Callers match them with errors.Is.
var (
	// ErrInsufficientData is returned when fewer than two items exist for pairing.
	ErrInsufficientData = errors.New("not enough items to form a pair")
	// ErrNotFound is returned when a referenced item does not exist.
	ErrNotFound = errors.New("item not found")
	// ErrStorageFailure wraps any persistence failure, including transaction conflicts.
	ErrStorageFailure = errors.New("storage failure")
	// ErrSameItem is returned when a vote names the same item as winner and loser.
	ErrSameItem = errors.New("winner and loser must be different items")
	// ErrInvalidSeed is returned for NaN or infinite seeds.
	ErrInvalidSeed = errors.New("seed must be a finite number")
)
