package ranking

import "math"

const (
	// K is the Elo sensitivity: the largest possible change from one vote.
	K = 32.0
	// InitialRating is assigned to every item at seeding time.
	InitialRating = 1200.0
)

// ExpectedScore returns the probability the winner was expected to win,
// always in the open interval (0, 1).
func ExpectedScore(winnerRating, loserRating float64) float64 {
	return 1 / (1 + math.Pow(10, (loserRating-winnerRating)/400))
}

// EloDeltas returns the rating changes for a decided comparison. The two
// deltas are exact opposites, so each vote conserves total rating.
func EloDeltas(winnerRating, loserRating float64) (winnerDelta, loserDelta float64) {
	gain := K * (1 - ExpectedScore(winnerRating, loserRating))
	return gain, -gain
}
