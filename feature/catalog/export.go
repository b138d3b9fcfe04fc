package catalog

import (
	"context"
	"fmt"
	"time"

	"roundest/core/storage"
	"roundest/feature/ranking"
)

// LeaderboardEntry is one row of an exported leaderboard.
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	DexID  int     `json:"dexId"`
	Rating float64 `json:"rating"`
}

// LeaderboardExport is the document written by ExportLeaderboard.
type LeaderboardExport struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Count       int                `json:"count"`
	Entries     []LeaderboardEntry `json:"entries"`
}

// ExportObjectName returns the bucket key of an export taken at t.
func ExportObjectName(t time.Time) string {
	return fmt.Sprintf("exports/leaderboard_%d.json", t.Unix())
}

// BuildExport ranks items, which must already be in leaderboard order.
func BuildExport(items []ranking.Pokemon, at time.Time) LeaderboardExport {
	entries := make([]LeaderboardEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			ID:     it.ID,
			Name:   it.Name,
			DexID:  it.DexID,
			Rating: it.Rating,
		})
	}
	return LeaderboardExport{GeneratedAt: at.UTC(), Count: len(entries), Entries: entries}
}

// ExportLeaderboard writes the ranked items to the bucket and returns the
// object name.
func ExportLeaderboard(ctx context.Context, client storage.Client, cfg storage.Config, items []ranking.Pokemon, at time.Time) (string, error) {
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return "", err
	}
	name := ExportObjectName(at)
	if err := storage.PutJSON(ctx, client, cfg.Bucket, name, BuildExport(items, at)); err != nil {
		return "", err
	}
	return name, nil
}
