package checks

import (
	"context"
	"fmt"
	"math"

	"roundest/feature/ranking"

	"gorm.io/gorm"
)

// VoteReport counts votes that break the reference rules.
type VoteReport struct {
	Total    int64  `json:"total"`
	SelfVote int64  `json:"self_votes"`
	Dangling int64  `json:"dangling"`
	Status   string `json:"status"`
}

// RatingReport summarises the rating mass. Every vote moves the same amount
// of rating from loser to winner, so the sum stays at InitialRating per item.
type RatingReport struct {
	Items     int64   `json:"items"`
	Sum       float64 `json:"sum"`
	Expected  float64 `json:"expected"`
	Drift     float64 `json:"drift"`
	NullCount int64   `json:"null_ratings"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Conserved bool    `json:"conserved"`
	Status    string  `json:"status"`
}

// CheckVotes counts votes whose winner equals the loser or that reference a
// missing item.
func CheckVotes(ctx context.Context, db *gorm.DB) (*VoteReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	tx := db.WithContext(ctx)
	report := &VoteReport{Status: "ok"}

	if err := tx.Model(&ranking.Vote{}).Count(&report.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	if err := tx.Model(&ranking.Vote{}).Where("winner_id = loser_id").Count(&report.SelfVote).Error; err != nil {
		return nil, fmt.Errorf("failed to count self votes: %w", err)
	}
	err := tx.Table("votes AS v").
		Joins("LEFT JOIN pokemon w ON w.id = v.winner_id").
		Joins("LEFT JOIN pokemon l ON l.id = v.loser_id").
		Where("w.id IS NULL OR l.id IS NULL").
		Count(&report.Dangling).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count dangling votes: %w", err)
	}

	if report.SelfVote > 0 || report.Dangling > 0 {
		report.Status = "error"
	}
	return report, nil
}

type ratingAggregate struct {
	Items int64
	Total float64
	Low   float64
	High  float64
}

// CheckRatings verifies that no rating is null and that the rating sum is
// InitialRating times the item count, within float tolerance.
func CheckRatings(ctx context.Context, db *gorm.DB) (*RatingReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	tx := db.WithContext(ctx)

	var agg ratingAggregate
	err := tx.Model(&ranking.Pokemon{}).
		Select("COUNT(*) AS items, COALESCE(SUM(rating), 0) AS total, COALESCE(MIN(rating), 0) AS low, COALESCE(MAX(rating), 0) AS high").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	report := &RatingReport{
		Items:    agg.Items,
		Sum:      agg.Total,
		Min:      agg.Low,
		Max:      agg.High,
		Expected: ranking.InitialRating * float64(agg.Items),
		Status:   "ok",
	}
	if err := tx.Model(&ranking.Pokemon{}).Where("rating IS NULL").Count(&report.NullCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count null ratings: %w", err)
	}

	report.Drift = report.Sum - report.Expected
	report.Conserved = math.Abs(report.Drift) <= 1e-6*math.Max(float64(agg.Items), 1)

	if !report.Conserved || report.NullCount > 0 {
		report.Status = "error"
	}
	return report, nil
}
