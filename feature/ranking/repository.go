package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteOutcome describes a committed vote.
type VoteOutcome struct {
	VoteID       uint
	WinnerID     uint
	LoserID      uint
	WinnerBefore float64
	LoserBefore  float64
	WinnerDelta  float64
	LoserDelta   float64
}

// Repository persists items and votes with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every item in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]Pokemon, error) {
	var items []Pokemon
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: list items: %w", ErrStorageFailure, err)
	}
	return items, nil
}

// ListRanked returns every item by rating, highest first. Equal ratings keep
// insertion order.
func (r *Repository) ListRanked(ctx context.Context) ([]Pokemon, error) {
	var items []Pokemon
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list ranked items: %w", ErrStorageFailure, err)
	}
	return items, nil
}

// Get returns a single item.
func (r *Repository) Get(ctx context.Context, id uint) (*Pokemon, error) {
	var item Pokemon
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get item %d: %w", ErrStorageFailure, id, err)
	}
	return &item, nil
}

// GetBySlug returns a single item by its slug.
func (r *Repository) GetBySlug(ctx context.Context, s string) (*Pokemon, error) {
	var item Pokemon
	err := r.db.WithContext(ctx).Where("slug = ?", s).Order("id ASC").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: slug %q", ErrNotFound, s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get item %q: %w", ErrStorageFailure, s, err)
	}
	return &item, nil
}

// Count returns the number of items.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Pokemon{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count items: %w", ErrStorageFailure, err)
	}
	return n, nil
}

// AddItems inserts items at the initial rating. Entries whose dex number is
// already stored are skipped, so re-running a batch inserts nothing. It
// returns the number of rows inserted.
func (r *Repository) AddItems(ctx context.Context, items []NewItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	rows := make([]Pokemon, 0, len(items))
	for _, it := range items {
		rows = append(rows, Pokemon{
			Name:   it.Name,
			Slug:   slug.Make(it.Name),
			DexID:  it.DexID,
			Rating: InitialRating,
		})
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dex_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: insert items: %w", ErrStorageFailure, res.Error)
	}
	return int(res.RowsAffected), nil
}

// ApplyVote updates both ratings and appends the vote record in one
// transaction. Both rows are locked (in id order) before they are read, so
// concurrent votes touching the same item apply their deltas in sequence.
func (r *Repository) ApplyVote(ctx context.Context, winnerID, loserID uint) (*VoteOutcome, error) {
	if winnerID == loserID {
		return nil, ErrSameItem
	}

	var out VoteOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []Pokemon
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", []uint{min(winnerID, loserID), max(winnerID, loserID)}).
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return fmt.Errorf("%w: lock items: %w", ErrStorageFailure, err)
		}

		var winner, loser *Pokemon
		for i := range rows {
			switch rows[i].ID {
			case winnerID:
				winner = &rows[i]
			case loserID:
				loser = &rows[i]
			}
		}
		if winner == nil {
			return fmt.Errorf("%w: winner id %d", ErrNotFound, winnerID)
		}
		if loser == nil {
			return fmt.Errorf("%w: loser id %d", ErrNotFound, loserID)
		}

		winnerDelta, loserDelta := EloDeltas(winner.Rating, loser.Rating)

		if err := tx.Model(&Pokemon{}).Where("id = ?", winner.ID).
			Update("rating", winner.Rating+winnerDelta).Error; err != nil {
			return fmt.Errorf("%w: update winner: %w", ErrStorageFailure, err)
		}
		if err := tx.Model(&Pokemon{}).Where("id = ?", loser.ID).
			Update("rating", loser.Rating+loserDelta).Error; err != nil {
			return fmt.Errorf("%w: update loser: %w", ErrStorageFailure, err)
		}

		vote := Vote{WinnerID: winner.ID, LoserID: loser.ID}
		if err := tx.Omit(clause.Associations).Create(&vote).Error; err != nil {
			return fmt.Errorf("%w: insert vote: %w", ErrStorageFailure, err)
		}

		out = VoteOutcome{
			VoteID:       vote.ID,
			WinnerID:     winner.ID,
			LoserID:      loser.ID,
			WinnerBefore: winner.Rating,
			LoserBefore:  loser.Rating,
			WinnerDelta:  winnerDelta,
			LoserDelta:   loserDelta,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorageFailure) {
			return nil, err
		}
		// begin/commit failures come back unwrapped
		return nil, fmt.Errorf("%w: vote transaction: %w", ErrStorageFailure, err)
	}
	return &out, nil
}

// ListVotes returns votes in creation order.
func (r *Repository) ListVotes(ctx context.Context) ([]Vote, error) {
	var votes []Vote
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("%w: list votes: %w", ErrStorageFailure, err)
	}
	return votes, nil
}
