package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"roundest/core/storage"
	"roundest/feature/ranking"

	"go.uber.org/zap"
)

// Inserter stores catalog entries. *ranking.Service satisfies it.
type Inserter interface {
	AddItems(ctx context.Context, items []ranking.NewItem) (int, error)
}

// SeedOptions controls a seeding run.
type SeedOptions struct {
	// Snapshot stores the fetched catalog in the bucket before inserting.
	Snapshot bool
	// DryRun fetches and normalises without writing anything.
	DryRun bool
}

// SeedResult summarises a seeding run.
type SeedResult struct {
	Source   string        `json:"source"`
	Fetched  int           `json:"fetched"`
	Inserted int           `json:"inserted"`
	Skipped  int           `json:"skipped"`
	Batches  int           `json:"batches"`
	Snapshot string        `json:"snapshot,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Seeder fetches the catalog from a Source and inserts it in batches.
type Seeder struct {
	source    Source
	inserter  Inserter
	client    storage.Client
	bucket    string
	region    string
	object    string
	batchSize int
	logger    *zap.Logger
}

// NewSeeder creates a seeder. client may be nil when snapshots are not used.
func NewSeeder(cfg Config, source Source, inserter Inserter, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Seeder {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	return &Seeder{
		source:    source,
		inserter:  inserter,
		client:    client,
		bucket:    storageCfg.Bucket,
		region:    storageCfg.Region,
		object:    cfg.Object,
		batchSize: batch,
		logger:    logger,
	}
}

// Seed runs one seeding pass. Running it again inserts nothing new because
// entries are keyed by dex number.
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{Source: s.source.Name()}

	s.logger.Info("Fetching catalog", zap.String("source", s.source.Name()))
	fetched, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog from %s: %w", s.source.Name(), err)
	}
	items := Normalize(fetched)
	result.Fetched = len(items)
	s.logger.Info("Catalog fetched", zap.Int("raw", len(fetched)), zap.Int("unique", len(items)))

	if opts.DryRun {
		result.Skipped = len(items)
		result.Duration = time.Since(start)
		return result, nil
	}

	if opts.Snapshot {
		if s.client == nil {
			return nil, fmt.Errorf("snapshot requested but storage is not enabled")
		}
		if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
			return nil, err
		}
		if err := storage.PutJSON(ctx, s.client, s.bucket, s.object, items); err != nil {
			return nil, err
		}
		result.Snapshot = s.object
		s.logger.Info("Catalog snapshot stored", zap.String("bucket", s.bucket), zap.String("object", s.object))
	}

	for batch := range slices.Chunk(items, s.batchSize) {
		n, err := s.inserter.AddItems(ctx, batch)
		if err != nil {
			return result, fmt.Errorf("failed to insert batch %d: %w", result.Batches+1, err)
		}
		result.Batches++
		result.Inserted += n
		s.logger.Debug("Batch inserted", zap.Int("batch", result.Batches), zap.Int("size", len(batch)), zap.Int("inserted", n))
	}

	result.Skipped = result.Fetched - result.Inserted
	result.Duration = time.Since(start)
	s.logger.Info("Catalog seeded",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("batches", result.Batches),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// Normalize drops duplicate dex numbers (first entry wins) and orders the
// entries by dex number, so insertion order follows the national dex.
func Normalize(items []ranking.NewItem) []ranking.NewItem {
	seen := make(map[int]bool, len(items))
	out := make([]ranking.NewItem, 0, len(items))
	for _, it := range items {
		if it.DexID <= 0 || it.Name == "" || seen[it.DexID] {
			continue
		}
		seen[it.DexID] = true
		out = append(out, it)
	}
	slices.SortStableFunc(out, func(a, b ranking.NewItem) int {
		return a.DexID - b.DexID
	})
	return out
}
