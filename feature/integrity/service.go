package integrity

import (
	"context"

	"roundest/core/storage"
	"roundest/feature/catalog"
	"roundest/feature/integrity/checks"
	"roundest/feature/ranking"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Section is one part of the combined report.
type Section struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Report any    `json:"report,omitempty"`
}

// Report is the combined result of every check.
type Report struct {
	Healthy bool               `json:"healthy"`
	Checks  map[string]Section `json:"checks"`
}

// Service handles integrity checks.
type Service struct {
	db       *gorm.DB
	client   storage.Client
	bucket   string
	snapshot string
	logger   *zap.Logger
}

// NewService creates a new integrity service. client may be nil when object
// storage is not configured; the storage and catalog checks are then skipped.
// snapshot is the bucket key of the catalog snapshot.
func NewService(db *gorm.DB, client storage.Client, bucket, snapshot string, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		client:   client,
		bucket:   bucket,
		snapshot: snapshot,
		logger:   logger,
	}
}

// CheckSchema compares the ranking tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, ranking.Models()...)
}

// CheckVotes reports votes that violate the reference rules.
func (s *Service) CheckVotes(ctx context.Context) (*checks.VoteReport, error) {
	return checks.CheckVotes(ctx, s.db)
}

// CheckRatings reports whether the rating mass is conserved.
func (s *Service) CheckRatings(ctx context.Context) (*checks.RatingReport, error) {
	return checks.CheckRatings(ctx, s.db)
}

// StorageEnabled reports whether a storage client is configured.
func (s *Service) StorageEnabled() bool {
	return s.client != nil
}

// CheckStorage verifies the bucket and the catalog snapshot.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	var required []string
	if s.snapshot != "" {
		required = append(required, s.snapshot)
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, required)
}

// CheckCatalog compares the pokemon table with the catalog snapshot.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	items, err := catalog.NewStorageSource(s.client, s.bucket, s.snapshot).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckCatalog(ctx, s.db, items)
}

// Run executes every check. A failing check is recorded in its section and
// does not stop the others.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{Healthy: true, Checks: make(map[string]Section)}

	record := func(name string, status string, result any, err error) {
		if err != nil {
			s.logger.Error("Integrity check failed", zap.String("check", name), zap.Error(err))
			report.Checks[name] = Section{Status: "error", Error: err.Error()}
			report.Healthy = false
			return
		}
		if status != "ok" {
			s.logger.Warn("Integrity check found problems", zap.String("check", name))
			report.Healthy = false
		}
		report.Checks[name] = Section{Status: status, Report: result}
	}

	schema, err := s.CheckSchema()
	if err == nil {
		status := "ok"
		if !schema.Matched {
			status = "error"
		}
		record("schema", status, schema, nil)
	} else {
		record("schema", "", nil, err)
	}

	if votes, err := s.CheckVotes(ctx); err != nil {
		record("votes", "", nil, err)
	} else {
		record("votes", votes.Status, votes, nil)
	}

	if ratings, err := s.CheckRatings(ctx); err != nil {
		record("ratings", "", nil, err)
	} else {
		record("ratings", ratings.Status, ratings, nil)
	}

	if !s.StorageEnabled() {
		report.Checks["storage"] = Section{Status: "skipped"}
		report.Checks["catalog"] = Section{Status: "skipped"}
		return report
	}

	st, err := s.CheckStorage(ctx)
	if err != nil {
		record("storage", "", nil, err)
	} else {
		record("storage", st.Status, st, nil)
	}

	// the catalog comparison needs the snapshot the storage check looked for
	if err != nil || len(st.Missing) > 0 {
		report.Checks["catalog"] = Section{Status: "skipped"}
	} else if cat, err := s.CheckCatalog(ctx); err != nil {
		record("catalog", "", nil, err)
	} else {
		record("catalog", cat.Status, cat, nil)
	}

	return report
}
