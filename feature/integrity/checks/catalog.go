package checks

import (
	"context"
	"fmt"
	"slices"

	"roundest/feature/ranking"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CatalogEntry is the reconciliation result for one dex number.
type CatalogEntry struct {
	DexID           int      `json:"dexId"`
	Name            string   `json:"name"`
	DBPresent       bool     `json:"db_present"`
	SnapshotPresent bool     `json:"snapshot_present"`
	Mismatch        []string `json:"mismatch"`
}

// CatalogReport compares the pokemon table with a catalog snapshot.
type CatalogReport struct {
	Total           int            `json:"total"`
	MissingDB       int            `json:"missing_db"`
	MissingSnapshot int            `json:"missing_snapshot"`
	Mismatched      int            `json:"mismatched"`
	Issues          []CatalogEntry `json:"issues"`
	Status          string         `json:"status"`
}

// CheckCatalog builds the union of dex numbers from the database and the
// snapshot and reports every entry that is absent on one side or whose name
// differs. Issues are sorted by dex number.
func CheckCatalog(ctx context.Context, db *gorm.DB, snapshot []ranking.NewItem) (*CatalogReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var stored []ranking.Pokemon
	if err := db.WithContext(ctx).Select("id", "name", "slug", "dex_id").Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load pokemon: %w", err)
	}

	dbIndex := make(map[int]ranking.Pokemon, len(stored))
	for _, p := range stored {
		dbIndex[p.DexID] = p
	}
	snapIndex := make(map[int]ranking.NewItem, len(snapshot))
	for _, it := range snapshot {
		if _, dup := snapIndex[it.DexID]; !dup {
			snapIndex[it.DexID] = it
		}
	}

	union := make(map[int]struct{}, len(dbIndex)+len(snapIndex))
	for k := range dbIndex {
		union[k] = struct{}{}
	}
	for k := range snapIndex {
		union[k] = struct{}{}
	}

	report := &CatalogReport{Total: len(union), Issues: []CatalogEntry{}, Status: "ok"}
	for dex := range union {
		p, inDB := dbIndex[dex]
		it, inSnap := snapIndex[dex]

		entry := CatalogEntry{DexID: dex, DBPresent: inDB, SnapshotPresent: inSnap, Mismatch: []string{}}
		switch {
		case inDB:
			entry.Name = p.Name
		case inSnap:
			entry.Name = it.Name
		}

		if inDB && inSnap {
			if p.Name != it.Name {
				entry.Mismatch = append(entry.Mismatch, fmt.Sprintf("name: snapshot=%s db=%s", it.Name, p.Name))
			}
			if want := slug.Make(it.Name); p.Slug != want {
				entry.Mismatch = append(entry.Mismatch, fmt.Sprintf("slug: snapshot=%s db=%s", want, p.Slug))
			}
		}

		if !inDB {
			report.MissingDB++
		}
		if !inSnap {
			report.MissingSnapshot++
		}
		if len(entry.Mismatch) > 0 {
			report.Mismatched++
		}
		if !inDB || !inSnap || len(entry.Mismatch) > 0 {
			report.Issues = append(report.Issues, entry)
		}
	}

	slices.SortFunc(report.Issues, func(a, b CatalogEntry) int { return a.DexID - b.DexID })
	if len(report.Issues) > 0 {
		report.Status = "error"
	}
	return report, nil
}
