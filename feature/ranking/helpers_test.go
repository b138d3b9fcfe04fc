package ranking_test

import (
	"context"
	"testing"

	"roundest/core/database"
	"roundest/feature/ranking"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var starters = []ranking.NewItem{
	{Name: "Bulbasaur", DexID: 1},
	{Name: "Ivysaur", DexID: 2},
	{Name: "Venusaur", DexID: 3},
	{Name: "Charmander", DexID: 4},
	{Name: "Charmeleon", DexID: 5},
	{Name: "Charizard", DexID: 6},
	{Name: "Squirtle", DexID: 7},
	{Name: "Wartortle", DexID: 8},
	{Name: "Blastoise", DexID: 9},
	{Name: "Mr. Mime", DexID: 122},
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, ranking.Models()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newSeededRepo(t *testing.T, items ...ranking.NewItem) *ranking.Repository {
	t.Helper()
	repo := ranking.NewRepository(newTestDB(t))
	if len(items) > 0 {
		n, err := repo.AddItems(context.Background(), items)
		require.NoError(t, err)
		require.Equal(t, len(items), n)
	}
	return repo
}

func newTestService(t *testing.T, cfg ranking.Config, items ...ranking.NewItem) (*ranking.Service, *ranking.Repository) {
	t.Helper()
	repo := newSeededRepo(t, items...)
	return ranking.NewService(repo, zap.NewNop(), nil, cfg), repo
}

func ratingSum(items []ranking.Pokemon) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.Rating
	}
	return sum
}
