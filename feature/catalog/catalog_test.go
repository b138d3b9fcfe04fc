package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roundest/core/database"
	"roundest/core/storage"
	"roundest/core/storage/mocks"
	"roundest/feature/ranking"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const speciesBody = `{"data":{"pokemon_v2_pokemon":[
	{"id":1,"pokemon_v2_pokemonspecy":{"name":"bulbasaur"}},
	{"id":2,"pokemon_v2_pokemonspecy":{"name":"ivysaur"}},
	{"id":3,"pokemon_v2_pokemonspecy":null},
	{"id":122,"pokemon_v2_pokemonspecy":{"name":"mr-mime"}}
]}}`

func TestPokeAPISource_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got graphQLRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = io.WriteString(w, speciesBody)
		}))
		defer srv.Close()

		src := NewPokeAPISource(srv.URL, 151, time.Second)
		items, err := src.Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []ranking.NewItem{
			{Name: "bulbasaur", DexID: 1},
			{Name: "ivysaur", DexID: 2},
			{Name: "mr-mime", DexID: 122},
		}, items)
		assert.Contains(t, got.Query, "pokemon_v2_pokemonspecy")
		assert.EqualValues(t, 151, got.Variables["maxId"])
	})

	t.Run("HTTP Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewPokeAPISource(srv.URL, 1025, time.Second).Fetch(context.Background())
		assert.ErrorContains(t, err, "pokeapi returned 429")
	})

	t.Run("GraphQL Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"errors":[{"message":"field not found"}]}`)
		}))
		defer srv.Close()

		_, err := NewPokeAPISource(srv.URL, 1025, time.Second).Fetch(context.Background())
		assert.EqualError(t, err, "pokeapi query failed: field not found")
	})
}

func TestStorageSource_Fetch(t *testing.T) {
	client := new(mocks.Client)
	snapshot := `[
		{"dexId": 25, "name": "pikachu"},
		{"dexNumber": "39", "name": "jigglypuff"},
		{"id": 100.0, "name": " voltorb "},
		{"id": 0, "name": "missingno"},
		{"dexId": 52}
	]`
	client.On("GetObject", mock.Anything, "roundest", "catalog/pokemon.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(snapshot)), nil)

	items, err := NewStorageSource(client, "roundest", "catalog/pokemon.json").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ranking.NewItem{
		{Name: "pikachu", DexID: 25},
		{Name: "jigglypuff", DexID: 39},
		{Name: "voltorb", DexID: 100},
	}, items)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: SourcePokeAPI, Endpoint: "http://x", MaxDexID: 10}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, SourcePokeAPI, src.Name())

	_, err = NewSource(Config{Source: SourceStorage}, nil, "roundest")
	assert.ErrorContains(t, err, "requires storage")

	src, err = NewSource(Config{Source: SourceStorage}, new(mocks.Client), "roundest")
	require.NoError(t, err)
	assert.Equal(t, SourceStorage, src.Name())

	_, err = NewSource(Config{Source: "ftp"}, nil, "")
	assert.EqualError(t, err, `unknown catalog source: "ftp"`)
}

func TestNormalize(t *testing.T) {
	items := Normalize([]ranking.NewItem{
		{Name: "charmander", DexID: 4},
		{Name: "bulbasaur", DexID: 1},
		{Name: "charmander-copy", DexID: 4},
		{Name: "", DexID: 7},
		{Name: "nothing", DexID: 0},
	})
	assert.Equal(t, []ranking.NewItem{
		{Name: "bulbasaur", DexID: 1},
		{Name: "charmander", DexID: 4},
	}, items)
}

type staticSource []ranking.NewItem

func (s staticSource) Name() string { return "static" }
func (s staticSource) Fetch(context.Context) ([]ranking.NewItem, error) {
	return s, nil
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) Fetch(context.Context) ([]ranking.NewItem, error) {
	return nil, errors.New("offline")
}

type recordingInserter struct {
	batches [][]ranking.NewItem
	err     error
}

func (r *recordingInserter) AddItems(_ context.Context, items []ranking.NewItem) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.batches = append(r.batches, items)
	return len(items), nil
}

func dex(n int) staticSource {
	out := make(staticSource, 0, n)
	for i := n; i >= 1; i-- {
		out = append(out, ranking.NewItem{Name: "mon", DexID: i})
	}
	return out
}

func TestSeeder_Batches(t *testing.T) {
	ins := &recordingInserter{}
	seeder := NewSeeder(Config{BatchSize: 100}, dex(250), ins, nil, storage.Config{}, zap.NewNop())

	res, err := seeder.Seed(context.Background(), SeedOptions{})
	require.NoError(t, err)

	assert.Equal(t, 250, res.Fetched)
	assert.Equal(t, 250, res.Inserted)
	assert.Equal(t, 3, res.Batches)
	require.Len(t, ins.batches, 3)
	assert.Len(t, ins.batches[0], 100)
	assert.Len(t, ins.batches[2], 50)
	assert.Equal(t, 1, ins.batches[0][0].DexID)
	assert.Equal(t, 250, ins.batches[2][49].DexID)
}

func TestSeeder_DryRun(t *testing.T) {
	ins := &recordingInserter{}
	seeder := NewSeeder(Config{}, dex(5), ins, nil, storage.Config{}, zap.NewNop())

	res, err := seeder.Seed(context.Background(), SeedOptions{DryRun: true, Snapshot: true})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Fetched)
	assert.Zero(t, res.Inserted)
	assert.Empty(t, ins.batches)
}

func TestSeeder_Errors(t *testing.T) {
	_, err := NewSeeder(Config{}, failingSource{}, &recordingInserter{}, nil, storage.Config{}, zap.NewNop()).
		Seed(context.Background(), SeedOptions{})
	assert.ErrorContains(t, err, "offline")

	_, err = NewSeeder(Config{}, dex(3), &recordingInserter{err: ranking.ErrStorageFailure}, nil, storage.Config{}, zap.NewNop()).
		Seed(context.Background(), SeedOptions{})
	assert.ErrorIs(t, err, ranking.ErrStorageFailure)

	_, err = NewSeeder(Config{}, dex(3), &recordingInserter{}, nil, storage.Config{}, zap.NewNop()).
		Seed(context.Background(), SeedOptions{Snapshot: true})
	assert.ErrorContains(t, err, "storage is not enabled")
}

func TestSeeder_Snapshot(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "roundest").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "roundest", mock.Anything).Return(nil)

	var stored []ranking.NewItem
	client.On("PutObject", mock.Anything, "roundest", "catalog/pokemon.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.NewDecoder(args.Get(3).(io.Reader)).Decode(&stored))
		}).
		Return(minio.UploadInfo{}, nil)

	cfg := Config{Object: "catalog/pokemon.json", BatchSize: 2}
	seeder := NewSeeder(cfg, dex(3), &recordingInserter{}, client, storage.Config{Bucket: "roundest"}, zap.NewNop())

	res, err := seeder.Seed(context.Background(), SeedOptions{Snapshot: true})
	require.NoError(t, err)
	assert.Equal(t, "catalog/pokemon.json", res.Snapshot)
	assert.Equal(t, 2, res.Batches)
	assert.Len(t, stored, 3)
	client.AssertExpectations(t)

	// The stored snapshot seeds the same catalog back.
	replay := new(mocks.Client)
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	replay.On("GetObject", mock.Anything, "roundest", "catalog/pokemon.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(string(data))), nil)
	items, err := NewStorageSource(replay, "roundest", "catalog/pokemon.json").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, items)
}

func TestSeeder_Idempotent(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, ranking.Models()...))
	svc := ranking.NewService(ranking.NewRepository(db), zap.NewNop(), nil, ranking.Config{})

	seeder := NewSeeder(Config{BatchSize: 4}, dex(10), svc, nil, storage.Config{}, zap.NewNop())

	first, err := seeder.Seed(context.Background(), SeedOptions{})
	require.NoError(t, err)
	assert.Equal(t, 10, first.Inserted)

	second, err := seeder.Seed(context.Background(), SeedOptions{})
	require.NoError(t, err)
	assert.Zero(t, second.Inserted)
	assert.Equal(t, 10, second.Skipped)

	items, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 10)
	for i, it := range items {
		assert.Equal(t, i+1, it.DexID)
		assert.Equal(t, ranking.InitialRating, it.Rating)
	}
}

func TestExportLeaderboard(t *testing.T) {
	at := time.Unix(1700000000, 0)
	items := []ranking.Pokemon{
		{ID: 2, Name: "Jigglypuff", DexID: 39, Rating: 1216},
		{ID: 1, Name: "Pikachu", DexID: 25, Rating: 1184},
	}

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "roundest").Return(true, nil)

	var doc LeaderboardExport
	client.On("PutObject", mock.Anything, "roundest", "exports/leaderboard_1700000000.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.NewDecoder(args.Get(3).(io.Reader)).Decode(&doc))
		}).
		Return(minio.UploadInfo{}, nil)

	name, err := ExportLeaderboard(context.Background(), client, storage.Config{Bucket: "roundest"}, items, at)
	require.NoError(t, err)
	assert.Equal(t, "exports/leaderboard_1700000000.json", name)
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, 1, doc.Entries[0].Rank)
	assert.Equal(t, "Jigglypuff", doc.Entries[0].Name)
	assert.Equal(t, 2, doc.Entries[1].Rank)
}
