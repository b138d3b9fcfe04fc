package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"roundest/feature/ranking"
)

// speciesQuery asks for every Pokémon up to a dex number together with its
// species name. The REST API needs one request per species for names.
const speciesQuery = `query GetAllPokemon($maxId: Int!) {
  pokemon_v2_pokemon(where: {id: {_lte: $maxId}}, order_by: {id: asc}) {
    id
    pokemon_v2_pokemonspecy {
      name
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type speciesResponse struct {
	Data struct {
		Pokemon []struct {
			ID      int `json:"id"`
			Species *struct {
				Name string `json:"name"`
			} `json:"pokemon_v2_pokemonspecy"`
		} `json:"pokemon_v2_pokemon"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// PokeAPISource fetches species from the PokeAPI GraphQL endpoint.
type PokeAPISource struct {
	Endpoint string
	MaxDexID int
	Client   *http.Client
}

// NewPokeAPISource creates a PokeAPI source.
func NewPokeAPISource(endpoint string, maxDexID int, timeout time.Duration) *PokeAPISource {
	return &PokeAPISource{
		Endpoint: endpoint,
		MaxDexID: maxDexID,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the source name.
func (s *PokeAPISource) Name() string {
	return SourcePokeAPI
}

// Fetch runs the species query.
func (s *PokeAPISource) Fetch(ctx context.Context) ([]ranking.NewItem, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     speciesQuery,
		Variables: map[string]any{"maxId": s.MaxDexID},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pokeapi response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pokeapi returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var out speciesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode pokeapi response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("pokeapi query failed: %s", out.Errors[0].Message)
	}

	items := make([]ranking.NewItem, 0, len(out.Data.Pokemon))
	for _, p := range out.Data.Pokemon {
		if p.Species == nil || p.Species.Name == "" {
			continue
		}
		items = append(items, ranking.NewItem{Name: p.Species.Name, DexID: p.ID})
	}
	return items, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
