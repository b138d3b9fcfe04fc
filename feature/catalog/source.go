package catalog

import (
	"context"
	"fmt"
	"time"

	"roundest/core/storage"
	"roundest/feature/ranking"
)

// Source fetches the species to rank.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]ranking.NewItem, error)
}

// NewSource builds the source selected by cfg. client may be nil unless the
// storage source is selected.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourcePokeAPI, "":
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		return NewPokeAPISource(cfg.Endpoint, cfg.MaxDexID, timeout), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog source %q requires storage to be enabled", cfg.Source)
		}
		return NewStorageSource(client, bucket, cfg.Object), nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %q", cfg.Source)
	}
}
