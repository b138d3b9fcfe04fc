package catalog

import (
	"context"
	"fmt"
	"strings"

	"roundest/core/storage"
	"roundest/core/utils"
	"roundest/feature/ranking"
)

// dexKeys are the accepted spellings of the dex number in snapshot entries.
var dexKeys = []string{"dexId", "dexNumber", "dex_id", "id"}

// StorageSource reads species from a JSON array stored in the bucket.
// Entries are loose objects: numbers may be strings and the dex number may
// use any of dexKeys.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a storage source.
func NewStorageSource(client storage.Client, bucket, object string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object}
}

// Name returns the source name.
func (s *StorageSource) Name() string {
	return SourceStorage
}

// Fetch downloads and decodes the snapshot. Entries without a name or a
// positive dex number are dropped.
func (s *StorageSource) Fetch(ctx context.Context) ([]ranking.NewItem, error) {
	var raw []map[string]any
	if err := storage.GetJSON(ctx, s.client, s.bucket, s.object, &raw); err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	items := make([]ranking.NewItem, 0, len(raw))
	for _, entry := range raw {
		dexVal, _ := utils.FirstPresent(entry, dexKeys...)
		nameVal, _ := utils.FirstPresent(entry, "name")

		dex := utils.ToInt(dexVal)
		name := strings.TrimSpace(utils.ToString(nameVal))
		if dex <= 0 || name == "" {
			continue
		}
		items = append(items, ranking.NewItem{Name: name, DexID: dex})
	}
	return items, nil
}
