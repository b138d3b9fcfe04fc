// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so both AWS S3 and
// self-hosted MinIO work, and so tests can use core/storage/mocks.
//
// The bucket holds two kinds of objects: catalog snapshots used for offline
// seeding, and leaderboard exports written by `results --export`.
//
// # Helpers
//
//   - EnsureBucket: Creates the bucket on first use.
//   - PutJSON / GetJSON: Store and load JSON documents.
//   - ObjectExists: Exact-key presence check via a prefix listing.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.PutJSON(ctx, client, cfg.Storage.Bucket, "catalog/pokemon.json", species)
package storage
