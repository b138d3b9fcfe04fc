// Package integrity provides health checks over the ranking data.
//
// # Checks Provided
//
//   - Schema: the pokemon and votes tables contain every column declared by the GORM models.
//   - Votes: no vote names the same Pokémon twice or references a missing one.
//   - Ratings: no rating is null and the ratings sum to 1200 per Pokémon. Elo
//     updates are zero-sum, so any drift points at a partial write.
//   - Storage: the bucket exists and holds the catalog snapshot (skipped without storage).
//   - Catalog: every dex number in the snapshot is in the database and the other
//     way round, with matching names and slugs.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema
//   - GET /integrity/votes
//   - GET /integrity/ratings
//   - GET /integrity/storage
//   - GET /integrity/catalog
package integrity
