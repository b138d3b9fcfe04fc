// Package catalog fills the pokemon table and exports the leaderboard.
//
// Species come from a Source:
//
//   - pokeapi: one GraphQL query against the PokeAPI beta endpoint for every
//     Pokémon up to catalog.max_dex_id, with species names.
//   - storage: a JSON array previously stored in the bucket (see --snapshot).
//
// The Seeder removes duplicate dex numbers, sorts by dex number and inserts in
// batches of catalog.batch_size. Existing dex numbers are skipped, so seeding is
// safe to repeat.
package catalog
