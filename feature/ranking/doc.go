// Package ranking implements the comparative-ranking engine.
//
// Users are shown two Pokémon, pick the rounder one, and every vote moves both
// ratings with the Elo rule. The package owns three operations:
//
//  1. Pair Sampler: GetPair loads the full item set and applies a seeded
//     Fisher-Yates pass; the first two elements are the pair.
//  2. Rating Updater: RecordVote locks both rows, applies opposite Elo deltas
//     (K = 32) and appends a Vote, all in one transaction.
//  3. Leaderboard Reader: ListRanked returns every item by rating, highest first.
//
// # Components
//
//   - Repository: GORM persistence (items, votes, the vote transaction).
//   - Service: Orchestrates the operations, snapshot caching and metrics.
//   - Handler: Exposes HTTP endpoints.
//   - Feature: Registers the routes with the loader.
//
// # HTTP Endpoints
//
//   - GET  /pair?seed=0.42 : Two distinct Pokémon.
//   - POST /vote           : {"winnerId":1,"loserId":2}, 204 on success.
//   - GET  /results        : Leaderboard.
//   - GET  /pokemon/:slug  : One Pokémon.
package ranking
