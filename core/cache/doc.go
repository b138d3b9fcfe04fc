// Package cache provides a TTL snapshot cache with stampede protection.
//
// The ranking feature reads the full item table for every pair request and
// every leaderboard request. A Snapshot can hold that read for a short TTL;
// the Rating Updater invalidates it after each committed vote so the
// leaderboard always reflects committed ratings.
//
// A TTL of zero (the default) turns the cache into a pass-through.
//
// # Usage
//
//	items := cache.NewSnapshot(5*time.Second, repo.ListAll)
//	all, err := items.Get(ctx)
//	// after a write:
//	items.Invalidate()
package cache
