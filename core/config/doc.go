// Package config provides configuration management for roundest.
//
// Values come from environment variables, optionally loaded from a .env file
// in the given directory. Defaults live in the `default` struct tags of each
// section and are registered with Viper by reflection.
//
// # Configuration Structure
//
//   - Server: HTTP port and allowed CORS origins (SERVER_PORT, SERVER_ALLOWED_ORIGINS)
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket, off unless STORAGE_ENABLED=true
//   - Log: level and format
//   - Ranking: snapshot cache TTL (RANKING_CACHE_TTL_SECONDS, 0 disables it)
//   - Catalog: seeding source, PokeAPI endpoint, snapshot object, batch size
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
