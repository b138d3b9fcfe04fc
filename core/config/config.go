package config

import (
	"fmt"
	"reflect"
	"strings"

	"roundest/core/database"
	"roundest/core/logger"
	"roundest/core/server"
	"roundest/core/storage"
	"roundest/feature/catalog"
	"roundest/feature/ranking"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used for catalog
	// snapshots and leaderboard exports.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Ranking holds configuration for pairing and the leaderboard.
	Ranking ranking.Config `mapstructure:"ranking"`
	// Catalog holds configuration for seeding.
	Catalog catalog.Config `mapstructure:"catalog"`
}

// Validate rejects settings that would only fail later at connect time.
func (c *Config) Validate() error {
	if !c.Database.IsValidDriver() {
		return fmt.Errorf("invalid database driver %q (want mysql, postgres or sqlite)", c.Database.Driver)
	}
	switch c.Catalog.Source {
	case catalog.SourcePokeAPI, catalog.SourceStorage:
	default:
		return fmt.Errorf("invalid catalog source %q (want pokeapi or storage)", c.Catalog.Source)
	}
	if c.Catalog.BatchSize <= 0 {
		return fmt.Errorf("catalog batch size must be positive, got %d", c.Catalog.BatchSize)
	}
	if c.Ranking.CacheTTLSeconds < 0 {
		return fmt.Errorf("ranking cache ttl must not be negative, got %d", c.Ranking.CacheTTLSeconds)
	}
	return nil
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
