package catalog

// Source names accepted in Config.Source.
const (
	SourcePokeAPI = "pokeapi"
	SourceStorage = "storage"
)

// Config holds configuration for catalog seeding.
type Config struct {
	// Source selects where species are fetched from: "pokeapi" or "storage".
	Source string `mapstructure:"source" default:"pokeapi"`
	// Endpoint is the PokeAPI GraphQL endpoint.
	Endpoint string `mapstructure:"endpoint" default:"https://beta.pokeapi.co/graphql/v1beta"`
	// Object is the bucket key of the catalog snapshot.
	Object string `mapstructure:"object" default:"catalog/pokemon.json"`
	// BatchSize is the number of items inserted per statement.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// MaxDexID is the highest national dex number fetched from PokeAPI.
	MaxDexID int `mapstructure:"max_dex_id" default:"1025"`
	// TimeoutSeconds bounds a single PokeAPI request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
