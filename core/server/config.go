package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AllowedOrigins is a comma separated list of CORS origins.
	AllowedOrigins string `mapstructure:"allowed_origins" default:"*"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Origins returns the normalized CORS origin list as fiber expects it.
func (c Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
