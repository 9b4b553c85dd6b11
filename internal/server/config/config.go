// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the Inkwell server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime embedded in every issued session token.
//   - BcryptCost: work factor for password hashing.
//   - SeedSampleData: load the demo users, tags and article at start-up.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC      string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
	SeedSampleData        bool
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside of local runs.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = bcrypt.DefaultCost
	c.SeedSampleData = true
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
