// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the SafeWalk server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory storage.
//   - SecretKey: secret the session token signing key is derived from.
//   - AccessTokenValidityDuration: session token lifetime.
//   - AlertContactTimeout / AlertMaxAttempts / AlertRetryBackoff /
//     AlertConcurrency: delivery policy of the emergency alert fan-out.
//   - NotifierWebhookURL: when set, notifications are POSTed there instead of logged.
//   - SeedDemoData: seed every new session with sample contacts and reports.
//   - S3*: alert archive backend. An empty bucket disables archiving.
type Config struct {
	EndpointAddrGRPC            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AlertContactTimeout         time.Duration
	AlertMaxAttempts            int
	AlertRetryBackoff           time.Duration
	AlertConcurrency            int
	NotifierWebhookURL          string
	SeedDemoData                bool
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret must be overridden outside of local runs.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.AlertContactTimeout = 5 * time.Second
	c.AlertMaxAttempts = 3
	c.AlertRetryBackoff = 200 * time.Millisecond
	c.AlertConcurrency = 4
	c.NotifierWebhookURL = ""
	c.SeedDemoData = false
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
