package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/safewalk/internal/flagx"
	"github.com/dmitrijs2005/safewalk/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept "5s"-style strings or integer nanoseconds. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AlertContactTimeout         *timex.Duration `json:"alert_contact_timeout"`
	AlertMaxAttempts            *int            `json:"alert_max_attempts"`
	AlertRetryBackoff           *timex.Duration `json:"alert_retry_backoff"`
	AlertConcurrency            *int            `json:"alert_concurrency"`
	NotifierWebhookURL          *string         `json:"notifier_webhook_url"`
	SeedDemoData                *bool           `json:"seed_demo_data"`
	S3RootUser                  *string         `json:"s3_root_user"`
	S3RootPassword              *string         `json:"s3_root_password"`
	S3Bucket                    *string         `json:"s3_bucket"`
	S3Region                    *string         `json:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c / -config. Nothing is
// loaded when neither flag is given. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.AlertMaxAttempts, c.AlertMaxAttempts)
	setIf(&config.AlertConcurrency, c.AlertConcurrency)
	setIf(&config.NotifierWebhookURL, c.NotifierWebhookURL)
	setIf(&config.SeedDemoData, c.SeedDemoData)
	setIf(&config.S3RootUser, c.S3RootUser)
	setIf(&config.S3RootPassword, c.S3RootPassword)
	setIf(&config.S3Bucket, c.S3Bucket)
	setIf(&config.S3Region, c.S3Region)
	setIf(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AlertContactTimeout != nil {
		config.AlertContactTimeout = c.AlertContactTimeout.Duration
	}
	if c.AlertRetryBackoff != nil {
		config.AlertRetryBackoff = c.AlertRetryBackoff.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
