package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the ergo command-line client,
// assembled from defaults, ERGO_* environment variables and the JSON file.
type ClientConfig struct {
	// ServerURL is the base URL of the ergo API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the bearer token for guarded commands.
	Token string
	// UserID is the owner of the tasks and tags the client works with.
	UserID string
}

// GetClientConfig builds and validates the client config view. Flags are
// left to the command-line framework of the client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		Token:          cfg.Client.Token,
		UserID:         cfg.Client.UserID,
	}

	return clientCfg, clientCfg.validate()
}
