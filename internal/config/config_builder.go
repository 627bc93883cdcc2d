// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"dario.cat/mergo"
)

const (
	defaultJWTSecret        = "default"
	defaultTokenIssuer      = "ergo"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 12
	defaultHostname         = "localhost"
	defaultPort             = "5000"
	defaultRequestTimeout   = 30 * time.Second
	defaultClientServerURL  = "http://localhost:5000"
	defaultClientTimeout    = 10 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// merge folds every collected config into one, later non-zero values
// overriding earlier ones, and derives the listen address.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Server.HTTPAddress == "" && (config.Hostname != "" || config.Port != "") {
		host, port := config.Hostname, config.Port
		if host == "" {
			host = defaultHostname
		}
		if port == "" {
			port = defaultPort
		}
		config.Server.HTTPAddress = net.JoinHostPort(host, port)
	}

	return config, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         "debug",
		},
		Auth: Auth{
			JWTSecret: defaultJWTSecret,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
			CORSOrigins:    []string{"*"},
		},
		Client: Client{
			ServerURL:      defaultClientServerURL,
			RequestTimeout: defaultClientTimeout,
		},
		Hostname: defaultHostname,
		Port:     defaultPort,
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
