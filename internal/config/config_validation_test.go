package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() StructuredConfig {
	return StructuredConfig{
		App:     App{TokenDuration: time.Hour, PasswordHashCost: 12},
		Auth:    Auth{JWTSecret: "secret"},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/ergo"}},
		Server:  Server{HTTPAddress: "localhost:5000", RequestTimeout: time.Second},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "empty secret", mutate: func(cfg *StructuredConfig) { cfg.Auth.JWTSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 2 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too high", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 40 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{ServerURL: "http://x", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ClientConfig{RequestTimeout: time.Second}).validate(), ErrInvalidClientConfigs)
	assert.ErrorIs(t, (&ClientConfig{ServerURL: "http://x"}).validate(), ErrInvalidClientConfigs)
}
