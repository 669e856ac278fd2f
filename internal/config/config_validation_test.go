package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "secret",
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/skillmarket"}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		RateLimit: RateLimit{
			Requests: DefaultRateLimitRequests,
			Window:   DefaultRateLimitWindow,
		},
	}
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero rate limit requests",
			mutate:  func(cfg *StructuredConfig) { cfg.RateLimit.Requests = 0 },
			wantErr: ErrInvalidRateLimitConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip address", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
