package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Sentry.Enabled)
	assert.False(t, cfg.Pyroscope.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestValidateMonitoring(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr string
	}{
		{
			name:    "sentry without dsn",
			mutate:  func(c *Configuration) { c.Sentry.Enabled = true },
			wantErr: "sentry.dsn",
		},
		{
			name: "sentry with dsn",
			mutate: func(c *Configuration) {
				c.Sentry.Enabled = true
				c.Sentry.DSN = "https://key@sentry.example/1"
			},
		},
		{
			name:    "pyroscope without server",
			mutate:  func(c *Configuration) { c.Pyroscope.Enabled = true },
			wantErr: "pyroscope.server_address",
		},
		{
			name:    "sample rate above one",
			mutate:  func(c *Configuration) { c.Sentry.SampleRate = 1.5 },
			wantErr: "SampleRate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
