package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
dbname = "hms_appointments"

[auth]
jwt_secret = "secret"

[directory]
file = "directory.toml"
`

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalConfig))
	require.NoError(t, err)

	// Дефолты применены
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 720, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_Full(t *testing.T) {
	content := `
[server]
http_port = 9090
read_timeout = 5

[database]
host = "db.internal"
port = 5433
user = "hms"
password = "pass"
dbname = "hms"
sslmode = "require"

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "test-service"

[auth]
jwt_secret = "secret"
token_ttl_minutes = 30

[directory]
file = "dir.toml"
`
	cfg, err := Load(writeTempConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "dir.toml", cfg.Directory.File)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
dbname = "hms"
[auth]
jwt_secret = "secret"
[directory]
file = "dir.toml"
`,
		},
		{
			name: "missing jwt secret",
			content: `
[database]
host = "localhost"
dbname = "hms"
[directory]
file = "dir.toml"
`,
		},
		{
			name: "missing directory file",
			content: `
[database]
host = "localhost"
dbname = "hms"
[auth]
jwt_secret = "secret"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "hms",
		Password: "pass",
		DBName:   "hms_appointments",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=hms password=pass dbname=hms_appointments sslmode=disable",
		db.DSN(),
	)
}
