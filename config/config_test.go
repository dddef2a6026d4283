package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: eventdesk
  log:
    level: debug
http:
  port: 9090
  publicBaseUrl: ""
googleOAuth:
  clientId: yaml-client
  clientSecret: ""
  redirectUri: http://localhost:9090/oauth2callback
  refreshToken: ""
  timeout: 5s
storage:
  provider: blob
  bucketUrl: mem://
`

func TestLoadWithEnv_OverlaysPrefixedEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("EVENTDESK_GOOGLEOAUTH_CLIENTSECRET", "env-secret")
	t.Setenv("EVENTDESK_GOOGLEOAUTH_REFRESHTOKEN", "seeded-refresh")
	t.Setenv("EVENTDESK_HTTP_PUBLICBASEURL", "http://desk.local:9090/")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, "yaml-client", cfg.GoogleOAuth.ClientID)
	assert.Equal(t, "env-secret", cfg.GoogleOAuth.ClientSecret)
	assert.Equal(t, "seeded-refresh", cfg.GoogleOAuth.RefreshToken)
	assert.Equal(t, 5*time.Second, cfg.GoogleOAuth.Timeout)
	assert.Equal(t, "http://desk.local:9090", cfg.HTTP.PublicBaseURL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StorageProviderBlob, cfg.Storage.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHost, cfg.HTTP.Host)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8080", cfg.HTTP.PublicBaseURL)
	assert.Equal(t, DefaultScopes(), cfg.GoogleOAuth.Scopes)
	assert.Equal(t, defaultProviderTimeout, cfg.GoogleOAuth.Timeout)
	assert.Equal(t, StorageProviderDrive, cfg.Storage.Provider)
	assert.Equal(t, defaultStorageTimeout, cfg.Storage.Timeout)
}
