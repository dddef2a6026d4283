package impl

import (
	"io"
	"log/slog"
	"time"

	"eventdesk/config"
)

const testPublicBaseURL = "http://localhost:8080"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID: "test_client_id",
			Scopes:   []string{"profile", "email", "https://www.googleapis.com/auth/drive.file"},
		},
		Storage: &config.StorageConfig{
			Provider: config.StorageProviderBlob,
			Timeout:  time.Minute,
		},
	}
	cfg.HTTP.PublicBaseURL = testPublicBaseURL + "/"

	return cfg
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
