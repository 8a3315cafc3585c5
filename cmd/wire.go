package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	apiclient "github.com/rentora/admin-cli/internal/adapters/api"
	rosteradapter "github.com/rentora/admin-cli/internal/adapters/render/roster"
	sessionstore "github.com/rentora/admin-cli/internal/adapters/session/toml"
	"github.com/rentora/admin-cli/internal/application"
	"github.com/rentora/admin-cli/internal/domain"
	"github.com/rentora/admin-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configDirName   = ".rentora"
	sessionFileName = "session.toml"
)

type app struct {
	sessions       *application.SessionStore
	syncService    *application.SyncService
	moderation     *application.ModerationService
	gateway        ports.ModerationGateway
	rosterRenderer func([]domain.Record, rosteradapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault("api.base_url", "https://api.rentora.io")
	cfg.SetDefault("session.path", filepath.Join(homeDir, configDirName, sessionFileName))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	repo, err := sessionstore.NewStore(envOrDefault("RA_SESSION_PATH", cfg.GetString("session.path")))
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	sessions := application.NewSessionStore(repo, ports.SystemClock{})
	gateway := &apiclient.Client{
		BaseURL:        envOrDefault("RA_API_BASE_URL", cfg.GetString("api.base_url")),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}
	caches := application.NewCacheSet()

	return &app{
		sessions:       sessions,
		syncService:    application.NewSyncService(sessions, gateway, caches),
		moderation:     application.NewModerationService(sessions, gateway, caches),
		gateway:        gateway,
		rosterRenderer: rosteradapter.Render,
		now:            time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
