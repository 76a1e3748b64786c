package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServerApp holds the token settings of the stand-in catalog server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerConfig is the stand-in catalog server view of [StructuredConfig].
type ServerConfig struct {
	Server Server
	App    ServerApp
}

// Server defaults. A missing sign key is replaced by a random one, so tokens
// do not survive a restart.
const (
	DefaultServerAddress = "localhost:8080"
	DefaultTokenIssuer   = "recipe-book-catalog"
	DefaultTokenDuration = time.Hour
	DefaultServerTimeout = 30 * time.Second
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  uuid.NewString(),
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
	}
}

// GetServerConfig loads the merged configuration for the stand-in catalog
// server and validates it.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(serverDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server: cfg.Server,
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
	}
}
