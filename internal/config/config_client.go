package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// PageSize is the number of recipes per catalog page.
	PageSize int
}

// ClientAdapter holds the settings of the outbound catalog client.
type ClientAdapter struct {
	// CatalogURL is the base URL of the remote catalog service.
	CatalogURL string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the sqlite file holding the durable session slot.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// Client defaults applied to fields no source has set.
const (
	DefaultCatalogURL     = "https://dummyjson.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultClientDSN      = "recipe_book.db"
	DefaultPageSize       = 9
)

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{PageSize: DefaultPageSize},
		Storage: Storage{DB: DB{DSN: DefaultClientDSN}},
		Adapter: Adapter{CatalogURL: DefaultCatalogURL, RequestTimeout: DefaultRequestTimeout},
	}
}

// GetClientConfig loads the merged configuration, maps the fields the client
// runtime needs and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(clientDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			PageSize: cfg.App.PageSize,
		},
		Adapter: ClientAdapter{
			CatalogURL:     cfg.Adapter.CatalogURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
}
