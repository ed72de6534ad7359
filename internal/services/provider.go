package services

import (
	"log"

	dnd5eclient "github.com/KirkDiggler/dnd-long-rest/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/config"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	"github.com/KirkDiggler/dnd-long-rest/internal/dice"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
	"github.com/KirkDiggler/dnd-long-rest/internal/host/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/settings"
	"github.com/KirkDiggler/dnd-long-rest/internal/services/importer"
	restService "github.com/KirkDiggler/dnd-long-rest/internal/services/rest"
	"github.com/redis/go-redis/v9"
)

// Provider holds all service instances
type Provider struct {
	CharacterRepository characters.Repository
	SettingsRepository  settings.Repository
	Bus                 *events.Bus
	Host                *dnd5e.Host
	RestService         restService.Service
	// ImportService is nil without a D&D 5e API client
	ImportService *importer.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	LongRest    config.LongRestConfig
	RedisClient redis.UniversalClient // nil keeps everything in memory
	DNDClient   dnd5eclient.Client
	Bus         *events.Bus
	Roller      dice.Roller
	Confirmer   restrules.Confirmer
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	defaults, err := cfg.LongRest.Settings()
	if err != nil {
		return nil, err
	}
	variant, err := cfg.LongRest.RestVariant()
	if err != nil {
		return nil, err
	}

	// Use in-memory repositories if no redis client is provided
	var charRepo characters.Repository
	var settingsRepo settings.Repository
	if cfg.RedisClient != nil {
		charRepo = characters.NewRedis(cfg.RedisClient)
		settingsRepo = settings.NewRedis(cfg.RedisClient, defaults)
	} else {
		log.Println("Provider: no redis client, using in-memory repositories")
		charRepo = characters.NewInMemoryRepository()
		settingsRepo = settings.NewInMemoryRepository(defaults)
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	host := dnd5e.New(&dnd5e.Config{
		Store:     charRepo,
		Roller:    cfg.Roller,
		Bus:       bus,
		Confirmer: cfg.Confirmer,
		Variant:   variant,
	})

	provider := &Provider{
		CharacterRepository: charRepo,
		SettingsRepository:  settingsRepo,
		Bus:                 bus,
		Host:                host,
		RestService: restService.NewService(&restService.ServiceConfig{
			CharacterRepo: charRepo,
			SettingsRepo:  settingsRepo,
			Host:          host,
			Bus:           bus,
			Confirmer:     cfg.Confirmer,
			Variant:       variant,
			ModuleEnabled: cfg.LongRest.ModuleEnabled,
		}),
	}

	if cfg.DNDClient != nil {
		provider.ImportService = importer.NewService(&importer.ServiceConfig{
			DNDClient:  cfg.DNDClient,
			Repository: charRepo,
		})
	}

	return provider, nil
}
