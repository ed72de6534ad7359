package dnd5e

import (
	"log"
	"net/http"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
)

// TODO: add context to functions
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
	// BaseURL points the client at a mirror of the API; empty uses the public one
	BaseURL string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e client config is required")
	}

	httpClient := cfg.HttpClient
	if cfg.BaseURL != "" {
		rewritten, err := withBaseURL(httpClient, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		httpClient = rewritten
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) ListClasses() ([]*Class, error) {
	response, err := c.client.ListClasses()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list classes")
	}

	return apiReferenceItemsToClasses(response), nil
}

func (c *client) GetClass(key string) (*Class, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	response, err := c.client.GetClass(key)
	if err != nil {
		log.Printf("DND5E: failed to get class %s: %v", key, err)
		return nil, dnderr.WrapWithCode(err, dnderr.CodeNotFound, "failed to get class").
			WithMeta("class", key)
	}

	class := apiClassToClass(response)
	if class.HitDie == 0 {
		return nil, dnderr.Internalf("class %s has no hit die", key).
			WithMeta("class", key)
	}

	return class, nil
}
