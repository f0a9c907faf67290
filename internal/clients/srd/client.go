package srd

import (
	"log"
	"net/http"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HTTPClient *http.Client
}

// New creates an SRD API client backed by the public 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	apiClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: apiClient,
	}, nil
}

func (c *client) GetEquipment(key string) (equipment.Equipment, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("equipment key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	eq := apiEquipmentInterfaceToEquipment(response)
	if eq == nil {
		return nil, dnderr.NotFoundf("equipment '%s' has an unknown type", key)
	}
	return eq, nil
}

func (c *client) GetEquipmentByCategory(category string) ([]equipment.Equipment, error) {
	if category == "" {
		return nil, dnderr.InvalidArgument("equipment category is required")
	}

	categoryData, err := c.client.GetEquipmentCategory(category)
	if err != nil {
		return nil, err
	}

	items := make([]equipment.Equipment, 0, len(categoryData.Equipment))
	for _, ref := range categoryData.Equipment {
		if ref.Key == "" {
			continue
		}
		eq, err := c.GetEquipment(ref.Key)
		if err != nil {
			// Keep going, one missing item should not sink the category
			log.Printf("failed to get equipment %s: %v", ref.Key, err)
			continue
		}
		items = append(items, eq)
	}

	return items, nil
}

func (c *client) ListEquipment() ([]equipment.Equipment, error) {
	refs, err := c.client.ListEquipment()
	if err != nil {
		return nil, err
	}

	items := make([]equipment.Equipment, 0, len(refs))
	for _, ref := range refs {
		if ref.Key == "" {
			continue
		}
		eq, err := c.GetEquipment(ref.Key)
		if err != nil {
			log.Printf("failed to get equipment %s: %v", ref.Key, err)
			continue
		}
		items = append(items, eq)
	}

	return items, nil
}
