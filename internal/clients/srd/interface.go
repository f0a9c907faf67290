package srd

//go:generate mockgen -destination=mock/mock_client.go -package=mocksrd . Client

import "github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"

// Client fetches catalog data from the 5e SRD API and converts it to
// domain types
type Client interface {
	// GetEquipment fetches one piece of equipment by its SRD key
	GetEquipment(key string) (equipment.Equipment, error)

	// GetEquipmentByCategory fetches everything in an SRD equipment
	// category, such as "martial-weapons" or "heavy-armor"
	GetEquipmentByCategory(category string) ([]equipment.Equipment, error)

	// ListEquipment fetches the entire equipment catalog
	ListEquipment() ([]equipment.Equipment, error)
}
