package services

import (
	"github.com/KirkDiggler/dnd-character-api/internal/clients/srd"
	"github.com/KirkDiggler/dnd-character-api/internal/dice"
	"github.com/KirkDiggler/dnd-character-api/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-character-api/internal/services/calculator"
	characterService "github.com/KirkDiggler/dnd-character-api/internal/services/character"
	"github.com/KirkDiggler/dnd-character-api/internal/services/recommend"
	"github.com/KirkDiggler/dnd-character-api/internal/services/validation"
)

// Provider holds all service instances
type Provider struct {
	CharacterService      characterService.Service
	CalculatorService     calculator.Service
	ValidationService     validation.Service
	RecommendationService recommend.Service
	Roller                dice.Roller
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SRDClient           srd.Client
	CharacterRepository characters.Repository
	Roller              dice.Roller
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	calcService, err := calculator.NewService(&calculator.ServiceConfig{
		Roller: roller,
	})
	if err != nil {
		return nil, err
	}

	validationService, err := validation.NewService(&validation.ServiceConfig{
		Calculator: calcService,
	})
	if err != nil {
		return nil, err
	}

	recommendService, err := recommend.NewService(&recommend.ServiceConfig{})
	if err != nil {
		return nil, err
	}

	charService, err := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
		Calculator: calcService,
		Validator:  validationService,
		SRDClient:  cfg.SRDClient,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		CharacterService:      charService,
		CalculatorService:     calcService,
		ValidationService:     validationService,
		RecommendationService: recommendService,
		Roller:                roller,
	}, nil
}
