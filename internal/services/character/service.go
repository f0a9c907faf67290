package character

import (
	"context"

	"github.com/KirkDiggler/dnd-character-api/internal/clients/srd"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	characterRepo "github.com/KirkDiggler/dnd-character-api/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-character-api/internal/services/calculator"
	"github.com/KirkDiggler/dnd-character-api/internal/services/validation"
	"github.com/KirkDiggler/dnd-character-api/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// Service drives the character lifecycle: creation, edits, derived
// stat upkeep, and the draft → complete → archived transitions
type Service interface {
	// CreateCharacter starts a new draft with whatever choices have
	// been made so far
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ListCharacters lists all characters for an owner
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error)

	// UpdateCharacter applies edits and re-derives dependent stats
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*character.Character, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, characterID string) error

	// AddEquipment fetches an item from the SRD catalog and puts it in
	// the character's inventory
	AddEquipment(ctx context.Context, input *AddEquipmentInput) (*character.Character, error)

	// GetCharacterStats computes the full derived sheet
	GetCharacterStats(ctx context.Context, characterID string) (*calculator.CharacterStats, error)

	// AutoCalculateStats recomputes and persists the derived fields
	AutoCalculateStats(ctx context.Context, characterID string) (*character.Character, error)

	// ValidateCharacter runs the creation rules against a character
	ValidateCharacter(ctx context.Context, characterID string) (*validation.Result, error)

	// FinalizeCharacter moves a draft to complete once it validates
	// without errors
	FinalizeCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ArchiveCharacter retires a completed character
	ArchiveCharacter(ctx context.Context, characterID string) (*character.Character, error)
}

// CreateCharacterInput contains the creation choices. Everything past
// owner and name is optional, drafts fill in over time.
type CreateCharacterInput struct {
	OwnerID       string
	Name          string
	ClassKey      string
	SubclassKey   string
	SpeciesKey    string
	BackgroundKey string
	Alignment     string
	AbilityScores map[shared.Attribute]int
	Skills        []string // class skill picks
}

// UpdateCharacterInput carries edits. Nil fields are left alone.
type UpdateCharacterInput struct {
	CharacterID   string
	Name          *string
	Level         *int
	XP            *int
	Alignment     *string
	AbilityScores map[shared.Attribute]int
}

// AddEquipmentInput names an SRD item to add to the inventory
type AddEquipmentInput struct {
	CharacterID  string
	EquipmentKey string
	Quantity     int
	Equip        bool
	Attune       bool
}

type service struct {
	repository Repository
	calculator calculator.Service
	validator  validation.Service
	srdClient  srd.Client
	uuider     uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository // Required
	Calculator    calculator.Service
	Validator     validation.Service
	SRDClient     srd.Client // Optional, AddEquipment fails without it
	UUIDGenerator uuid.Generator
}

// NewService creates a character service. Calculator and validator
// default to real implementations when not supplied.
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}
	if cfg.Repository == nil {
		return nil, dnderr.InvalidArgument("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		calculator: cfg.Calculator,
		validator:  cfg.Validator,
		srdClient:  cfg.SRDClient,
		uuider:     cfg.UUIDGenerator,
	}

	if svc.calculator == nil {
		calc, err := calculator.NewService(&calculator.ServiceConfig{})
		if err != nil {
			return nil, err
		}
		svc.calculator = calc
	}
	if svc.validator == nil {
		validator, err := validation.NewService(&validation.ServiceConfig{
			Calculator: svc.calculator,
		})
		if err != nil {
			return nil, err
		}
		svc.validator = validator
	}
	if svc.uuider == nil {
		svc.uuider = uuid.NewGoogleUUIDGenerator()
	}

	return svc, nil
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	char := &character.Character{
		ID:         s.uuider.New(),
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Level:      1,
		Alignment:  input.Alignment,
		State:      shared.CharacterStateDraft,
		Attributes: character.NewDefaultAbilityScores(),
	}

	for attr, score := range input.AbilityScores {
		char.Attributes.SetScore(attr, score)
	}

	if input.ClassKey != "" {
		class := rulebook.ClassByKey(input.ClassKey)
		if class == nil {
			return nil, dnderr.NotFoundf("class '%s' not found", input.ClassKey).
				WithMeta("class_key", input.ClassKey)
		}
		char.Class = class

		if input.SubclassKey != "" {
			subclass := findSubclass(class, input.SubclassKey)
			if subclass == nil {
				return nil, dnderr.NotFoundf("subclass '%s' not found for class '%s'", input.SubclassKey, input.ClassKey).
					WithMeta("subclass_key", input.SubclassKey)
			}
			char.Subclass = subclass
		}
	}

	if input.SpeciesKey != "" {
		species := rulebook.SpeciesByKey(input.SpeciesKey)
		if species == nil {
			return nil, dnderr.NotFoundf("species '%s' not found", input.SpeciesKey).
				WithMeta("species_key", input.SpeciesKey)
		}
		char.Species = species
		for _, skill := range species.SkillProficiencies {
			char.AddSkill(skill, shared.ProficiencyLevelProficient, shared.SkillSourceSpecies)
		}
	}

	if input.BackgroundKey != "" {
		background := rulebook.BackgroundByKey(input.BackgroundKey)
		if background == nil {
			return nil, dnderr.NotFoundf("background '%s' not found", input.BackgroundKey).
				WithMeta("background_key", input.BackgroundKey)
		}
		char.Background = background
		for _, skill := range background.SkillProficiencies {
			char.AddSkill(skill, shared.ProficiencyLevelProficient, shared.SkillSourceBackground)
		}
		if background.OriginFeatKey != "" {
			if feat := rulebook.FeatByKey(background.OriginFeatKey); feat != nil {
				char.Feats = append(char.Feats, character.CharacterFeat{
					Feat:   feat,
					Source: shared.FeatSourceBackground,
				})
			}
		}
	}

	// Class skill picks land after the granted ones so duplicates
	// dedupe in favor of the earlier source
	for _, skill := range input.Skills {
		char.AddSkill(skill, shared.ProficiencyLevelProficient, shared.SkillSourceClass)
	}

	s.applyDerivedStats(char)
	char.CurrentHitPoints = char.MaxHitPoints

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create character '%s'", input.Name).
			WithMeta("owner_id", input.OwnerID)
	}

	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	chars, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list characters for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	return chars, nil
}

func (s *service) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	char, err := s.GetCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, dnderr.InvalidArgument("character name cannot be empty")
		}
		char.Name = *input.Name
	}
	if input.Level != nil {
		if *input.Level < 1 || *input.Level > 20 {
			return nil, dnderr.InvalidArgumentf("level must be between 1 and 20, got %d", *input.Level)
		}
		char.Level = *input.Level
	}
	if input.XP != nil {
		char.XP = *input.XP
	}
	if input.Alignment != nil {
		char.Alignment = *input.Alignment
	}
	for attr, score := range input.AbilityScores {
		char.Attributes.SetScore(attr, score)
	}

	// Derived fields always track the edited level and scores
	s.applyDerivedStats(char)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to update character '%s'", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	return char, nil
}

func (s *service) DeleteCharacter(ctx context.Context, characterID string) error {
	if characterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	if err := s.repository.Delete(ctx, characterID); err != nil {
		return dnderr.Wrapf(err, "failed to delete character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return nil
}

func (s *service) AddEquipment(ctx context.Context, input *AddEquipmentInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.EquipmentKey == "" {
		return nil, dnderr.InvalidArgument("equipment key is required")
	}
	if s.srdClient == nil {
		return nil, dnderr.Internal("no SRD client configured")
	}

	char, err := s.GetCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	item, err := s.srdClient.GetEquipment(input.EquipmentKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to fetch equipment '%s'", input.EquipmentKey).
			WithMeta("equipment_key", input.EquipmentKey)
	}

	char.AddItem(item, input.Quantity)
	if input.Equip || input.Attune {
		for _, inv := range char.Inventory {
			if inv.Item.GetKey() == item.GetKey() {
				inv.Equipped = inv.Equipped || input.Equip
				inv.Attuned = inv.Attuned || input.Attune
			}
		}
	}

	// Armor and shields change AC, weight changes encumbrance
	s.applyDerivedStats(char)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save equipment on character '%s'", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	return char, nil
}

func (s *service) GetCharacterStats(ctx context.Context, characterID string) (*calculator.CharacterStats, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.calculator.Calculate(char), nil
}

func (s *service) AutoCalculateStats(ctx context.Context, characterID string) (*character.Character, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	s.applyDerivedStats(char)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save stats for character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

func (s *service) ValidateCharacter(ctx context.Context, characterID string) (*validation.Result, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.validator.ValidateCharacter(char), nil
}

func (s *service) FinalizeCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if !char.IsDraft() {
		return nil, dnderr.InvalidArgumentf("character '%s' is not a draft", characterID).
			WithMeta("state", string(char.State))
	}

	result := s.validator.ValidateCharacter(char)
	if !result.Valid {
		err := dnderr.Validationf("character '%s' has %d blocking issues", characterID, len(result.Errors))
		for _, issue := range result.Errors {
			err = err.WithMeta(issue.Field, issue.Message)
		}
		return nil, err
	}

	s.applyDerivedStats(char)
	char.CurrentHitPoints = char.MaxHitPoints
	char.State = shared.CharacterStateComplete

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to finalize character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

func (s *service) ArchiveCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if char.State != shared.CharacterStateComplete {
		return nil, dnderr.InvalidArgumentf("only completed characters can be archived, '%s' is %s", characterID, char.State).
			WithMeta("state", string(char.State))
	}

	char.State = shared.CharacterStateArchived
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to archive character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

// applyDerivedStats recomputes every field that follows from level,
// scores, species, feats, and equipped gear. Current HP is clamped,
// not reset, so damage survives edits.
func (s *service) applyDerivedStats(char *character.Character) {
	char.ProficiencyBonus = character.ProficiencyBonusForLevel(char.Level)
	char.MaxHitPoints = s.calculator.MaxHitPoints(char)
	if char.CurrentHitPoints > char.MaxHitPoints {
		char.CurrentHitPoints = char.MaxHitPoints
	}
	char.ArmorClass = s.calculator.ArmorClass(char)
	char.Initiative = s.calculator.Initiative(char)
	char.Speed = s.calculator.Speed(char)
}

func findSubclass(class *rulebook.Class, key string) *rulebook.Subclass {
	for i := range class.Subclasses {
		if class.Subclasses[i].Key == key {
			return &class.Subclasses[i]
		}
	}
	return nil
}
