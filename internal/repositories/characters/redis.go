package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	"golang.org/x/sync/errgroup"

	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	"github.com/KirkDiggler/dnd-character-api/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// EquipmentData wraps equipment with type information for JSON marshaling
type EquipmentData struct {
	Type      equipment.EquipmentType `json:"type"`
	Equipment json.RawMessage         `json:"equipment"`
}

// InventoryItemData is the stored form of one inventory entry
type InventoryItemData struct {
	Item     EquipmentData `json:"item"`
	Equipped bool          `json:"equipped"`
	Attuned  bool          `json:"attuned"`
	Quantity int           `json:"quantity"`
}

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID                 string                             `json:"id"`
	OwnerID            string                             `json:"owner_id"`
	Name               string                             `json:"name"`
	Level              int                                `json:"level"`
	XP                 int                                `json:"xp"`
	Alignment          string                             `json:"alignment,omitempty"`
	State              shared.CharacterState              `json:"state"`
	Class              *rulebook.Class                    `json:"class"`
	Subclass           *rulebook.Subclass                 `json:"subclass"`
	Species            *rulebook.Species                  `json:"species"`
	Background         *rulebook.Background               `json:"background"`
	Attributes         character.AbilityScores            `json:"attributes"`
	MaxHitPoints       int                                `json:"max_hit_points"`
	CurrentHitPoints   int                                `json:"current_hit_points"`
	TemporaryHitPoints int                                `json:"temporary_hit_points"`
	ArmorClass         int                                `json:"armor_class"`
	Initiative         int                                `json:"initiative"`
	Speed              int                                `json:"speed"`
	ProficiencyBonus   int                                `json:"proficiency_bonus"`
	Inspiration        bool                               `json:"inspiration"`
	Skills             []character.SkillProficiency       `json:"skills"`
	SavingThrows       []character.SavingThrowProficiency `json:"saving_throws"`
	Inventory          []InventoryItemData                `json:"inventory"`
	Spells             []character.KnownSpell             `json:"spells"`
	Feats              []character.CharacterFeat          `json:"feats"`
	CreatedAt          time.Time                          `json:"created_at"`
	UpdatedAt          time.Time                          `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	draftTTL      time.Duration
}

// equipmentToData converts an Equipment interface to EquipmentData for storage
func equipmentToData(eq equipment.Equipment) (EquipmentData, error) {
	data, err := json.Marshal(eq)
	if err != nil {
		return EquipmentData{}, fmt.Errorf("failed to marshal equipment: %w", err)
	}

	eqType := equipment.EquipmentTypeUnknown
	switch eq.(type) {
	case *equipment.Weapon:
		eqType = equipment.EquipmentTypeWeapon
	case *equipment.Armor:
		eqType = equipment.EquipmentTypeArmor
	case *equipment.BasicEquipment:
		eqType = equipment.EquipmentTypeBasic
	}

	return EquipmentData{
		Type:      eqType,
		Equipment: data,
	}, nil
}

// dataToEquipment converts EquipmentData back to an Equipment interface
func dataToEquipment(data EquipmentData) (equipment.Equipment, error) {
	switch data.Type {
	case equipment.EquipmentTypeWeapon:
		var weapon equipment.Weapon
		if err := json.Unmarshal(data.Equipment, &weapon); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weapon: %w", err)
		}
		return &weapon, nil
	case equipment.EquipmentTypeArmor:
		var armor equipment.Armor
		if err := json.Unmarshal(data.Equipment, &armor); err != nil {
			return nil, fmt.Errorf("failed to unmarshal armor: %w", err)
		}
		return &armor, nil
	default:
		// Anything untyped falls back to basic equipment
		var basic equipment.BasicEquipment
		if err := json.Unmarshal(data.Equipment, &basic); err != nil {
			return nil, fmt.Errorf("unknown equipment type %q: %w", data.Type, err)
		}
		return &basic, nil
	}
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	DraftTTL      time.Duration // How long to keep draft characters (default: 24 hours)
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		draftTTL:      ttl,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// ttlFor returns the expiration for a character's state. Drafts
// expire, everything else persists.
func (r *redisRepo) ttlFor(state shared.CharacterState) time.Duration {
	if state == shared.CharacterStateDraft {
		return r.draftTTL
	}
	return 0
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data, err := r.toCharacterData(char)
	if err != nil {
		return fmt.Errorf("failed to convert character data: %w", err)
	}
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Store in Redis using pipeline for atomicity
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), r.ttlFor(char.State))
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	char, err := r.fromCharacterData(&data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert character from data: %w", err)
	}
	return char, nil
}

// GetByOwner retrieves all characters for a specific owner. The
// individual fetches fan out concurrently; characters that fail to
// load are skipped so one bad record cannot hide the rest.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	var mu sync.Mutex
	characters := make([]*character.Character, 0, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(10)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			char, getErr := r.Get(gctx, id)
			if getErr != nil {
				// Expired drafts leave dangling index entries
				return nil
			}
			mu.Lock()
			characters = append(characters, char)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return characters, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	// Preserve creation time across updates
	var existing CharacterData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data, err := r.toCharacterData(char)
	if err != nil {
		return fmt.Errorf("failed to convert character data: %w", err)
	}
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	err = r.client.Set(ctx, r.key(char.ID), string(jsonData), r.ttlFor(char.State)).Err()
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	// If ownership changed, move the index entry
	if existing.OwnerID != char.OwnerID {
		pipe := r.client.Pipeline()
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

		_, err = pipe.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update character indexes: %w", err)
		}
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	// Get character to find the owner for index cleanup
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// toCharacterData converts an entity to the data struct for storage
func (r *redisRepo) toCharacterData(char *character.Character) (*CharacterData, error) {
	inventory := make([]InventoryItemData, 0, len(char.Inventory))
	for _, item := range char.Inventory {
		data, err := equipmentToData(item.Item)
		if err != nil {
			return nil, fmt.Errorf("failed to convert inventory item: %w", err)
		}
		inventory = append(inventory, InventoryItemData{
			Item:     data,
			Equipped: item.Equipped,
			Attuned:  item.Attuned,
			Quantity: item.Quantity,
		})
	}

	return &CharacterData{
		ID:                 char.ID,
		OwnerID:            char.OwnerID,
		Name:               char.Name,
		Level:              char.Level,
		XP:                 char.XP,
		Alignment:          char.Alignment,
		State:              char.State,
		Class:              char.Class,
		Subclass:           char.Subclass,
		Species:            char.Species,
		Background:         char.Background,
		Attributes:         char.Attributes,
		MaxHitPoints:       char.MaxHitPoints,
		CurrentHitPoints:   char.CurrentHitPoints,
		TemporaryHitPoints: char.TemporaryHitPoints,
		ArmorClass:         char.ArmorClass,
		Initiative:         char.Initiative,
		Speed:              char.Speed,
		ProficiencyBonus:   char.ProficiencyBonus,
		Inspiration:        char.Inspiration,
		Skills:             char.Skills,
		SavingThrows:       char.SavingThrows,
		Inventory:          inventory,
		Spells:             char.Spells,
		Feats:              char.Feats,
	}, nil
}

// fromCharacterData converts a data struct to an entity
func (r *redisRepo) fromCharacterData(data *CharacterData) (*character.Character, error) {
	inventory := make([]*character.InventoryItem, 0, len(data.Inventory))
	for _, item := range data.Inventory {
		eq, err := dataToEquipment(item.Item)
		if err != nil {
			return nil, fmt.Errorf("failed to convert inventory data: %w", err)
		}
		inventory = append(inventory, &character.InventoryItem{
			Item:     eq,
			Equipped: item.Equipped,
			Attuned:  item.Attuned,
			Quantity: item.Quantity,
		})
	}

	return &character.Character{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Level:              data.Level,
		XP:                 data.XP,
		Alignment:          data.Alignment,
		State:              data.State,
		Class:              data.Class,
		Subclass:           data.Subclass,
		Species:            data.Species,
		Background:         data.Background,
		Attributes:         data.Attributes,
		MaxHitPoints:       data.MaxHitPoints,
		CurrentHitPoints:   data.CurrentHitPoints,
		TemporaryHitPoints: data.TemporaryHitPoints,
		ArmorClass:         data.ArmorClass,
		Initiative:         data.Initiative,
		Speed:              data.Speed,
		ProficiencyBonus:   data.ProficiencyBonus,
		Inspiration:        data.Inspiration,
		Skills:             data.Skills,
		SavingThrows:       data.SavingThrows,
		Inventory:          inventory,
		Spells:             data.Spells,
		Feats:              data.Feats,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}
