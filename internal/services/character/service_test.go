package character_test

import (
	"context"
	"testing"

	mocksrd "github.com/KirkDiggler/dnd-character-api/internal/clients/srd/mock"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	mockcharacters "github.com/KirkDiggler/dnd-character-api/internal/repositories/characters/mock"
	charactersvc "github.com/KirkDiggler/dnd-character-api/internal/services/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedUUID struct {
	id string
}

func (f *fixedUUID) New() string { return f.id }

type serviceFixture struct {
	ctrl    *gomock.Controller
	repo    *mockcharacters.MockRepository
	srd     *mocksrd.MockClient
	service charactersvc.Service
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)
	srdClient := mocksrd.NewMockClient(ctrl)

	svc, err := charactersvc.NewService(&charactersvc.ServiceConfig{
		Repository:    repo,
		SRDClient:     srdClient,
		UUIDGenerator: &fixedUUID{id: "char-123"},
	})
	require.NoError(t, err)

	return &serviceFixture{
		ctrl:    ctrl,
		repo:    repo,
		srd:     srdClient,
		service: svc,
	}
}

func draftFighter() *character.Character {
	char := &character.Character{
		ID:         "char-123",
		OwnerID:    "owner-1",
		Name:       "Torvald",
		Level:      1,
		State:      shared.CharacterStateDraft,
		Class:      rulebook.ClassByKey("fighter"),
		Species:    rulebook.SpeciesByKey("dwarf"),
		Background: rulebook.BackgroundByKey("soldier"),
		Attributes: character.NewDefaultAbilityScores(),
	}
	char.Attributes.SetScore(shared.AttributeStrength, 16)
	char.Attributes.SetScore(shared.AttributeDexterity, 14)
	char.Attributes.SetScore(shared.AttributeConstitution, 14)
	char.AddSkill("athletics", shared.ProficiencyLevelProficient, shared.SkillSourceBackground)
	char.AddSkill("intimidation", shared.ProficiencyLevelProficient, shared.SkillSourceBackground)
	char.AddSkill("perception", shared.ProficiencyLevelProficient, shared.SkillSourceClass)
	char.AddSkill("survival", shared.ProficiencyLevelProficient, shared.SkillSourceClass)
	char.Feats = append(char.Feats, character.CharacterFeat{
		Feat:   rulebook.FeatByKey("savage-attacker"),
		Source: shared.FeatSourceBackground,
	})
	return char
}

func TestNewService(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := charactersvc.NewService(nil)
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("requires repository", func(t *testing.T) {
		_, err := charactersvc.NewService(&charactersvc.ServiceConfig{})
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("defaults calculator and validator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, err := charactersvc.NewService(&charactersvc.ServiceConfig{
			Repository: mockcharacters.NewMockRepository(ctrl),
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCreateCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with derived stats", func(t *testing.T) {
		f := newFixture(t)

		var created *character.Character
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, char *character.Character) error {
				created = char
				return nil
			})

		char, err := f.service.CreateCharacter(ctx, &charactersvc.CreateCharacterInput{
			OwnerID:       "owner-1",
			Name:          "Torvald",
			ClassKey:      "fighter",
			SpeciesKey:    "dwarf",
			BackgroundKey: "soldier",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     16,
				shared.AttributeDexterity:    14,
				shared.AttributeConstitution: 14,
			},
			Skills: []string{"perception", "survival"},
		})
		require.NoError(t, err)
		require.Same(t, char, created)

		assert.Equal(t, "char-123", char.ID)
		assert.Equal(t, shared.CharacterStateDraft, char.State)
		assert.Equal(t, 1, char.Level)
		assert.Equal(t, 2, char.ProficiencyBonus)

		// d10 max + CON 2 + dwarven toughness 1
		assert.Equal(t, 13, char.MaxHitPoints)
		assert.Equal(t, 13, char.CurrentHitPoints)
		assert.Equal(t, 12, char.ArmorClass)
		assert.Equal(t, 30, char.Speed)

		// soldier grants athletics and intimidation plus its origin feat
		assert.True(t, char.HasSkill("athletics"))
		assert.True(t, char.HasSkill("intimidation"))
		assert.True(t, char.HasSkill("perception"))
		assert.True(t, char.HasSkill("survival"))
		assert.True(t, char.HasFeat("savage-attacker"))
	})

	t.Run("default scores are all 10", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		char, err := f.service.CreateCharacter(ctx, &charactersvc.CreateCharacterInput{
			OwnerID: "owner-1",
			Name:    "Blank",
		})
		require.NoError(t, err)

		for _, attr := range shared.Attributes {
			assert.Equal(t, 10, char.Attributes.Score(attr))
		}
		assert.Equal(t, 10, char.ArmorClass)
		assert.Equal(t, 0, char.MaxHitPoints) // hit points need a class
	})

	t.Run("duplicate class pick keeps the earlier source", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		char, err := f.service.CreateCharacter(ctx, &charactersvc.CreateCharacterInput{
			OwnerID:       "owner-1",
			Name:          "Torvald",
			ClassKey:      "fighter",
			BackgroundKey: "soldier",
			Skills:        []string{"athletics"},
		})
		require.NoError(t, err)

		count := 0
		for _, sp := range char.Skills {
			if sp.SkillKey == "athletics" {
				count++
				assert.Equal(t, shared.SkillSourceBackground, sp.Source)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("input errors", func(t *testing.T) {
		f := newFixture(t)

		cases := []struct {
			name     string
			input    *charactersvc.CreateCharacterInput
			notFound bool
		}{
			{name: "nil input", input: nil},
			{name: "missing owner", input: &charactersvc.CreateCharacterInput{Name: "X"}},
			{name: "missing name", input: &charactersvc.CreateCharacterInput{OwnerID: "o"}},
			{
				name:     "unknown class",
				input:    &charactersvc.CreateCharacterInput{OwnerID: "o", Name: "X", ClassKey: "artificer"},
				notFound: true,
			},
			{
				name:     "unknown species",
				input:    &charactersvc.CreateCharacterInput{OwnerID: "o", Name: "X", SpeciesKey: "loxodon"},
				notFound: true,
			},
			{
				name:     "unknown background",
				input:    &charactersvc.CreateCharacterInput{OwnerID: "o", Name: "X", BackgroundKey: "pirate"},
				notFound: true,
			},
			{
				name:     "unknown subclass",
				input:    &charactersvc.CreateCharacterInput{OwnerID: "o", Name: "X", ClassKey: "fighter", SubclassKey: "samurai"},
				notFound: true,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.service.CreateCharacter(ctx, tc.input)
				require.Error(t, err)
				if tc.notFound {
					assert.True(t, dnderr.IsNotFound(err))
				} else {
					assert.True(t, dnderr.IsInvalidArgument(err))
				}
			})
		}
	})
}

func TestGetCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the character", func(t *testing.T) {
		f := newFixture(t)
		want := draftFighter()
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(want, nil)

		got, err := f.service.GetCharacter(ctx, "char-123")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("requires an ID", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GetCharacter(ctx, "")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("not found passes through", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "missing").
			Return(nil, dnderr.NotFound("character not found"))

		_, err := f.service.GetCharacter(ctx, "missing")
		assert.True(t, dnderr.IsNotFound(err))
	})
}

func TestUpdateCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("level change re-derives stats", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		level := 5
		char, err := f.service.UpdateCharacter(ctx, &charactersvc.UpdateCharacterInput{
			CharacterID: "char-123",
			Level:       &level,
		})
		require.NoError(t, err)

		assert.Equal(t, 5, char.Level)
		assert.Equal(t, 3, char.ProficiencyBonus)
		// 12 at level 1, +8 per level after, +1 dwarven toughness per level
		assert.Equal(t, 49, char.MaxHitPoints)
	})

	t.Run("rejects bad levels", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

		level := 25
		_, err := f.service.UpdateCharacter(ctx, &charactersvc.UpdateCharacterInput{
			CharacterID: "char-123",
			Level:       &level,
		})
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

		name := ""
		_, err := f.service.UpdateCharacter(ctx, &charactersvc.UpdateCharacterInput{
			CharacterID: "char-123",
			Name:        &name,
		})
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestAddEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and equips armor", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)
		f.srd.EXPECT().GetEquipment("chain-mail").Return(&equipment.Armor{
			Base:      equipment.BasicEquipment{Key: "chain-mail", Name: "Chain Mail", Weight: 55},
			ArmorType: equipment.ArmorTypeHeavy,
			BaseAC:    16,
		}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		char, err := f.service.AddEquipment(ctx, &charactersvc.AddEquipmentInput{
			CharacterID:  "char-123",
			EquipmentKey: "chain-mail",
			Quantity:     1,
			Equip:        true,
		})
		require.NoError(t, err)

		require.Len(t, char.Inventory, 1)
		assert.True(t, char.Inventory[0].Equipped)
		assert.Equal(t, 16, char.ArmorClass)
	})

	t.Run("requires an equipment key", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.AddEquipment(ctx, &charactersvc.AddEquipmentInput{
			CharacterID: "char-123",
		})
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestFinalizeCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("completes a valid draft", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

		var saved *character.Character
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, char *character.Character) error {
				saved = char
				return nil
			})

		char, err := f.service.FinalizeCharacter(ctx, "char-123")
		require.NoError(t, err)
		require.Same(t, char, saved)

		assert.Equal(t, shared.CharacterStateComplete, char.State)
		assert.Equal(t, char.MaxHitPoints, char.CurrentHitPoints)
	})

	t.Run("blocks an invalid draft", func(t *testing.T) {
		f := newFixture(t)
		incomplete := &character.Character{
			ID:         "char-123",
			OwnerID:    "owner-1",
			Level:      1,
			State:      shared.CharacterStateDraft,
			Attributes: character.NewDefaultAbilityScores(),
		}
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(incomplete, nil)

		_, err := f.service.FinalizeCharacter(ctx, "char-123")
		require.Error(t, err)
		assert.True(t, dnderr.Is(err, dnderr.CodeValidation))
	})

	t.Run("rejects non-drafts", func(t *testing.T) {
		f := newFixture(t)
		complete := draftFighter()
		complete.State = shared.CharacterStateComplete
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(complete, nil)

		_, err := f.service.FinalizeCharacter(ctx, "char-123")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestArchiveCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("archives a completed character", func(t *testing.T) {
		f := newFixture(t)
		complete := draftFighter()
		complete.State = shared.CharacterStateComplete
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(complete, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		char, err := f.service.ArchiveCharacter(ctx, "char-123")
		require.NoError(t, err)
		assert.Equal(t, shared.CharacterStateArchived, char.State)
	})

	t.Run("rejects drafts", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

		_, err := f.service.ArchiveCharacter(ctx, "char-123")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestAutoCalculateStats(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	stale := draftFighter()
	stale.MaxHitPoints = 0
	stale.ArmorClass = 0
	f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(stale, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	char, err := f.service.AutoCalculateStats(ctx, "char-123")
	require.NoError(t, err)

	assert.Equal(t, 13, char.MaxHitPoints)
	assert.Equal(t, 12, char.ArmorClass)
	assert.Equal(t, 2, char.Initiative)
	assert.Equal(t, 30, char.Speed)
}

func TestGetCharacterStats(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

	stats, err := f.service.GetCharacterStats(ctx, "char-123")
	require.NoError(t, err)

	assert.Equal(t, 13, stats.MaxHitPoints)
	assert.Equal(t, 2, stats.ProficiencyBonus)
	assert.Equal(t, 3, stats.AbilityModifiers[shared.AttributeStrength])
}

func TestValidateCharacter(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), "char-123").Return(draftFighter(), nil)

	result, err := f.service.ValidateCharacter(ctx, "char-123")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestDeleteCharacter(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Delete(gomock.Any(), "char-123").Return(nil)
		assert.NoError(t, f.service.DeleteCharacter(ctx, "char-123"))
	})

	t.Run("requires an ID", func(t *testing.T) {
		f := newFixture(t)
		err := f.service.DeleteCharacter(ctx, "")
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}
