package characters_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	"github.com/KirkDiggler/dnd-character-api/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharacter(id, ownerID string) *character.Character {
	return &character.Character{
		ID:         id,
		OwnerID:    ownerID,
		Name:       "Test Character",
		Level:      1,
		State:      shared.CharacterStateDraft,
		Attributes: character.NewDefaultAbilityScores(),
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	char := testCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "char-1", got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	// Stored copy is isolated from the caller's struct
	char.Name = "Mutated"
	got, err = repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Test Character", got.Name)
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCharacter("char-1", "owner-1")))

	err := repo.Create(ctx, testCharacter("char-1", "owner-1"))
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Create(ctx, testCharacter("", "owner-1")))
	assert.Error(t, repo.Create(ctx, testCharacter("char-1", "")))
}

func TestInMemoryRepository_GetNotFound(t *testing.T) {
	repo := characters.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_GetByOwner(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCharacter("char-1", "owner-1")))
	require.NoError(t, repo.Create(ctx, testCharacter("char-2", "owner-1")))
	require.NoError(t, repo.Create(ctx, testCharacter("char-3", "owner-2")))

	result, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, result, 2)

	result, err = repo.GetByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestInMemoryRepository_Update(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	char := testCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))

	created, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)

	char.Name = "Renamed"
	char.Level = 2
	require.NoError(t, repo.Update(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, created.CreatedAt, got.CreatedAt, "creation time survives updates")

	err = repo.Update(ctx, testCharacter("missing", "owner-1"))
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := characters.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCharacter("char-1", "owner-1")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, dnderr.IsNotFound(err))

	err = repo.Delete(ctx, "char-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}
