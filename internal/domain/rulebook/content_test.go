package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassByKey(t *testing.T) {
	fighter := rulebook.ClassByKey("fighter")
	require.NotNil(t, fighter)
	assert.Equal(t, "Fighter", fighter.Name)
	assert.Equal(t, 10, fighter.HitDie)
	assert.False(t, fighter.Spellcaster)
	assert.Equal(t, []int{4, 6, 8, 12, 14, 16, 19}, fighter.ASIScheduleFor())

	wizard := rulebook.ClassByKey("wizard")
	require.NotNil(t, wizard)
	assert.True(t, wizard.Spellcaster)
	assert.Equal(t, shared.AttributeIntelligence, wizard.SpellcastingAbility)
	assert.Equal(t, rulebook.PreparationModePrepared, wizard.PreparationMode)

	assert.Nil(t, rulebook.ClassByKey("artificer"))
	assert.Len(t, rulebook.Classes(), 12)
}

func TestSpeciesByKey(t *testing.T) {
	dwarf := rulebook.SpeciesByKey("dwarf")
	require.NotNil(t, dwarf)
	assert.Equal(t, 1, dwarf.HPBonusPerLevel())
	assert.True(t, dwarf.HasTrait("dwarven-toughness"))

	elf := rulebook.SpeciesByKey("elf")
	require.NotNil(t, elf)
	assert.Contains(t, elf.SkillProficiencies, "perception")

	goliath := rulebook.SpeciesByKey("goliath")
	require.NotNil(t, goliath)
	assert.Equal(t, 35, goliath.EffectiveSpeed())

	assert.Nil(t, rulebook.SpeciesByKey("loxodon"))
}

func TestBackgroundByKey(t *testing.T) {
	soldier := rulebook.BackgroundByKey("soldier")
	require.NotNil(t, soldier)
	assert.True(t, soldier.GrantsSkill("athletics"))
	assert.Equal(t, "savage-attacker", soldier.OriginFeatKey)

	// every background's origin feat must resolve
	for _, bg := range rulebook.Backgrounds() {
		require.NotEmpty(t, bg.OriginFeatKey, bg.Key)
		assert.NotNil(t, rulebook.FeatByKey(bg.OriginFeatKey), bg.Key)
	}
}

func TestFeatByKey(t *testing.T) {
	alert := rulebook.FeatByKey("alert")
	require.NotNil(t, alert)
	require.NotNil(t, alert.Benefits)
	assert.Equal(t, 5, alert.Benefits.InitiativeBonus)

	tough := rulebook.FeatByKey("tough")
	require.NotNil(t, tough)
	assert.Equal(t, 2, tough.Benefits.HPPerLevel)

	gwm := rulebook.FeatByKey("great-weapon-master")
	require.NotNil(t, gwm)
	scores := map[shared.Attribute]int{shared.AttributeStrength: 16}
	assert.False(t, gwm.MeetsPrerequisites(scores, 1, "fighter"))
	assert.True(t, gwm.MeetsPrerequisites(scores, 4, "fighter"))
}

func TestSpellByKey(t *testing.T) {
	fireBolt := rulebook.SpellByKey("fire-bolt")
	require.NotNil(t, fireBolt)
	assert.True(t, fireBolt.IsCantrip())
	assert.True(t, fireBolt.AvailableTo("wizard"))
	assert.False(t, fireBolt.AvailableTo("cleric"))

	cure := rulebook.SpellByKey("cure-wounds")
	require.NotNil(t, cure)
	assert.Equal(t, 1, cure.Level)
	assert.True(t, cure.AvailableTo("paladin"))

	assert.Nil(t, rulebook.SpellByKey("wish"))
}
