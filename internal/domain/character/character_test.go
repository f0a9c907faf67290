package character_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{5, -3},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{13, 1},
		{14, 2},
		{15, 2},
		{16, 3},
		{18, 4},
		{20, 5},
		{30, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, character.AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestProficiencyBonusForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{12, 4},
		{13, 5},
		{16, 5},
		{17, 6},
		{20, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, character.ProficiencyBonusForLevel(tt.level), "level %d", tt.level)
	}
}

func TestAbilityScores_ScoreRoundTrip(t *testing.T) {
	scores := character.NewDefaultAbilityScores()

	for _, attr := range shared.Attributes {
		assert.Equal(t, 10, scores.Score(attr))
	}

	scores.SetScore(shared.AttributeDexterity, 16)
	assert.Equal(t, 16, scores.Score(shared.AttributeDexterity))
	assert.Equal(t, 3, scores.Modifier(shared.AttributeDexterity))

	m := scores.ToMap()
	assert.Equal(t, 16, m[shared.AttributeDexterity])
	assert.Len(t, m, 6)
}

func TestCharacter_IsComplete(t *testing.T) {
	char := &character.Character{Name: "Tordek", Level: 1}
	assert.False(t, char.IsComplete())

	char.Class = &rulebook.Class{Key: "fighter", Name: "Fighter"}
	char.Species = &rulebook.Species{Key: "dwarf", Name: "Dwarf"}
	assert.False(t, char.IsComplete(), "background still missing")

	char.Background = &rulebook.Background{Key: "soldier", Name: "Soldier"}
	assert.True(t, char.IsComplete())
}

func TestCharacter_EquippedBodyArmorAndShield(t *testing.T) {
	char := &character.Character{}

	chainMail := &equipment.Armor{
		Base:      equipment.BasicEquipment{Key: "chain-mail", Name: "Chain Mail", Weight: 55},
		ArmorType: equipment.ArmorTypeHeavy,
		BaseAC:    16,
	}
	shield := &equipment.Armor{
		Base:      equipment.BasicEquipment{Key: "shield", Name: "Shield", Weight: 6},
		ArmorType: equipment.ArmorTypeShield,
		BaseAC:    2,
	}

	char.AddItem(chainMail, 1)
	char.AddItem(shield, 1)
	assert.Nil(t, char.EquippedBodyArmor(), "carried but not worn")
	assert.False(t, char.HasShieldEquipped())

	char.Inventory[0].Equipped = true
	char.Inventory[1].Equipped = true
	assert.Equal(t, chainMail, char.EquippedBodyArmor())
	assert.True(t, char.HasShieldEquipped())
}

func TestCharacter_ShieldByName(t *testing.T) {
	char := &character.Character{}
	char.AddItem(&equipment.BasicEquipment{Key: "shield-plus-1", Name: "Shield +1", Weight: 6}, 1)
	char.Inventory[0].Equipped = true

	assert.True(t, char.HasShieldEquipped(), "magic shields count by name")
	assert.Nil(t, char.EquippedBodyArmor())
}

func TestCharacter_CarriedWeight(t *testing.T) {
	char := &character.Character{}
	char.AddItem(&equipment.BasicEquipment{Key: "rations", Name: "Rations", Weight: 2}, 5)
	char.AddItem(&equipment.BasicEquipment{Key: "rope", Name: "Rope, hempen", Weight: 10}, 1)

	assert.InDelta(t, 20.0, char.CarriedWeight(), 0.001)
}

func TestCharacter_AddItemStacks(t *testing.T) {
	char := &character.Character{}
	char.AddItem(&equipment.BasicEquipment{Key: "torch", Name: "Torch", Weight: 1}, 3)
	char.AddItem(&equipment.BasicEquipment{Key: "torch", Name: "Torch", Weight: 1}, 2)

	assert.Len(t, char.Inventory, 1)
	assert.Equal(t, 5, char.Inventory[0].Quantity)
}

func TestCharacter_AddSkillUpgrades(t *testing.T) {
	char := &character.Character{}
	char.AddSkill("stealth", shared.ProficiencyLevelProficient, shared.SkillSourceClass)
	char.AddSkill("stealth", shared.ProficiencyLevelProficient, shared.SkillSourceBackground)

	assert.Len(t, char.Skills, 1, "duplicates collapse")

	char.AddSkill("stealth", shared.ProficiencyLevelExpertise, shared.SkillSourceClass)
	assert.Equal(t, shared.ProficiencyLevelExpertise, char.SkillProficiencyLevel("stealth"))
}

func TestCharacter_FeatBenefits(t *testing.T) {
	char := &character.Character{
		Feats: []character.CharacterFeat{
			{
				Feat: &rulebook.Feat{
					Key:      "alert",
					Name:     "Alert",
					Benefits: &rulebook.FeatBenefit{InitiativeBonus: 5},
				},
				Source: shared.FeatSourceBackground,
			},
			{
				Feat: &rulebook.Feat{
					Key:      "archery-style",
					Name:     "Fighting Style: Archery",
					Benefits: &rulebook.FeatBenefit{RangedAttackBonus: 2},
				},
				Source: shared.FeatSourceClass,
			},
		},
	}

	benefits := char.FeatBenefits()
	assert.Equal(t, 5, benefits.InitiativeBonus)
	assert.Equal(t, 2, benefits.RangedAttackBonus)
	assert.True(t, char.HasFeat("alert"))
	assert.False(t, char.HasFeat("lucky"))
}

func TestFeat_MeetsPrerequisites(t *testing.T) {
	heavyArmorMaster := &rulebook.Feat{
		Key: "heavy-armor-master",
		Prerequisites: &rulebook.FeatPrerequisites{
			MinAbilities: map[shared.Attribute]int{shared.AttributeStrength: 13},
			MinLevel:     4,
		},
	}

	scores := map[shared.Attribute]int{shared.AttributeStrength: 15}
	assert.True(t, heavyArmorMaster.MeetsPrerequisites(scores, 4, "fighter"))
	assert.False(t, heavyArmorMaster.MeetsPrerequisites(scores, 3, "fighter"), "level too low")

	scores[shared.AttributeStrength] = 12
	assert.False(t, heavyArmorMaster.MeetsPrerequisites(scores, 4, "fighter"), "STR too low")
}

func TestClass_ASISchedule(t *testing.T) {
	wizard := &rulebook.Class{Key: "wizard"}
	fighter := &rulebook.Class{Key: "fighter", ASILevels: []int{4, 6, 8, 12, 14, 16, 19}}

	assert.Equal(t, []int{4, 8, 12, 16, 19}, wizard.ASIScheduleFor())
	assert.Equal(t, 0, wizard.ASILevelsUpTo(3))
	assert.Equal(t, 1, wizard.ASILevelsUpTo(4))
	assert.Equal(t, 2, wizard.ASILevelsUpTo(8))

	assert.Equal(t, 2, fighter.ASILevelsUpTo(6))
	assert.Equal(t, 7, fighter.ASILevelsUpTo(20))
}

func TestClass_Proficiencies(t *testing.T) {
	fighter := &rulebook.Class{
		Key:                 "fighter",
		ArmorProficiencies:  []string{"all"},
		WeaponProficiencies: []string{"simple", "martial"},
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
	}
	wizard := &rulebook.Class{
		Key:                 "wizard",
		WeaponProficiencies: []string{"dagger", "quarterstaff"},
	}

	assert.True(t, fighter.HasArmorProficiency("heavy"))
	assert.True(t, fighter.HasWeaponProficiency("martial"))
	assert.True(t, fighter.HasSavingThrowProficiency(shared.AttributeConstitution))
	assert.False(t, fighter.HasSavingThrowProficiency(shared.AttributeWisdom))

	assert.False(t, wizard.HasArmorProficiency("light"))
	assert.True(t, wizard.HasWeaponProficiency("Dagger"))
	assert.False(t, wizard.HasWeaponProficiency("longsword"))
}

func TestSpecies_TraitEffects(t *testing.T) {
	dwarf := &rulebook.Species{
		Key:   "dwarf",
		Speed: 25,
		Traits: []rulebook.Trait{
			{Key: "dwarven-toughness", Name: "Dwarven Toughness", Effect: &rulebook.TraitEffect{HPPerLevel: 1}},
			{Key: "darkvision", Name: "Darkvision", Effect: &rulebook.TraitEffect{DarkvisionRange: 60}},
		},
	}

	assert.Equal(t, 1, dwarf.HPBonusPerLevel())
	assert.Equal(t, 25, dwarf.EffectiveSpeed())
	assert.True(t, dwarf.HasTrait("darkvision"))
	assert.False(t, dwarf.HasTrait("fey-ancestry"))
}
