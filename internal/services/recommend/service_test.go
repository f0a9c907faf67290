package recommend_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-api/internal/services/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommender(t *testing.T) recommend.Service {
	t.Helper()
	svc, err := recommend.NewService(&recommend.ServiceConfig{})
	require.NoError(t, err)
	return svc
}

func optimizedFighter() *character.Character {
	char := &character.Character{
		Name:  "Tordek",
		Level: 1,
		Class: &rulebook.Class{
			Key:            "fighter",
			Name:           "Fighter",
			PrimaryAbility: shared.AttributeStrength,
		},
		Species:    &rulebook.Species{Key: "human", Name: "Human"},
		Background: &rulebook.Background{Key: "soldier", Name: "Soldier"},
		Attributes: character.NewDefaultAbilityScores(),
	}
	char.Attributes.Strength = 16
	char.Attributes.Constitution = 14
	char.AddSkill("athletics", shared.ProficiencyLevelProficient, shared.SkillSourceClass)
	return char
}

func TestRecommendClasses(t *testing.T) {
	svc := newRecommender(t)

	t.Run("tank playstyle", func(t *testing.T) {
		recs := svc.RecommendClasses([]string{"tank"}, recommend.ExperienceAdvanced)

		assert.Equal(t, []string{"Barbarian", "Fighter", "Paladin"}, recs.Primary)
		assert.Equal(t, []string{"Cleric", "Druid"}, recs.Secondary)
	})

	t.Run("beginners get the friendly classes mixed in", func(t *testing.T) {
		recs := svc.RecommendClasses([]string{"tank"}, recommend.ExperienceBeginner)

		assert.Contains(t, recs.Primary, "Rogue")
	})

	t.Run("primary wins over secondary", func(t *testing.T) {
		recs := svc.RecommendClasses([]string{"sneaky", "damage_dealer"}, recommend.ExperienceAdvanced)

		assert.Contains(t, recs.Primary, "Rogue")
		assert.NotContains(t, recs.Secondary, "Rogue")
		assert.NotContains(t, recs.Secondary, "Ranger", "Ranger is primary for damage_dealer")
	})

	t.Run("unknown playstyle yields nothing", func(t *testing.T) {
		recs := svc.RecommendClasses([]string{"gardener"}, recommend.ExperienceAdvanced)

		assert.Empty(t, recs.Primary)
		assert.Empty(t, recs.Secondary)
	})
}

func TestBackgroundAndSpeciesSynergies(t *testing.T) {
	svc := newRecommender(t)

	assert.Equal(t, []string{"Soldier", "Guard", "Noble", "Folk Hero"}, svc.BackgroundsForClass("Fighter"))
	assert.Equal(t, []string{"Human", "Dwarf", "Dragonborn", "Goliath"}, svc.SpeciesForClass("Fighter"))
	assert.Empty(t, svc.BackgroundsForClass("Artificer"))
}

func TestAbilityPriorityAndAssignment(t *testing.T) {
	svc := newRecommender(t)

	priorities := svc.AbilityPriority("Wizard")
	assert.Equal(t, 1, priorities[shared.AttributeIntelligence])
	assert.Equal(t, 6, priorities[shared.AttributeStrength])

	assignment, err := svc.SuggestScoreAssignment("Wizard", []int{15, 14, 13, 12, 10, 8})
	require.NoError(t, err)
	assert.Equal(t, 15, assignment[shared.AttributeIntelligence])
	assert.Equal(t, 14, assignment[shared.AttributeConstitution])
	assert.Equal(t, 8, assignment[shared.AttributeStrength])

	_, err = svc.SuggestScoreAssignment("Wizard", []int{15, 14})
	assert.Error(t, err)

	_, err = svc.SuggestScoreAssignment("Artificer", []int{15, 14, 13, 12, 10, 8})
	assert.Error(t, err)
}

func TestStartingEquipment(t *testing.T) {
	svc := newRecommender(t)
	char := optimizedFighter()

	recs := svc.StartingEquipment(char)

	assert.Contains(t, recs.Weapons, "Longsword")
	assert.Contains(t, recs.Tools, "Gaming set")
	assert.Contains(t, recs.Other, "Backpack")

	empty := svc.StartingEquipment(&character.Character{})
	assert.Empty(t, empty.Weapons)
	assert.Empty(t, empty.Other)
}

func TestSpellsForClass(t *testing.T) {
	svc := newRecommender(t)

	cantrips := svc.SpellsForClass("Wizard", 0)
	require.Len(t, cantrips, 3)
	assert.Equal(t, "Mage Hand", cantrips[0].Name)

	firstLevel := svc.SpellsForClass("Warlock", 1)
	require.NotEmpty(t, firstLevel)
	assert.Equal(t, "Hex", firstLevel[0].Name)

	assert.Empty(t, svc.SpellsForClass("Fighter", 1))
}

func TestFeatsForBuild(t *testing.T) {
	svc := newRecommender(t)

	feats := svc.FeatsForBuild(optimizedFighter())
	require.Len(t, feats, 6, "four class picks padded with general feats")
	assert.Equal(t, "Great Weapon Master", feats[0].Name)

	names := make(map[string]int)
	for _, f := range feats {
		names[f.Name]++
	}
	for name, count := range names {
		assert.Equal(t, 1, count, "%s appears once", name)
	}

	assert.Nil(t, svc.FeatsForBuild(&character.Character{}))
}

func TestAnalyzeSynergies(t *testing.T) {
	svc := newRecommender(t)

	t.Run("incomplete build", func(t *testing.T) {
		analysis := svc.AnalyzeSynergies(&character.Character{})
		assert.Contains(t, analysis.Weaknesses, "Character build incomplete")
	})

	t.Run("optimized fighter", func(t *testing.T) {
		analysis := svc.AnalyzeSynergies(optimizedFighter())

		assert.Contains(t, analysis.Strengths, "Strong Strength (16) for Fighter")
		assert.Contains(t, analysis.Strengths, "Good Constitution (14) for survivability")
		assert.Contains(t, analysis.Strengths, "Soldier background synergizes well with Fighter")
		assert.Contains(t, analysis.Strengths, "Human species complements Fighter abilities")
		assert.Contains(t, analysis.Suggestions, "Consider equipping armor for better AC")
	})

	t.Run("squishy wizard", func(t *testing.T) {
		char := optimizedFighter()
		char.Class = &rulebook.Class{Key: "wizard", Name: "Wizard", PrimaryAbility: shared.AttributeIntelligence}
		char.Attributes = character.NewDefaultAbilityScores()
		char.Attributes.Intelligence = 10
		char.Attributes.Constitution = 8

		analysis := svc.AnalyzeSynergies(char)

		assert.Contains(t, analysis.Weaknesses, "Low Intelligence (10) may hurt effectiveness")
		assert.Contains(t, analysis.Weaknesses, "Low Constitution (8) reduces hit points")
		assert.Contains(t, analysis.Suggestions, "Consider increasing Constitution at next ASI")
		assert.Contains(t, analysis.Suggestions, "Consider Mage Armor spell for better AC")
	})
}

func TestOptimizationScore(t *testing.T) {
	svc := newRecommender(t)

	t.Run("incomplete build fails", func(t *testing.T) {
		score := svc.OptimizationScore(&character.Character{})
		assert.Equal(t, 0, score.Score)
		assert.Equal(t, "F", score.Grade)
		assert.Equal(t, "Incomplete character", score.Reason)
	})

	t.Run("fully optimized build", func(t *testing.T) {
		score := svc.OptimizationScore(optimizedFighter())

		// 30 primary + 20 CON + 15 background + 15 species + 10 no dump + 10 skills
		assert.Equal(t, 100, score.Score)
		assert.Equal(t, "A+", score.Grade)
		assert.Equal(t, 100, score.Percentage)
	})

	t.Run("middling build", func(t *testing.T) {
		char := optimizedFighter()
		char.Attributes.Strength = 13  // 20
		char.Attributes.Constitution = 10 // 10
		char.Background = &rulebook.Background{Key: "sage", Name: "Sage"} // 0
		char.Species = &rulebook.Species{Key: "gnome", Name: "Gnome"}     // 0
		// + 10 no dump stats + 10 skills = 50

		score := svc.OptimizationScore(char)
		assert.Equal(t, 50, score.Score)
		assert.Equal(t, "D", score.Grade)
	})

	t.Run("dump stat loses points", func(t *testing.T) {
		char := optimizedFighter()
		char.Attributes.Charisma = 6

		score := svc.OptimizationScore(char)
		assert.Equal(t, 90, score.Score)
		assert.Equal(t, "A+", score.Grade)
	})
}
