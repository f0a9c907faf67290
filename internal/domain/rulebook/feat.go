package rulebook

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// FeatBenefit carries the mechanical impact of a feat so calculators
// can apply feats without matching on names
type FeatBenefit struct {
	InitiativeBonus   int `json:"initiative_bonus,omitempty"`
	RangedAttackBonus int `json:"ranged_attack_bonus,omitempty"`
	SpeedBonus        int `json:"speed_bonus,omitempty"`
	HPPerLevel        int `json:"hp_per_level,omitempty"`
}

// FeatPrerequisites gate which characters can take a feat
type FeatPrerequisites struct {
	MinAbilities map[shared.Attribute]int `json:"min_abilities,omitempty"`
	MinLevel     int                      `json:"min_level,omitempty"`
	Classes      []string                 `json:"classes,omitempty"`
}

// Feat is a 5e feat, taken at character creation (origin feats) or in
// place of an ability score improvement
type Feat struct {
	Key                  string                   `json:"key"`
	Name                 string                   `json:"name"`
	Prerequisites        *FeatPrerequisites       `json:"prerequisites,omitempty"`
	AbilityScoreIncrease map[shared.Attribute]int `json:"ability_score_increase,omitempty"`
	Benefits             *FeatBenefit             `json:"benefits,omitempty"`
	Repeatable           bool                     `json:"repeatable,omitempty"`
	Description          string                   `json:"description,omitempty"`
}

// MeetsPrerequisites checks a character's scores, level, and class
// against the feat's gates. A feat with no prerequisites always passes.
func (f *Feat) MeetsPrerequisites(scores map[shared.Attribute]int, level int, classKey string) bool {
	if f.Prerequisites == nil {
		return true
	}
	for attr, min := range f.Prerequisites.MinAbilities {
		if scores[attr] < min {
			return false
		}
	}
	if f.Prerequisites.MinLevel > 0 && level < f.Prerequisites.MinLevel {
		return false
	}
	if len(f.Prerequisites.Classes) > 0 {
		found := false
		for _, c := range f.Prerequisites.Classes {
			if c == classKey {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
