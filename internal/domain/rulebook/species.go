package rulebook

// TraitEffect carries the mechanical impact of a species trait so
// calculators can apply traits without matching on names
type TraitEffect struct {
	HPPerLevel      int `json:"hp_per_level,omitempty"`
	SpeedBonus      int `json:"speed_bonus,omitempty"`
	DarkvisionRange int `json:"darkvision_range,omitempty"`
}

// Trait is a species feature such as Dwarven Toughness or Fey Ancestry
type Trait struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Effect      *TraitEffect `json:"effect,omitempty"`
}

// Species is a playable 5e species (race in older sources)
type Species struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Size               string   `json:"size"`
	Speed              int      `json:"speed"`
	Traits             []Trait  `json:"traits,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	SkillProficiencies []string `json:"skill_proficiencies,omitempty"`
	Description        string   `json:"description,omitempty"`
}

// HPBonusPerLevel sums the hit point riders from all traits
func (s *Species) HPBonusPerLevel() int {
	total := 0
	for _, trait := range s.Traits {
		if trait.Effect != nil {
			total += trait.Effect.HPPerLevel
		}
	}
	return total
}

// EffectiveSpeed folds trait speed riders into the base walking speed
func (s *Species) EffectiveSpeed() int {
	speed := s.Speed
	for _, trait := range s.Traits {
		if trait.Effect != nil {
			speed += trait.Effect.SpeedBonus
		}
	}
	return speed
}

// HasTrait looks up a trait by key
func (s *Species) HasTrait(key string) bool {
	for _, trait := range s.Traits {
		if trait.Key == key {
			return true
		}
	}
	return false
}
