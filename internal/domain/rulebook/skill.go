package rulebook

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// Skill is one of the eighteen 5e skills
type Skill struct {
	Key               string           `json:"key"`
	Name              string           `json:"name"`
	AssociatedAbility shared.Attribute `json:"associated_ability"`
	Description       string           `json:"description,omitempty"`
}

// StandardSkills is the full 5e skill list keyed as the SRD keys them
var StandardSkills = []Skill{
	{Key: "acrobatics", Name: "Acrobatics", AssociatedAbility: shared.AttributeDexterity},
	{Key: "animal-handling", Name: "Animal Handling", AssociatedAbility: shared.AttributeWisdom},
	{Key: "arcana", Name: "Arcana", AssociatedAbility: shared.AttributeIntelligence},
	{Key: "athletics", Name: "Athletics", AssociatedAbility: shared.AttributeStrength},
	{Key: "deception", Name: "Deception", AssociatedAbility: shared.AttributeCharisma},
	{Key: "history", Name: "History", AssociatedAbility: shared.AttributeIntelligence},
	{Key: "insight", Name: "Insight", AssociatedAbility: shared.AttributeWisdom},
	{Key: "intimidation", Name: "Intimidation", AssociatedAbility: shared.AttributeCharisma},
	{Key: "investigation", Name: "Investigation", AssociatedAbility: shared.AttributeIntelligence},
	{Key: "medicine", Name: "Medicine", AssociatedAbility: shared.AttributeWisdom},
	{Key: "nature", Name: "Nature", AssociatedAbility: shared.AttributeIntelligence},
	{Key: "perception", Name: "Perception", AssociatedAbility: shared.AttributeWisdom},
	{Key: "performance", Name: "Performance", AssociatedAbility: shared.AttributeCharisma},
	{Key: "persuasion", Name: "Persuasion", AssociatedAbility: shared.AttributeCharisma},
	{Key: "religion", Name: "Religion", AssociatedAbility: shared.AttributeIntelligence},
	{Key: "sleight-of-hand", Name: "Sleight of Hand", AssociatedAbility: shared.AttributeDexterity},
	{Key: "stealth", Name: "Stealth", AssociatedAbility: shared.AttributeDexterity},
	{Key: "survival", Name: "Survival", AssociatedAbility: shared.AttributeWisdom},
}

// SkillByKey finds a skill in the standard list
func SkillByKey(key string) (Skill, bool) {
	for _, skill := range StandardSkills {
		if skill.Key == key {
			return skill, true
		}
	}
	return Skill{}, false
}
