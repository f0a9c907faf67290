package character

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// AbilityScores holds the six raw ability scores. Unset scores default
// to 10 via NewDefaultAbilityScores.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// NewDefaultAbilityScores returns the flat-10 baseline every draft
// starts with
func NewDefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

// AbilityModifier derives the modifier from a raw score. The rule is
// floor((score-10)/2), which must round toward negative infinity: a
// score of 7 is -2, not -1.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// Score returns the raw score for an attribute
func (a *AbilityScores) Score(attr shared.Attribute) int {
	switch attr {
	case shared.AttributeStrength:
		return a.Strength
	case shared.AttributeDexterity:
		return a.Dexterity
	case shared.AttributeConstitution:
		return a.Constitution
	case shared.AttributeIntelligence:
		return a.Intelligence
	case shared.AttributeWisdom:
		return a.Wisdom
	case shared.AttributeCharisma:
		return a.Charisma
	}
	return 0
}

// SetScore assigns the raw score for an attribute
func (a *AbilityScores) SetScore(attr shared.Attribute, value int) {
	switch attr {
	case shared.AttributeStrength:
		a.Strength = value
	case shared.AttributeDexterity:
		a.Dexterity = value
	case shared.AttributeConstitution:
		a.Constitution = value
	case shared.AttributeIntelligence:
		a.Intelligence = value
	case shared.AttributeWisdom:
		a.Wisdom = value
	case shared.AttributeCharisma:
		a.Charisma = value
	}
}

// Modifier returns the derived modifier for an attribute
func (a *AbilityScores) Modifier(attr shared.Attribute) int {
	return AbilityModifier(a.Score(attr))
}

// ToMap flattens the scores for validators and feat prerequisite checks
func (a *AbilityScores) ToMap() map[shared.Attribute]int {
	return map[shared.Attribute]int{
		shared.AttributeStrength:     a.Strength,
		shared.AttributeDexterity:    a.Dexterity,
		shared.AttributeConstitution: a.Constitution,
		shared.AttributeIntelligence: a.Intelligence,
		shared.AttributeWisdom:       a.Wisdom,
		shared.AttributeCharisma:     a.Charisma,
	}
}

// AsSlice returns the six scores in STR/DEX/CON/INT/WIS/CHA order
func (a *AbilityScores) AsSlice() []int {
	return []int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}
