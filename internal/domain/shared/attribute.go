package shared

import "strings"

// Attribute identifies one of the six ability scores
type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "STR"
	AttributeDexterity    Attribute = "DEX"
	AttributeConstitution Attribute = "CON"
	AttributeIntelligence Attribute = "INT"
	AttributeWisdom       Attribute = "WIS"
	AttributeCharisma     Attribute = "CHA"
)

// Attributes lists the six abilities in sheet order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

var attributeNames = map[Attribute]string{
	AttributeStrength:     "Strength",
	AttributeDexterity:    "Dexterity",
	AttributeConstitution: "Constitution",
	AttributeIntelligence: "Intelligence",
	AttributeWisdom:       "Wisdom",
	AttributeCharisma:     "Charisma",
}

// Short returns the three letter ability code
func (a Attribute) Short() string {
	return string(a)
}

// FullName returns the display name for the ability
func (a Attribute) FullName() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return string(a)
}

// IsValid reports whether the attribute is one of the six abilities
func (a Attribute) IsValid() bool {
	_, ok := attributeNames[a]
	return ok
}

// ParseAttribute accepts short codes and full names in any case.
// Returns AttributeNone for anything it does not recognize.
func ParseAttribute(s string) Attribute {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STR", "STRENGTH":
		return AttributeStrength
	case "DEX", "DEXTERITY":
		return AttributeDexterity
	case "CON", "CONSTITUTION":
		return AttributeConstitution
	case "INT", "INTELLIGENCE":
		return AttributeIntelligence
	case "WIS", "WISDOM":
		return AttributeWisdom
	case "CHA", "CHARISMA":
		return AttributeCharisma
	default:
		return AttributeNone
	}
}
