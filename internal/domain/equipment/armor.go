package equipment

import "strings"

// ArmorType groups armor by proficiency and DEX handling
type ArmorType string

const (
	ArmorTypeLight   ArmorType = "light"
	ArmorTypeMedium  ArmorType = "medium"
	ArmorTypeHeavy   ArmorType = "heavy"
	ArmorTypeShield  ArmorType = "shield"
	ArmorTypeUnknown ArmorType = ""
)

// DefaultMediumDexCap limits the DEX bonus under medium armor when the
// catalog entry does not configure its own cap
const DefaultMediumDexCap = 2

// Armor extends equipment with defense sub-data
type Armor struct {
	Base                BasicEquipment `json:"base"`
	ArmorType           ArmorType      `json:"armor_type"`
	BaseAC              int            `json:"base_ac"`
	DexBonusLimit       int            `json:"dex_bonus_limit,omitempty"` // 0 means unset
	StrengthRequirement int            `json:"strength_requirement,omitempty"`
	StealthDisadvantage bool           `json:"stealth_disadvantage"`
}

// IsBodyArmor reports whether the piece occupies the armor slot
// (shields stack on top of body armor)
func (a *Armor) IsBodyArmor() bool {
	return a.ArmorType != ArmorTypeShield
}

// DexCap returns the effective DEX bonus cap for medium armor
func (a *Armor) DexCap() int {
	if a.DexBonusLimit > 0 {
		return a.DexBonusLimit
	}
	return DefaultMediumDexCap
}

func (a *Armor) GetEquipmentType() EquipmentType {
	return EquipmentTypeArmor
}

func (a *Armor) GetKey() string {
	return a.Base.Key
}

func (a *Armor) GetName() string {
	return a.Base.Name
}

func (a *Armor) GetWeight() float64 {
	return a.Base.Weight
}

// IsShieldItem reports whether a piece of equipment acts as a shield.
// Shield detection goes by name so magic shields from the catalog
// ("Shield +1") count without armor sub-data.
func IsShieldItem(e Equipment) bool {
	if e == nil {
		return false
	}
	if armor, ok := e.(*Armor); ok && armor.ArmorType == ArmorTypeShield {
		return true
	}
	return strings.Contains(strings.ToLower(e.GetName()), "shield")
}
