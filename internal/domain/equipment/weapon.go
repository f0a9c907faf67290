package equipment

import "strings"

// WeaponCategory is the proficiency grouping for a weapon
type WeaponCategory string

const (
	WeaponCategorySimple  WeaponCategory = "simple"
	WeaponCategoryMartial WeaponCategory = "martial"
)

// Weapon extends equipment with attack sub-data
type Weapon struct {
	Base           BasicEquipment `json:"base"`
	WeaponCategory WeaponCategory `json:"weapon_category"`
	DamageDice     string         `json:"damage_dice"`
	DamageType     string         `json:"damage_type"`
	WeaponRange    string         `json:"weapon_range,omitempty"` // "melee" or "ranged"
	RangeNormal    int            `json:"range_normal,omitempty"`
	RangeLong      int            `json:"range_long,omitempty"`
	Properties     []string       `json:"properties"`
}

// HasProperty checks if the weapon has a specific property
func (w *Weapon) HasProperty(prop string) bool {
	for _, p := range w.Properties {
		if strings.EqualFold(p, prop) {
			return true
		}
	}
	return false
}

// IsFinesse weapons may use DEX in place of STR for melee attacks
func (w *Weapon) IsFinesse() bool {
	return w.HasProperty("finesse")
}

// IsTwoHanded weapons occupy both hands and conflict with shields
func (w *Weapon) IsTwoHanded() bool {
	return w.HasProperty("two-handed")
}

// IsRanged reports whether the weapon attacks at range. Thrown melee
// weapons like the handaxe carry range increments but stay melee.
func (w *Weapon) IsRanged() bool {
	return strings.EqualFold(w.WeaponRange, "ranged")
}

func (w *Weapon) GetEquipmentType() EquipmentType {
	return EquipmentTypeWeapon
}

func (w *Weapon) GetKey() string {
	return w.Base.Key
}

func (w *Weapon) GetName() string {
	return w.Base.Name
}

func (w *Weapon) GetWeight() float64 {
	return w.Base.Weight
}
