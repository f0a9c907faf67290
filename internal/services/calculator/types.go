package calculator

import "github.com/KirkDiggler/dnd-character-api/internal/domain/shared"

// EncumbranceStatus buckets carried weight against carrying capacity
type EncumbranceStatus string

const (
	EncumbranceNormal            EncumbranceStatus = "normal"
	EncumbranceEncumbered        EncumbranceStatus = "encumbered"
	EncumbranceHeavilyEncumbered EncumbranceStatus = "heavily_encumbered"
	EncumbranceOverloaded        EncumbranceStatus = "overloaded"
)

// Encumbrance reports carried weight against the STR-derived limits
type Encumbrance struct {
	CarriedWeight float64           `json:"carried_weight"`
	Capacity      float64           `json:"carrying_capacity"`
	PushDragLift  float64           `json:"push_drag_lift"`
	Status        EncumbranceStatus `json:"status"`
}

// AttackProfile is one computed attack line for the character sheet
type AttackProfile struct {
	WeaponKey   string `json:"weapon_key"`
	WeaponName  string `json:"weapon_name"`
	AttackBonus int    `json:"attack_bonus"`
	DamageDice  string `json:"damage_dice"`
	DamageBonus int    `json:"damage_bonus"`
	DamageType  string `json:"damage_type"`
	Ranged      bool   `json:"ranged"`
	Proficient  bool   `json:"proficient"`
}

// Spellcasting is the caster block of the sheet. Absent for classes
// that do not cast.
type Spellcasting struct {
	Ability           shared.Attribute `json:"ability"`
	SaveDC            int              `json:"save_dc"`
	AttackBonus       int              `json:"attack_bonus"`
	MaxPreparedSpells int              `json:"max_prepared_spells"`
}

// CharacterStats is the full derived sheet for one character
type CharacterStats struct {
	AbilityModifiers  map[shared.Attribute]int `json:"ability_modifiers"`
	ProficiencyBonus  int                      `json:"proficiency_bonus"`
	MaxHitPoints      int                      `json:"max_hit_points"`
	ArmorClass        int                      `json:"armor_class"`
	Initiative        int                      `json:"initiative"`
	Speed             int                      `json:"speed"`
	PassivePerception int                      `json:"passive_perception"`
	SavingThrows      map[shared.Attribute]int `json:"saving_throws"`
	SkillBonuses      map[string]int           `json:"skill_bonuses"`
	Attacks           []AttackProfile          `json:"attacks"`
	Spellcasting      *Spellcasting            `json:"spellcasting,omitempty"`
	Encumbrance       Encumbrance              `json:"encumbrance"`
}
