package character

import (
	"time"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
)

// SkillProficiency records one learned skill and where it came from
type SkillProficiency struct {
	SkillKey string                  `json:"skill_key"`
	Level    shared.ProficiencyLevel `json:"level"`
	Source   shared.SkillSource      `json:"source"`
}

// SavingThrowProficiency marks one trained save beyond what the class
// grants, such as the one Resilient confers
type SavingThrowProficiency struct {
	Ability    shared.Attribute `json:"ability"`
	Proficient bool             `json:"proficient"`
}

// InventoryItem is one carried piece of equipment. Equipped only
// matters for armor, shields, and weapons.
type InventoryItem struct {
	Item     equipment.Equipment `json:"-"`
	Equipped bool                `json:"equipped"`
	Attuned  bool                `json:"attuned"`
	Quantity int                 `json:"quantity"`
}

// KnownSpell records one spell on the character's list
type KnownSpell struct {
	SpellKey string `json:"spell_key"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Prepared bool   `json:"prepared"`
}

// CharacterFeat records one feat and how it was acquired
type CharacterFeat struct {
	Feat   *rulebook.Feat    `json:"feat"`
	Source shared.FeatSource `json:"source"`
}

// Character is the aggregate root for one player character
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	Level     int                   `json:"level"`
	XP        int                   `json:"xp"`
	Alignment string                `json:"alignment,omitempty"`
	State     shared.CharacterState `json:"state"`

	Class      *rulebook.Class      `json:"class,omitempty"`
	Subclass   *rulebook.Subclass   `json:"subclass,omitempty"`
	Species    *rulebook.Species    `json:"species,omitempty"`
	Background *rulebook.Background `json:"background,omitempty"`

	Attributes AbilityScores `json:"attributes"`

	MaxHitPoints       int `json:"max_hit_points"`
	CurrentHitPoints   int `json:"current_hit_points"`
	TemporaryHitPoints int `json:"temporary_hit_points"`
	ArmorClass         int `json:"armor_class"`
	Initiative         int `json:"initiative"`
	Speed              int `json:"speed"`
	ProficiencyBonus   int `json:"proficiency_bonus"`

	Inspiration bool `json:"inspiration"`

	Skills       []SkillProficiency       `json:"skills,omitempty"`
	SavingThrows []SavingThrowProficiency `json:"saving_throws,omitempty"`
	Inventory    []*InventoryItem         `json:"inventory,omitempty"`
	Spells       []KnownSpell             `json:"spells,omitempty"`
	Feats        []CharacterFeat          `json:"feats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProficiencyBonusForLevel derives the 5e bonus: +2 at level 1, +1
// every four levels after
func ProficiencyBonusForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// IsDraft reports whether the character is still being built
func (c *Character) IsDraft() bool {
	return c.State == shared.CharacterStateDraft
}

// IsComplete checks that every required creation choice has been made
func (c *Character) IsComplete() bool {
	return c.Name != "" &&
		c.Class != nil &&
		c.Species != nil &&
		c.Background != nil
}

// EquippedBodyArmor returns the equipped non-shield armor, or nil when
// the character fights unarmored
func (c *Character) EquippedBodyArmor() *equipment.Armor {
	for _, item := range c.Inventory {
		if !item.Equipped {
			continue
		}
		if armor, ok := item.Item.(*equipment.Armor); ok && armor.IsBodyArmor() {
			return armor
		}
	}
	return nil
}

// HasShieldEquipped reports whether any equipped item acts as a shield
func (c *Character) HasShieldEquipped() bool {
	for _, item := range c.Inventory {
		if item.Equipped && equipment.IsShieldItem(item.Item) {
			return true
		}
	}
	return false
}

// EquippedWeapons returns the equipped weapons in inventory order
func (c *Character) EquippedWeapons() []*equipment.Weapon {
	var weapons []*equipment.Weapon
	for _, item := range c.Inventory {
		if !item.Equipped {
			continue
		}
		if weapon, ok := item.Item.(*equipment.Weapon); ok {
			weapons = append(weapons, weapon)
		}
	}
	return weapons
}

// CarriedWeight sums the weight of everything in inventory, equipped
// or not
func (c *Character) CarriedWeight() float64 {
	total := 0.0
	for _, item := range c.Inventory {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Item.GetWeight() * float64(qty)
	}
	return total
}

// HasFeat looks up a feat by key across all sources
func (c *Character) HasFeat(key string) bool {
	for _, cf := range c.Feats {
		if cf.Feat != nil && cf.Feat.Key == key {
			return true
		}
	}
	return false
}

// FeatBenefits folds together the mechanical riders of every feat the
// character has
func (c *Character) FeatBenefits() rulebook.FeatBenefit {
	var total rulebook.FeatBenefit
	for _, cf := range c.Feats {
		if cf.Feat == nil || cf.Feat.Benefits == nil {
			continue
		}
		total.InitiativeBonus += cf.Feat.Benefits.InitiativeBonus
		total.RangedAttackBonus += cf.Feat.Benefits.RangedAttackBonus
		total.SpeedBonus += cf.Feat.Benefits.SpeedBonus
		total.HPPerLevel += cf.Feat.Benefits.HPPerLevel
	}
	return total
}

// SkillProficiencyLevel returns how proficient the character is in a
// skill. Unknown skills come back as none.
func (c *Character) SkillProficiencyLevel(skillKey string) shared.ProficiencyLevel {
	for _, sp := range c.Skills {
		if sp.SkillKey == skillKey {
			return sp.Level
		}
	}
	return shared.ProficiencyLevelNone
}

// HasSkill reports proficiency or better in a skill
func (c *Character) HasSkill(skillKey string) bool {
	return c.SkillProficiencyLevel(skillKey) != shared.ProficiencyLevelNone
}

// HasSavingThrowProficiency checks explicit save rows first, then the
// class's trained saves
func (c *Character) HasSavingThrowProficiency(attr shared.Attribute) bool {
	for _, st := range c.SavingThrows {
		if st.Ability == attr {
			return st.Proficient
		}
	}
	return c.Class != nil && c.Class.HasSavingThrowProficiency(attr)
}

// AddSkill records a skill proficiency, upgrading in place if the
// skill is already known
func (c *Character) AddSkill(skillKey string, level shared.ProficiencyLevel, source shared.SkillSource) {
	for i, sp := range c.Skills {
		if sp.SkillKey == skillKey {
			if level == shared.ProficiencyLevelExpertise {
				c.Skills[i].Level = level
			}
			return
		}
	}
	c.Skills = append(c.Skills, SkillProficiency{SkillKey: skillKey, Level: level, Source: source})
}

// AddItem puts equipment into the inventory, stacking onto an existing
// unequipped entry with the same key
func (c *Character) AddItem(item equipment.Equipment, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for _, inv := range c.Inventory {
		if inv.Item.GetKey() == item.GetKey() && !inv.Equipped {
			inv.Quantity += quantity
			return
		}
	}
	c.Inventory = append(c.Inventory, &InventoryItem{Item: item, Quantity: quantity})
}

// SpellcastingModifier returns the modifier for the class's casting
// ability, and false when the class does not cast
func (c *Character) SpellcastingModifier() (int, bool) {
	if c.Class == nil || !c.Class.Spellcaster || c.Class.SpellcastingAbility == "" {
		return 0, false
	}
	return c.Attributes.Modifier(c.Class.SpellcastingAbility), true
}

// PreparedSpellCount counts non-cantrip spells currently prepared
func (c *Character) PreparedSpellCount() int {
	count := 0
	for _, s := range c.Spells {
		if s.Prepared && s.Level > 0 {
			count++
		}
	}
	return count
}
