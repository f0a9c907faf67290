package rulebook

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
)

// PreparationMode tells how a class gains castable spells
type PreparationMode string

const (
	PreparationModeKnown    PreparationMode = "known"
	PreparationModePrepared PreparationMode = "prepared"
	PreparationModeNone     PreparationMode = "none"
)

// SpellProgression describes what a class can cast at one level
type SpellProgression struct {
	CantripsKnown int         `json:"cantrips_known"`
	SpellsKnown   *int        `json:"spells_known,omitempty"` // nil for prepared casters
	SlotsByLevel  map[int]int `json:"slots_by_level,omitempty"`
}

// Class is a 5e character class as stored in the rulebook
type Class struct {
	Key                 string                   `json:"key"`
	Name                string                   `json:"name"`
	HitDie              int                      `json:"hit_die"`
	PrimaryAbility      shared.Attribute         `json:"primary_ability"`
	SavingThrows        []shared.Attribute       `json:"saving_throws"`
	ArmorProficiencies  []string                 `json:"armor_proficiencies"`
	WeaponProficiencies []string                 `json:"weapon_proficiencies"`
	ToolProficiencies   []string                 `json:"tool_proficiencies,omitempty"`
	SkillChoiceCount    int                      `json:"skill_choice_count"`
	SkillOptions        []string                 `json:"skill_options"`
	Spellcaster         bool                     `json:"spellcaster"`
	SpellcastingAbility shared.Attribute         `json:"spellcasting_ability,omitempty"`
	PreparationMode     PreparationMode          `json:"preparation_mode,omitempty"`
	SpellProgression    map[int]SpellProgression `json:"spell_progression,omitempty"`
	ASILevels           []int                    `json:"asi_levels,omitempty"`
	Subclasses          []Subclass               `json:"subclasses,omitempty"`
	SubclassLevel       int                      `json:"subclass_level,omitempty"`
	Description         string                   `json:"description,omitempty"`
}

// Subclass is a specialization within a class
type Subclass struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// defaultASILevels is the schedule most classes follow. Fighters and
// Rogues override it via ASILevels.
var defaultASILevels = []int{4, 8, 12, 16, 19}

// ASIScheduleFor returns the ability score improvement levels for the class
func (c *Class) ASIScheduleFor() []int {
	if len(c.ASILevels) > 0 {
		return c.ASILevels
	}
	return defaultASILevels
}

// ASILevelsUpTo counts how many ability score improvements a character
// of the given level has earned
func (c *Class) ASILevelsUpTo(level int) int {
	count := 0
	for _, asiLevel := range c.ASIScheduleFor() {
		if level >= asiLevel {
			count++
		}
	}
	return count
}

// HasArmorProficiency matches an armor category against the class list.
// An "all" entry grants everything.
func (c *Class) HasArmorProficiency(armorType string) bool {
	return matchProficiency(c.ArmorProficiencies, armorType)
}

// HasWeaponProficiency matches a weapon category or specific weapon
// name against the class list
func (c *Class) HasWeaponProficiency(categoryOrName string) bool {
	return matchProficiency(c.WeaponProficiencies, categoryOrName)
}

// HasSavingThrowProficiency checks the class save list
func (c *Class) HasSavingThrowProficiency(attr shared.Attribute) bool {
	for _, save := range c.SavingThrows {
		if save == attr {
			return true
		}
	}
	return false
}

// CanLearnSkill checks the class skill option list
func (c *Class) CanLearnSkill(skillKey string) bool {
	for _, opt := range c.SkillOptions {
		if strings.EqualFold(opt, skillKey) {
			return true
		}
	}
	return false
}

// ProgressionAt returns the spell progression row for a level, falling
// back to the highest defined row at or below it
func (c *Class) ProgressionAt(level int) (SpellProgression, bool) {
	if !c.Spellcaster || len(c.SpellProgression) == 0 {
		return SpellProgression{}, false
	}
	if row, ok := c.SpellProgression[level]; ok {
		return row, true
	}
	best := 0
	for l := range c.SpellProgression {
		if l <= level && l > best {
			best = l
		}
	}
	if best == 0 {
		return SpellProgression{}, false
	}
	return c.SpellProgression[best], true
}

func matchProficiency(list []string, candidate string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, "all") || strings.EqualFold(entry, candidate) {
			return true
		}
	}
	return false
}
