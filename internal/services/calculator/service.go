package calculator

import (
	"github.com/KirkDiggler/dnd-character-api/internal/dice"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockcalculator -source=service.go

// Service derives every number on the character sheet from the raw
// choices stored on the character. Calculations are pure except
// RollHitPoints, which consumes the injected roller.
type Service interface {
	Calculate(char *character.Character) *CharacterStats
	MaxHitPoints(char *character.Character) int
	RollHitPoints(char *character.Character) (int, error)
	ArmorClass(char *character.Character) int
	Initiative(char *character.Character) int
	Speed(char *character.Character) int
	SavingThrows(char *character.Character) map[shared.Attribute]int
	SkillBonuses(char *character.Character) map[string]int
	PassivePerception(char *character.Character) int
	Attacks(char *character.Character) []AttackProfile
	SpellcastingStats(char *character.Character) *Spellcasting
	EncumbranceFor(char *character.Character) Encumbrance
}

type ServiceConfig struct {
	Roller dice.Roller
}

type service struct {
	roller dice.Roller
}

// NewService creates a calculator. A config without a roller gets the
// default random roller.
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &service{roller: roller}, nil
}

// Calculate assembles the whole derived sheet in one pass
func (s *service) Calculate(char *character.Character) *CharacterStats {
	modifiers := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		modifiers[attr] = char.Attributes.Modifier(attr)
	}

	return &CharacterStats{
		AbilityModifiers:  modifiers,
		ProficiencyBonus:  character.ProficiencyBonusForLevel(char.Level),
		MaxHitPoints:      s.MaxHitPoints(char),
		ArmorClass:        s.ArmorClass(char),
		Initiative:        s.Initiative(char),
		Speed:             s.Speed(char),
		PassivePerception: s.PassivePerception(char),
		SavingThrows:      s.SavingThrows(char),
		SkillBonuses:      s.SkillBonuses(char),
		Attacks:           s.Attacks(char),
		Spellcasting:      s.SpellcastingStats(char),
		Encumbrance:       s.EncumbranceFor(char),
	}
}

// MaxHitPoints uses the average method: max die at level 1, the fixed
// average per level after, plus CON each level and any per-level hit
// point riders from traits or feats. Never below 1.
func (s *service) MaxHitPoints(char *character.Character) int {
	if char.Class == nil {
		return 0
	}

	level := char.Level
	if level < 1 {
		level = 1
	}

	hitDie := char.Class.HitDie
	conMod := char.Attributes.Modifier(shared.AttributeConstitution)

	hp := hitDie + conMod
	if level > 1 {
		perLevel := hitDie/2 + 1 + conMod
		hp += (level - 1) * perLevel
	}
	hp += s.hpPerLevelBonus(char) * level

	if hp < 1 {
		hp = 1
	}
	return hp
}

// RollHitPoints rolls hit points instead of taking the average. Level
// 1 still takes the max die.
func (s *service) RollHitPoints(char *character.Character) (int, error) {
	if char.Class == nil {
		return 0, dnderr.InvalidArgument("cannot roll hit points without a class")
	}

	level := char.Level
	if level < 1 {
		level = 1
	}
	conMod := char.Attributes.Modifier(shared.AttributeConstitution)

	hp, err := dice.RollHitPoints(s.roller, char.Class.HitDie, conMod, level)
	if err != nil {
		return 0, err
	}

	hp += s.hpPerLevelBonus(char) * level
	if hp < 1 {
		hp = 1
	}
	return hp, nil
}

func (s *service) hpPerLevelBonus(char *character.Character) int {
	bonus := 0
	if char.Species != nil {
		bonus += char.Species.HPBonusPerLevel()
	}
	bonus += char.FeatBenefits().HPPerLevel
	return bonus
}

// ArmorClass follows the worn armor's category rules, 10+DEX when
// unarmored, and +2 for an equipped shield in every case
func (s *service) ArmorClass(char *character.Character) int {
	dexMod := char.Attributes.Modifier(shared.AttributeDexterity)

	ac := 10 + dexMod
	if armor := char.EquippedBodyArmor(); armor != nil {
		switch armor.ArmorType {
		case equipment.ArmorTypeLight:
			ac = armor.BaseAC + dexMod
		case equipment.ArmorTypeMedium:
			ac = armor.BaseAC + minInt(dexMod, armor.DexCap())
		case equipment.ArmorTypeHeavy:
			ac = armor.BaseAC
		default:
			ac = armor.BaseAC + dexMod
		}
	}

	if char.HasShieldEquipped() {
		ac += 2
	}
	return ac
}

// Initiative is the DEX modifier plus any feat riders (Alert grants +5)
func (s *service) Initiative(char *character.Character) int {
	return char.Attributes.Modifier(shared.AttributeDexterity) + char.FeatBenefits().InitiativeBonus
}

// Speed is the species walking speed with trait and feat riders folded
// in. Characters without a species get the common 30.
func (s *service) Speed(char *character.Character) int {
	speed := 30
	if char.Species != nil {
		speed = char.Species.EffectiveSpeed()
	}
	return speed + char.FeatBenefits().SpeedBonus
}

// SavingThrows computes all six save bonuses, adding proficiency for
// the class's trained saves
func (s *service) SavingThrows(char *character.Character) map[shared.Attribute]int {
	prof := character.ProficiencyBonusForLevel(char.Level)
	saves := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		bonus := char.Attributes.Modifier(attr)
		if char.HasSavingThrowProficiency(attr) {
			bonus += prof
		}
		saves[attr] = bonus
	}
	return saves
}

// SkillBonuses computes all eighteen skill bonuses. Expertise doubles
// the proficiency bonus.
func (s *service) SkillBonuses(char *character.Character) map[string]int {
	prof := character.ProficiencyBonusForLevel(char.Level)
	bonuses := make(map[string]int, len(rulebook.StandardSkills))
	for _, skill := range rulebook.StandardSkills {
		bonus := char.Attributes.Modifier(skill.AssociatedAbility)
		switch char.SkillProficiencyLevel(skill.Key) {
		case shared.ProficiencyLevelProficient:
			bonus += prof
		case shared.ProficiencyLevelExpertise:
			bonus += prof * 2
		}
		bonuses[skill.Key] = bonus
	}
	return bonuses
}

// PassivePerception is 10 plus the perception skill bonus
func (s *service) PassivePerception(char *character.Character) int {
	return 10 + s.SkillBonuses(char)["perception"]
}

// Attacks builds an attack line per equipped weapon. With nothing
// equipped the default is an unarmed strike plus a bare-DEX line for
// improvised throws.
func (s *service) Attacks(char *character.Character) []AttackProfile {
	weapons := char.EquippedWeapons()
	if len(weapons) == 0 {
		return []AttackProfile{s.unarmedStrike(char), s.improvisedThrow(char)}
	}

	attacks := make([]AttackProfile, 0, len(weapons))
	for _, weapon := range weapons {
		attacks = append(attacks, s.weaponAttack(char, weapon))
	}
	return attacks
}

func (s *service) weaponAttack(char *character.Character, weapon *equipment.Weapon) AttackProfile {
	prof := character.ProficiencyBonusForLevel(char.Level)
	strMod := char.Attributes.Modifier(shared.AttributeStrength)
	dexMod := char.Attributes.Modifier(shared.AttributeDexterity)

	abilityMod := strMod
	if weapon.IsRanged() {
		abilityMod = dexMod
	} else if weapon.IsFinesse() {
		abilityMod = maxInt(strMod, dexMod)
	}

	proficient := s.isWeaponProficient(char, weapon)
	attackBonus := abilityMod
	if proficient {
		attackBonus += prof
	}
	if weapon.IsRanged() {
		attackBonus += char.FeatBenefits().RangedAttackBonus
	}

	return AttackProfile{
		WeaponKey:   weapon.GetKey(),
		WeaponName:  weapon.GetName(),
		AttackBonus: attackBonus,
		DamageDice:  weapon.DamageDice,
		DamageBonus: abilityMod,
		DamageType:  weapon.DamageType,
		Ranged:      weapon.IsRanged(),
		Proficient:  proficient,
	}
}

// unarmedStrike is STR-based and proficient whenever the character has
// a class at all
func (s *service) unarmedStrike(char *character.Character) AttackProfile {
	strMod := char.Attributes.Modifier(shared.AttributeStrength)
	attackBonus := strMod
	proficient := char.Class != nil
	if proficient {
		attackBonus += character.ProficiencyBonusForLevel(char.Level)
	}

	return AttackProfile{
		WeaponKey:   "unarmed-strike",
		WeaponName:  "Unarmed Strike",
		AttackBonus: attackBonus,
		DamageDice:  "1",
		DamageBonus: strMod,
		DamageType:  "bludgeoning",
		Proficient:  proficient,
	}
}

// improvisedThrow is the DEX-only ranged fallback, never proficient
func (s *service) improvisedThrow(char *character.Character) AttackProfile {
	dexMod := char.Attributes.Modifier(shared.AttributeDexterity)

	return AttackProfile{
		WeaponKey:   "improvised-throw",
		WeaponName:  "Improvised Throw",
		AttackBonus: dexMod,
		DamageDice:  "1",
		DamageBonus: dexMod,
		DamageType:  "bludgeoning",
		Ranged:      true,
	}
}

func (s *service) isWeaponProficient(char *character.Character, weapon *equipment.Weapon) bool {
	if char.Class == nil {
		return false
	}
	return char.Class.HasWeaponProficiency(string(weapon.WeaponCategory)) ||
		char.Class.HasWeaponProficiency(weapon.GetName()) ||
		char.Class.HasWeaponProficiency(weapon.GetKey())
}

// SpellcastingStats returns nil for non-casters. Save DC is
// 8 + proficiency + casting modifier; prepared count floors at 1.
func (s *service) SpellcastingStats(char *character.Character) *Spellcasting {
	castMod, ok := char.SpellcastingModifier()
	if !ok {
		return nil
	}
	prof := character.ProficiencyBonusForLevel(char.Level)

	maxPrepared := char.Level + castMod
	if maxPrepared < 1 {
		maxPrepared = 1
	}

	return &Spellcasting{
		Ability:           char.Class.SpellcastingAbility,
		SaveDC:            8 + prof + castMod,
		AttackBonus:       prof + castMod,
		MaxPreparedSpells: maxPrepared,
	}
}

// EncumbranceFor applies the STR*15 carrying capacity and the variant
// encumbrance thirds
func (s *service) EncumbranceFor(char *character.Character) Encumbrance {
	capacity := float64(char.Attributes.Score(shared.AttributeStrength) * 15)
	carried := char.CarriedWeight()

	status := EncumbranceOverloaded
	switch {
	case carried <= capacity/3:
		status = EncumbranceNormal
	case carried <= capacity*2/3:
		status = EncumbranceEncumbered
	case carried <= capacity:
		status = EncumbranceHeavilyEncumbered
	}

	return Encumbrance{
		CarriedWeight: carried,
		Capacity:      capacity,
		PushDragLift:  capacity * 2,
		Status:        status,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
