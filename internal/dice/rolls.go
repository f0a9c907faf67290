package dice

import (
	"fmt"

	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
)

// AbilityNames are the lowercase keys used when rolling a full array
var AbilityNames = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// CheckResult is a contested d20 roll compared against a target number.
// Ties succeed.
type CheckResult struct {
	*AdvantageResult
	DC      int  `json:"dc"`
	Success bool `json:"success"`
}

// RollAbilityScore rolls one ability score using the standard 4d6
// drop-lowest method. Totals land in [3, 18].
func RollAbilityScore(r Roller) (*RollResult, error) {
	return r.RollWithDrops(4, 6, 0, 1, 0)
}

// RollAbilityScores rolls count ability scores
func RollAbilityScores(r Roller, count int) ([]*RollResult, error) {
	results := make([]*RollResult, 0, count)
	for i := 0; i < count; i++ {
		result, err := RollAbilityScore(r)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// RollStandardAbilityScores rolls all six ability scores keyed by ability name
func RollStandardAbilityScores(r Roller) (map[string]*RollResult, error) {
	rolls, err := RollAbilityScores(r, len(AbilityNames))
	if err != nil {
		return nil, err
	}

	results := make(map[string]*RollResult, len(AbilityNames))
	for i, name := range AbilityNames {
		results[name] = rolls[i]
	}
	return results, nil
}

// RollAttack rolls a d20 attack roll with the given bonus
func RollAttack(r Roller, attackBonus int, mode AdvantageMode) (*AdvantageResult, error) {
	roll, err := r.RollAdvantage(20, attackBonus, mode)
	if err != nil {
		return nil, err
	}
	roll.Description = fmt.Sprintf("Attack roll (%s)", roll.Description)
	return roll, nil
}

// RollSavingThrow rolls a saving throw against a DC
func RollSavingThrow(r Roller, saveBonus, dc int, mode AdvantageMode) (*CheckResult, error) {
	roll, err := r.RollAdvantage(20, saveBonus, mode)
	if err != nil {
		return nil, err
	}
	roll.Description = fmt.Sprintf("Saving throw (%s)", roll.Description)
	return &CheckResult{
		AdvantageResult: roll,
		DC:              dc,
		Success:         roll.Result >= dc,
	}, nil
}

// RollSkillCheck rolls a skill check against a DC
func RollSkillCheck(r Roller, skillBonus, dc int, mode AdvantageMode) (*CheckResult, error) {
	roll, err := r.RollAdvantage(20, skillBonus, mode)
	if err != nil {
		return nil, err
	}
	roll.Description = fmt.Sprintf("Skill check (%s)", roll.Description)
	return &CheckResult{
		AdvantageResult: roll,
		DC:              dc,
		Success:         roll.Result >= dc,
	}, nil
}

// RollDamage rolls weapon or spell damage from dice notation
func RollDamage(r Roller, damageDice, damageType string) (*RollResult, error) {
	roll, err := r.RollNotation(damageDice)
	if err != nil {
		return nil, err
	}

	if damageType != "" {
		roll.Description = fmt.Sprintf("%s %s damage", damageDice, damageType)
	} else {
		roll.Description = fmt.Sprintf("%s damage", damageDice)
	}
	return roll, nil
}

// RollInitiative rolls d20 plus the character's initiative bonus
func RollInitiative(r Roller, initiativeBonus int) (int, error) {
	roll, err := r.Roll(1, 20, initiativeBonus)
	if err != nil {
		return 0, err
	}
	return roll.Total, nil
}

// RollHitPoints rolls hit points for a character of the given level.
// Level 1 always takes the maximum die; each later level rolls the hit
// die, adds the CON modifier, and keeps a minimum of 1 per level. This
// is the randomized alternative to the average-die leveling formula.
func RollHitPoints(r Roller, hitDie, conModifier, level int) (int, error) {
	if hitDie < 1 {
		return 0, dnderr.InvalidArgumentf("invalid hit die: %d", hitDie)
	}
	if level < 1 {
		return 0, dnderr.InvalidArgumentf("invalid level: %d", level)
	}

	total := hitDie + conModifier

	for i := 1; i < level; i++ {
		roll, err := r.Roll(1, hitDie, conModifier)
		if err != nil {
			return 0, err
		}
		if roll.Total < 1 {
			total++
			continue
		}
		total += roll.Total
	}

	return total, nil
}
