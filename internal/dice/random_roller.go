package dice

import (
	"fmt"
	"math/rand"
)

// randomRoller implements Roller using math/rand's shared source. The
// global source is safe for concurrent use and independent draws carry
// no ordering guarantee.
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// RollDie implements Roller.RollDie
func (r *randomRoller) RollDie(sides int) (int, error) {
	if err := validateRoll(1, sides, 0, 0); err != nil {
		return 0, err
	}
	return rand.Intn(sides) + 1, nil
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, modifier int) (*RollResult, error) {
	return r.RollWithDrops(count, sides, modifier, 0, 0)
}

// RollWithDrops implements Roller.RollWithDrops
func (r *randomRoller) RollWithDrops(count, sides, modifier, dropLowest, dropHighest int) (*RollResult, error) {
	if err := validateRoll(count, sides, dropLowest, dropHighest); err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		rolls[i] = rand.Intn(sides) + 1
	}

	total := modifier
	for _, kept := range applyDrops(rolls, dropLowest, dropHighest) {
		total += kept
	}

	return &RollResult{
		Count:       count,
		Sides:       sides,
		Modifier:    modifier,
		Rolls:       rolls,
		Total:       total,
		Description: describeRoll(count, sides, modifier, dropLowest, dropHighest),
	}, nil
}

// RollNotation implements Roller.RollNotation
func (r *randomRoller) RollNotation(notation string) (*RollResult, error) {
	count, sides, modifier, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return r.RollWithDrops(count, sides, modifier, 0, 0)
}

// RollAdvantage implements Roller.RollAdvantage
func (r *randomRoller) RollAdvantage(sides, modifier int, mode AdvantageMode) (*AdvantageResult, error) {
	roll1, err := r.RollDie(sides)
	if err != nil {
		return nil, err
	}

	// Normal mode rolls once and mirrors the value into both slots
	roll2 := roll1
	if mode != ModeNormal {
		roll2, err = r.RollDie(sides)
		if err != nil {
			return nil, err
		}
	}

	return resolveAdvantage(roll1, roll2, sides, modifier, mode), nil
}

// resolveAdvantage applies the mode's pick rule and modifier to a pair of rolls
func resolveAdvantage(roll1, roll2, sides, modifier int, mode AdvantageMode) *AdvantageResult {
	var result int
	var suffix string

	switch mode {
	case ModeAdvantage:
		result = maxInt(roll1, roll2) + modifier
		suffix = "with advantage"
	case ModeDisadvantage:
		result = minInt(roll1, roll2) + modifier
		suffix = "with disadvantage"
	default:
		result = roll1 + modifier
	}

	return &AdvantageResult{
		Roll1:       roll1,
		Roll2:       roll2,
		Modifier:    modifier,
		Result:      result,
		Mode:        mode,
		Description: describeAdvantage(sides, suffix, modifier),
	}
}

func describeAdvantage(sides int, suffix string, modifier int) string {
	desc := fmt.Sprintf("1d%d", sides)
	if suffix != "" {
		desc += " " + suffix
	}
	if modifier > 0 {
		desc += fmt.Sprintf(" +%d", modifier)
	} else if modifier < 0 {
		desc += fmt.Sprintf(" %d", modifier)
	}
	return desc
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
