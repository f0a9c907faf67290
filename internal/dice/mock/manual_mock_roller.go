package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/dnd-character-api/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll sets the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll(sides int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++

	if roll < 1 || roll > sides {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, sides)
	}
	return roll, nil
}

// RollDie implements dice.Roller.RollDie
func (m *ManualMockRoller) RollDie(sides int) (int, error) {
	if sides < 1 {
		return 0, fmt.Errorf("die must have at least 1 side, got %d", sides)
	}
	return m.getNextRoll(sides)
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, modifier int) (*dice.RollResult, error) {
	return m.RollWithDrops(count, sides, modifier, 0, 0)
}

// RollWithDrops implements dice.Roller.RollWithDrops
func (m *ManualMockRoller) RollWithDrops(count, sides, modifier, dropLowest, dropHighest int) (*dice.RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("must roll at least 1 die, got %d", count)
	}
	if dropLowest+dropHighest >= count {
		return nil, fmt.Errorf("cannot drop %d dice from a roll of %d", dropLowest+dropHighest, count)
	}

	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll(sides)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}

	// Re-apply drop rules the same way the real roller does
	kept := make([]int, len(rolls))
	copy(kept, rolls)
	if dropLowest > 0 || dropHighest > 0 {
		sorted := append([]int{}, rolls...)
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j] < sorted[i] {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
		kept = sorted[dropLowest : len(sorted)-dropHighest]
	}

	total := modifier
	for _, v := range kept {
		total += v
	}

	return &dice.RollResult{
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
		Rolls:    rolls,
		Total:    total,
	}, nil
}

// RollNotation implements dice.Roller.RollNotation
func (m *ManualMockRoller) RollNotation(notation string) (*dice.RollResult, error) {
	count, sides, modifier, err := dice.ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return m.RollWithDrops(count, sides, modifier, 0, 0)
}

// RollAdvantage implements dice.Roller.RollAdvantage
func (m *ManualMockRoller) RollAdvantage(sides, modifier int, mode dice.AdvantageMode) (*dice.AdvantageResult, error) {
	roll1, err := m.getNextRoll(sides)
	if err != nil {
		return nil, err
	}

	roll2 := roll1
	if mode != dice.ModeNormal {
		roll2, err = m.getNextRoll(sides)
		if err != nil {
			return nil, err
		}
	}

	result := roll1 + modifier
	switch mode {
	case dice.ModeAdvantage:
		if roll2 > roll1 {
			result = roll2 + modifier
		}
	case dice.ModeDisadvantage:
		if roll2 < roll1 {
			result = roll2 + modifier
		}
	}

	return &dice.AdvantageResult{
		Roll1:    roll1,
		Roll2:    roll2,
		Modifier: modifier,
		Result:   result,
		Mode:     mode,
	}, nil
}
