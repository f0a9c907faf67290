package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// RollDie rolls a single die with the given number of sides
	RollDie(sides int) (int, error)

	// Roll rolls a number of dice with the given sides and adds a modifier
	Roll(count, sides, modifier int) (*RollResult, error)

	// RollWithDrops rolls count dice and drops the lowest/highest before summing
	RollWithDrops(count, sides, modifier, dropLowest, dropHighest int) (*RollResult, error)

	// RollNotation parses and rolls standard notation like "3d6+2"
	RollNotation(notation string) (*RollResult, error)

	// RollAdvantage rolls a die under the given advantage mode
	RollAdvantage(sides, modifier int, mode AdvantageMode) (*AdvantageResult, error)
}
