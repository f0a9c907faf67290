package dice

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
)

// RollResult captures a multi-die roll. Rolls holds every die in roll
// order, before any drop rule is applied; Total is the kept sum plus
// the modifier.
type RollResult struct {
	Count       int    `json:"dice_count"`
	Sides       int    `json:"dice_size"`
	Modifier    int    `json:"modifier"`
	Rolls       []int  `json:"individual_rolls"`
	Total       int    `json:"total"`
	Description string `json:"description"`
}

func (r *RollResult) String() string {
	return fmt.Sprintf("%s: %d", r.Description, r.Total)
}

// AdvantageMode selects how a d20-style roll is resolved
type AdvantageMode string

const (
	ModeNormal       AdvantageMode = "normal"
	ModeAdvantage    AdvantageMode = "advantage"
	ModeDisadvantage AdvantageMode = "disadvantage"
)

// ParseAdvantageMode accepts the three mode names in any case; empty
// input means a normal roll.
func ParseAdvantageMode(s string) (AdvantageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "advantage":
		return ModeAdvantage, nil
	case "disadvantage":
		return ModeDisadvantage, nil
	default:
		return ModeNormal, dnderr.InvalidArgumentf("unknown advantage mode: %q", s)
	}
}

// AdvantageResult captures a roll-twice resolution. Under normal mode
// both rolls carry the same value and Roll1 is used.
type AdvantageResult struct {
	Roll1       int           `json:"roll1"`
	Roll2       int           `json:"roll2"`
	Modifier    int           `json:"modifier"`
	Result      int           `json:"result"`
	Mode        AdvantageMode `json:"mode"`
	Description string        `json:"description"`
}

func (a *AdvantageResult) String() string {
	if a.Mode == ModeNormal {
		return fmt.Sprintf("%s: %d", a.Description, a.Result)
	}
	return fmt.Sprintf("%s: [%d, %d] -> %d", a.Description, a.Roll1, a.Roll2, a.Result)
}

// notationPattern matches [count]d<sides>[+/-modifier], count defaulting to 1
var notationPattern = regexp.MustCompile(`^(\d+)?d(\d+)([+-]\d+)?$`)

// ParseNotation splits dice notation into its parts without rolling.
// Case-insensitive, internal whitespace ignored.
func ParseNotation(notation string) (count, sides, modifier int, err error) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(notation)), " ", "")

	match := notationPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return 0, 0, 0, dnderr.InvalidArgumentf("invalid dice notation: %q", notation)
	}

	count = 1
	if match[1] != "" {
		count, _ = strconv.Atoi(match[1])
	}
	sides, _ = strconv.Atoi(match[2])
	if match[3] != "" {
		modifier, _ = strconv.Atoi(match[3])
	}

	return count, sides, modifier, nil
}

// ValidNotation reports whether the notation parses, without rolling
func ValidNotation(notation string) bool {
	_, _, _, err := ParseNotation(notation)
	return err == nil
}

// applyDrops removes the dropLowest lowest then dropHighest highest
// values and returns the kept dice. The input slice is not modified.
func applyDrops(rolls []int, dropLowest, dropHighest int) []int {
	kept := make([]int, len(rolls))
	copy(kept, rolls)

	if dropLowest > 0 {
		sort.Ints(kept)
		kept = kept[dropLowest:]
	}

	if dropHighest > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(kept)))
		kept = kept[dropHighest:]
	}

	return kept
}

// describeRoll builds the human readable form: "4d6 drop lowest 1 +2"
func describeRoll(count, sides, modifier, dropLowest, dropHighest int) string {
	parts := []string{fmt.Sprintf("%dd%d", count, sides)}
	if dropLowest > 0 {
		parts = append(parts, fmt.Sprintf("drop lowest %d", dropLowest))
	}
	if dropHighest > 0 {
		parts = append(parts, fmt.Sprintf("drop highest %d", dropHighest))
	}
	if modifier > 0 {
		parts = append(parts, fmt.Sprintf("+%d", modifier))
	} else if modifier < 0 {
		parts = append(parts, strconv.Itoa(modifier))
	}
	return strings.Join(parts, " ")
}

func validateRoll(count, sides, dropLowest, dropHighest int) error {
	if count < 1 {
		return dnderr.InvalidArgumentf("must roll at least 1 die, got %d", count)
	}
	if sides < 1 {
		return dnderr.InvalidArgumentf("die must have at least 1 side, got %d", sides)
	}
	if dropLowest < 0 || dropHighest < 0 {
		return dnderr.InvalidArgument("drop counts cannot be negative")
	}
	if dropLowest+dropHighest >= count {
		return dnderr.InvalidArgumentf("cannot drop %d dice from a roll of %d", dropLowest+dropHighest, count)
	}
	return nil
}
