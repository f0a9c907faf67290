package dice

import (
	"strings"

	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
)

// PointBuyBudget is the standard point-buy allowance
const PointBuyBudget = 27

// pointBuyCosts maps a score in the legal 8-15 band to its purchase cost
var pointBuyCosts = map[int]int{
	8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9,
}

// PointBuyAnalysis reports what a set of scores would cost under point buy
type PointBuyAnalysis struct {
	TotalCost     int  `json:"total_cost"`
	Valid         bool `json:"valid_for_point_buy"`
	ExceedsBudget bool `json:"exceeds_point_buy"`
	Budget        int  `json:"point_buy_limit"`
}

// PointBuyCost returns the point-buy cost for a single score; ok is
// false when the score is outside the 8-15 band.
func PointBuyCost(score int) (cost int, ok bool) {
	cost, ok = pointBuyCosts[score]
	return cost, ok
}

// AnalyzePointBuy calculates the point-buy cost of a rolled score array
func AnalyzePointBuy(scores []int) *PointBuyAnalysis {
	analysis := &PointBuyAnalysis{
		Valid:  true,
		Budget: PointBuyBudget,
	}

	for _, score := range scores {
		cost, ok := pointBuyCosts[score]
		if !ok {
			analysis.Valid = false
			analysis.TotalCost = 0
			break
		}
		analysis.TotalCost += cost
	}

	analysis.ExceedsBudget = analysis.TotalCost > PointBuyBudget
	return analysis
}

// TableEntry is one row of a random table, matching rolls in [Min, Max]
type TableEntry struct {
	Min    int
	Max    int
	Result string
}

// RollOnTable rolls the given die and looks up the matching entry.
// Unmatched rolls return the roll with an empty result.
func RollOnTable(r Roller, table []TableEntry, dieSize int) (int, string, error) {
	roll, err := r.RollDie(dieSize)
	if err != nil {
		return 0, "", err
	}

	for _, entry := range table {
		if roll >= entry.Min && roll <= entry.Max {
			return roll, entry.Result, nil
		}
	}

	return roll, "", nil
}

var humanNames = map[string][]string{
	"male":   {"Aerdyn", "Beiro", "Carric", "Drannor", "Enna", "Galinndan"},
	"female": {"Adrie", "Birel", "Caelynn", "Dayereth", "Enna", "Galinndan"},
}

var nameSyllables = []string{"ad", "al", "am", "an", "ar", "ea", "el", "er", "in", "on", "or", "ou"}

// GenerateName produces a random character name. Human names come from
// small curated lists; everything else is assembled from syllables.
// Draws go through the supplied roller so seeded tests stay deterministic.
func GenerateName(r Roller, species, gender string) (string, error) {
	if strings.EqualFold(species, "human") {
		names, ok := humanNames[strings.ToLower(gender)]
		if !ok {
			names = append(append([]string{}, humanNames["male"]...), humanNames["female"]...)
		}
		idx, err := r.RollDie(len(names))
		if err != nil {
			return "", err
		}
		return names[idx-1], nil
	}

	lengthRoll, err := r.RollDie(2)
	if err != nil {
		return "", err
	}
	syllableCount := lengthRoll + 1 // 2 or 3 syllables

	var b strings.Builder
	for i := 0; i < syllableCount; i++ {
		idx, rollErr := r.RollDie(len(nameSyllables))
		if rollErr != nil {
			return "", rollErr
		}
		b.WriteString(nameSyllables[idx-1])
	}

	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:], nil
}

// SimulationStats summarizes repeated ability-array generation
type SimulationStats struct {
	AverageTotal      float64 `json:"average_total"`
	MinTotal          int     `json:"min_total"`
	MaxTotal          int     `json:"max_total"`
	AverageIndividual float64 `json:"average_individual"`
	MinIndividual     int     `json:"min_individual"`
	MaxIndividual     int     `json:"max_individual"`
	Iterations        int     `json:"iterations"`
}

// SimulateAbilityArrays rolls full six-score arrays repeatedly and
// reports distribution statistics. Useful for showing players what the
// 4d6-drop-lowest method tends to produce.
func SimulateAbilityArrays(r Roller, iterations int) (*SimulationStats, error) {
	if iterations < 1 {
		return nil, dnderr.InvalidArgumentf("iterations must be positive, got %d", iterations)
	}

	stats := &SimulationStats{
		MinTotal:      int(^uint(0) >> 1),
		MinIndividual: int(^uint(0) >> 1),
		Iterations:    iterations,
	}

	sumTotals := 0
	sumIndividual := 0
	individualCount := 0

	for i := 0; i < iterations; i++ {
		rolls, err := RollAbilityScores(r, len(AbilityNames))
		if err != nil {
			return nil, err
		}

		arrayTotal := 0
		for _, roll := range rolls {
			arrayTotal += roll.Total
			sumIndividual += roll.Total
			individualCount++

			if roll.Total < stats.MinIndividual {
				stats.MinIndividual = roll.Total
			}
			if roll.Total > stats.MaxIndividual {
				stats.MaxIndividual = roll.Total
			}
		}

		sumTotals += arrayTotal
		if arrayTotal < stats.MinTotal {
			stats.MinTotal = arrayTotal
		}
		if arrayTotal > stats.MaxTotal {
			stats.MaxTotal = arrayTotal
		}
	}

	stats.AverageTotal = float64(sumTotals) / float64(iterations)
	stats.AverageIndividual = float64(sumIndividual) / float64(individualCount)
	return stats, nil
}
