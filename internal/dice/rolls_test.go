package dice_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-api/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-character-api/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollAbilityScore(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 1, 6, 3})

	result, err := dice.RollAbilityScore(roller)

	require.NoError(t, err)
	assert.Equal(t, 13, result.Total, "drops the 1, keeps 4+6+3")
	assert.Len(t, result.Rolls, 4)
}

func TestRollStandardAbilityScores(t *testing.T) {
	roller := dice.NewRandomRoller()

	results, err := dice.RollStandardAbilityScores(roller)

	require.NoError(t, err)
	require.Len(t, results, 6)
	for _, name := range dice.AbilityNames {
		result, ok := results[name]
		require.True(t, ok, "missing roll for %s", name)
		assert.GreaterOrEqual(t, result.Total, 3)
		assert.LessOrEqual(t, result.Total, 18)
	}
}

func TestRollSavingThrow(t *testing.T) {
	tests := []struct {
		name        string
		setupRolls  []int
		saveBonus   int
		dc          int
		mode        dice.AdvantageMode
		wantSuccess bool
		wantResult  int
	}{
		{
			name:        "beats the DC",
			setupRolls:  []int{14},
			saveBonus:   3,
			dc:          15,
			mode:        dice.ModeNormal,
			wantSuccess: true,
			wantResult:  17,
		},
		{
			name:        "ties succeed",
			setupRolls:  []int{12},
			saveBonus:   3,
			dc:          15,
			mode:        dice.ModeNormal,
			wantSuccess: true,
			wantResult:  15,
		},
		{
			name:        "one short fails",
			setupRolls:  []int{11},
			saveBonus:   3,
			dc:          15,
			mode:        dice.ModeNormal,
			wantSuccess: false,
			wantResult:  14,
		},
		{
			name:        "advantage rescues a low first roll",
			setupRolls:  []int{2, 18},
			saveBonus:   0,
			dc:          15,
			mode:        dice.ModeAdvantage,
			wantSuccess: true,
			wantResult:  18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			check, err := dice.RollSavingThrow(roller, tt.saveBonus, tt.dc, tt.mode)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, check.Success)
			assert.Equal(t, tt.wantResult, check.Result)
			assert.Equal(t, tt.dc, check.DC)
		})
	}
}

func TestRollSkillCheck(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{10})

	check, err := dice.RollSkillCheck(roller, 5, 15, dice.ModeNormal)

	require.NoError(t, err)
	assert.True(t, check.Success)
	assert.Equal(t, 15, check.Result)
}

func TestRollDamage(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6})

	result, err := dice.RollDamage(roller, "1d8+3", "slashing")

	require.NoError(t, err)
	assert.Equal(t, 9, result.Total)
	assert.Equal(t, "1d8+3 slashing damage", result.Description)
}

func TestRollInitiative(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{13})

	total, err := dice.RollInitiative(roller, 2)

	require.NoError(t, err)
	assert.Equal(t, 15, total)
}

func TestRollHitPoints(t *testing.T) {
	t.Run("level 1 takes max die", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()

		hp, err := dice.RollHitPoints(roller, 10, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, 12, hp)
	})

	t.Run("higher levels roll each level", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{4, 7}) // levels 2 and 3

		hp, err := dice.RollHitPoints(roller, 10, 2, 3)

		require.NoError(t, err)
		assert.Equal(t, 12+6+9, hp)
	})

	t.Run("each level grants at least 1", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{1}) // 1 + (-3) would be negative

		hp, err := dice.RollHitPoints(roller, 6, -3, 2)

		require.NoError(t, err)
		assert.Equal(t, 3+1, hp)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()

		_, err := dice.RollHitPoints(roller, 0, 2, 1)
		assert.Error(t, err)

		_, err = dice.RollHitPoints(roller, 10, 2, 0)
		assert.Error(t, err)
	})
}

func TestAnalyzePointBuy(t *testing.T) {
	tests := []struct {
		name        string
		scores      []int
		wantCost    int
		wantValid   bool
		wantExceeds bool
	}{
		{
			name:      "exactly at budget",
			scores:    []int{15, 15, 15, 8, 8, 8},
			wantCost:  27,
			wantValid: true,
		},
		{
			name:        "over budget",
			scores:      []int{15, 15, 15, 15, 8, 8},
			wantCost:    36,
			wantValid:   true,
			wantExceeds: true,
		},
		{
			name:      "standard array costs",
			scores:    []int{15, 14, 13, 12, 10, 8},
			wantCost:  27,
			wantValid: true,
		},
		{
			name:      "score outside the band",
			scores:    []int{18, 10, 10, 10, 10, 10},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := dice.AnalyzePointBuy(tt.scores)

			assert.Equal(t, tt.wantValid, analysis.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantCost, analysis.TotalCost)
			}
			assert.Equal(t, tt.wantExceeds, analysis.ExceedsBudget)
			assert.Equal(t, dice.PointBuyBudget, analysis.Budget)
		})
	}
}

func TestRollOnTable(t *testing.T) {
	table := []dice.TableEntry{
		{Min: 1, Max: 10, Result: "goblin ambush"},
		{Min: 11, Max: 20, Result: "abandoned shrine"},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7, 15, 3})

	roll, result, err := dice.RollOnTable(roller, table, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, roll)
	assert.Equal(t, "goblin ambush", result)

	roll, result, err = dice.RollOnTable(roller, table, 20)
	require.NoError(t, err)
	assert.Equal(t, 15, roll)
	assert.Equal(t, "abandoned shrine", result)

	// Gap in the table returns an empty result
	roll, result, err = dice.RollOnTable(roller, []dice.TableEntry{{Min: 10, Max: 20, Result: "x"}}, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, roll)
	assert.Empty(t, result)
}

func TestGenerateName(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2})

	name, err := dice.GenerateName(roller, "Human", "male")
	require.NoError(t, err)
	assert.Equal(t, "Beiro", name)

	roller.SetRolls([]int{1, 3, 5}) // 2 syllables: "am" + "ar"
	name, err = dice.GenerateName(roller, "Elf", "any")
	require.NoError(t, err)
	assert.Equal(t, "Amar", name)
}

func TestSimulateAbilityArrays(t *testing.T) {
	roller := dice.NewRandomRoller()

	stats, err := dice.SimulateAbilityArrays(roller, 200)

	require.NoError(t, err)
	assert.Equal(t, 200, stats.Iterations)
	assert.GreaterOrEqual(t, stats.MinIndividual, 3)
	assert.LessOrEqual(t, stats.MaxIndividual, 18)
	assert.GreaterOrEqual(t, stats.MinTotal, 18)
	assert.LessOrEqual(t, stats.MaxTotal, 108)
	assert.InDelta(t, 12.24, stats.AverageIndividual, 1.5, "4d6 drop lowest averages ~12.24")

	_, err = dice.SimulateAbilityArrays(roller, 0)
	assert.Error(t, err)
}
