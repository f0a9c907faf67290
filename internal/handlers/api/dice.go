package api

import (
	"net/http"

	"github.com/KirkDiggler/dnd-character-api/internal/dice"
	"github.com/gin-gonic/gin"
)

type rollDiceRequest struct {
	Notation string `json:"notation" binding:"required"`
	Mode     string `json:"mode"`
}

// rollDice rolls standard notation like "3d6+2". With a mode set the
// notation must be a single die, rolled twice per the 5e rule.
func (h *Handler) rollDice(c *gin.Context) {
	var req rollDiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := dice.ParseAdvantageMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}

	if mode != dice.ModeNormal {
		count, sides, modifier, err := dice.ParseNotation(req.Notation)
		if err != nil {
			respondError(c, err)
			return
		}
		if count != 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "advantage rolls use a single die"})
			return
		}
		result, err := h.services.Roller.RollAdvantage(sides, modifier, mode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.services.Roller.RollNotation(req.Notation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// rollAbilityScores rolls a full six-score array with 4d6 drop lowest
func (h *Handler) rollAbilityScores(c *gin.Context) {
	scores, err := dice.RollStandardAbilityScores(h.services.Roller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

type pointBuyRequest struct {
	Scores []int `json:"scores" binding:"required"`
}

// analyzePointBuy prices an array against the 27-point budget
func (h *Handler) analyzePointBuy(c *gin.Context) {
	var req pointBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dice.AnalyzePointBuy(req.Scores))
}
