package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/dnd-character-api/internal/services/recommend"
	"github.com/gin-gonic/gin"
)

type recommendClassesRequest struct {
	Playstyles []string `json:"playstyles" binding:"required"`
	Experience string   `json:"experience"`
}

func (h *Handler) recommendClasses(c *gin.Context) {
	var req recommendClassesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	experience := recommend.ExperienceLevel(req.Experience)
	if experience == "" {
		experience = recommend.ExperienceIntermediate
	}

	recs := h.services.RecommendationService.RecommendClasses(req.Playstyles, experience)
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) recommendBackgrounds(c *gin.Context) {
	className := c.Query("class")
	if className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"class":       className,
		"backgrounds": h.services.RecommendationService.BackgroundsForClass(className),
	})
}

func (h *Handler) recommendSpecies(c *gin.Context) {
	className := c.Query("class")
	if className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"class":   className,
		"species": h.services.RecommendationService.SpeciesForClass(className),
	})
}

func (h *Handler) abilityPriority(c *gin.Context) {
	className := c.Query("class")
	if className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"class":    className,
		"priority": h.services.RecommendationService.AbilityPriority(className),
	})
}

type scoreAssignmentRequest struct {
	Class  string `json:"class" binding:"required"`
	Scores []int  `json:"scores" binding:"required"`
}

func (h *Handler) suggestScoreAssignment(c *gin.Context) {
	var req scoreAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.services.RecommendationService.SuggestScoreAssignment(req.Class, req.Scores)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

func (h *Handler) suggestSpells(c *gin.Context) {
	className := c.Query("class")
	if className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class query parameter is required"})
		return
	}

	spellLevel := 0
	if raw := c.Query("level"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "level must be a number"})
			return
		}
		spellLevel = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"class":  className,
		"spells": h.services.RecommendationService.SpellsForClass(className, spellLevel),
	})
}

func (h *Handler) analyzeSynergies(c *gin.Context) {
	char, err := h.services.CharacterService.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.services.RecommendationService.AnalyzeSynergies(char))
}

func (h *Handler) optimizationScore(c *gin.Context) {
	char, err := h.services.CharacterService.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.services.RecommendationService.OptimizationScore(char))
}

func (h *Handler) suggestFeats(c *gin.Context) {
	char, err := h.services.CharacterService.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feats": h.services.RecommendationService.FeatsForBuild(char)})
}

func (h *Handler) startingEquipment(c *gin.Context) {
	char, err := h.services.CharacterService.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.services.RecommendationService.StartingEquipment(char))
}
