package api

import (
	"net/http"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/shared"
	characterService "github.com/KirkDiggler/dnd-character-api/internal/services/character"
	"github.com/gin-gonic/gin"
)

type createCharacterRequest struct {
	OwnerID       string                   `json:"owner_id" binding:"required"`
	Name          string                   `json:"name" binding:"required"`
	ClassKey      string                   `json:"class_key"`
	SubclassKey   string                   `json:"subclass_key"`
	SpeciesKey    string                   `json:"species_key"`
	BackgroundKey string                   `json:"background_key"`
	Alignment     string                   `json:"alignment"`
	AbilityScores map[shared.Attribute]int `json:"ability_scores"`
	Skills        []string                 `json:"skills"`
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	char, err := h.services.CharacterService.CreateCharacter(c.Request.Context(), &characterService.CreateCharacterInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		ClassKey:      req.ClassKey,
		SubclassKey:   req.SubclassKey,
		SpeciesKey:    req.SpeciesKey,
		BackgroundKey: req.BackgroundKey,
		Alignment:     req.Alignment,
		AbilityScores: req.AbilityScores,
		Skills:        req.Skills,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, char)
}

func (h *Handler) listCharacters(c *gin.Context) {
	ownerID := c.Query("owner_id")
	chars, err := h.services.CharacterService.ListCharacters(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": chars})
}

func (h *Handler) getCharacter(c *gin.Context) {
	char, err := h.services.CharacterService.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

type updateCharacterRequest struct {
	Name          *string                  `json:"name"`
	Level         *int                     `json:"level"`
	XP            *int                     `json:"xp"`
	Alignment     *string                  `json:"alignment"`
	AbilityScores map[shared.Attribute]int `json:"ability_scores"`
}

func (h *Handler) updateCharacter(c *gin.Context) {
	var req updateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	char, err := h.services.CharacterService.UpdateCharacter(c.Request.Context(), &characterService.UpdateCharacterInput{
		CharacterID:   c.Param("id"),
		Name:          req.Name,
		Level:         req.Level,
		XP:            req.XP,
		Alignment:     req.Alignment,
		AbilityScores: req.AbilityScores,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	if err := h.services.CharacterService.DeleteCharacter(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getCharacterStats(c *gin.Context) {
	stats, err := h.services.CharacterService.GetCharacterStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) validateCharacter(c *gin.Context) {
	result, err := h.services.CharacterService.ValidateCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type addEquipmentRequest struct {
	EquipmentKey string `json:"equipment_key" binding:"required"`
	Quantity     int    `json:"quantity"`
	Equip        bool   `json:"equip"`
	Attune       bool   `json:"attune"`
}

func (h *Handler) addEquipment(c *gin.Context) {
	var req addEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	char, err := h.services.CharacterService.AddEquipment(c.Request.Context(), &characterService.AddEquipmentInput{
		CharacterID:  c.Param("id"),
		EquipmentKey: req.EquipmentKey,
		Quantity:     req.Quantity,
		Equip:        req.Equip,
		Attune:       req.Attune,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *Handler) recalculateStats(c *gin.Context) {
	char, err := h.services.CharacterService.AutoCalculateStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *Handler) finalizeCharacter(c *gin.Context) {
	char, err := h.services.CharacterService.FinalizeCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *Handler) archiveCharacter(c *gin.Context) {
	char, err := h.services.CharacterService.ArchiveCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}
