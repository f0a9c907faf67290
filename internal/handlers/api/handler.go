package api

import (
	"net/http"

	dnderr "github.com/KirkDiggler/dnd-character-api/internal/errors"
	"github.com/KirkDiggler/dnd-character-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler wires the service layer to HTTP routes
type Handler struct {
	services *services.Provider
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
}

// NewHandler creates an API handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil || cfg.ServiceProvider == nil {
		return nil, dnderr.InvalidArgument("service provider is required")
	}
	return &Handler{services: cfg.ServiceProvider}, nil
}

// RegisterRoutes attaches every endpoint under /api/v1
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.health)

	v1 := router.Group("/api/v1")

	diceGroup := v1.Group("/dice")
	{
		diceGroup.POST("/roll", h.rollDice)
		diceGroup.POST("/ability-scores", h.rollAbilityScores)
		diceGroup.POST("/point-buy", h.analyzePointBuy)
	}

	charGroup := v1.Group("/characters")
	{
		charGroup.POST("", h.createCharacter)
		charGroup.GET("", h.listCharacters)
		charGroup.GET("/:id", h.getCharacter)
		charGroup.PATCH("/:id", h.updateCharacter)
		charGroup.DELETE("/:id", h.deleteCharacter)
		charGroup.GET("/:id/stats", h.getCharacterStats)
		charGroup.GET("/:id/validation", h.validateCharacter)
		charGroup.POST("/:id/equipment", h.addEquipment)
		charGroup.POST("/:id/recalculate", h.recalculateStats)
		charGroup.POST("/:id/finalize", h.finalizeCharacter)
		charGroup.POST("/:id/archive", h.archiveCharacter)
		charGroup.GET("/:id/synergies", h.analyzeSynergies)
		charGroup.GET("/:id/score", h.optimizationScore)
		charGroup.GET("/:id/feats", h.suggestFeats)
		charGroup.GET("/:id/starting-equipment", h.startingEquipment)
	}

	recGroup := v1.Group("/recommendations")
	{
		recGroup.POST("/classes", h.recommendClasses)
		recGroup.GET("/backgrounds", h.recommendBackgrounds)
		recGroup.GET("/species", h.recommendSpecies)
		recGroup.GET("/ability-priority", h.abilityPriority)
		recGroup.POST("/score-assignment", h.suggestScoreAssignment)
		recGroup.GET("/spells", h.suggestSpells)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service error codes onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case dnderr.IsInvalidArgument(err), dnderr.Is(err, dnderr.CodeValidation):
		status = http.StatusBadRequest
	case dnderr.IsNotFound(err):
		status = http.StatusNotFound
	case dnderr.IsAlreadyExists(err):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
