package api

import (
	"net/http"

	"promptify/internal/promptify/models"
	"promptify/internal/promptify/service"
	"promptify/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	generator *service.Generator
	health    *service.HealthService
}

func NewHandler(generator *service.Generator, health *service.HealthService) *Handler {
	return &Handler{
		generator: generator,
		health:    health,
	}
}

// Generate is the JSON endpoint: {"prompt": "..."} in, {"response": "..."}
// or {"error": "..."} out.
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body counts as a missing prompt.
		logger.Warn("Invalid request body", "request_id", c.GetString(requestIDKey), "error", err)
		req = models.GenerateRequest{}
	}

	resp, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		GenerationErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, resp)
}

func (h *Handler) GetModel(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.GetModelInfo())
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.GetHealth())
}
