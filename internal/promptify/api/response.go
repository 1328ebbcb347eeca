package api

import (
	"errors"

	"promptify/internal/promptify/models"
	"promptify/internal/promptify/service"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, models.NewErrorResponse(message))
}

// GenerationErrorResponse writes err using the status and user message of
// its GenerationError, falling back to a generic 500.
func GenerationErrorResponse(c *gin.Context, err error) {
	status, message := generationErrorView(err)
	ErrorResponse(c, status, message)
}

func generationErrorView(err error) (int, string) {
	var genErr *service.GenerationError
	if !errors.As(err, &genErr) {
		genErr = service.Unexpected(err)
	}
	return genErr.Status, genErr.Message
}
