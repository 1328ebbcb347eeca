package api

import (
	"promptify/internal/promptify/config"
	"promptify/internal/promptify/service"
	"promptify/internal/promptify/service/llm"
	"promptify/pkg/logger"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, provider llm.Provider) *gin.Engine {
	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(ErrorMiddleware())
	router.Use(CORSMiddleware(cfg.Server.CORS))

	if !cfg.HasProviderCredential() {
		logger.Warn("Gemini API key is not configured, generation requests will fail", "model", cfg.Provider.Model)
	}

	// Initialize services
	generator := service.NewGenerator(provider, cfg.Provider.APIKey)
	health := service.NewHealthService(cfg.Provider)
	handler := NewHandler(generator, health)

	// Pages
	router.GET("/", handler.Index)
	router.POST("/", handler.Submit)
	router.GET("/techniques", handler.Techniques)
	router.NoRoute(handler.NotFound)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/generate", handler.Generate)
		api.GET("/model", handler.GetModel)
		api.GET("/health", handler.GetHealth)
	}

	return router
}
