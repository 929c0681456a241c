package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Handler *Handler
	APIKey  string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "x-api-key", "X-Requested-With"},
	}))

	router.GET("/", cfg.Handler.Root)
	router.GET("/health", cfg.Handler.Health)
	router.GET("/supported-platforms", cfg.Handler.SupportedPlatforms)
	router.GET("/stats", cfg.Handler.Stats)

	protected := router.Group("/")
	protected.Use(APIKeyAuth(cfg.APIKey))
	protected.POST("/extract", cfg.Handler.Extract)
	protected.POST("/extract/batch", cfg.Handler.ExtractBatch)
	protected.GET("/cache/stats", cfg.Handler.CacheStats)

	return router
}
