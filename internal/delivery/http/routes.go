package http

import (
	"github.com/chemaware/catalog/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:identifier", handler.GetProduct)
		}

		v1.GET("/view", handler.GetView)
		v1.PUT("/view", handler.UpdateView)

		favorites := v1.Group("/favorites")
		{
			favorites.GET("", handler.ListFavorites)
			favorites.POST("/:identifier/toggle", handler.ToggleFavorite)
			favorites.DELETE("/:identifier", handler.RemoveFavorite)
		}

		compare := v1.Group("/compare")
		{
			compare.GET("", handler.GetCompare)
			compare.DELETE("", handler.ClearCompare)
			compare.GET("/pair", handler.ComparePair)
			compare.POST("/:identifier", handler.AddCompare)
			compare.DELETE("/:identifier", handler.RemoveCompare)
		}
	}

	return router
}
