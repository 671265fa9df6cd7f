package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wpgo/wealth-projector/internal/api/handlers"
	"github.com/wpgo/wealth-projector/internal/api/middleware"
	"github.com/wpgo/wealth-projector/internal/calculation"
	"github.com/wpgo/wealth-projector/internal/pricefeed"
)

// NewRouter wires the API routes. The server holds no scenario state; every
// projection request carries its full configuration.
func NewRouter(engine *calculation.Engine, feed *pricefeed.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	projection := handlers.NewProjectionHandler(engine)
	price := handlers.NewPriceHandler(feed)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", projection.Health)
		v1.POST("/projection", projection.RunProjection)
		v1.GET("/price", price.Spot)
	}

	return router
}
