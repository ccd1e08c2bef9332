package router

import (
	"strings"

	"aimecost/internal/config"
	"aimecost/internal/handler"
	"aimecost/internal/pricing"
	"aimecost/internal/web"

	"github.com/gin-gonic/gin"
)

func Setup() *gin.Engine {
	r := gin.Default()

	cfg := config.Get()

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	if len(allowedOrigins) == 0 || allowedOrigins[0] == "" {
		allowedOrigins = []string{"*"}
	}

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, o := range allowedOrigins {
			o = strings.TrimSpace(o)
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if allowedOrigins[0] == "*" {
			c.Header("Access-Control-Allow-Origin", "*")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	resolver := pricing.NewResolver(cfg.CatalogURL)

	estimateHandler := handler.NewEstimateHandler(resolver)
	pricingHandler := handler.NewPricingHandler(resolver)

	api := r.Group("/api")
	{
		api.GET("/bootstrap", estimateHandler.Bootstrap)
		api.GET("/agents", estimateHandler.ListAgents)
		api.POST("/estimate", estimateHandler.Estimate)
		api.GET("/pricing", pricingHandler.GetPricing)
	}

	// Serve embedded frontend static files
	web.RegisterStaticRoutes(r)

	return r
}
