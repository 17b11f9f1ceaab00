package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/imagegrid/pexels-proxy/api/health"
	"github.com/imagegrid/pexels-proxy/api/search"
	"github.com/imagegrid/pexels-proxy/api/static"
	"github.com/imagegrid/pexels-proxy/api/types"
	"github.com/imagegrid/pexels-proxy/api/version"
	_ "github.com/imagegrid/pexels-proxy/docs/swagger"
	"github.com/imagegrid/pexels-proxy/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register operational routes
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	apiGroup := engine.Group("/api")
	search.RegisterRoutes(apiGroup.Group("/search"), deps)

	// Entry document plus static asset fallback. Unknown /api paths stay
	// JSON; everything else resolves against the asset directory.
	frontend := static.NewHandler(cfg.Static.Dir, cfg.Static.Index)
	engine.GET("/", frontend.Index())
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			NotFoundHandler()(c)
			return
		}
		frontend.Asset()(c)
	})

	return nil
}

// NotFoundHandler handles 404 errors on API paths
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "The requested endpoint was not found.",
			"path":  c.Request.URL.Path,
		})
	}
}
