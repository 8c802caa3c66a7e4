package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	classifyHTTP "tm-intent-classifier/internal/classify/delivery/http"
	"tm-intent-classifier/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/openapi.json", srv.openAPISpec)

	swaggerHandler := ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/openapi.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	)
	// RedirectTrailingSlash sends /docs to /docs/, which we forward to the UI.
	srv.gin.GET("/docs/*any", func(c *gin.Context) {
		if any := c.Param("any"); any == "" || any == "/" {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
			return
		}
		swaggerHandler(c)
	})
}

func (srv HTTPServer) registerDomainRoutes() {
	classifyHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.classifyHandler)
	srv.l.Infof(context.Background(), "classify route registered at POST /api/v1/classify")
}

func (srv HTTPServer) openAPISpec(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(doc))
}
