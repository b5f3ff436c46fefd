package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// InitRoutes builds the router for the pages, the JSON API and the health
// check.
func InitRoutes(h *Handler, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Logger(logger), gin.Recovery(), LimitBody(h.maxUpload))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/", h.Index)
	router.GET("/faces", h.FacesPage)
	router.POST("/faces", h.DetectFacesPage)
	router.GET("/playground", h.PlaygroundPage)
	router.POST("/playground", h.ApplyOperationPage)
	router.GET("/sentiment", h.SentimentPage)
	router.POST("/sentiment", h.CheckSentimentPage)

	api := router.Group("/api")
	{
		api.POST("/faces", h.APIDetectFaces)
		api.POST("/playground/:operation", h.APIApplyOperation)
		api.POST("/sentiment", h.APIAnalyzeSentiment)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "vision-demos",
		})
	})

	return router
}
