package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(JSONRecovery(logger))
	router.Use(LoggingMiddleware(logger))
	router.Use(JSONErrorHandler(logger))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorBody{Error: "Not found"})
	})

	return router
}
