package infoserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/zhulik/eagerbind/pkg/binder"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/httpserver"
	"github.com/zhulik/eagerbind/pkg/json"
)

type Server struct {
	*httpserver.Server

	injector  *do.Injector
	binder    *binder.Binder
	container *container.Container
}

// NewServer creates a new Server instance serving diagnostics about bound configuration.
func NewServer(injector *do.Injector) (*Server, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	b, err := do.Invoke[*binder.Binder](injector)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	c, err := do.Invoke[*container.Container](injector)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	server, err := httpserver.NewServer(injector, "infoserver.Server", config.HTTPPort())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	srv := &Server{
		Server:    server,
		injector:  injector,
		binder:    b,
		container: c,
	}

	srv.Router.GET("/bindings", srv.BindingsHandler)
	srv.Router.GET("/keys", srv.KeysHandler)
	srv.Router.GET("/values/*path", srv.ValueHandler)
	srv.Router.GET("/pulse", srv.PulseHandler)

	return srv, nil
}

func (s *Server) BindingsHandler(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"settings": s.binder.Settings(),
		"log":      s.binder.BindingLog(),
	})
}

func (s *Server) KeysHandler(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.container.Keys())
}

func (s *Server) ValueHandler(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	value, ok := s.container.Lookup(path)
	if !ok {
		c.JSON(http.StatusNotFound, httpserver.ErrorBody{Error: "binding not found"})

		return
	}

	// number[] bindings may hold NaN which has no JSON form.
	data, err := json.MarshalIndent(gin.H{"path": path, "value": value})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpserver.ErrorBody{Error: err.Error()})

		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON, data)
}

func (s *Server) PulseHandler(c *gin.Context) {
	for service, err := range s.injector.HealthCheck() {
		if err != nil {
			c.Error(err) //nolint:errcheck

			s.Logger.WithError(err).WithField("service", service).Warn("Health check failed")

			return
		}
	}

	c.Status(http.StatusOK)
}
