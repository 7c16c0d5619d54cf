package api

import (
	"net/http"

	"github.com/Aidin1998/hello-service/api/responses"
	"github.com/Aidin1998/hello-service/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// root godoc
//
//	@Summary		Service banner
//	@Description	Root endpoint
//	@Tags			System
//	@ID				root
//	@Produce		json
//	@Success		200	{object}	responses.WelcomeResponse
//	@Router			/ [get]
func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, responses.Welcome(s.cfg.Service.Name, s.cfg.Service.Version))
}

// healthCheck godoc
//
//	@Summary		Health check
//	@Description	Health check endpoint
//	@Tags			System
//	@ID				health
//	@Produce		json
//	@Success		200	{object}	responses.HealthResponse
//	@Router			/health [get]
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.Health(s.cfg.Service.Name))
}

// hello godoc
//
//	@Summary		Greet by name
//	@Description	Example endpoint
//	@Tags			Greetings
//	@ID				hello
//	@Produce		json
//	@Param			name	path		string	true	"Name to greet"
//	@Success		200		{object}	responses.GreetingResponse
//	@Router			/api/v1/hello/{name} [get]
func (s *Server) hello(c *gin.Context) {
	metrics.GreetingsTotal.Inc()
	s.greetings.Add(c.Request.Context(), 1)
	c.JSON(http.StatusOK, responses.Greeting(s.cfg.Service.Name, c.Param("name")))
}
