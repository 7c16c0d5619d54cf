package api

import (
	"fmt"
	"html"
	"net/http"

	"github.com/Aidin1998/hello-service/api/responses"
	"github.com/Aidin1998/hello-service/docs"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	docsPath     = "/docs"
	openAPIPath  = "/docs/openapi.yaml"
	swaggerPath  = "/swagger/*any"
	yamlMIMEType = "application/yaml; charset=utf-8"
)

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>%s API Docs</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</head>
<body>
  <redoc spec-url='%s'></redoc>
</body>
</html>`

// registerDocs mounts the ReDoc page, its YAML document and the Swagger UI
func (s *Server) registerDocs() {
	s.router.GET(docsPath, s.docsPage)
	s.router.GET(openAPIPath, s.openAPIDocument)
	s.router.GET(swaggerPath, ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
}

func (s *Server) docsPage(c *gin.Context) {
	page := fmt.Sprintf(docsPage, html.EscapeString(s.cfg.Service.Name), openAPIPath)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (s *Server) openAPIDocument(c *gin.Context) {
	out, err := docs.YAML()
	if err != nil {
		s.logger.Error("failed to render API document", zap.Error(err))
		responses.Problem(c, http.StatusInternalServerError, "API document unavailable")
		return
	}

	c.Data(http.StatusOK, yamlMIMEType, out)
}
