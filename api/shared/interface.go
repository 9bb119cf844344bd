package shared

import (
	"github.com/gin-gonic/gin"
)

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// GroupHandler defines the actions needed to be performed by a gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup, additionalMiddlewares []MiddlewareProcessor)
	IsInterfaceNil() bool
}

// EndpointHandlerData holds the items needed for creating a new gin HTTP endpoint
type EndpointHandlerData struct {
	Path    string
	Method  string
	Handler gin.HandlerFunc
}
