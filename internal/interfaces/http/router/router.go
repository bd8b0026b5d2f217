package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a handler's routes on the API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts all registered handlers under the /api prefix
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		engine:     engine,
		registrars: make([]RouteRegistrar, 0),
	}
}

// Register adds a RouteRegistrar to be mounted by Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup mounts every registered handler on the /api group
func (r *Router) Setup() {
	api := r.engine.Group("/api")

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}
