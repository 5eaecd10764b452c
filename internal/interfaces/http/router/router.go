package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc adapts a plain function to the RouteRegistrar interface.
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes implements RouteRegistrar.
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}

// Router manages HTTP route registration. Routes fall into three buckets:
// public routes, routes behind user authentication, and cron routes behind
// the shared cron secret.
type Router struct {
	engine     *gin.Engine
	apiVersion string

	public    []RouteRegistrar
	protected []RouteRegistrar
	cron      []RouteRegistrar

	authMiddleware []gin.HandlerFunc
	cronMiddleware []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration.
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2").
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance.
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// UseAuth sets the middleware applied to the protected route bucket.
func (r *Router) UseAuth(middleware ...gin.HandlerFunc) *Router {
	r.authMiddleware = append(r.authMiddleware, middleware...)
	return r
}

// UseCronAuth sets the middleware applied to the cron route bucket.
func (r *Router) UseCronAuth(middleware ...gin.HandlerFunc) *Router {
	r.cronMiddleware = append(r.cronMiddleware, middleware...)
	return r
}

// RegisterPublic adds a registrar whose routes require no authentication.
func (r *Router) RegisterPublic(registrar RouteRegistrar) *Router {
	r.public = append(r.public, registrar)
	return r
}

// Register adds a registrar whose routes sit behind user authentication.
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.protected = append(r.protected, registrar)
	return r
}

// RegisterCron adds a registrar whose routes sit behind the cron secret.
func (r *Router) RegisterCron(registrar RouteRegistrar) *Router {
	r.cron = append(r.cron, registrar)
	return r
}

// Setup registers all routes with the engine.
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(r.authMiddleware...)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(protected)
	}

	cron := api.Group("")
	cron.Use(r.cronMiddleware...)
	for _, registrar := range r.cron {
		registrar.RegisterRoutes(cron)
	}
}
