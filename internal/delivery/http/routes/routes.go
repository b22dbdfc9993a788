package routes

import (
	"jobhunt/internal/delivery/http/handler"
	v1 "jobhunt/internal/delivery/http/routes/v1"
	"jobhunt/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	v1     v1.Handlers
	auth   fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, v1Handlers v1.Handlers, auth fiber.Handler) *Registry {
	return &Registry{health: health, ws: wsHandler, v1: v1Handlers, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		app.Get("/ws/jobs", r.ws.HandleJobsWS)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1, r.auth)
}
