package router

import (
	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/admin"
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/facility"
	"lodge/internal/handlers/health"
	"lodge/internal/handlers/inquiry"
	"lodge/internal/handlers/review"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/user"
	"lodge/internal/handlers/ws"
	"lodge/transport/http/middleware"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Admin    admin.Handler
	Room     room.Handler
	Booking  booking.Handler
	Facility facility.Handler
	Inquiry  inquiry.Handler
	Review   review.Handler
	Ws       ws.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Ws.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
