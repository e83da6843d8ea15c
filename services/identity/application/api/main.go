package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusmart/campusmart/pkg/app"
	"github.com/campusmart/campusmart/pkg/config"
	"github.com/campusmart/campusmart/services/identity/application/handlers"
	appsvcs "github.com/campusmart/campusmart/services/identity/application/services"
)

// IdentityRoutes registers auth endpoints on the provided chi router.
// The services container is built by the caller so session-change listeners
// can be attached before any request is served.
func IdentityRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services, cfg *config.Config) {
	r.Group(func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handlers.NewPostSignupHandler(svcs, a.SessionStore).Execute)
			r.Post("/login", handlers.NewPostLoginHandler(svcs, a.SessionStore).Execute)
			r.Post("/logout", handlers.NewPostLogoutHandler(svcs, a.SessionStore).Execute)
			r.Get("/session", handlers.NewGetSessionHandler(a.SessionStore).Execute)
			r.Get("/oauth/{provider}", handlers.NewGetOAuthHandler(svcs, cfg).Execute)
		})
	})
}
