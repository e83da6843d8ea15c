package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusmart/campusmart/pkg/app"
	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/services/catalog/application/handlers"
	appsvcs "github.com/campusmart/campusmart/services/catalog/application/services"
)

// CatalogRoutes registers listing endpoints on the provided chi router.
// Every route requires a signed-in session; the feed is always scoped to
// the viewer's campus. The services container is built by the caller so it
// can also be wired to the identity session state.
func CatalogRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	// Avoid a typed-nil interface when the image store is not configured.
	var uploader handlers.ImageUploader
	var resolver handlers.ImageResolver
	if a.Images != nil {
		uploader = a.Images
		resolver = a.Images
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore))
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", handlers.NewGetListingsHandler(svcs, resolver).Execute)
			r.Post("/", handlers.NewPostListingHandler(svcs, resolver).Execute)
			r.Post("/image", handlers.NewPostImageHandler(uploader).Execute)
			r.Patch("/{id}/sold", handlers.NewPatchSoldHandler(svcs).Execute)
			r.Get("/{id}/contact", handlers.NewGetContactHandler(svcs).Execute)
		})
	})
}
