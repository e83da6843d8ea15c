package services

import (
	"github.com/campusmart/campusmart/pkg/app"
	"github.com/campusmart/campusmart/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewListingRepository(a.Db, a.EventBus)
	return &Services{
		Catalog: NewCatalogService(repo),
	}
}
