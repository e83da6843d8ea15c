package services

import (
	"github.com/campusmart/campusmart/pkg/app"
	"github.com/campusmart/campusmart/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Identity *IdentityService
}

// New wires all identity application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewAccountRepository(a.Db)
	return &Services{
		Identity: NewIdentityService(repo),
	}
}
