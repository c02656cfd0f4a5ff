package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/controllers"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories"
)

// RegisterProviders registers every layer, bottom-up, then the AppInternal.
func RegisterProviders(container *dig.Container) error {
	for _, register := range []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	} {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
