package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewCheckPinsCommand,
		NewBumpUpstreamShasCommand,
		NewBumpRolesCommand,
		NewBumpReleaseNumberCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CheckPinsCommand) CheckPins {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BumpUpstreamShasCommand) BumpUpstreamShas {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BumpRolesCommand) BumpRoles {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BumpReleaseNumberCommand) BumpReleaseNumber {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
