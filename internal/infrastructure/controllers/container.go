package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewCheckPinsController,
		NewBumpUpstreamShasController,
		NewBumpRolesController,
		NewFreezeRolesController,
		NewBumpReleaseNumberController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	checkPinsController *CheckPinsController,
	bumpUpstreamShasController *BumpUpstreamShasController,
	bumpRolesController *BumpRolesController,
	freezeRolesController *FreezeRolesController,
	bumpReleaseNumberController *BumpReleaseNumberController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkPinsController,
		bumpUpstreamShasController,
		bumpRolesController,
		freezeRolesController,
		bumpReleaseNumberController,
	}
}
