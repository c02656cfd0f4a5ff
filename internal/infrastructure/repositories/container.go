package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/constraints"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/pypi"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/releasefile"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/releasenotes"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/roles"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/upstream"
)

// RegisterProviders registers all repository providers with the DIG container.
// Each constructor returns the domain interface it implements.
func RegisterProviders(container *dig.Container) error {
	for _, constructor := range []any{
		pypi.NewPackageIndexRepository,
		constraints.NewConstraintsRepository,
		git.NewGitRepository,
		upstream.NewUpstreamManifestRepository,
		roles.NewRoleManifestRepository,
		releasefile.NewReleaseVersionRepository,
		releasenotes.NewReleaseNotesRepository,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}
