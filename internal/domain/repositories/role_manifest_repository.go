package repositories

import "github.com/rios0rios0/osa-releases/internal/domain/entities"

// RoleManifestRepository reads and rewrites the role requirements manifest.
type RoleManifestRepository interface {
	Read(path string) ([]entities.Role, error)

	// Write stores each role's version back into the entry at the same index.
	Write(path string, roles []entities.Role) error
}
