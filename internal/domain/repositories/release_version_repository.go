package repositories

import "github.com/rios0rios0/osa-releases/internal/domain/entities"

// ReleaseVersionRepository locates and rewrites the release version field.
type ReleaseVersionRepository interface {
	// Find returns the first candidate file that exists and holds key.
	Find(candidates []string, key string) (*entities.VersionFile, error)

	// Write stores file.Version under file.Key of file.Path.
	Write(file entities.VersionFile) error
}
