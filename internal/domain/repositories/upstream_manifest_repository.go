package repositories

import "github.com/rios0rios0/osa-releases/internal/domain/entities"

// UpstreamManifestRepository reads and rewrites repo-packages YAML manifests,
// keeping comments and unrelated keys.
type UpstreamManifestRepository interface {
	// List returns the manifest files (*.yml) of a directory, sorted.
	List(dir string) ([]string, error)

	// Read parses every *_git_repo project of a manifest.
	Read(path string) (*entities.UpstreamManifest, error)

	// ReadValue returns a top-level scalar of a manifest.
	ReadValue(path, key string) (string, error)

	// Write applies scalar updates to the manifest in place.
	Write(path string, updates []entities.PinUpdate) error
}
