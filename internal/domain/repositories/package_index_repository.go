package repositories

import "context"

// PackageIndexRepository looks up published package versions (PyPI JSON API).
type PackageIndexRepository interface {
	// LatestVersion returns the latest published version of a package on the index at indexURL.
	LatestVersion(ctx context.Context, indexURL, name string) (string, error)
}
