package repositories

import "context"

// ConstraintsRepository downloads an upstream constraints file at a given SHA.
type ConstraintsRepository interface {
	// Fetch returns the raw constraints file. urlTemplate contains a {sha} placeholder.
	Fetch(ctx context.Context, urlTemplate, sha string) (string, error)
}
