package repositories

import "context"

// GitRepository talks to remote git repositories without a local checkout.
type GitRepository interface {
	// ResolveRef returns the commit SHA of the single remote ref matching reference,
	// the same way `git ls-remote <url> <reference>` matches.
	ResolveRef(ctx context.Context, url, reference string) (string, error)

	// ShallowClone clones branch of url into dest with depth 1 and returns the HEAD SHA.
	ShallowClone(ctx context.Context, url, branch, dest string) (string, error)
}
