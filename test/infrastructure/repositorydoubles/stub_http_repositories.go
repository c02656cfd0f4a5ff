//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// StubPackageIndexRepository implements repositories.PackageIndexRepository.
type StubPackageIndexRepository struct {
	Versions map[string]string // package -> latest version
	Err      error
	// spy: package names requested
	Requested []string
	IndexURLs []string
}

var _ repositories.PackageIndexRepository = (*StubPackageIndexRepository)(nil)

func (s *StubPackageIndexRepository) LatestVersion(_ context.Context, indexURL, name string) (string, error) {
	s.Requested = append(s.Requested, name)
	s.IndexURLs = append(s.IndexURLs, indexURL)
	if s.Err != nil {
		return "", s.Err
	}
	version, ok := s.Versions[name]
	if !ok {
		return "", fmt.Errorf("unexpected status code 404 for %s", name)
	}
	return version, nil
}

// StubConstraintsRepository implements repositories.ConstraintsRepository.
type StubConstraintsRepository struct {
	Content string
	Err     error
	// spy: SHAs requested
	SHAs []string
}

var _ repositories.ConstraintsRepository = (*StubConstraintsRepository)(nil)

func (s *StubConstraintsRepository) Fetch(_ context.Context, _ string, sha string) (string, error) {
	s.SHAs = append(s.SHAs, sha)
	return s.Content, s.Err
}
