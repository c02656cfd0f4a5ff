//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- ResolveRef ---
	// SHAs maps "url@reference" to the SHA returned.
	SHAs       map[string]string
	ResolveErr error
	// spy: "url@reference" keys requested
	Resolved []string

	// --- ShallowClone ---
	// CloneFiles are written (relative path -> content) into every clone destination.
	CloneFiles map[string]string
	CloneErr   error
	// spy: clones requested
	Clones []CloneCall
}

// CloneCall records a single invocation of ShallowClone.
type CloneCall struct {
	URL    string
	Branch string
	Dest   string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

// RefKey builds the SHAs map key for a url and reference.
func RefKey(url, reference string) string {
	return url + "@" + reference
}

func (s *SpyGitRepository) ResolveRef(_ context.Context, url, reference string) (string, error) {
	key := RefKey(url, reference)
	s.Resolved = append(s.Resolved, key)
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	sha, ok := s.SHAs[key]
	if !ok {
		return "", fmt.Errorf("no ref configured for %s", key)
	}
	return sha, nil
}

func (s *SpyGitRepository) ShallowClone(_ context.Context, url, branch, dest string) (string, error) {
	s.Clones = append(s.Clones, CloneCall{URL: url, Branch: branch, Dest: dest})
	if s.CloneErr != nil {
		return "", s.CloneErr
	}
	for rel, content := range s.CloneFiles {
		path := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", err
		}
	}
	return "0000000000000000000000000000000000000000", nil
}
