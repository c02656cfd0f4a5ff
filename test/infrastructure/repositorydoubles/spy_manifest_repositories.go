//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// SpyUpstreamManifestRepository implements repositories.UpstreamManifestRepository in memory.
type SpyUpstreamManifestRepository struct {
	Files     []string
	ListErr   error
	Manifests map[string]*entities.UpstreamManifest // path -> manifest
	Values    map[string]string                     // "path#key" -> value
	WriteErr  error
	// spy: writes received, by path
	Writes map[string][]entities.PinUpdate
}

var _ repositories.UpstreamManifestRepository = (*SpyUpstreamManifestRepository)(nil)

// ValueKey builds the Values map key for a path and key.
func ValueKey(path, key string) string {
	return path + "#" + key
}

func (s *SpyUpstreamManifestRepository) List(_ string) ([]string, error) {
	return s.Files, s.ListErr
}

func (s *SpyUpstreamManifestRepository) Read(path string) (*entities.UpstreamManifest, error) {
	manifest, ok := s.Manifests[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", path)
	}
	return manifest, nil
}

func (s *SpyUpstreamManifestRepository) ReadValue(path, key string) (string, error) {
	value, ok := s.Values[ValueKey(path, key)]
	if !ok {
		return "", fmt.Errorf("%w: %s has no value for %q", entities.ErrMalformedManifest, path, key)
	}
	return value, nil
}

func (s *SpyUpstreamManifestRepository) Write(path string, updates []entities.PinUpdate) error {
	if s.Writes == nil {
		s.Writes = make(map[string][]entities.PinUpdate)
	}
	s.Writes[path] = append(s.Writes[path], updates...)
	return s.WriteErr
}

// SpyRoleManifestRepository implements repositories.RoleManifestRepository in memory.
type SpyRoleManifestRepository struct {
	Roles    []entities.Role
	ReadErr  error
	WriteErr error
	// spy: roles written, nil when Write was never called
	Written   []entities.Role
	WriteCall int
}

var _ repositories.RoleManifestRepository = (*SpyRoleManifestRepository)(nil)

func (s *SpyRoleManifestRepository) Read(_ string) ([]entities.Role, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	roles := make([]entities.Role, len(s.Roles))
	copy(roles, s.Roles)
	return roles, nil
}

func (s *SpyRoleManifestRepository) Write(_ string, roles []entities.Role) error {
	s.WriteCall++
	s.Written = append([]entities.Role{}, roles...)
	return s.WriteErr
}

// StubReleaseVersionRepository implements repositories.ReleaseVersionRepository in memory.
type StubReleaseVersionRepository struct {
	File     *entities.VersionFile
	FindErr  error
	WriteErr error
	// spy
	Candidates []string
	Written    []entities.VersionFile
}

var _ repositories.ReleaseVersionRepository = (*StubReleaseVersionRepository)(nil)

func (s *StubReleaseVersionRepository) Find(candidates []string, _ string) (*entities.VersionFile, error) {
	s.Candidates = candidates
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	return s.File, nil
}

func (s *StubReleaseVersionRepository) Write(file entities.VersionFile) error {
	s.Written = append(s.Written, file)
	return s.WriteErr
}

// SpyReleaseNotesRepository implements repositories.ReleaseNotesRepository.
type SpyReleaseNotesRepository struct {
	Err error
	// spy
	Copies []NotesCopyCall
}

// NotesCopyCall records a single invocation of Copy.
type NotesCopyCall struct {
	RoleDir string
	DestDir string
}

var _ repositories.ReleaseNotesRepository = (*SpyReleaseNotesRepository)(nil)

func (s *SpyReleaseNotesRepository) Copy(roleDir, destDir string) ([]string, error) {
	s.Copies = append(s.Copies, NotesCopyCall{RoleDir: roleDir, DestDir: destDir})
	return []string{}, s.Err
}
