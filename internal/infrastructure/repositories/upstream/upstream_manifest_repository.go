package upstream

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/yamldoc"
)

const manifestGlob = "*.yml"

// UpstreamManifestRepository implements repositories.UpstreamManifestRepository
// on top of comment-preserving YAML documents.
type UpstreamManifestRepository struct{}

// NewUpstreamManifestRepository creates a new upstream manifest repository.
func NewUpstreamManifestRepository() repositories.UpstreamManifestRepository {
	return &UpstreamManifestRepository{}
}

func (r *UpstreamManifestRepository) List(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, manifestGlob))
	if err != nil {
		return nil, fmt.Errorf("invalid manifest directory %q: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Read collects the projects declared through *_git_repo keys, in document order.
func (r *UpstreamManifestRepository) Read(path string) (*entities.UpstreamManifest, error) {
	doc, err := yamldoc.Load(path)
	if err != nil {
		return nil, err
	}
	mapping, err := doc.Mapping()
	if err != nil {
		return nil, err
	}

	manifest := &entities.UpstreamManifest{Path: path}
	for _, key := range yamldoc.Keys(mapping) {
		if !strings.HasSuffix(key, entities.RepoKeySuffix) {
			continue
		}
		name := strings.TrimSuffix(key, entities.RepoKeySuffix)

		project, projectErr := readProject(mapping, name)
		if projectErr != nil {
			return nil, fmt.Errorf("%s: %w", path, projectErr)
		}
		manifest.Projects = append(manifest.Projects, project)
	}

	return manifest, nil
}

func (r *UpstreamManifestRepository) ReadValue(path, key string) (string, error) {
	doc, err := yamldoc.Load(path)
	if err != nil {
		return "", err
	}
	mapping, err := doc.Mapping()
	if err != nil {
		return "", err
	}

	value, ok := yamldoc.String(mapping, key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s has no value for %q", entities.ErrMalformedManifest, path, key)
	}
	return value, nil
}

// Write splices the updates into the file and makes sure it has an explicit document start.
func (r *UpstreamManifestRepository) Write(path string, updates []entities.PinUpdate) error {
	doc, err := yamldoc.Load(path)
	if err != nil {
		return err
	}
	mapping, err := doc.Mapping()
	if err != nil {
		return err
	}

	for _, update := range updates {
		if setErr := doc.SetString(mapping, update.Key, update.Value, update.Comment); setErr != nil {
			return fmt.Errorf("failed to set %q: %w", update.Key, setErr)
		}
	}

	doc.EnsureDocumentStart()
	return doc.Save()
}

func readProject(mapping *yaml.Node, name string) (entities.UpstreamProject, error) {
	url, _ := yamldoc.String(mapping, name+entities.RepoKeySuffix)

	sha, hasSHA := yamldoc.String(mapping, name+entities.InstallBranchKeySuffix)
	if !hasSHA {
		return entities.UpstreamProject{}, fmt.Errorf(
			"%w: project %q has no %s key", entities.ErrMalformedManifest, name, entities.InstallBranchKeySuffix,
		)
	}

	trackBranch, hasTrackBranch := yamldoc.String(mapping, name+entities.TrackBranchKeySuffix)
	if !hasTrackBranch {
		return entities.UpstreamProject{}, fmt.Errorf(
			"%w: project %q has no %s key", entities.ErrMalformedManifest, name, entities.TrackBranchKeySuffix,
		)
	}

	return entities.UpstreamProject{
		Name:        name,
		URL:         url,
		SHA:         sha,
		TrackBranch: trackBranch,
	}, nil
}
