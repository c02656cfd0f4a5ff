package roles

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/yamldoc"
)

const (
	keyName        = "name"
	keySource      = "src"
	keyVersion     = "version"
	keyTrackBranch = "trackbranch"
)

var errNotSequence = errors.New("role requirements must be a YAML sequence")

// RoleManifestRepository implements repositories.RoleManifestRepository for
// ansible-role-requirements.yml style files.
type RoleManifestRepository struct{}

// NewRoleManifestRepository creates a new role manifest repository.
func NewRoleManifestRepository() repositories.RoleManifestRepository {
	return &RoleManifestRepository{}
}

func (r *RoleManifestRepository) Read(path string) ([]entities.Role, error) {
	_, entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}

	roles := make([]entities.Role, 0, len(entries))
	for i, entry := range entries {
		if entry.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, yamldoc.ErrNotMapping)
		}
		name, _ := yamldoc.String(entry, keyName)
		source, _ := yamldoc.String(entry, keySource)
		version, _ := yamldoc.String(entry, keyVersion)
		trackBranch, _ := yamldoc.String(entry, keyTrackBranch)

		roles = append(roles, entities.Role{
			Name:        name,
			Source:      source,
			Version:     version,
			TrackBranch: trackBranch,
		})
	}

	return roles, nil
}

// Write only touches the version of entries whose value changed; every other
// byte of the file is kept.
func (r *RoleManifestRepository) Write(path string, roles []entities.Role) error {
	doc, entries, err := loadEntries(path)
	if err != nil {
		return err
	}
	if len(entries) != len(roles) {
		return fmt.Errorf(
			"%w: %s has %d roles, got %d to write", entities.ErrMalformedManifest, path, len(entries), len(roles),
		)
	}

	for i, role := range roles {
		current, _ := yamldoc.String(entries[i], keyVersion)
		if current == role.Version {
			continue
		}
		if setErr := doc.SetString(entries[i], keyVersion, role.Version, ""); setErr != nil {
			return fmt.Errorf("%s: role %q: %w", path, role.Name, setErr)
		}
	}

	return doc.Save()
}

func loadEntries(path string) (*yamldoc.Document, []*yaml.Node, error) {
	doc, err := yamldoc.Load(path)
	if err != nil {
		return nil, nil, err
	}

	content := doc.Content()
	if content == nil {
		return doc, nil, nil
	}
	if content.Kind != yaml.SequenceNode {
		return nil, nil, fmt.Errorf("%s: %w", path, errNotSequence)
	}
	return doc, content.Content, nil
}
