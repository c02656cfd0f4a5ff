package releasefile

import (
	"errors"
	"fmt"
	"io/fs"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/yamldoc"
)

// ReleaseVersionRepository implements repositories.ReleaseVersionRepository
// for YAML group vars files.
type ReleaseVersionRepository struct{}

// NewReleaseVersionRepository creates a new release version repository.
func NewReleaseVersionRepository() repositories.ReleaseVersionRepository {
	return &ReleaseVersionRepository{}
}

// Find skips candidates that do not exist or do not define key.
func (r *ReleaseVersionRepository) Find(candidates []string, key string) (*entities.VersionFile, error) {
	for _, candidate := range candidates {
		doc, err := yamldoc.Load(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		mapping, err := doc.Mapping()
		if err != nil {
			logger.Debugf("Ignoring %s: %v", candidate, err)
			continue
		}
		version, ok := yamldoc.String(mapping, key)
		if !ok || version == "" {
			logger.Debugf("Ignoring %s: no %s", candidate, key)
			continue
		}

		return &entities.VersionFile{Path: candidate, Key: key, Version: version}, nil
	}

	return nil, fmt.Errorf("%w %v (key %q)", entities.ErrVersionFileNotFound, candidates, key)
}

func (r *ReleaseVersionRepository) Write(file entities.VersionFile) error {
	doc, err := yamldoc.Load(file.Path)
	if err != nil {
		return err
	}
	mapping, err := doc.Mapping()
	if err != nil {
		return err
	}

	if setErr := doc.SetString(mapping, file.Key, file.Version, ""); setErr != nil {
		return fmt.Errorf("failed to set %q: %w", file.Key, setErr)
	}
	return doc.Save()
}
