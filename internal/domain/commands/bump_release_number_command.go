package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// BumpReleaseNumber is the interface for the bump_release_number command.
type BumpReleaseNumber interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BumpReleaseNumberOptions) (*entities.VersionFile, error)
}

// BumpReleaseNumberOptions holds runtime options for a release number bump.
type BumpReleaseNumberOptions struct {
	ReleaseType string
	DryRun      bool
}

// BumpReleaseNumberCommand increments the release version stored in the group vars.
type BumpReleaseNumberCommand struct {
	versions repositories.ReleaseVersionRepository
}

// NewBumpReleaseNumberCommand creates a new BumpReleaseNumberCommand.
func NewBumpReleaseNumberCommand(versions repositories.ReleaseVersionRepository) *BumpReleaseNumberCommand {
	return &BumpReleaseNumberCommand{versions: versions}
}

// Execute finds the current version, computes the next one and writes it back.
// It returns the file as written.
func (it *BumpReleaseNumberCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts BumpReleaseNumberOptions,
) (*entities.VersionFile, error) {
	releaseType, err := entities.ParseReleaseType(opts.ReleaseType)
	if err != nil {
		return nil, err
	}

	file, err := it.versions.Find(settings.Release.VersionFiles, settings.Release.VersionKey)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found version %s in %s", file.Version, file.Path)

	current, err := entities.ParseReleaseVersion(file.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version in %s: %w", file.Path, err)
	}

	next, err := current.Next(releaseType)
	if err != nil {
		return nil, err
	}

	updated := entities.VersionFile{Path: file.Path, Key: file.Key, Version: next.String()}
	if opts.DryRun {
		logger.Infof("[DRY RUN] Would update %s to %s", updated.Path, updated.Version)
		return &updated, nil
	}

	logger.Infof("Updating %s to %s", updated.Path, updated.Version)
	if writeErr := it.versions.Write(updated); writeErr != nil {
		return nil, fmt.Errorf("failed to write version to %s: %w", updated.Path, writeErr)
	}
	return &updated, nil
}
