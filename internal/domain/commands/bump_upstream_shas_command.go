package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// BumpUpstreamShas is the interface for the bump_upstream_shas command.
type BumpUpstreamShas interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BumpUpstreamShasOptions) error
}

// BumpUpstreamShasOptions holds runtime options for an upstream SHA bump.
type BumpUpstreamShasOptions struct {
	Path   string // overrides settings.Upstream.Path
	DryRun bool
}

// BumpUpstreamShasCommand moves every tracked project of the repo-packages
// manifests to the current tip of its track branch.
type BumpUpstreamShasCommand struct {
	manifests repositories.UpstreamManifestRepository
	git       repositories.GitRepository
	now       func() time.Time
}

// NewBumpUpstreamShasCommand creates a new BumpUpstreamShasCommand.
func NewBumpUpstreamShasCommand(
	manifests repositories.UpstreamManifestRepository,
	git repositories.GitRepository,
) *BumpUpstreamShasCommand {
	return &BumpUpstreamShasCommand{
		manifests: manifests,
		git:       git,
		now:       time.Now,
	}
}

// Execute processes every manifest of the target directory in name order.
func (it *BumpUpstreamShasCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpUpstreamShasOptions,
) error {
	path := opts.Path
	if path == "" {
		path = settings.Upstream.Path
	}

	files, err := it.manifests.List(path)
	if err != nil {
		return fmt.Errorf("failed to list manifests in %q: %w", path, err)
	}

	for _, file := range files {
		logger.Infof("Working on %s", file)
		if bumpErr := it.bumpFile(ctx, file, opts.DryRun); bumpErr != nil {
			return bumpErr
		}
	}

	return nil
}

func (it *BumpUpstreamShasCommand) bumpFile(ctx context.Context, file string, dryRun bool) error {
	manifest, err := it.manifests.Read(file)
	if err != nil {
		return fmt.Errorf("failed to read manifest %q: %w", file, err)
	}

	comment := entities.HeadComment(it.now())
	var updates []entities.PinUpdate
	for _, project := range manifest.Projects {
		if !project.IsTracked() {
			logger.Infof("Skipping project %s branch %s", project.URL, project.TrackBranch)
			continue
		}

		logger.Infof("Bumping project %s on its %s branch", project.URL, project.TrackBranch)
		sha, resolveErr := it.git.ResolveRef(ctx, project.URL, project.TrackBranch)
		if resolveErr != nil {
			return fmt.Errorf("failed to resolve %s of %s: %w", project.TrackBranch, project.URL, resolveErr)
		}
		logger.Debugf("%s: %s -> %s", project.Name, project.SHA, sha)

		updates = append(updates, entities.PinUpdate{
			Key:     project.InstallBranchKey(),
			Value:   sha,
			Comment: comment,
		})
	}

	if len(updates) == 0 {
		return nil
	}
	if dryRun {
		for _, update := range updates {
			logger.Infof("[DRY RUN] Would set %s to %s in %s", update.Key, update.Value, file)
		}
		return nil
	}

	if writeErr := it.manifests.Write(file, updates); writeErr != nil {
		return fmt.Errorf("failed to write manifest %q: %w", file, writeErr)
	}
	return nil
}
