package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// BumpRoles is the interface for the bump_roles and freeze_roles_for_milestone commands.
type BumpRoles interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BumpRolesOptions) error
}

// BumpRolesOptions holds runtime options for a role requirements bump.
type BumpRolesOptions struct {
	File   string // overrides settings.Roles.File
	Branch string
	Freeze bool // milestone freeze, only meaningful on master
	DryRun bool
}

// BumpRolesCommand updates the role requirements manifest for a target branch
// and imports the release notes of the owned roles it resolved.
type BumpRolesCommand struct {
	roles        repositories.RoleManifestRepository
	git          repositories.GitRepository
	releaseNotes repositories.ReleaseNotesRepository
}

// NewBumpRolesCommand creates a new BumpRolesCommand.
func NewBumpRolesCommand(
	roles repositories.RoleManifestRepository,
	git repositories.GitRepository,
	releaseNotes repositories.ReleaseNotesRepository,
) *BumpRolesCommand {
	return &BumpRolesCommand{
		roles:        roles,
		git:          git,
		releaseNotes: releaseNotes,
	}
}

// Execute applies the bump policy to every role, then rewrites the manifest.
func (it *BumpRolesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BumpRolesOptions,
) error {
	if !settings.IsManagedBranch(opts.Branch) {
		return fmt.Errorf("%w %q", entities.ErrUnrecognizedBranch, opts.Branch)
	}

	file := opts.File
	if file == "" {
		file = settings.Roles.File
	}

	roles, err := it.roles.Read(file)
	if err != nil {
		return fmt.Errorf("failed to read role requirements %q: %w", file, err)
	}
	entities.ClassifyRoles(roles, settings.Roles.OwnedPrefixes)

	scratch := &scratchRoot{parent: settings.Roles.ScratchDir}
	defer scratch.remove()

	notesDir := filepath.Join(settings.Roles.ProjectDir, settings.Roles.ReleaseNotesDir)

	for i := range roles {
		role := &roles[i]
		action := entities.DecideRoleAction(*role, opts.Branch, opts.Freeze)

		switch action {
		case entities.RoleSkip:
			logger.Infof("Skipping role %s", role.Name)
			continue
		case entities.RoleUnfreeze:
			logger.Infof("Unfreezing role %s on %s", role.Name, role.TrackBranch)
			role.Version = role.TrackBranch
		case entities.RoleResolve:
			sha, resolveErr := it.git.ResolveRef(ctx, role.Source, role.TrackBranch)
			if resolveErr != nil {
				return fmt.Errorf("failed to resolve role %s: %w", role.Name, resolveErr)
			}
			role.Version = sha
			logger.Infof("Bumped role %s to sha %s", role.Name, role.Version)
		}

		if !entities.CopiesReleaseNotes(*role, action, settings.Roles.ReleaseNotesExcluded) {
			continue
		}
		if opts.DryRun {
			logger.Infof("[DRY RUN] Would copy %s's release notes", role.Name)
			continue
		}
		if copyErr := it.importReleaseNotes(ctx, *role, opts.Branch, scratch, notesDir); copyErr != nil {
			return copyErr
		}
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would overwrite %s", file)
		return nil
	}

	logger.Infof("Overwriting %s", file)
	if writeErr := it.roles.Write(file, roles); writeErr != nil {
		return fmt.Errorf("failed to write role requirements %q: %w", file, writeErr)
	}
	return nil
}

// importReleaseNotes shallow-clones the role at branch, copies its notes, and
// removes the clone before returning.
func (it *BumpRolesCommand) importReleaseNotes(
	ctx context.Context,
	role entities.Role,
	branch string,
	scratch *scratchRoot,
	notesDir string,
) error {
	logger.Infof("Cloning and copying %s's release notes", role.Name)

	cloneRoot, err := scratch.path()
	if err != nil {
		return err
	}
	rolePath := filepath.Join(cloneRoot, cloneFolderName(role))
	defer os.RemoveAll(rolePath)

	if _, cloneErr := it.git.ShallowClone(ctx, role.Source, branch, rolePath); cloneErr != nil {
		return fmt.Errorf("failed to clone role %s: %w", role.Name, cloneErr)
	}

	copied, err := it.releaseNotes.Copy(rolePath, notesDir)
	if err != nil {
		return fmt.Errorf("failed to copy release notes of %s: %w", role.Name, err)
	}
	logger.Debugf("Copied %d release notes from %s", len(copied), role.Name)
	return nil
}

// scratchRoot is the temporary directory holding role clones, created on first use.
type scratchRoot struct {
	parent string
	dir    string
}

func (s *scratchRoot) path() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	dir, err := os.MkdirTemp(s.parent, "osa-releases-roles-*")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	s.dir = dir
	return dir, nil
}

func (s *scratchRoot) remove() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

func cloneFolderName(role entities.Role) string {
	source := strings.TrimSuffix(strings.TrimRight(role.Source, "/"), ".git")
	if idx := strings.LastIndex(source, "/"); idx >= 0 && idx < len(source)-1 {
		return source[idx+1:]
	}
	return role.Name
}
