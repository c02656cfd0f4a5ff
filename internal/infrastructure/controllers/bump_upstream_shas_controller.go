package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// BumpUpstreamShasController handles the "bump_upstream_shas" subcommand.
type BumpUpstreamShasController struct {
	command commands.BumpUpstreamShas
}

// NewBumpUpstreamShasController creates a new BumpUpstreamShasController.
func NewBumpUpstreamShasController(command commands.BumpUpstreamShas) *BumpUpstreamShasController {
	return &BumpUpstreamShasController{command: command}
}

// GetBind returns the Cobra command metadata for the bump_upstream_shas controller.
func (it *BumpUpstreamShasController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bump_upstream_shas",
		Short: "Bump upstream projects SHAs",
		Long: `Update every *_git_install_branch of the YAML files in a folder to the
current commit of the project's *_git_track_branch. Projects tracking
"None" are left untouched.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the bump_upstream_shas flags to the given Cobra command.
func (it *BumpUpstreamShasController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("path", "",
		"Path to the folder containing YAML files to update with new SHAs")
}

// Execute runs the upstream SHA bump.
func (it *BumpUpstreamShasController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("path")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return it.command.Execute(context.Background(), settings, commands.BumpUpstreamShasOptions{
		Path:   path,
		DryRun: dryRun,
	})
}
