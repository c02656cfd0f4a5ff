package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// BumpReleaseNumberController handles the "bump_release_number" subcommand.
type BumpReleaseNumberController struct {
	command commands.BumpReleaseNumber
}

// NewBumpReleaseNumberController creates a new BumpReleaseNumberController.
func NewBumpReleaseNumberController(command commands.BumpReleaseNumber) *BumpReleaseNumberController {
	return &BumpReleaseNumberController{command: command}
}

// GetBind returns the Cobra command metadata for the bump_release_number controller.
func (it *BumpReleaseNumberController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bump_release_number",
		Short: "Increment the release version",
		Long: `Find the openstack_release variable in the usual group vars files and
increment it according to the release type:

  bugfix     17.0.3   -> 17.0.4
  feature    17.0.3   -> 17.1.0
  milestone  17.0.3   -> 18.0.0b1, 18.0.0b1 -> 18.0.0b2
  rc         18.0.0b2 -> 18.0.0rc1, 18.0.0rc1 -> 18.0.0rc2`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the bump_release_number flags to the given Cobra command.
func (it *BumpReleaseNumberController) AddFlags(cmd *cobra.Command) {
	names := make([]string, 0, len(entities.ReleaseTypes()))
	for _, releaseType := range entities.ReleaseTypes() {
		names = append(names, string(releaseType))
	}
	cmd.Flags().String("release_type", string(entities.ReleaseBugfix),
		fmt.Sprintf("The type of release to generate (%s)", strings.Join(names, ", ")))
}

// Execute runs the release number bump.
func (it *BumpReleaseNumberController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	releaseType, _ := cmd.Flags().GetString("release_type")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err = it.command.Execute(context.Background(), settings, commands.BumpReleaseNumberOptions{
		ReleaseType: releaseType,
		DryRun:      dryRun,
	})
	return err
}
