package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// CheckPinsController handles the "check_pins" subcommand.
type CheckPinsController struct {
	command commands.CheckPins
}

// NewCheckPinsController creates a new CheckPinsController.
func NewCheckPinsController(command commands.CheckPins) *CheckPinsController {
	return &CheckPinsController{command: command}
}

// GetBind returns the Cobra command metadata for the check_pins controller.
func (it *CheckPinsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check_pins",
		Short: "Check a package list file for updates on PyPI or in upper constraints",
		Long: `Compare the global requirement pins with the latest version published
on PyPI and with the upper constraints of the OpenStack requirements
repository at a given SHA. When no SHA is given, it is read from the
requirements entry of the repo packages manifest.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the check_pins flags to the given Cobra command.
func (it *CheckPinsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("requirements-sha", "",
		"Sha used for fetching the upper constraints file in requirements")
	cmd.Flags().String("file", "", "Path to global requirements pin file")
}

// Execute prints the comparison table on standard output.
func (it *CheckPinsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	sha, _ := cmd.Flags().GetString("requirements-sha")
	file, _ := cmd.Flags().GetString("file")

	reports, err := it.command.Execute(context.Background(), settings, commands.CheckPinsOptions{
		PinsFile:        file,
		RequirementsSHA: sha,
	})
	if err != nil {
		return err
	}

	return WritePinsTable(cmd.OutOrStdout(), reports)
}
