package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// BumpRolesController handles the "bump_roles" subcommand.
type BumpRolesController struct {
	command commands.BumpRoles
}

// NewBumpRolesController creates a new BumpRolesController.
func NewBumpRolesController(command commands.BumpRoles) *BumpRolesController {
	return &BumpRolesController{command: command}
}

// GetBind returns the Cobra command metadata for the bump_roles controller.
func (it *BumpRolesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bump_roles <branch>",
		Short: "Bump roles SHA and copy their release notes",
		Long: `Bump the roles of ansible-role-requirements.yml for a branch.

On a stable branch, OpenStack roles are frozen to the current SHA of their
track branch and their release notes are copied. On master, OpenStack roles
are unfrozen back to their track branch.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the bump_roles flags to the given Cobra command.
func (it *BumpRolesController) AddFlags(cmd *cobra.Command) {
	addRoleFileFlag(cmd)
}

// Execute runs the role bump for the branch given as argument.
func (it *BumpRolesController) Execute(cmd *cobra.Command, args []string) error {
	return executeRoleBump(cmd, it.command, args[0], false)
}

// FreezeRolesController handles the "freeze_roles_for_milestone" subcommand.
type FreezeRolesController struct {
	command commands.BumpRoles
}

// NewFreezeRolesController creates a new FreezeRolesController.
func NewFreezeRolesController(command commands.BumpRoles) *FreezeRolesController {
	return &FreezeRolesController{command: command}
}

// GetBind returns the Cobra command metadata for the freeze_roles_for_milestone controller.
func (it *FreezeRolesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "freeze_roles_for_milestone",
		Short: "Freeze every role of master to its current SHA",
		Long: `Freeze all the roles of ansible-role-requirements.yml, OpenStack and
external ones, to the current SHA of their track branch, and copy the
release notes of the OpenStack roles. Used when tagging a milestone.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the freeze_roles_for_milestone flags to the given Cobra command.
func (it *FreezeRolesController) AddFlags(cmd *cobra.Command) {
	addRoleFileFlag(cmd)
}

// Execute runs the milestone freeze on master.
func (it *FreezeRolesController) Execute(cmd *cobra.Command, _ []string) error {
	return executeRoleBump(cmd, it.command, entities.MasterBranch, true)
}

func addRoleFileFlag(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "Path to ansible-role-requirements.yml")
}

func executeRoleBump(cmd *cobra.Command, command commands.BumpRoles, branch string, freeze bool) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return command.Execute(context.Background(), settings, commands.BumpRolesOptions{
		File:   file,
		Branch: branch,
		Freeze: freeze,
		DryRun: dryRun,
	})
}
