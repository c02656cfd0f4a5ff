//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/controllers"
	"github.com/rios0rios0/osa-releases/test/domain/commanddoubles"
)

// runController binds the controller under a root command carrying the global
// flags and runs it with the given arguments and an empty config file.
func runController(t *testing.T, controller entities.Controller, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "osa-releases.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("roles:\n  stable_branches: [stable/train]\n"), 0o600))

	root := &cobra.Command{Use: "osa-releases", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().Bool("dry-run", false, "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")

	bind := controller.GetBind()
	sub := &cobra.Command{
		Use:  bind.Use,
		Args: bind.Args,
		RunE: controller.Execute,
	}
	if withFlags, ok := controller.(entities.FlagController); ok {
		withFlags.AddFlags(sub)
	}
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{sub.Name(), "--config", configPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCheckPinsController(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags to the command and print the table", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckPinsCommand{Reports: sampleReports()}
		controller := controllers.NewCheckPinsController(stub)

		// when
		out, err := runController(t, controller, "--requirements-sha", "abc123", "--file", "pins.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "abc123", stub.LastOpts.RequirementsSHA)
		assert.Equal(t, "pins.txt", stub.LastOpts.PinsFile)
		assert.Equal(t, controllers.RenderPinsTable(sampleReports())+"\n", out)
	})

	t.Run("should return the command error without printing", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckPinsCommand{ExecuteErr: errors.New("index unreachable")}
		controller := controllers.NewCheckPinsController(stub)

		// when
		out, err := runController(t, controller)

		// then
		require.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestBumpUpstreamShasController(t *testing.T) {
	t.Parallel()

	t.Run("should forward path and dry-run", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpUpstreamShasCommand{}
		controller := controllers.NewBumpUpstreamShasController(stub)

		// when
		_, err := runController(t, controller, "--path", "repo_packages", "--dry-run")

		// then
		require.NoError(t, err)
		assert.Equal(t, "repo_packages", stub.LastOpts.Path)
		assert.True(t, stub.LastOpts.DryRun)
	})
}

func TestBumpRolesControllers(t *testing.T) {
	t.Parallel()

	t.Run("should bump the branch given as argument with the loaded settings", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpRolesCommand{}
		controller := controllers.NewBumpRolesController(stub)

		// when
		_, err := runController(t, controller, "stable/train", "--file", "roles.yml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "stable/train", stub.LastOpts.Branch)
		assert.Equal(t, "roles.yml", stub.LastOpts.File)
		assert.False(t, stub.LastOpts.Freeze)
		assert.Equal(t, []string{"stable/train"}, stub.LastSettings.Roles.StableBranches)
	})

	t.Run("should require exactly one branch", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpRolesCommand{}
		controller := controllers.NewBumpRolesController(stub)

		// when
		_, err := runController(t, controller)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should freeze master for a milestone", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpRolesCommand{}
		controller := controllers.NewFreezeRolesController(stub)

		// when
		_, err := runController(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MasterBranch, stub.LastOpts.Branch)
		assert.True(t, stub.LastOpts.Freeze)
	})
}

func TestBumpReleaseNumberController(t *testing.T) {
	t.Parallel()

	t.Run("should default the release type to bugfix", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpReleaseNumberCommand{}
		controller := controllers.NewBumpReleaseNumberController(stub)

		// when
		_, err := runController(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "bugfix", stub.LastOpts.ReleaseType)
	})

	t.Run("should forward the requested release type", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBumpReleaseNumberCommand{}
		controller := controllers.NewBumpReleaseNumberController(stub)

		// when
		_, err := runController(t, controller, "--release_type", "milestone")

		// then
		require.NoError(t, err)
		assert.Equal(t, "milestone", stub.LastOpts.ReleaseType)
	})
}
