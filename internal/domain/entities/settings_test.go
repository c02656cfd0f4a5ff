//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osa-releases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should merge the file over the defaults", func(t *testing.T) {
		// given
		path := writeConfig(t, `
roles:
  stable_branches:
    - stable/train
http:
  timeout_seconds: 5
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"stable/train"}, settings.Roles.StableBranches)
		assert.Equal(t, "ansible-role-requirements.yml", settings.Roles.File)
		assert.Equal(t, "openstack_release", settings.Release.VersionKey)
		assert.Equal(t, 5, int(settings.HTTP.Timeout().Seconds()))
	})

	t.Run("should expand environment references", func(t *testing.T) {
		// given
		t.Setenv("OSA_CHECKOUT", "/srv/openstack-ansible")
		path := writeConfig(t, "upstream:\n  path: ${OSA_CHECKOUT}/playbooks/defaults/repo_packages\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/openstack-ansible/playbooks/defaults/repo_packages", settings.Upstream.Path)
	})

	t.Run("should reject a non-positive timeout", func(t *testing.T) {
		// given
		path := writeConfig(t, "http:\n  timeout_seconds: 0\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestIsManagedBranch(t *testing.T) {
	t.Parallel()

	t.Run("should accept master and configured stable branches only", func(t *testing.T) {
		t.Parallel()

		settings := entities.DefaultSettings()

		assert.True(t, settings.IsManagedBranch("master"))
		assert.True(t, settings.IsManagedBranch("stable/rocky"))
		assert.False(t, settings.IsManagedBranch("stable/newton"))
		assert.False(t, settings.IsManagedBranch("feature/foo"))
	})
}
