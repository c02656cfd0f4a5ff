//go:build unit

package roles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/roles"
)

const roleRequirementsYAML = `---
# Role requirements
- name: apt_package_pinning
  scm: git
  src: https://opendev.org/openstack/openstack-ansible-apt_package_pinning
  version: aaaa000000000000000000000000000000000000
  trackbranch: master

- name: ceph-ansible
  scm: git
  src: https://github.com/ceph/ceph-ansible
  version: v3.1.10 # pinned by hand
  trackbranch: stable-3.1

- name: pacemaker_cluster
  src: https://github.com/openstack/pacemaker_cluster
  trackbranch: None
`

func writeRoles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ansible-role-requirements.yml")
	require.NoError(t, os.WriteFile(path, []byte(roleRequirementsYAML), 0o644))
	return path
}

func TestRoleManifestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read every entry in order", func(t *testing.T) {
		t.Parallel()

		// given
		repository := roles.NewRoleManifestRepository()

		// when
		read, err := repository.Read(writeRoles(t))

		// then
		require.NoError(t, err)
		require.Len(t, read, 3)
		assert.Equal(t, entities.Role{
			Name:        "apt_package_pinning",
			Source:      "https://opendev.org/openstack/openstack-ansible-apt_package_pinning",
			Version:     "aaaa000000000000000000000000000000000000",
			TrackBranch: "master",
		}, read[0])
		assert.Equal(t, "v3.1.10", read[1].Version)
		assert.Equal(t, "None", read[2].TrackBranch)
		assert.Empty(t, read[2].Version)
	})

	t.Run("should only rewrite changed versions and keep every other byte", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeRoles(t)
		repository := roles.NewRoleManifestRepository()
		read, err := repository.Read(path)
		require.NoError(t, err)
		read[0].Version = "master"
		read[2].Version = "stable/rocky"

		// when
		err = repository.Write(path, read)

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `---
# Role requirements
- name: apt_package_pinning
  scm: git
  src: https://opendev.org/openstack/openstack-ansible-apt_package_pinning
  version: master
  trackbranch: master

- name: ceph-ansible
  scm: git
  src: https://github.com/ceph/ceph-ansible
  version: v3.1.10 # pinned by hand
  trackbranch: stable-3.1

- name: pacemaker_cluster
  src: https://github.com/openstack/pacemaker_cluster
  trackbranch: None
  version: stable/rocky
`, string(data))
	})

	t.Run("should leave the file byte-identical when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeRoles(t)
		repository := roles.NewRoleManifestRepository()
		read, err := repository.Read(path)
		require.NoError(t, err)

		// when
		err = repository.Write(path, read)

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, roleRequirementsYAML, string(data))
	})

	t.Run("should refuse to write a different number of roles", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeRoles(t)
		repository := roles.NewRoleManifestRepository()

		// when
		err := repository.Write(path, []entities.Role{{Name: "only"}})

		// then
		require.ErrorIs(t, err, entities.ErrMalformedManifest)
	})

	t.Run("should refuse a mapping at the top level", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "roles.yml")
		require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))
		repository := roles.NewRoleManifestRepository()

		// when
		_, err := repository.Read(path)

		// then
		require.Error(t, err)
	})
}
