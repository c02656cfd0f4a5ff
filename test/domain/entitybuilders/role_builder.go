//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RoleBuilder helps create test roles with a fluent interface.
type RoleBuilder struct {
	*testkit.BaseBuilder
	name        string
	source      string
	version     string
	trackBranch string
	owned       bool
}

// NewRoleBuilder creates a role builder defaulting to an owned role tracking master.
func NewRoleBuilder() *RoleBuilder {
	return &RoleBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "os_nova",
		source:      "https://opendev.org/openstack/openstack-ansible-os_nova",
		version:     "aaaa000000000000000000000000000000000000",
		trackBranch: entities.MasterBranch,
		owned:       true,
	}
}

// WithName sets the role name.
func (b *RoleBuilder) WithName(name string) *RoleBuilder {
	b.name = name
	return b
}

// WithSource sets the git source URL.
func (b *RoleBuilder) WithSource(source string) *RoleBuilder {
	b.source = source
	return b
}

// WithVersion sets the pinned version.
func (b *RoleBuilder) WithVersion(version string) *RoleBuilder {
	b.version = version
	return b
}

// WithTrackBranch sets the tracked branch ("" for none).
func (b *RoleBuilder) WithTrackBranch(branch string) *RoleBuilder {
	b.trackBranch = branch
	return b
}

// External marks the role as not owned.
func (b *RoleBuilder) External() *RoleBuilder {
	b.owned = false
	return b
}

// Build creates the role.
func (b *RoleBuilder) Build() any {
	return b.BuildRole()
}

// BuildRole creates the role with its concrete type.
func (b *RoleBuilder) BuildRole() entities.Role {
	return entities.Role{
		Name:        b.name,
		Source:      b.source,
		Version:     b.version,
		TrackBranch: b.trackBranch,
		Owned:       b.owned,
	}
}

// Reset clears the builder state, allowing reuse.
func (b *RoleBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	*b = *NewRoleBuilder()
	return b
}

// Clone creates a deep copy of the builder.
func (b *RoleBuilder) Clone() testkit.Builder {
	return &RoleBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		source:      b.source,
		version:     b.version,
		trackBranch: b.trackBranch,
		owned:       b.owned,
	}
}
