//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// UpstreamProjectBuilder helps create repo-packages projects.
type UpstreamProjectBuilder struct {
	*testkit.BaseBuilder
	name        string
	url         string
	sha         string
	trackBranch string
}

func NewUpstreamProjectBuilder() *UpstreamProjectBuilder {
	return &UpstreamProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "nova",
		url:         "https://opendev.org/openstack/nova",
		sha:         "1111111111111111111111111111111111111111",
		trackBranch: entities.MasterBranch,
	}
}

func (b *UpstreamProjectBuilder) WithName(name string) *UpstreamProjectBuilder {
	b.name = name
	return b
}

func (b *UpstreamProjectBuilder) WithURL(url string) *UpstreamProjectBuilder {
	b.url = url
	return b
}

func (b *UpstreamProjectBuilder) WithSHA(sha string) *UpstreamProjectBuilder {
	b.sha = sha
	return b
}

func (b *UpstreamProjectBuilder) WithTrackBranch(branch string) *UpstreamProjectBuilder {
	b.trackBranch = branch
	return b
}

func (b *UpstreamProjectBuilder) Build() any {
	return b.BuildProject()
}

func (b *UpstreamProjectBuilder) BuildProject() entities.UpstreamProject {
	return entities.UpstreamProject{
		Name:        b.name,
		URL:         b.url,
		SHA:         b.sha,
		TrackBranch: b.trackBranch,
	}
}

func (b *UpstreamProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	*b = *NewUpstreamProjectBuilder()
	return b
}

func (b *UpstreamProjectBuilder) Clone() testkit.Builder {
	return &UpstreamProjectBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		url:         b.url,
		sha:         b.sha,
		trackBranch: b.trackBranch,
	}
}
