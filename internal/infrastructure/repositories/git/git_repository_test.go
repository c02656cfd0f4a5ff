//go:build unit

package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/git"
)

const releaseFile = "release.txt"

// roleRemote is a local repository laid out like a role upstream:
// master at third, stable/rocky at second, plus a tag and a branch both named rocky.
type roleRemote struct {
	url    string
	first  plumbing.Hash
	second plumbing.Hash
	third  plumbing.Hash
}

func newRoleRemote(t *testing.T) roleRemote {
	t.Helper()
	// the file transport serves through git-upload-pack
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(content string) plumbing.Hash {
		require.NoError(t, os.WriteFile(filepath.Join(dir, releaseFile), []byte(content), 0o644))
		_, addErr := worktree.Add(releaseFile)
		require.NoError(t, addErr)
		hash, commitErr := worktree.Commit(content, &gogit.CommitOptions{
			Author: &object.Signature{Name: "releaser", Email: "releaser@example.com", When: time.Now()},
		})
		require.NoError(t, commitErr)
		return hash
	}

	remote := roleRemote{url: "file://" + dir}
	remote.first = commit("first")
	remote.second = commit("second")
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("stable/rocky"), remote.second),
	))
	_, err = repo.CreateTag("rocky", remote.second, nil)
	require.NoError(t, err)

	remote.third = commit("third")
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("rocky"), remote.third),
	))
	return remote
}

func advertisedRefs() []*plumbing.Reference {
	return []*plumbing.Reference{
		plumbing.NewSymbolicReference(plumbing.HEAD, "refs/heads/master"),
		plumbing.NewHashReference("refs/heads/master", plumbing.NewHash("1111111111111111111111111111111111111111")),
		plumbing.NewHashReference("refs/heads/stable/rocky", plumbing.NewHash("2222222222222222222222222222222222222222")),
		plumbing.NewHashReference("refs/tags/18.0.0", plumbing.NewHash("3333333333333333333333333333333333333333")),
		plumbing.NewHashReference("refs/tags/18.0.0^{}", plumbing.NewHash("4444444444444444444444444444444444444444")),
		plumbing.NewHashReference("refs/heads/rocky", plumbing.NewHash("5555555555555555555555555555555555555555")),
		plumbing.NewHashReference("refs/tags/rocky", plumbing.NewHash("6666666666666666666666666666666666666666")),
	}
}

func TestMatchRefs(t *testing.T) {
	t.Parallel()

	t.Run("should match a branch by its short name", func(t *testing.T) {
		t.Parallel()

		// when
		matches := git.MatchRefs(advertisedRefs(), "stable/rocky")

		// then
		require.Len(t, matches, 1)
		assert.Equal(t, "2222222222222222222222222222222222222222", matches[0].Hash().String())
	})

	t.Run("should ignore symbolic and peeled refs", func(t *testing.T) {
		t.Parallel()

		// when
		master := git.MatchRefs(advertisedRefs(), "master")
		tag := git.MatchRefs(advertisedRefs(), "18.0.0")

		// then
		require.Len(t, master, 1)
		assert.Equal(t, plumbing.ReferenceName("refs/heads/master"), master[0].Name())
		require.Len(t, tag, 1)
		assert.Equal(t, "3333333333333333333333333333333333333333", tag[0].Hash().String())
	})

	t.Run("should return every candidate for an ambiguous pattern", func(t *testing.T) {
		t.Parallel()

		// when
		matches := git.MatchRefs(advertisedRefs(), "rocky")

		// then
		assert.Len(t, matches, 3)
	})

	t.Run("should match a fully qualified name only once", func(t *testing.T) {
		t.Parallel()

		// when
		matches := git.MatchRefs(advertisedRefs(), "refs/tags/rocky")

		// then
		require.Len(t, matches, 1)
		assert.Equal(t, "6666666666666666666666666666666666666666", matches[0].Hash().String())
	})

	t.Run("should match nothing for an unknown branch", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, git.MatchRefs(advertisedRefs(), "stable/zed"))
	})

	t.Run("should not match on a partial path segment", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, git.MatchRefs(advertisedRefs(), "ocky"))
	})
}

func TestGitRepositoryResolveRef(t *testing.T) {
	t.Parallel()

	t.Run("should resolve branches of a remote by their short name", func(t *testing.T) {
		t.Parallel()

		// given
		remote := newRoleRemote(t)
		repository := git.NewGitRepository()

		// when
		master, masterErr := repository.ResolveRef(context.Background(), remote.url, "master")
		stable, stableErr := repository.ResolveRef(context.Background(), remote.url, "stable/rocky")

		// then
		require.NoError(t, masterErr)
		assert.Equal(t, remote.third.String(), master)
		require.NoError(t, stableErr)
		assert.Equal(t, remote.second.String(), stable)
	})

	t.Run("should refuse a name shared by several refs", func(t *testing.T) {
		t.Parallel()

		// given
		remote := newRoleRemote(t)
		repository := git.NewGitRepository()

		// when
		_, err := repository.ResolveRef(context.Background(), remote.url, "rocky")

		// then
		require.ErrorIs(t, err, entities.ErrAmbiguousRef)
		assert.Contains(t, err.Error(), "refs/tags/rocky")
		assert.Contains(t, err.Error(), "refs/heads/stable/rocky")
	})

	t.Run("should report a branch the remote does not have", func(t *testing.T) {
		t.Parallel()

		// given
		remote := newRoleRemote(t)
		repository := git.NewGitRepository()

		// when
		_, err := repository.ResolveRef(context.Background(), remote.url, "stable/zed")

		// then
		require.ErrorIs(t, err, entities.ErrRefNotFound)
	})
}

func TestGitRepositoryShallowClone(t *testing.T) {
	t.Parallel()

	t.Run("should clone only the tip of a non-default branch", func(t *testing.T) {
		t.Parallel()

		// given
		remote := newRoleRemote(t)
		dest := filepath.Join(t.TempDir(), "openstack-ansible-os_nova")
		repository := git.NewGitRepository()

		// when
		head, err := repository.ShallowClone(context.Background(), remote.url, "stable/rocky", dest)

		// then
		require.NoError(t, err)
		assert.Equal(t, remote.second.String(), head)

		content, err := os.ReadFile(filepath.Join(dest, releaseFile))
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		clone, err := gogit.PlainOpen(dest)
		require.NoError(t, err)
		shallows, err := clone.Storer.Shallow()
		require.NoError(t, err)
		assert.Equal(t, []plumbing.Hash{remote.second}, shallows)

		_, err = clone.CommitObject(remote.first)
		require.ErrorIs(t, err, plumbing.ErrObjectNotFound)
		_, err = clone.Reference(plumbing.NewRemoteReferenceName("origin", "master"), false)
		require.ErrorIs(t, err, plumbing.ErrReferenceNotFound)
	})

	t.Run("should fail for a branch the remote does not have", func(t *testing.T) {
		t.Parallel()

		// given
		remote := newRoleRemote(t)
		repository := git.NewGitRepository()

		// when
		_, err := repository.ShallowClone(
			context.Background(), remote.url, "stable/zed", filepath.Join(t.TempDir(), "clone"),
		)

		// then
		require.Error(t, err)
	})
}
