package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

const (
	remoteName   = "origin"
	peeledSuffix = "^{}"
	cloneDepth   = 1
)

// GitRepository implements repositories.GitRepository with go-git.
type GitRepository struct{}

// NewGitRepository creates a new go-git backed repository.
func NewGitRepository() repositories.GitRepository {
	return &GitRepository{}
}

// ResolveRef lists the advertised refs of the remote (no clone) and picks the
// single hash ref matching reference.
func (r *GitRepository) ResolveRef(ctx context.Context, url, reference string) (string, error) {
	remote := gogit.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: remoteName,
		URLs: []string{url},
	})

	refs, err := remote.ListContext(ctx, &gogit.ListOptions{PeelingOption: gogit.IgnorePeeled})
	if err != nil {
		return "", fmt.Errorf("failed to list refs of %s: %w", url, err)
	}

	matches := matchRefs(refs, reference)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w %q in %s", entities.ErrRefNotFound, reference, url)
	case 1:
		logger.Debugf("%s %s -> %s", url, matches[0].Name(), matches[0].Hash())
		return matches[0].Hash().String(), nil
	default:
		names := make([]string, 0, len(matches))
		for _, ref := range matches {
			names = append(names, ref.Name().String())
		}
		return "", fmt.Errorf(
			"%w %q in %s, please be more explicit: %s",
			entities.ErrAmbiguousRef, reference, url, strings.Join(names, ", "),
		)
	}
}

func (r *GitRepository) ShallowClone(ctx context.Context, url, branch, dest string) (string, error) {
	repo, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         cloneDepth,
		Tags:          gogit.NoTags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone %s at %s: %w", url, branch, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD of %s: %w", dest, err)
	}
	return head.Hash().String(), nil
}

// matchRefs follows `git ls-remote <url> <pattern>`: a ref matches when its
// name is the pattern or ends with "/<pattern>". Peeled and symbolic refs are ignored.
func matchRefs(refs []*plumbing.Reference, pattern string) []*plumbing.Reference {
	var matches []*plumbing.Reference
	for _, ref := range refs {
		if ref.Type() != plumbing.HashReference {
			continue
		}
		name := ref.Name().String()
		if strings.HasSuffix(name, peeledSuffix) {
			continue
		}
		if name == pattern || strings.HasSuffix(name, "/"+pattern) {
			matches = append(matches, ref)
		}
	}
	return matches
}
