package entities

import (
	"fmt"
	"strings"
	"time"
)

const (
	// RepoKeySuffix marks the key holding a project's git URL.
	RepoKeySuffix = "_git_repo"
	// InstallBranchKeySuffix marks the key holding the pinned SHA.
	InstallBranchKeySuffix = "_git_install_branch"
	// TrackBranchKeySuffix marks the key holding the tracked branch.
	TrackBranchKeySuffix = "_git_track_branch"

	untrackedSentinel = "none"
	headCommentLayout = "02.01.2006"
)

// UpstreamProject is one project entry of a repo-packages manifest.
type UpstreamProject struct {
	Name        string
	URL         string
	SHA         string
	TrackBranch string
}

// IsTracked reports whether the project follows a branch; null or "None" means frozen.
func (p UpstreamProject) IsTracked() bool {
	return IsTrackedBranch(p.TrackBranch)
}

// InstallBranchKey returns the manifest key holding the pinned SHA.
func (p UpstreamProject) InstallBranchKey() string {
	return p.Name + InstallBranchKeySuffix
}

// UpstreamManifest is the typed view of one repo-packages YAML file.
type UpstreamManifest struct {
	Path     string
	Projects []UpstreamProject
}

// PinUpdate is a single scalar rewrite of a manifest key.
type PinUpdate struct {
	Key     string
	Value   string
	Comment string
}

// IsTrackedBranch reports whether a track-branch value designates a real branch.
func IsTrackedBranch(branch string) bool {
	trimmed := strings.TrimSpace(branch)
	return trimmed != "" && !strings.EqualFold(trimmed, untrackedSentinel)
}

// HeadComment returns the annotation written next to a freshly resolved SHA.
func HeadComment(at time.Time) string {
	return fmt.Sprintf("HEAD as of %s", at.Format(headCommentLayout))
}
