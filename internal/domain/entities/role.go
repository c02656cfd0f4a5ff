package entities

import "strings"

// Role is one entry of the role requirements manifest.
type Role struct {
	Name        string
	Source      string
	Version     string
	TrackBranch string
	Owned       bool
}

// RoleAction is what a bump pass does with a single role.
type RoleAction int

const (
	// RoleSkip leaves the role untouched.
	RoleSkip RoleAction = iota
	// RoleUnfreeze writes the track branch verbatim as the version.
	RoleUnfreeze
	// RoleResolve replaces the version with the current SHA of the track branch.
	RoleResolve
)

func (a RoleAction) String() string {
	switch a {
	case RoleUnfreeze:
		return "unfreeze"
	case RoleResolve:
		return "resolve"
	default:
		return "skip"
	}
}

// MasterBranch is the development branch name.
const MasterBranch = "master"

// ClassifyRoles marks roles whose source starts with one of the owned prefixes.
func ClassifyRoles(roles []Role, ownedPrefixes []string) {
	for i := range roles {
		roles[i].Owned = hasAnyPrefix(roles[i].Source, ownedPrefixes)
	}
}

// DecideRoleAction applies the bump policy for a target branch and freeze mode.
//
//	stable branch:  owned -> resolve, external -> skip
//	master:         owned -> unfreeze, external -> skip
//	master+freeze:  owned -> resolve, external -> resolve
//
// Roles without a track branch are always skipped.
func DecideRoleAction(role Role, branch string, freeze bool) RoleAction {
	if !IsTrackedBranch(role.TrackBranch) {
		return RoleSkip
	}
	if branch == MasterBranch {
		switch {
		case freeze:
			return RoleResolve
		case role.Owned:
			return RoleUnfreeze
		default:
			return RoleSkip
		}
	}
	if role.Owned {
		return RoleResolve
	}
	return RoleSkip
}

// CopiesReleaseNotes reports whether the role's release notes are imported after a resolve.
// Excluded entries match either the role name or the tail of its source URL.
func CopiesReleaseNotes(role Role, action RoleAction, excluded []string) bool {
	if !role.Owned || action != RoleResolve {
		return false
	}
	for _, name := range excluded {
		if name == "" {
			continue
		}
		if role.Name == name || strings.HasSuffix(strings.TrimSuffix(role.Source, ".git"), name) {
			return false
		}
	}
	return true
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
