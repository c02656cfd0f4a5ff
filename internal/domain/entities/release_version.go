package entities

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// ReleaseType selects which part of the release version is incremented.
type ReleaseType string

const (
	ReleaseBugfix    ReleaseType = "bugfix"
	ReleaseFeature   ReleaseType = "feature"
	ReleaseMilestone ReleaseType = "milestone"
	ReleaseRC        ReleaseType = "rc"
)

// ReleaseTypes lists the accepted release types in CLI order.
func ReleaseTypes() []ReleaseType {
	return []ReleaseType{ReleaseBugfix, ReleaseFeature, ReleaseMilestone, ReleaseRC}
}

// ParseReleaseType validates a release type name.
func ParseReleaseType(raw string) (ReleaseType, error) {
	for _, known := range ReleaseTypes() {
		if string(known) == raw {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownReleaseType, raw)
}

// PreRelease is the optional milestone marker of a release version.
type PreRelease string

const (
	NoPreRelease PreRelease = ""
	Beta         PreRelease = "b"
	Candidate    PreRelease = "rc"
)

// ReleaseVersion is a 3-part version with an optional "0bN" or "0rcN" suffix,
// e.g. 17.0.3, 18.0.0b1, 18.0.0rc2.
type ReleaseVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease PreRelease
	Number     int
}

var releaseVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:(b|rc)(\d+))?$`)

// ParseReleaseVersion parses the string stored in the release version file.
func ParseReleaseVersion(raw string) (ReleaseVersion, error) {
	match := releaseVersionPattern.FindStringSubmatch(raw)
	if match == nil {
		return ReleaseVersion{}, fmt.Errorf("%w %q", ErrInvalidVersion, raw)
	}

	groups := []string{match[1], match[2], match[3]}
	if match[4] != "" {
		groups = append(groups, match[5])
	}
	numbers := make([]int, 4)
	for i, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil {
			return ReleaseVersion{}, fmt.Errorf("%w %q: %w", ErrInvalidVersion, raw, err)
		}
		numbers[i] = n
	}

	return ReleaseVersion{
		Major:      numbers[0],
		Minor:      numbers[1],
		Patch:      numbers[2],
		PreRelease: PreRelease(match[4]),
		Number:     numbers[3],
	}, nil
}

func (v ReleaseVersion) String() string {
	core := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease == NoPreRelease {
		return core
	}
	return fmt.Sprintf("%s%s%d", core, v.PreRelease, v.Number)
}

// Semver returns the version in golang.org/x/mod/semver form, used for ordering.
func (v ReleaseVersion) Semver() string {
	core := fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease == NoPreRelease {
		return core
	}
	return fmt.Sprintf("%s-%s.%d", core, v.PreRelease, v.Number)
}

// Next computes the version following v for the given release type.
func (v ReleaseVersion) Next(releaseType ReleaseType) (ReleaseVersion, error) {
	var next ReleaseVersion

	switch releaseType {
	case ReleaseBugfix, ReleaseFeature:
		if v.PreRelease != NoPreRelease {
			return ReleaseVersion{}, fmt.Errorf(
				"%w: %s release from pre-release %s", ErrInvalidVersion, releaseType, v,
			)
		}
		if releaseType == ReleaseBugfix {
			next = ReleaseVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
		} else {
			next = ReleaseVersion{Major: v.Major, Minor: v.Minor + 1}
		}
	case ReleaseMilestone:
		if v.PreRelease == Beta {
			next = ReleaseVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch, PreRelease: Beta, Number: v.Number + 1}
		} else {
			next = ReleaseVersion{Major: v.Major + 1, PreRelease: Beta, Number: 1}
		}
	case ReleaseRC:
		switch v.PreRelease {
		case Beta:
			next = ReleaseVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch, PreRelease: Candidate, Number: 1}
		case Candidate:
			next = ReleaseVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch, PreRelease: Candidate, Number: v.Number + 1}
		default:
			return ReleaseVersion{}, fmt.Errorf(
				"%w: rc release needs a beta or rc version, got %s", ErrInvalidVersion, v,
			)
		}
	default:
		return ReleaseVersion{}, fmt.Errorf("%w %q", ErrUnknownReleaseType, releaseType)
	}

	if semver.Compare(next.Semver(), v.Semver()) <= 0 {
		return ReleaseVersion{}, fmt.Errorf("%w: %s does not follow %s", ErrInvalidVersion, next, v)
	}
	return next, nil
}
