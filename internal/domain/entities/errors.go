package entities

import "errors"

var (
	// ErrUnknownReleaseType is returned for release types other than bugfix, feature, milestone, rc.
	ErrUnknownReleaseType = errors.New("unknown release type")
	// ErrInvalidVersion is returned when a version cannot be parsed or incremented.
	ErrInvalidVersion = errors.New("invalid release version")
	// ErrUnrecognizedBranch is returned when bumping roles for a branch that is not managed.
	ErrUnrecognizedBranch = errors.New("branch not recognized")
	// ErrRefNotFound is returned when a remote has no ref matching the requested name.
	ErrRefNotFound = errors.New("no matching ref")
	// ErrAmbiguousRef is returned when more than one remote ref matches the requested name.
	ErrAmbiguousRef = errors.New("more than one ref matches")
	// ErrVersionFileNotFound is returned when no candidate file holds the release version.
	ErrVersionFileNotFound = errors.New("no file found matching the list of files")
	// ErrMalformedManifest is returned when a manifest misses required keys.
	ErrMalformedManifest = errors.New("malformed manifest")
)
