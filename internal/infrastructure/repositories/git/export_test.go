package git

// MatchRefs exports matchRefs for testing.
var MatchRefs = matchRefs //nolint:gochecknoglobals // test export
