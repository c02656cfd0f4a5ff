package entities

// VersionFile locates the release version inside a YAML file.
type VersionFile struct {
	Path    string
	Key     string
	Version string
}
