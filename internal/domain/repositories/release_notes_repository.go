package repositories

// ReleaseNotesRepository imports release notes from a role checkout.
type ReleaseNotesRepository interface {
	// Copy copies <roleDir>/releasenotes/notes/*.yaml into destDir and returns the copied file names.
	Copy(roleDir, destDir string) ([]string, error)
}
