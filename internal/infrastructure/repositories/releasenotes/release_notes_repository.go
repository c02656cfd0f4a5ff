package releasenotes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

const (
	notesGlob = "releasenotes/notes/*.yaml"
	dirMode   = 0o755
)

// ReleaseNotesRepository implements repositories.ReleaseNotesRepository on the local file system.
type ReleaseNotesRepository struct{}

// NewReleaseNotesRepository creates a new release notes repository.
func NewReleaseNotesRepository() repositories.ReleaseNotesRepository {
	return &ReleaseNotesRepository{}
}

// Copy overwrites notes with the same name and keeps the source file mode.
func (r *ReleaseNotesRepository) Copy(roleDir, destDir string) ([]string, error) {
	notes, err := filepath.Glob(filepath.Join(roleDir, notesGlob))
	if err != nil {
		return nil, fmt.Errorf("invalid role directory %q: %w", roleDir, err)
	}
	if len(notes) == 0 {
		return []string{}, nil
	}

	if mkdirErr := os.MkdirAll(destDir, dirMode); mkdirErr != nil {
		return nil, fmt.Errorf("failed to create %q: %w", destDir, mkdirErr)
	}

	copied := make([]string, 0, len(notes))
	for _, note := range notes {
		name := filepath.Base(note)
		if copyErr := copyFile(note, filepath.Join(destDir, name)); copyErr != nil {
			return copied, fmt.Errorf("failed to copy %q: %w", note, copyErr)
		}
		copied = append(copied, name)
	}
	return copied, nil
}

func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}
