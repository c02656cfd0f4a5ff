//go:build unit

package releasenotes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/releasenotes"
)

func TestReleaseNotesRepositoryCopy(t *testing.T) {
	t.Parallel()

	t.Run("should copy yaml notes into the destination", func(t *testing.T) {
		t.Parallel()

		// given
		roleDir := t.TempDir()
		notesDir := filepath.Join(roleDir, "releasenotes", "notes")
		require.NoError(t, os.MkdirAll(notesDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(notesDir, "fix-a-1234.yaml"), []byte("fixes: [a]\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(notesDir, "index.rst"), []byte("ignored\n"), 0o644))
		destDir := filepath.Join(t.TempDir(), "releasenotes", "notes")
		repository := releasenotes.NewReleaseNotesRepository()

		// when
		copied, err := repository.Copy(roleDir, destDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"fix-a-1234.yaml"}, copied)
		data, err := os.ReadFile(filepath.Join(destDir, "fix-a-1234.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "fixes: [a]\n", string(data))
		assert.NoFileExists(t, filepath.Join(destDir, "index.rst"))
	})

	t.Run("should do nothing for a role without notes", func(t *testing.T) {
		t.Parallel()

		// given
		destDir := filepath.Join(t.TempDir(), "notes")
		repository := releasenotes.NewReleaseNotesRepository()

		// when
		copied, err := repository.Copy(t.TempDir(), destDir)

		// then
		require.NoError(t, err)
		assert.Empty(t, copied)
		assert.NoDirExists(t, destDir)
	})
}
