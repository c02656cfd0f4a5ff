//go:build unit

package pypi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/infrastructure/repositories/pypi"
)

func TestPackageIndexRepositoryLatestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should read info.version from the JSON API", func(t *testing.T) {
		t.Parallel()

		// given
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"info": {"name": "pip", "version": "18.1"}, "releases": {}}`))
		}))
		t.Cleanup(server.Close)
		repository := pypi.NewPackageIndexRepositoryWithClient(server.Client())

		// when
		version, err := repository.LatestVersion(context.Background(), server.URL+"/", "pip")

		// then
		require.NoError(t, err)
		assert.Equal(t, "18.1", version)
		assert.Equal(t, "/pypi/pip/json", requestedPath)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(server.Close)
		repository := pypi.NewPackageIndexRepositoryWithClient(server.Client())

		// when
		_, err := repository.LatestVersion(context.Background(), server.URL, "does-not-exist")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("should fail on a body without a version", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"info": {}}`))
		}))
		t.Cleanup(server.Close)
		repository := pypi.NewPackageIndexRepositoryWithClient(server.Client())

		// when
		_, err := repository.LatestVersion(context.Background(), server.URL, "pip")

		// then
		require.Error(t, err)
	})
}
