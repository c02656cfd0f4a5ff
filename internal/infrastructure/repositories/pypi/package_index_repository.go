package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// PackageIndexRepository implements repositories.PackageIndexRepository
// against the PyPI JSON API (GET /pypi/<name>/json).
type PackageIndexRepository struct {
	client *http.Client
}

// NewPackageIndexRepository creates a PyPI client on a pooled cleanhttp client.
func NewPackageIndexRepository() repositories.PackageIndexRepository {
	return &PackageIndexRepository{client: cleanhttp.DefaultPooledClient()}
}

// NewPackageIndexRepositoryWithClient creates a PyPI client on the given HTTP client.
func NewPackageIndexRepositoryWithClient(client *http.Client) *PackageIndexRepository {
	return &PackageIndexRepository{client: client}
}

type projectResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

func (r *PackageIndexRepository) LatestVersion(ctx context.Context, indexURL, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/pypi/%s/json", strings.TrimRight(indexURL, "/"), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, endpoint)
	}

	var project projectResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&project); decodeErr != nil {
		return "", fmt.Errorf("failed to parse %s: %w", endpoint, decodeErr)
	}
	if project.Info.Version == "" {
		return "", errors.New("package index returned no version for " + name)
	}

	return project.Info.Version, nil
}
