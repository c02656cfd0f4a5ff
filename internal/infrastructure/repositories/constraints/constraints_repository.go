package constraints

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

const shaPlaceholder = "{sha}"

// ConstraintsRepository implements repositories.ConstraintsRepository over HTTP.
type ConstraintsRepository struct {
	client *http.Client
}

// NewConstraintsRepository creates a constraints client on a pooled cleanhttp client.
func NewConstraintsRepository() repositories.ConstraintsRepository {
	return &ConstraintsRepository{client: cleanhttp.DefaultPooledClient()}
}

// NewConstraintsRepositoryWithClient creates a constraints client on the given HTTP client.
func NewConstraintsRepositoryWithClient(client *http.Client) *ConstraintsRepository {
	return &ConstraintsRepository{client: client}
}

func (r *ConstraintsRepository) Fetch(ctx context.Context, urlTemplate, sha string) (string, error) {
	if !strings.Contains(urlTemplate, shaPlaceholder) {
		return "", fmt.Errorf("constraints URL %q has no %s placeholder", urlTemplate, shaPlaceholder)
	}
	endpoint := strings.ReplaceAll(urlTemplate, shaPlaceholder, sha)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", endpoint, err)
	}
	return string(body), nil
}
