package flatfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

// RemoteSource fetches the published flat-file export of the catalog sheet.
type RemoteSource struct {
	httpClient *http.Client
	url        string
}

func NewRemoteSource(url string) *RemoteSource {
	return &RemoteSource{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		url:        url,
	}
}

func (s *RemoteSource) Name() string { return "remote-flatfile" }

func (s *RemoteSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("flat-file fetch: unexpected status %d", resp.StatusCode)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(string(content)), nil
}

// LocalSource reads the flat-file copy bundled with the application.
type LocalSource struct {
	path string
}

func NewLocalSource(path string) *LocalSource {
	return &LocalSource{path: path}
}

func (s *LocalSource) Name() string { return "local-flatfile" }

func (s *LocalSource) Fetch(_ context.Context) ([]domain.Product, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return Parse(string(content)), nil
}
