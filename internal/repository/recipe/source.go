package recipe

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// maxDocumentSize caps the size of a fetched recipe document.
const maxDocumentSize = 8 << 20 // 8MB

//go:embed sample/recipes.json
var sampleDocument []byte

// Source fetches the raw recipe document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context error is self-describing
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// Name identifies the source in logs and cache keys.
func (s *FileSource) Name() string { return "file:" + s.path }

// HTTPSource fetches the document with a GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a URL-backed source. A zero timeout means 10s.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{url: url, client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the document. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
	}
	return data, nil
}

// Name identifies the source in logs and cache keys.
func (s *HTTPSource) Name() string { return "url:" + s.url }

// StaticSource serves an in-memory document.
type StaticSource struct {
	name string
	data []byte
}

// NewStaticSource creates a source that always returns data.
func NewStaticSource(name string, data []byte) *StaticSource {
	return &StaticSource{name: name, data: data}
}

// NewEmbeddedSource returns the built-in sample collection.
func NewEmbeddedSource() *StaticSource {
	return NewStaticSource("embedded", sampleDocument)
}

// Fetch returns a copy of the document.
func (s *StaticSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context error is self-describing
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Name identifies the source in logs and cache keys.
func (s *StaticSource) Name() string { return s.name }
