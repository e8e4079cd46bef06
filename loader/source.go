package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"worksvis/importer"
)

// DefaultResourcePath is the path the visualization fetches the dataset from.
const DefaultResourcePath = "/works_with_authors.csv"

var ErrSourceStatus = errors.New("unexpected response status")

// Source opens the raw dataset. Format reports the importer format of the stream.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Format() string
	Location() string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPSourceConfig struct {
	BaseURL    string
	Path       string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient httpDoer
}

// HTTPSource fetches the dataset with a single GET. It does not retry.
type HTTPSource struct {
	baseURL    string
	path       string
	userAgent  string
	httpClient httpDoer
}

func NewHTTPSource(cfg HTTPSourceConfig) (*HTTPSource, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = DefaultResourcePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}

	return &HTTPSource{
		baseURL:    baseURL,
		path:       path,
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
	}, nil
}

func (s *HTTPSource) Format() string {
	format, err := importer.InferFormat(s.path, "")
	if err != nil {
		return "csv"
	}
	return format
}

func (s *HTTPSource) Location() string {
	return s.path
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+s.path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request GET %s: %w", s.path, err)
	}
	req.Header.Set("Accept", "text/csv, */*; q=0.01")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request GET %s failed: %w", s.path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf(
			"%w %d: %s",
			ErrSourceStatus,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	return resp.Body, nil
}

// FileSource reads the dataset from a local CSV or Excel file.
type FileSource struct {
	path   string
	format string
}

func NewFileSource(path, format string) (*FileSource, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("file path is required")
	}
	resolved, err := importer.InferFormat(path, format)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: resolved}, nil
}

func (s *FileSource) Format() string {
	return s.format
}

func (s *FileSource) Location() string {
	return s.path
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	return file, nil
}
