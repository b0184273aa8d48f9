package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Source provides raw CSV content of the dataset.
type Source interface {
	// Open returns reader over CSV content. Caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Location returns URL or path of the source for logging.
	Location() string
}

// NewSource returns HTTP source for http(s) URLs and file source for everything else.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &httpSource{
			url:    location,
			client: &http.Client{Timeout: timeout},
		}
	}
	return fileSource(location)
}

type httpSource struct {
	url    string
	client *http.Client
}

func (s *httpSource) Location() string {
	return s.url
}

func (s *httpSource) Open(ctx context.Context) (io.ReadCloser, error) {
	request, err := http.NewRequest(http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create request for %q", s.url)
	}

	response, err := s.client.Do(request.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot fetch %q", s.url)
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, errors.Errorf("fetching %q returned status %q", s.url, response.Status)
	}

	return response.Body, nil
}

type fileSource string

func (s fileSource) Location() string {
	return string(s)
}

func (s fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(string(s))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %q", string(s))
	}
	return file, nil
}
