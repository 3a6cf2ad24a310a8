// Package meta loads curriculum assets (manifests, lesson sources) from
// any afs-addressable location.
package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Placeholder substitutes the content of an asset that could not be
// fetched, so a lesson keeps rendering instead of failing.
const Placeholder = "content unavailable"

// FetchError reports an asset that could not be retrieved.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch asset %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Service resolves asset URLs against a base location and loads them.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates an asset service rooted at baseURL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{
		fs:      fs,
		baseURL: baseURL,
		options: options,
	}
}

// URL resolves a possibly relative asset location against the base URL.
func (s *Service) URL(location string) string {
	if s.baseURL == "" || url.Scheme(location, "") != "" {
		return location
	}
	return url.Join(s.baseURL, location)
}

// Exists checks whether the asset is present.
func (s *Service) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, s.URL(location), s.options...)
}

// Load decodes a YAML asset into target.
func (s *Service) Load(ctx context.Context, location string, target interface{}) error {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return &FetchError{URL: URL, Err: err}
	}
	if err = yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode asset %s: %w", URL, err)
	}
	return nil
}

// Fetch returns the text content of an asset, expanding ${env.KEY}
// references. On failure it returns the placeholder text alongside a
// FetchError so callers can degrade rather than abort.
func (s *Service) Fetch(ctx context.Context, location string) (string, error) {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return Placeholder, &FetchError{URL: URL, Err: err}
	}
	return expandEnvExpr(string(data)), nil
}
