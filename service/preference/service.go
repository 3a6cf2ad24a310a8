// Package preference persists the learner's display preferences as a
// small YAML key/value document.
package preference

import (
	"bytes"
	"context"
	"log"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Theme selects the transcript colour scheme.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Preferences holds the learner-tunable settings.
type Preferences struct {
	SuppressWarnings bool  `yaml:"suppressWarnings"`
	Theme            Theme `yaml:"theme"`
}

// Default returns the out-of-the-box preferences.
func Default() *Preferences {
	return &Preferences{
		SuppressWarnings: true,
		Theme:            ThemeDay,
	}
}

// Service loads and stores preferences at a fixed URL.
type Service struct {
	fs  afs.Service
	URL string
}

// New creates a preference service persisting at URL.
func New(fs afs.Service, URL string) *Service {
	return &Service{fs: fs, URL: URL}
}

// Load reads the stored preferences. A missing or corrupt document
// degrades to the defaults.
func (s *Service) Load(ctx context.Context) *Preferences {
	ret := Default()
	if s.URL == "" {
		return ret
	}
	if ok, _ := s.fs.Exists(ctx, s.URL); !ok {
		return ret
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		log.Printf("failed to load preferences from %s: %v", s.URL, err)
		return ret
	}
	values := map[string]string{}
	if err = yaml.Unmarshal(data, &values); err != nil {
		log.Printf("failed to decode preferences from %s: %v", s.URL, err)
		return ret
	}
	if value, ok := values["suppressWarnings"]; ok {
		ret.SuppressWarnings = toolbox.AsBoolean(value)
	}
	if value, ok := values["theme"]; ok {
		switch Theme(value) {
		case ThemeDay, ThemeNight:
			ret.Theme = Theme(value)
		}
	}
	return ret
}

// Save persists the preferences.
func (s *Service) Save(ctx context.Context, preferences *Preferences) error {
	values := map[string]string{
		"suppressWarnings": toolbox.AsString(preferences.SuppressWarnings),
		"theme":            string(preferences.Theme),
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return s.fs.Upload(ctx, s.URL, file.DefaultFileOsMode, bytes.NewReader(data))
}
