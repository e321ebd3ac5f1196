package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shortcuts/internal/models"
)

// ErrShortcutsFileMissing is returned when the shortcuts file does not exist.
var ErrShortcutsFileMissing = errors.New("shortcuts file not found")

// ShortcutsFile represents the structure of the shortcuts.yaml file.
type ShortcutsFile struct {
	Shortcuts []models.Record `yaml:"shortcuts"`
}

// LoadShortcutsFile reads and parses the shortcuts file at path.
func LoadShortcutsFile(path string) (*ShortcutsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrShortcutsFileMissing, path)
		}
		return nil, err
	}

	var file ShortcutsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// FileSource reads shortcut records from a YAML file on every load.
type FileSource struct {
	path string
}

// NewFileSource returns a record source for the YAML file at path. The path
// is made absolute so the config command opens the right file.
func NewFileSource(path string) *FileSource {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &FileSource{path: path}
}

// Load parses the file.
func (f *FileSource) Load(ctx context.Context) ([]models.Record, error) {
	file, err := LoadShortcutsFile(f.path)
	if err != nil {
		return nil, err
	}
	return file.Shortcuts, nil
}

// Location returns the absolute file path.
func (f *FileSource) Location() string {
	return f.path
}

// WriteExample writes a starter shortcuts file to path unless one exists.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(ShortcutsFile{Shortcuts: ExampleShortcuts()})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ExampleShortcuts is the starter record set.
func ExampleShortcuts() []models.Record {
	return []models.Record{
		{Name: "Google", Keyword: "g", URL: "https://www.google.com/search?q=%s", Domain: "https://www.google.com", SuggestionProvider: "google", IsDefault: true},
		{Name: "DuckDuckGo", Keyword: "ddg", URL: "https://duckduckgo.com/?q=%s", Domain: "https://duckduckgo.com", SuggestionProvider: "duckduckgo"},
		{Name: "Wikipedia", Keyword: "w", URL: "https://en.wikipedia.org/w/index.php?search=%s", Domain: "https://en.wikipedia.org", SuggestionProvider: "wikipedia"},
		{Name: "YouTube", Keyword: "yt", URL: "https://www.youtube.com/results?search_query=%s", Domain: "https://www.youtube.com", SuggestionProvider: "youtube"},
		{Name: "GitHub", Keyword: "gh", URL: "https://github.com/search?q=%s", Domain: "https://github.com"},
		{Name: "Go packages", Keyword: "pkg", URL: "https://pkg.go.dev/search?q=%s", Domain: "https://pkg.go.dev"},
	}
}
