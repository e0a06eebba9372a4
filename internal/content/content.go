package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("content file not found")
	// ErrParse indicates the input document is malformed.
	ErrParse = errors.New("content parse error")
)

// DefaultWeek is the label used when the source document omits "week".
const DefaultWeek = "This Week"

// Weekly is the normalized in-memory representation of one week's
// newsletter input. The six sequence fields are always non-nil; item
// shapes are opaque and pass through to the renderer unchecked.
type Weekly struct {
	Grade6        []any
	Grade7        []any
	Grade8        []any
	Announcements []any
	Events        []any
	Achievements  []any
	Week          string
	Date          string
}

// Load reads a weekly content document from path and normalizes it.
// Files with a .yaml/.yml extension are parsed as YAML, everything
// else as JSON. An empty file yields an empty document.
func Load(path string) (Weekly, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Weekly{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Weekly{}, fmt.Errorf("read content file: %w", err)
	}

	doc := map[string]any{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return Weekly{}, fmt.Errorf("%w: %v", ErrParse, err)
			}
		default:
			if err := json.Unmarshal(raw, &doc); err != nil {
				return Weekly{}, fmt.Errorf("%w: %v", ErrParse, err)
			}
		}
	}
	return normalize(doc), nil
}

// normalize maps the raw document onto Weekly. Canonical grade keys
// (grade6) take priority over legacy aliases (6th); the first non-null
// match wins.
func normalize(doc map[string]any) Weekly {
	w := Weekly{
		Grade6:        sequence(doc, "grade6", "6th"),
		Grade7:        sequence(doc, "grade7", "7th"),
		Grade8:        sequence(doc, "grade8", "8th"),
		Announcements: sequence(doc, "announcements"),
		Events:        sequence(doc, "events"),
		Achievements:  sequence(doc, "achievements"),
		Week:          DefaultWeek,
	}
	if s, ok := doc["week"].(string); ok && strings.TrimSpace(s) != "" {
		w.Week = s
	}
	if s, ok := doc["date"].(string); ok {
		w.Date = s
	}
	return w
}

// sequence returns the first non-null list value among keys, else an
// empty slice. A scalar under a grade key is treated as absent.
func sequence(doc map[string]any, keys ...string) []any {
	for _, k := range keys {
		v, ok := doc[k]
		if !ok || v == nil {
			continue
		}
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return []any{}
}
