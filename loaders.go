package localeinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// LocaleDataLoader reads LocaleData override files. Later paths win over
// earlier ones, entry by entry.
type LocaleDataLoader struct {
	paths []string
}

func NewLocaleDataLoader(paths ...string) *LocaleDataLoader {
	return &LocaleDataLoader{paths: append([]string(nil), paths...)}
}

// AddPath appends another override file
func (l *LocaleDataLoader) AddPath(path string) {
	if l == nil || path == "" {
		return
	}
	l.paths = append(l.paths, path)
}

// Load reads and merges all configured files
func (l *LocaleDataLoader) Load() (*LocaleData, error) {
	result := &LocaleData{}
	if l == nil || len(l.paths) == 0 {
		return result, nil
	}

	for _, path := range l.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localeinfo: read %s: %w", path, err)
		}

		var data LocaleData
		if err := decodeLocaleData(path, raw, &data); err != nil {
			return nil, fmt.Errorf("localeinfo: decode %s: %w", path, err)
		}
		mergeLocaleData(result, &data)
	}

	return result, nil
}

// decodeLocaleData picks the decoder from the file extension
func decodeLocaleData(path string, raw []byte, out *LocaleData) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(raw, out)
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, out)
	case ".toml":
		return toml.Unmarshal(raw, out)
	default:
		return fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}
}

// mergeLocaleData merges source into dest (source takes precedence)
func mergeLocaleData(dest, source *LocaleData) {
	if source == nil {
		return
	}

	if source.DisplayLocale != "" {
		dest.DisplayLocale = source.DisplayLocale
	}

	if source.Symbols != nil {
		if dest.Symbols == nil {
			dest.Symbols = make(map[string]Symbols)
		}
		for k, v := range source.Symbols {
			dest.Symbols[normalizeLocale(k)] = v
		}
	}

	if source.Calendar != nil {
		if dest.Calendar == nil {
			dest.Calendar = make(map[string]CalendarData)
		}
		for k, v := range source.Calendar {
			dest.Calendar[normalizeLocale(k)] = v
		}
	}

	if source.CurrencyNames != nil {
		if dest.CurrencyNames == nil {
			dest.CurrencyNames = make(map[string]CurrencyNames)
		}
		for k, v := range source.CurrencyNames {
			dest.CurrencyNames[strings.ToUpper(strings.TrimSpace(k))] = v
		}
	}
}
