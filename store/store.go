// Package store persists the selected-zone list as a JSON array under a
// fixed key, read once at startup and rewritten on every change.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/timegear/timegear/logger"
	"github.com/timegear/timegear/zone"
)

// Key is the storage key holding the descriptor array.
const Key = "timezones"

const (
	configName = "timegear"
	configType = "json"
)

var l = logger.GetLogger()

// Store reads and writes the selection file. Construct with New or, for a
// caller-chosen directory, Open.
type Store struct {
	v    *viper.Viper
	path string
}

// New opens the store in the platform config directory: %APPDATA% on
// Windows, ~/.config elsewhere.
func New() (*Store, error) {
	var dir string
	if runtime.GOOS == "windows" {
		dir = os.Getenv("APPDATA")
	} else {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	if dir == "" || dir == string(filepath.Separator) {
		return nil, fmt.Errorf("cannot determine config directory")
	}
	return Open(dir), nil
}

// Open opens the store rooted at dir.
func Open(dir string) *Store {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	return &Store{
		v:    v,
		path: filepath.Join(dir, configName+"."+configType),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted selection. Absent or unparsable data falls
// back to the default zone set; Load never fails the caller.
func (s *Store) Load() []zone.Descriptor {
	if err := s.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			l.Warn().Str("path", s.path).Err(err).Msg("unreadable selection file, using defaults")
		}
		return zone.Defaults()
	}

	var selection []zone.Descriptor
	if err := s.v.UnmarshalKey(Key, &selection); err != nil {
		l.Warn().Str("path", s.path).Err(err).Msg("malformed selection data, using defaults")
		return zone.Defaults()
	}
	if len(selection) == 0 {
		return zone.Defaults()
	}
	for _, d := range selection {
		if _, err := d.Location(); err != nil {
			l.Warn().Str("zone", d.Zone).Err(err).Msg("stored zone no longer resolves, using defaults")
			return zone.Defaults()
		}
	}
	return selection
}

// Save rewrites the selection file.
func (s *Store) Save(selection []zone.Descriptor) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	s.v.Set(Key, selection)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	l.Debug().Str("path", s.path).Int("zones", len(selection)).Msg("selection saved")
	return nil
}
