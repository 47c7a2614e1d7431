package jestsay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Render defaults, matching the stock jester art's speech bubble.
const (
	DefaultXOffset = 23
	DefaultYOffset = 8
	DefaultWidth   = 33
	DefaultHeight  = 3
	DefaultAlign   = "center"
	DefaultColor   = "#775A95"
)

// StringList decodes a TOML value that may be a single string or an array of
// strings.
type StringList []string

// UnmarshalTOML implements toml.Unmarshaler.
func (l *StringList) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		*l = StringList{t}
		return nil
	case []interface{}:
		out := make(StringList, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", item)
			}
			out = append(out, s)
		}
		*l = out
		return nil
	}
	return fmt.Errorf("expected string or array of strings, got %T", v)
}

// Config holds the tool's settings. Keys mirror the CLI flags.
type Config struct {
	Jester  string     `toml:"jester"`
	Quips   StringList `toml:"quips"`
	XOffset int        `toml:"x-offset"`
	YOffset int        `toml:"y-offset"`
	Width   int        `toml:"width"`
	Height  int        `toml:"height"`
	Align   string     `toml:"align"`
	Color   string     `toml:"color"`
	NoBold  bool       `toml:"no-bold"`
}

// DefaultConfig returns the built-in settings. Jester and Quips are left
// empty; path resolution (XDG data dir, then the embedded assets) happens in
// the CLI layer.
func DefaultConfig() Config {
	return Config{
		XOffset: DefaultXOffset,
		YOffset: DefaultYOffset,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Align:   DefaultAlign,
		Color:   DefaultColor,
	}
}

// ConfigPath returns the default config file location
// (~/.config/jestsay/config.toml or the platform equivalent).
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jestsay", "config.toml"), nil
}

// DataPath returns the location of a stock data file under the user's data
// directory ($XDG_DATA_HOME/jestsay or ~/.local/share/jestsay).
func DataPath(name string) string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "jestsay", name)
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty, on top of the built-in defaults. The returned Config is
// always usable; a non-nil error only explains why some or all defaults were
// kept (missing file, unreadable TOML) so the caller can warn.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return cfg, fmt.Errorf("config dir unavailable: %w", err)
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("config file not found, using defaults")
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}
