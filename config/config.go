// Package config gathers presentation and filter settings from a YAML
// file and the environment and applies them to a line formatter.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/env"
	"github.com/LuckyTurtleDev/my-env-logger-style/filter"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// Environment variables read by WithEnv
const (
	// FilterEnv holds filter directives, e.g. "info,app::db=debug"
	FilterEnv = "GO_LOG"
	// StyleEnv selects the color mode: auto, always or never
	StyleEnv = "GO_LOG_STYLE"
	// TimestampEnv selects the timestamp precision, e.g. "millis" or "off"
	TimestampEnv = "GO_LOG_TIMESTAMP"
	// NoColorEnv disables colors when set to any non-empty value and
	// StyleEnv is unset (https://no-color.org)
	NoColorEnv = "NO_COLOR"
)

// AppName is the directory name used below the XDG config home
const AppName = "my-env-logger-style"

// Config holds everything the bootstrap needs besides the output writer.
// Pointer fields left nil keep the formatter's current value.
type Config struct {
	Filter      string          `yaml:"filter"`
	Style       style.ColorMode `yaml:"style"`
	Timestamp   *core.Precision `yaml:"timestamp,omitempty"`
	ShowModule  *bool           `yaml:"show_module,omitempty"`
	ShowEmoji   *bool           `yaml:"show_emoji,omitempty"`
	ModuleWidth int             `yaml:"module_width,omitempty"`
}

// Default returns the zero-configuration settings: Info for every module,
// automatic colors and the formatter's own presentation defaults.
func Default() Config {
	return Config{Filter: "info", Style: style.Auto}
}

// DefaultPath returns where the config file is expected:
// $XDG_CONFIG_HOME/my-env-logger-style/config.yaml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// FindFile searches the XDG config directories for config.yaml and
// returns its path, or false when there is none.
func FindFile() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml"))
	if err != nil {
		return "", false
	}
	return path, true
}

// LoadFile reads a YAML config on top of Default. Unknown keys are errors.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}

// WithEnv returns a copy of c overridden by the environment. Filter
// directives from FilterEnv are appended to c.Filter so they win for the
// modules they name. Invalid values are reported and ignored.
func (c Config) WithEnv(r env.Reader) (Config, error) {
	var errs error

	if spec, ok := r.LookupEnv(FilterEnv); ok && spec != "" {
		if c.Filter == "" {
			c.Filter = spec
		} else {
			c.Filter = c.Filter + "," + spec
		}
	}

	if v, ok := r.LookupEnv(StyleEnv); ok {
		if err := c.Style.UnmarshalText([]byte(v)); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "config: %s", StyleEnv))
		}
	} else if v, ok := r.LookupEnv(NoColorEnv); ok && v != "" {
		c.Style = style.Never
	}

	if v, ok := r.LookupEnv(TimestampEnv); ok {
		var p core.Precision
		if err := p.UnmarshalText([]byte(v)); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "config: %s", TimestampEnv))
		} else {
			c.Timestamp = &p
		}
	}

	return c, errs
}

// BuildFilter turns c.Filter into a Filter. Records pass at Info unless a
// directive says otherwise.
func (c Config) BuildFilter() (*filter.Filter, error) {
	return filter.New(filter.Info).WithSpec(c.Filter)
}

// Apply pushes the presentation settings into f. A timestamp setting on a
// formatter without timestamps is an error; everything else still applies.
func (c Config) Apply(f *formatter.LineFormatter) error {
	if c.ShowModule != nil {
		f.SetShowModule(*c.ShowModule)
	}
	if c.ShowEmoji != nil {
		f.SetShowEmoji(*c.ShowEmoji)
	}
	if c.ModuleWidth > 0 {
		f.PeekAndGrowModuleWidth(c.ModuleWidth)
	}
	if c.Timestamp != nil {
		if err := f.SetTimestampPrecision(*c.Timestamp); err != nil {
			return errors.Wrap(err, "config: applying timestamp precision")
		}
	}
	return nil
}
