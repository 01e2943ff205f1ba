// Package config provides Viper-based configuration loading for the converter.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MUDCONV_OUTPUT_FORMAT.
const EnvPrefix = "MUDCONV"

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ImportConfig selects the legacy input and how it is decoded.
type ImportConfig struct {
	// SourceDir is the root of the legacy world files.
	SourceDir string `mapstructure:"source_dir"`
	// PlayerDir is the root of the legacy player files.
	PlayerDir string `mapstructure:"player_dir"`
	// Encoding is the input byte encoding: "ascii" or "latin1".
	Encoding string `mapstructure:"encoding"`
	// ValueLayout names the object value layout generation: "v1" or "v2".
	// Files written by the game engine itself use "v1"; see values.LayoutV1.
	ValueLayout string `mapstructure:"value_layout"`
	// Workers bounds the number of file sets decoded concurrently.
	Workers int `mapstructure:"workers"`
	// Zones restricts a world import to these zone numbers; empty means all.
	Zones []int `mapstructure:"zones"`
}

// OutputConfig controls how converted documents are serialized.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
	// Format is "json" or "yaml".
	Format string `mapstructure:"format"`
	// Compress zstd-compresses each written document.
	Compress bool `mapstructure:"compress"`
	// Validate checks each document against the embedded JSON schema before writing.
	Validate bool `mapstructure:"validate"`
}

// SinkConfig selects where converted documents go.
type SinkConfig struct {
	// Kind is "file", "postgres" or "sqlite".
	Kind       string `mapstructure:"kind"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// ManifestConfig controls the incremental-run manifest.
type ManifestConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ScriptingConfig points at optional Lua record filters.
type ScriptingConfig struct {
	// Dir holds *.lua filter scripts; empty disables filtering.
	Dir string `mapstructure:"dir"`
	// InstructionLimit caps VM instructions per filter call. 0 selects
	// scripting.DefaultInstructionLimit (100000); execution is never unbounded.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Import    ImportConfig    `mapstructure:"import"`
	Output    OutputConfig    `mapstructure:"output"`
	Sink      SinkConfig      `mapstructure:"sink"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Manifest  ManifestConfig  `mapstructure:"manifest"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateImport(c.Import); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSink(c.Sink); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Sink.Kind == "postgres" {
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if c.Manifest.Enabled && c.Manifest.Path == "" {
		errs = append(errs, "manifest.path must not be empty when the manifest is enabled")
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Validate checks the database settings on their own; cmd/migrate needs
// them regardless of the configured sink.
func (d DatabaseConfig) Validate() error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateImport(i ImportConfig) error {
	var errs []string
	validEncodings := map[string]bool{"ascii": true, "latin1": true}
	if !validEncodings[i.Encoding] {
		errs = append(errs, fmt.Sprintf("import.encoding must be one of [ascii, latin1], got %q", i.Encoding))
	}
	validLayouts := map[string]bool{"v1": true, "v2": true}
	if !validLayouts[i.ValueLayout] {
		errs = append(errs, fmt.Sprintf("import.value_layout must be one of [v1, v2], got %q", i.ValueLayout))
	}
	if i.Workers < 1 {
		errs = append(errs, fmt.Sprintf("import.workers must be >= 1, got %d", i.Workers))
	}
	for _, z := range i.Zones {
		if z < 0 {
			errs = append(errs, fmt.Sprintf("import.zones must not contain negative zone %d", z))
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	validFormats := map[string]bool{"json": true, "yaml": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("output.format must be one of [json, yaml], got %q", o.Format)
	}
	return nil
}

func validateSink(s SinkConfig) error {
	switch s.Kind {
	case "file", "postgres":
		return nil
	case "sqlite":
		if s.SQLitePath == "" {
			return errors.New("sink.sqlite_path must not be empty for the sqlite sink")
		}
		return nil
	default:
		return fmt.Errorf("sink.kind must be one of [file, postgres, sqlite], got %q", s.Kind)
	}
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewViper returns a Viper instance carrying the defaults and environment
// bindings, for callers that layer flags on top before LoadFromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("import.source_dir", "lib/world")
	v.SetDefault("import.player_dir", "lib/players")
	v.SetDefault("import.encoding", "ascii")
	v.SetDefault("import.value_layout", "v2")
	v.SetDefault("import.workers", 4)

	v.SetDefault("output.dir", "out")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.compress", false)
	v.SetDefault("output.validate", true)

	v.SetDefault("sink.kind", "file")
	v.SetDefault("sink.sqlite_path", "out/documents.db")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "mud")
	v.SetDefault("database.password", "mud")
	v.SetDefault("database.name", "mud")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("manifest.enabled", false)
	v.SetDefault("manifest.path", "out/manifest.db")

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 100000)
}
