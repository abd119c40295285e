// Package config handles configuration of the record service:
// defaults, an optional TOML file and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config holds runtime settings of medkeeper-server.
type Config struct {
	Addr      string `toml:"addr"`
	DBPath    string `toml:"db_path"`
	JWTSecret string `toml:"jwt_secret"` // пустой секрет отключает аутентификацию
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // text | json

	RateWindow      Duration `toml:"rate_window"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	TokenTTL        Duration `toml:"token_ttl"`
	RateLimit       int      `toml:"rate_limit"` // запросов на окно с одного IP; 0 отключает
}

// Duration decodes "30s"-style strings from TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns development defaults.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		DBPath:          "medkeeper-server.db",
		LogLevel:        "info",
		LogFormat:       "text",
		RateLimit:       100,
		RateWindow:      Duration{time.Minute},
		ShutdownTimeout: Duration{10 * time.Second},
		TokenTTL:        Duration{24 * time.Hour},
	}
}

// ReadFile overlays values from a TOML file onto cfg. Unknown keys are an error.
func ReadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Flags описывает флаги, переопределяющие файл конфигурации
type Flags struct {
	fs   *pflag.FlagSet
	vals Config
}

// RegisterFlags adds config override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()

	fs.StringVarP(&f.vals.Addr, "addr", "a", def.Addr, "address to listen on")
	fs.StringVarP(&f.vals.DBPath, "db", "d", def.DBPath, "path to the SQLite database")
	fs.StringVarP(&f.vals.JWTSecret, "jwt-secret", "s", "", "HMAC secret for bearer tokens (empty disables auth)")
	fs.StringVar(&f.vals.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.vals.LogFormat, "log-format", def.LogFormat, "log format: text or json")
	fs.IntVar(&f.vals.RateLimit, "rate-limit", def.RateLimit, "requests per window per client IP, 0 disables")
	fs.DurationVar(&f.vals.RateWindow.Duration, "rate-window", def.RateWindow.Duration, "rate limit window")
	fs.DurationVar(&f.vals.ShutdownTimeout.Duration, "shutdown-timeout", def.ShutdownTimeout.Duration, "graceful shutdown timeout")
	return f
}

// apply копирует в cfg только явно заданные флаги
func (f *Flags) apply(cfg *Config) {
	set := map[string]func(){
		"addr":             func() { cfg.Addr = f.vals.Addr },
		"db":               func() { cfg.DBPath = f.vals.DBPath },
		"jwt-secret":       func() { cfg.JWTSecret = f.vals.JWTSecret },
		"log-level":        func() { cfg.LogLevel = f.vals.LogLevel },
		"log-format":       func() { cfg.LogFormat = f.vals.LogFormat },
		"rate-limit":       func() { cfg.RateLimit = f.vals.RateLimit },
		"rate-window":      func() { cfg.RateWindow = f.vals.RateWindow },
		"shutdown-timeout": func() { cfg.ShutdownTimeout = f.vals.ShutdownTimeout },
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		if fn, ok := set[fl.Name]; ok {
			fn()
		}
	})
}

// Load builds a Config: defaults, then the TOML file (if path is set), then
// flags that were given explicitly. flags may be nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := ReadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for obviously broken values
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate_limit must not be negative"))
	}
	if c.RateLimit > 0 && c.RateWindow.Duration <= 0 {
		errs = append(errs, errors.New("rate_window must be positive"))
	}
	if c.ShutdownTimeout.Duration <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
