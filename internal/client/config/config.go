// Package config loads the client configuration.
//
// Приоритет источников (от высшего к низшему): флаги командной строки,
// переменные окружения MEDKEEPER_*, файл конфигурации, значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения клиента
const EnvPrefix = "MEDKEEPER"

// Config конфигурация клиента
type Config struct {
	Server  ServerConfig `mapstructure:"server"`
	Probe   ProbeConfig  `mapstructure:"probe"`
	DB      PathConfig   `mapstructure:"db"`
	Session PathConfig   `mapstructure:"session"`
	Log     LogConfig    `mapstructure:"log"`
}

// ServerConfig адрес и авторизация сервиса записей
type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProbeConfig проверка доступности; пустой URL означает <server.url>/health
type ProbeConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PathConfig путь к файлу
type PathConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig файл и уровень лога
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultDir returns $HOME/.medkeeper, or .medkeeper when home is unknown
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".medkeeper"
	}
	return filepath.Join(home, ".medkeeper")
}

// SetDefaults registers default values relative to dir
func SetDefaults(v *viper.Viper, dir string) {
	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.token", "")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("probe.url", "")
	v.SetDefault("probe.timeout", 3*time.Second)
	v.SetDefault("db.path", filepath.Join(dir, "medkeeper.db"))
	v.SetDefault("session.path", filepath.Join(dir, "session.db"))
	v.SetDefault("log.file", filepath.Join(dir, "medkeeper.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration into a Config.
// configFile == "" ищет config.yaml в dir; отсутствие файла не ошибка.
func Load(v *viper.Viper, configFile, dir string) (*Config, error) {
	SetDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Server.URL = strings.TrimRight(cfg.Server.URL, "/")
	if cfg.Probe.URL == "" {
		cfg.Probe.URL = cfg.Server.URL + "/health"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return errors.New("server.url is required")
	}
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	if c.Session.Path == "" {
		return errors.New("session.path is required")
	}
	return nil
}
