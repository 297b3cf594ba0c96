package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	Timezone     string             `yaml:"timezone" env:"TIMEZONE" env-default:"America/Sao_Paulo"`
	Jaeger       string             `yaml:"jaeger" env:"JAEGER"`
	Log          LogConfig          `yaml:"log"`
	HTTP         HTTPConfig         `yaml:"http"`
	FootballData FootballDataConfig `yaml:"football_data"`
	Session      SessionConfig      `yaml:"session"`
}

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type FootballDataConfig struct {
	BaseURL string        `yaml:"base_url" env:"FOOTBALL_DATA_BASE_URL" env-default:"https://api.football-data.org/v4"`
	Token   string        `yaml:"token" env:"FOOTBALL_DATA_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env:"FOOTBALL_DATA_TIMEOUT" env-default:"10s"`
}

type SessionConfig struct {
	Secret     string `yaml:"secret" env:"SESSION_SECRET"`
	CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"footdash_session"`
	Secure     bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports settings the process cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.FootballData.Token) == "" {
		errs = append(errs, errors.New("football_data.token (FOOTBALL_DATA_TOKEN) is required"))
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		errs = append(errs, errors.New("session.secret (SESSION_SECRET) is required"))
	}
	return errors.Join(errs...)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("invalid config: " + err.Error())
	}

	return cfg
}

// LoadByPath reads the file and env overrides without validating them.
func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = DefaultPath()
	}

	return res
}

// DefaultPath is CONFIG_PATH or config/local.yaml.
func DefaultPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/local.yaml"
}
