package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds the MySQL connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig holds SMTP settings for reminder mail
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// CalendarConfig points at the external calendar events API
type CalendarConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

var (
	// GlobalConfig is the loaded configuration instance
	GlobalConfig *Config
)

// LoadConfig loads configuration with precedence:
// external config file > embedded defaults, then env overrides.
// configPath optionally names an external file.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// embedded defaults first
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}

	// optional external file merged on top
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged config file: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/gigbook")
		externalViper.AddConfigPath("$HOME/.gigbook")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("warning: merging external config failed: %v", err)
			} else {
				log.Printf("merged config file: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// env overrides, e.g. GIGBOOK_DATABASE_PASSWORD
	v.SetEnvPrefix("GIGBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig loads the configuration or panics
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("loading config: %v", err))
	}
	return cfg
}

// GetConfig returns the loaded configuration
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialized, call LoadConfig first")
	}
	return GlobalConfig
}

// SafeErrorMessage hides internal error details from clients in release
// mode; development modes see the real error.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig logs the active configuration without secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuration:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  database: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  email: %v, calendar: %v", GlobalConfig.Email.Enabled, GlobalConfig.Calendar.Enabled)
}
