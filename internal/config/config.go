package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/logger"
	"github.com/spf13/viper"
)

const (
	appDirName = "bilibili-accounts"
	configName = "config"
	configType = "toml"
	authFile   = "auth.toml"
	envPrefix  = "BA"

	KeyAuthPath          = "auth.path"
	KeyAuthProfile       = "auth.profile"
	KeyLoginTimeout      = "login.timeout"
	KeyLoginPollInterval = "login.poll_interval"
	KeyLoginProxy        = "login.proxy"
	KeyLoginMode         = "login.mode"
	KeyPassportURL       = "api.passport_url"
	KeyAPIBaseURL        = "api.base_url"
	KeyHTTPTimeout       = "http.timeout"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

const (
	QRModeConsole = "console"
	QRModeImage   = "image"
)

type Config struct {
	AuthPath    string
	Profile     string
	Login       LoginConfig
	API         APIConfig
	HTTPTimeout time.Duration
	Log         logger.Config
}

type LoginConfig struct {
	Timeout      time.Duration
	PollInterval time.Duration
	Proxy        string
	Mode         string
}

type APIConfig struct {
	PassportURL string
	BaseURL     string
}

// New prepares v with defaults, the optional config file and BA_* env overrides.
func New(v *viper.Viper) (*viper.Viper, error) {
	if v == nil {
		v = viper.New()
	}

	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAuthPath, filepath.Join(configDir, authFile))
	v.SetDefault(KeyAuthProfile, "default")
	v.SetDefault(KeyLoginTimeout, 180)
	v.SetDefault(KeyLoginPollInterval, 1.0)
	v.SetDefault(KeyLoginProxy, "auto")
	v.SetDefault(KeyLoginMode, QRModeConsole)
	v.SetDefault(KeyPassportURL, "https://passport.bilibili.com")
	v.SetDefault(KeyAPIBaseURL, "https://api.bilibili.com")
	v.SetDefault(KeyHTTPTimeout, 10*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		AuthPath: v.GetString(KeyAuthPath),
		Profile:  v.GetString(KeyAuthProfile),
		Login: LoginConfig{
			Timeout:      seconds(v.GetFloat64(KeyLoginTimeout)),
			PollInterval: seconds(v.GetFloat64(KeyLoginPollInterval)),
			Proxy:        strings.TrimSpace(v.GetString(KeyLoginProxy)),
			Mode:         v.GetString(KeyLoginMode),
		},
		API: APIConfig{
			PassportURL: v.GetString(KeyPassportURL),
			BaseURL:     v.GetString(KeyAPIBaseURL),
		},
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		Log: logger.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AuthPath == "" {
		return errors.New("auth file path is empty")
	}
	if c.Login.Timeout <= 0 {
		return fmt.Errorf("login timeout must be positive, got %s", c.Login.Timeout)
	}
	if c.Login.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.Login.PollInterval)
	}
	switch c.Login.Mode {
	case QRModeConsole, QRModeImage:
	default:
		return fmt.Errorf("unsupported qr mode %q (console|image)", c.Login.Mode)
	}
	return nil
}

// ConfigDir follows XDG: $XDG_CONFIG_HOME/bilibili-accounts, else ~/.config/bilibili-accounts.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second))
}
