package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UI     UIConfig            `mapstructure:"ui"`
	Router RouterConfig        `mapstructure:"router"`
	Log    LogConfig           `mapstructure:"log"`
	Keys   map[string][]string `mapstructure:"keys"`
}

// UIConfig holds terminal surface settings. Width and Height size the single
// frame painted in headless mode.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Headless  bool `mapstructure:"headless"`
	Width     int  `mapstructure:"width"`
	Height    int  `mapstructure:"height"`
}

// RouterConfig holds navigation settings.
type RouterConfig struct {
	InitialRoute string `mapstructure:"initial_route"`
	MaxHistory   int    `mapstructure:"max_history"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from file, env and flags, in increasing priority.
// Env var overrides use prefix CAMUNDA_ANGULAR_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.headless", false)
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.height", 24)
	v.SetDefault("router.initial_route", "/")
	v.SetDefault("router.max_history", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "camunda-angular", "client.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CAMUNDA_ANGULAR_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "camunda-angular"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAMUNDA_ANGULAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"router.initial_route": "route",
			"ui.headless":          "headless",
			"log.level":            "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting that cannot be used, naming its key.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.Router.InitialRoute, "/") {
		return fmt.Errorf("%w: router.initial_route %q must start with /", ErrInvalidConfig, c.Router.InitialRoute)
	}
	if c.Router.MaxHistory < 0 {
		return fmt.Errorf("%w: router.max_history must not be negative, got %d", ErrInvalidConfig, c.Router.MaxHistory)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: ui.width and ui.height must be positive, got %dx%d", ErrInvalidConfig, c.UI.Width, c.UI.Height)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return nil
}
