package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/provider"
	"github.com/angristan/brighten/internal/theme"
)

const (
	appName   = "brighten"
	envPrefix = "BRIGHTEN"

	FrontendWindow = "window"
	FrontendTUI    = "tui"

	maxPrecision = 6
)

// ProviderConfig describes the external brightness utility
type ProviderConfig struct {
	Command string        `mapstructure:"command" yaml:"command"`
	GetArgs []string      `mapstructure:"get_args" yaml:"get_args"`
	MaxArgs []string      `mapstructure:"max_args" yaml:"max_args"`
	SetArgs []string      `mapstructure:"set_args" yaml:"set_args"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// UIConfig stores frontend settings
type UIConfig struct {
	// "window" or "tui"
	Frontend string `mapstructure:"frontend" yaml:"frontend"`
	// "unit" or "percent"
	Step      string `mapstructure:"step" yaml:"step"`
	Precision int    `mapstructure:"precision" yaml:"precision"`
	Keyboard  bool   `mapstructure:"keyboard" yaml:"keyboard"`
	Theme     string `mapstructure:"theme" yaml:"theme"`
	// Window size in logical units
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
	// Show a dialog before exiting on a fatal error
	ErrorDialog bool `mapstructure:"error_dialog" yaml:"error_dialog"`
}

// InfoConfig stores settings for the info command
type InfoConfig struct {
	NoControlHeuristic bool `mapstructure:"no_control_heuristic" yaml:"no_control_heuristic"`
}

// LogConfig stores logging settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Config stores all application configuration
type Config struct {
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Info     InfoConfig     `mapstructure:"info" yaml:"info"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`

	// File the config was read from, empty when none was found
	Path string `mapstructure:"-" yaml:"-"`
}

var (
	ErrInvalidStep      = errors.New("invalid step mode")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidFrontend  = errors.New("invalid frontend")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidSize      = errors.New("invalid window size")
)

// configDir returns the configuration directory path
func configDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func setDefaults(v *viper.Viper) {
	def := provider.DefaultCommandConfig()
	v.SetDefault("provider.command", def.Command)
	v.SetDefault("provider.get_args", def.GetArgs)
	v.SetDefault("provider.max_args", def.MaxArgs)
	v.SetDefault("provider.set_args", def.SetArgs)
	v.SetDefault("provider.timeout", "0s")

	v.SetDefault("ui.frontend", FrontendWindow)
	v.SetDefault("ui.step", string(models.StepPercent))
	v.SetDefault("ui.precision", 0)
	v.SetDefault("ui.keyboard", true)
	v.SetDefault("ui.theme", string(theme.Default))
	v.SetDefault("ui.width", 200)
	v.SetDefault("ui.height", 50)
	v.SetDefault("ui.error_dialog", false)

	v.SetDefault("info.no_control_heuristic", true)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

// New creates a viper instance with defaults, env binding and the config
// file location set up. An empty path searches the config directory.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}
	return v, nil
}

// Read loads the config file into v. A missing file is not an error
// unless it was named explicitly.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if !explicit && os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

// Decode builds and validates a Config from v
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration from disk and the environment
func Load(path string) (*Config, *viper.Viper, error) {
	v, err := New(path)
	if err != nil {
		return nil, nil, err
	}
	if err := Read(v, path != ""); err != nil {
		return nil, nil, err
	}
	cfg, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Validate checks enumerated and ranged settings
func (c *Config) Validate() error {
	if !models.StepMode(c.UI.Step).Valid() {
		return fmt.Errorf("%w: %q (want unit or percent)", ErrInvalidStep, c.UI.Step)
	}
	if !theme.ID(c.UI.Theme).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.UI.Theme)
	}
	if c.UI.Frontend != FrontendWindow && c.UI.Frontend != FrontendTUI {
		return fmt.Errorf("%w: %q (want window or tui)", ErrInvalidFrontend, c.UI.Frontend)
	}
	if c.UI.Precision < 0 || c.UI.Precision > maxPrecision {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidPrecision, c.UI.Precision, maxPrecision)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.UI.Width, c.UI.Height)
	}
	return nil
}

// ControllerOptions maps the config onto controller options
func (c *Config) ControllerOptions() controller.Options {
	return controller.Options{
		StepMode:           models.StepMode(c.UI.Step),
		Precision:          c.UI.Precision,
		Keyboard:           c.UI.Keyboard,
		Theme:              theme.ID(c.UI.Theme),
		NoControlHeuristic: c.Info.NoControlHeuristic,
	}
}

// WindowSize returns the configured window size
func (c *Config) WindowSize() models.Size {
	return models.Size{Width: c.UI.Width, Height: c.UI.Height}
}

// CommandConfig maps the config onto the subprocess provider settings
func (c *Config) CommandConfig() provider.CommandConfig {
	return provider.CommandConfig{
		Command: c.Provider.Command,
		GetArgs: c.Provider.GetArgs,
		MaxArgs: c.Provider.MaxArgs,
		SetArgs: c.Provider.SetArgs,
		Timeout: c.Provider.Timeout,
	}
}

// Watch re-decodes the config whenever the file changes. fn receives the
// new config, or the error if the edited file is invalid. Watch does
// nothing when no config file was read.
func Watch(v *viper.Viper, fn func(*Config, error)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(Decode(v))
	})
	v.WatchConfig()
}
