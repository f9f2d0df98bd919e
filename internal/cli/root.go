package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angristan/brighten/internal/config"
	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/fatal"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/provider"
)

// Version is reported by --version. Release builds override it with
// -ldflags "-X github.com/angristan/brighten/internal/cli.Version=..."
var Version = "0.1.0"

// WindowRunner shows the desktop window and blocks until it closes.
// It is injected by main so the GUI driver stays out of this package.
type WindowRunner func(ctx context.Context, ctrl *controller.Controller, state models.State, size models.Size, logger *slog.Logger) error

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfgFile string
	demo    bool

	cfg    *config.Config
	v      *viper.Viper
	logger *slog.Logger
	// closes the log file, if one is open
	closeLog func()

	// overridable for tests
	newProvider  func(*app) provider.Provider
	windowRunner WindowRunner
	out          io.Writer
	fatal        *fatal.Handler
}

func newApp() *app {
	return &app{
		newProvider: defaultProvider,
		out:         os.Stdout,
		fatal:       fatal.NewHandler(false),
		closeLog:    func() {},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "brighten",
		Version: Version,
		Short:   "Read and set display backlight brightness",
		Long:    "brighten shows a small slider window for the display backlight, driven by brightnessctl",
		// Unknown subcommands land here and do nothing
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           func(cmd *cobra.Command, args []string) {},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/brighten/config.yaml)")
	root.PersistentFlags().BoolVar(&a.demo, "demo", os.Getenv("BRIGHTEN_DEMO") != "", "use an in-memory backlight instead of the provider command")

	root.AddCommand(a.runCmd())
	root.AddCommand(a.infoCmd())
	root.AddCommand(a.configCmd())
	return root
}

// loadConfig reads the configuration named by --config, or the default file
func (a *app) loadConfig() error {
	cfg, v, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg, a.v = cfg, v
	a.fatal.Dialog = cfg.UI.ErrorDialog
	return nil
}

// setupLogging installs the logger. quiet discards logs unless a log file
// is configured, for frontends that own the terminal.
func (a *app) setupLogging(quiet bool) error {
	logger, closeLog, err := newLogger(a.cfg.Log, quiet)
	if err != nil {
		return err
	}
	a.logger, a.closeLog = logger, closeLog
	slog.SetDefault(logger)

	if a.demo {
		logger.Info("demo mode enabled")
	}
	return nil
}

func (a *app) controller() *controller.Controller {
	return controller.New(a.newProvider(a), a.cfg.ControllerOptions())
}

func defaultProvider(a *app) provider.Provider {
	if a.demo {
		return provider.NewDefaultDemo()
	}
	return provider.NewCommand(a.cfg.CommandConfig(), a.logger)
}

// setup loads config and logging for commands that print to the terminal
func (a *app) setup() error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	return a.setupLogging(false)
}

// Execute runs the CLI and exits non-zero on error
func Execute(runWindow WindowRunner) {
	a := newApp()
	a.windowRunner = runWindow
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		a.fatal.Exit(err)
	}
	a.closeLog()
}
