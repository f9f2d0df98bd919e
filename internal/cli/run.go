package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/angristan/brighten/internal/config"
	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/tui"
	"github.com/angristan/brighten/internal/tui/messages"
)

func (a *app) runCmd() *cobra.Command {
	var forceTUI bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the brightness control window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			frontend := a.cfg.UI.Frontend
			if forceTUI {
				frontend = config.FrontendTUI
			}

			// The terminal frontend owns stderr, so logs need a file
			if err := a.setupLogging(frontend == config.FrontendTUI); err != nil {
				return err
			}

			ctx := cmd.Context()
			ctrl := a.controller()
			state, err := ctrl.Initialize(ctx)
			if err != nil {
				return err
			}
			a.logger.Info("initial brightness", "state", state.String(), "frontend", frontend)

			if frontend == config.FrontendTUI {
				return a.runTUI(ctx, ctrl, state)
			}
			return a.runWindow(ctx, ctrl, state)
		},
	}

	cmd.Flags().BoolVar(&forceTUI, "tui", false, "run in the terminal instead of a desktop window")
	return cmd
}

func (a *app) runTUI(ctx context.Context, ctrl *controller.Controller, state models.State) error {
	model := tui.NewModel(ctx, ctrl, state, a.cfg.WindowSize(), a.logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	config.Watch(a.v, func(cfg *config.Config, err error) {
		if err != nil {
			a.logger.Warn("ignoring invalid config change", "error", err)
			return
		}
		p.Send(messages.OptionsChangedMsg{Options: cfg.ControllerOptions()})
	})

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func (a *app) runWindow(ctx context.Context, ctrl *controller.Controller, state models.State) error {
	if a.windowRunner == nil {
		return errors.New("desktop window frontend not available, use --tui")
	}
	return a.windowRunner(ctx, ctrl, state, a.cfg.WindowSize(), a.logger)
}
