package main

import (
	"context"
	"log/slog"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/angristan/brighten/internal/cli"
	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/window"
)

const appID = "io.github.angristan.brighten"

func runWindow(ctx context.Context, ctrl *controller.Controller, state models.State, size models.Size, logger *slog.Logger) error {
	a := fyneapp.NewWithID(appID)
	return window.New(ctx, a, ctrl, state, size, logger).Run()
}

func main() {
	cli.Execute(runWindow)
}
