// Package fatal turns unrecoverable errors into a diagnostic and an exit code.
package fatal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/angristan/brighten/internal/provider"
)

const dialogTitle = "Brightness Control"

// Handler reports fatal errors
type Handler struct {
	// Where the diagnostic goes, os.Stderr by default
	Out io.Writer
	// Dialog also shows the diagnostic in a desktop error dialog
	Dialog bool
	// exit is swapped in tests
	exit func(int)
	// dialog is swapped in tests
	dialog func(string) error
}

// NewHandler creates a handler writing to stderr
func NewHandler(dialog bool) *Handler {
	return &Handler{
		Out:    os.Stderr,
		Dialog: dialog,
		exit:   os.Exit,
		dialog: showDialog,
	}
}

// Message formats the diagnostic for err, adding a hint for common causes
func Message(err error) string {
	msg := "brighten: " + err.Error()
	switch {
	case provider.IsNotFound(err):
		msg += "\nHint: install brightnessctl or set provider.command in the config file"
	case errors.Is(err, provider.ErrMalformedOutput):
		msg += "\nHint: provider.command must print a single integer"
	}
	return msg
}

// Exit prints the diagnostic and terminates with status 1
func (h *Handler) Exit(err error) {
	msg := Message(err)
	slog.Debug("fatal", "error", err)
	fmt.Fprintln(h.Out, msg)

	if h.Dialog {
		if derr := h.dialog(msg); derr != nil {
			slog.Warn("error dialog failed", "error", derr)
		}
	}
	h.exit(1)
}

func showDialog(msg string) error {
	err := zenity.Error(msg, zenity.Title(dialogTitle), zenity.ErrorIcon)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
