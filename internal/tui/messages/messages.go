package messages

import "github.com/angristan/brighten/internal/controller"

// ErrorMsg indicates an unrecoverable error occurred
type ErrorMsg struct {
	Err error
}

// OptionsChangedMsg carries display options from a config reload
type OptionsChangedMsg struct {
	Options controller.Options
}
