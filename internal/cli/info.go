package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the current brightness as a percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}

			line, ok, err := a.controller().Info(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				a.logger.Debug("max brightness is 1, assuming no backlight control")
				return nil
			}
			fmt.Fprintln(a.out, line)
			return nil
		},
	}
}
