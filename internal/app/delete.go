package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <delete-hash>",
		Short: "Delete an uploaded card from Imgur",
		Long: `Delete an image uploaded with 'comiccards upload' or the browser.

The delete hash is printed after every successful upload.

Examples:
  comiccards delete a1b2c3d4e5f6g7h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := imageClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
			defer cancel()

			if err := client.Delete(ctx, args[0]); err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("✗"), tui.MsgDeleteFailed)
				if errors.Is(err, endpoint.ErrNotFound) {
					warn("Imgur has no image for that delete hash")
				}
				return err
			}
			ok(tui.MsgDeleted)
			return nil
		},
	}
	return cmd
}
