package app

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"strconv"

	"github.com/blackwell-systems/comiccards/internal/card"
	"github.com/spf13/cobra"
)

func newCardCmd() *cobra.Command {
	var (
		savePath string
		upload   bool
	)

	cmd := &cobra.Command{
		Use:   "card <comic-id>",
		Short: "Show a comic from this week's listing as a card",
		Long: `Render one comic from this week's listing as a card.

Use --save to write the card image to a JPEG file, or --upload to send it
to Imgur straight away.

Examples:
  comiccards card 110592
  comiccards card 110592 --save card.jpg
  comiccards card 110592 --upload`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid comic id %q", args[0])
			}

			client, err := catalogClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
			defer cancel()

			comic, err := findComic(ctx, client, id)
			if err != nil {
				return err
			}

			layout := card.New(comic)
			fmt.Println(card.Render(layout, cfg.Defaults.CardWidth))

			if savePath != "" {
				if err := saveSnapshot(layout, savePath); err != nil {
					return err
				}
				ok("Saved card to %s", savePath)
			}

			if upload {
				return uploadImage(cmd, card.Snapshot(layout))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the card image to this JPEG file")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload the card image to Imgur")
	return cmd
}

func saveSnapshot(layout card.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := jpeg.Encode(f, card.Snapshot(layout), &jpeg.Options{Quality: 100}); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding card: %w", err)
	}
	return f.Close()
}
