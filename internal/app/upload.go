package app

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"github.com/blackwell-systems/comiccards/internal/imgur"
	"github.com/blackwell-systems/comiccards/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <image-file>",
		Short: "Upload an image to Imgur",
		Long: `Upload a PNG, JPEG or GIF image to Imgur as a JPEG.

Prints the shareable link and the delete hash. Keep the delete hash: it is
the only way to remove the image later with 'comiccards delete'.

Examples:
  comiccards upload card.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			return uploadImage(cmd, img)
		},
	}
	return cmd
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

type uploadOutcome struct {
	result *imgur.UploadResult
	err    error
}

// uploadImage uploads img, showing a progress bar in a terminal.
func uploadImage(cmd *cobra.Command, img image.Image) error {
	client, err := imageClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
	defer cancel()

	ch, onProgress := tui.ProgressChannel()
	done := make(chan uploadOutcome, 1)
	go func() {
		res, err := client.Upload(ctx, img, onProgress)
		close(ch)
		done <- uploadOutcome{result: res, err: err}
	}()

	if tui.ShouldUseTUI(cmd) {
		if err := tui.ShowProgress("Uploading card", ch); err != nil {
			warn("progress display: %v", err)
		}
	}

	out := <-done
	if out.err != nil {
		return reportFailure(out.err)
	}

	ok(tui.MsgCardReady)
	fmt.Printf("  Link:        %s\n", color.CyanString(out.result.Link))
	fmt.Printf("  Delete hash: %s\n", out.result.DeleteHash)
	fmt.Println()
	fmt.Printf("Remove it later with: %s\n", color.CyanString("comiccards delete "+out.result.DeleteHash))
	return nil
}
