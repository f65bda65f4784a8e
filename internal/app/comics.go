package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blackwell-systems/comiccards/internal/card"
	"github.com/blackwell-systems/comiccards/internal/marvel"
	"github.com/blackwell-systems/comiccards/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type comicResult struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	OnsaleDate   *time.Time `json:"onsale_date,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Characters   []string   `json:"characters"`
}

func toComicResult(c marvel.Comic) comicResult {
	r := comicResult{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		ThumbnailURL: c.ThumbnailURL,
		Characters:   c.Characters,
	}
	if !c.OnsaleDate.IsZero() {
		d := c.OnsaleDate
		r.OnsaleDate = &d
	}
	return r
}

func newComicsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "comics",
		Short: "List comics that went on sale in the last week",
		Long: `List up to 50 comics that went on sale in the last week, newest first.

In a terminal this opens the interactive browser: pick a comic to see its
card, press u to upload the card and d to delete it again.

Examples:
  comiccards comics
  comiccards comics --no-interactive
  comiccards comics --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				return runComics(cmd, "json")
			}
			return runComics(cmd, "")
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// runComics shows the listing as the TUI browser, JSON, or plain lines.
func runComics(cmd *cobra.Command, format string) error {
	client, err := catalogClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if format == "" && tui.ShouldUseTUI(cmd) {
		var host tui.ImageHost
		if ic, err := imageClient(); err == nil {
			host = ic
		}
		return tui.RunComics(ctx, client, host, cfg.Defaults.CardWidth)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout())
	defer cancel()

	comics, err := client.Comics(ctx)
	if err != nil {
		return reportFailure(err)
	}

	if format == "json" {
		results := make([]comicResult, len(comics))
		for i, c := range comics {
			results[i] = toComicResult(c)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(comics) == 0 {
		fmt.Println("No comics on sale this week.")
		return nil
	}

	header("── Comics on sale this week  (%d)", len(comics))
	for _, c := range comics {
		chars := ""
		if len(c.Characters) > 0 {
			chars = " " + color.CyanString("["+strings.Join(c.Characters, ",")+"]")
		}
		fmt.Printf("  %-8s  %-12s  %s%s\n",
			color.WhiteString("%d", c.ID),
			card.FormatDate(c.OnsaleDate),
			c.Title,
			chars,
		)
	}
	return nil
}

// reportFailure prints the user-facing outcome for err and returns it.
func reportFailure(err error) error {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), tui.ErrorMessage(err))
	return err
}

// findComic fetches the listing and returns the comic with id.
func findComic(ctx context.Context, client *marvel.Client, id int) (marvel.Comic, error) {
	comics, err := client.Comics(ctx)
	if err != nil {
		return marvel.Comic{}, reportFailure(err)
	}
	for _, c := range comics {
		if c.ID == id {
			return c, nil
		}
	}
	return marvel.Comic{}, fmt.Errorf("comic %d is not in this week's listing", id)
}
