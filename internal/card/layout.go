// Package card turns a catalog comic into the fields shown on a card, and
// renders that card for the terminal or as an image for upload.
package card

import (
	"strings"
	"time"

	"github.com/blackwell-systems/comiccards/internal/marvel"
)

// DateFormat is how on-sale dates appear on a card.
const DateFormat = "Jan 02, 2006"

// Placeholder text for missing fields.
const (
	NoDescription = "Not available"
	NoCharacters  = "No characters"
	NoDate        = "Date unknown"
)

// Layout holds the display strings for one card.
type Layout struct {
	Title        string
	Description  string
	Characters   string
	Date         string
	ThumbnailURL string
}

// New lays out c.
func New(c marvel.Comic) Layout {
	l := Layout{
		Title:        c.Title,
		Description:  NoDescription,
		Characters:   NoCharacters,
		Date:         FormatDate(c.OnsaleDate),
		ThumbnailURL: c.ThumbnailURL,
	}
	if c.Description != nil && strings.TrimSpace(*c.Description) != "" {
		l.Description = *c.Description
	}
	if len(c.Characters) > 0 {
		l.Characters = strings.Join(c.Characters, ",")
	}
	return l
}

// FormatDate formats t with DateFormat, or NoDate for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return NoDate
	}
	return t.Format(DateFormat)
}
