package card_test

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/comiccards/internal/card"
	"github.com/blackwell-systems/comiccards/internal/marvel"
	"github.com/charmbracelet/lipgloss"
)

func strPtr(s string) *string { return &s }

func TestNew_AllFields(t *testing.T) {
	l := card.New(marvel.Comic{
		Title:        "Amazing Spider-Man #44",
		Description:  strPtr("The Gang War begins!"),
		OnsaleDate:   time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC),
		Characters:   []string{"Spider-Man", "Mary Jane"},
		ThumbnailURL: "http://example.com/t.jpg",
	})
	if l.Title != "Amazing Spider-Man #44" {
		t.Errorf("Title = %q", l.Title)
	}
	if l.Description != "The Gang War begins!" {
		t.Errorf("Description = %q", l.Description)
	}
	if l.Characters != "Spider-Man,Mary Jane" {
		t.Errorf("Characters = %q", l.Characters)
	}
	if l.Date != "Feb 21, 2024" {
		t.Errorf("Date = %q", l.Date)
	}
	if l.ThumbnailURL != "http://example.com/t.jpg" {
		t.Errorf("ThumbnailURL = %q", l.ThumbnailURL)
	}
}

func TestNew_Placeholders(t *testing.T) {
	cases := []struct {
		name  string
		comic marvel.Comic
	}{
		{"nil description", marvel.Comic{}},
		{"blank description", marvel.Comic{Description: strPtr("   ")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := card.New(c.comic)
			if l.Description != card.NoDescription {
				t.Errorf("Description = %q, want %q", l.Description, card.NoDescription)
			}
			if l.Characters != card.NoCharacters {
				t.Errorf("Characters = %q, want %q", l.Characters, card.NoCharacters)
			}
			if l.Date != card.NoDate {
				t.Errorf("Date = %q, want %q", l.Date, card.NoDate)
			}
		})
	}
}

func TestRender_ContainsFieldsAndFitsWidth(t *testing.T) {
	l := card.Layout{
		Title:       "X-Men #31",
		Description: "A long description that should wrap across several lines of the card body.",
		Characters:  "Cyclops,Storm",
		Date:        "Feb 21, 2024",
	}
	out := card.Render(l, 40)
	for _, want := range []string{"X-Men #31", "Feb 21, 2024", "Cyclops,Storm", "Characters"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if w := lipgloss.Width(out); w != 40 {
		t.Errorf("rendered width = %d, want 40", w)
	}
}

func TestRender_MinimumWidth(t *testing.T) {
	out := card.Render(card.Layout{Title: "T"}, 5)
	if w := lipgloss.Width(out); w < 24 {
		t.Errorf("rendered width = %d, want at least 24", w)
	}
}

func TestSnapshot_Dimensions(t *testing.T) {
	img := card.Snapshot(card.New(marvel.Comic{Title: "Hulk #1", Characters: []string{"Hulk"}}))
	b := img.Bounds()
	if b.Dx() != card.SnapshotWidth || b.Dy() != card.SnapshotHeight {
		t.Errorf("bounds = %v", b)
	}
	// Header band is the accent red.
	r, g, bl, _ := img.At(card.SnapshotWidth-1, 1).RGBA()
	if r>>8 != 0xEC || g>>8 != 0x1D || bl>>8 != 0x24 {
		t.Errorf("header pixel = %x %x %x", r>>8, g>>8, bl>>8)
	}
}
