package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/comiccards/internal/card"
	"github.com/blackwell-systems/comiccards/internal/marvel"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

// ComicItem is one row of the comics browser.
type ComicItem struct {
	Comic marvel.Comic
}

// FilterValue returns a string used for filtering in the list
func (c ComicItem) FilterValue() string {
	return c.Comic.Title + " " + strings.Join(c.Comic.Characters, " ")
}

// comicDelegate renders comics one per line.
type comicDelegate struct{}

func (d comicDelegate) Height() int                             { return 1 }
func (d comicDelegate) Spacing() int                            { return 0 }
func (d comicDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d comicDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(ComicItem)
	if !ok {
		return
	}

	date := fmt.Sprintf("%-12s", card.FormatDate(ci.Comic.OnsaleDate))

	chars := ""
	if n := len(ci.Comic.Characters); n > 0 {
		chars = " " + StyleMeta.Render(fmt.Sprintf("[%d chars]", n))
	}

	// prefix (2) + date (12) + space + suffix room
	titleW := m.Width() - 2 - 12 - 1 - 12
	if titleW < 10 {
		titleW = 10
	}
	title := xansi.Truncate(ci.Comic.Title, titleW, "…")

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+date+" "+title)+chars)
		return
	}
	_, _ = fmt.Fprint(w, "  "+StyleHelp.Render(date)+" "+StyleNormal.Render(title)+chars)
}

func comicItems(comics []marvel.Comic) []list.Item {
	items := make([]list.Item, len(comics))
	for i, c := range comics {
		items[i] = ComicItem{Comic: c}
	}
	return items
}
