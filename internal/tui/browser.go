package tui

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/blackwell-systems/comiccards/internal/card"
	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/imgur"
	"github.com/blackwell-systems/comiccards/internal/marvel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ComicsFetcher loads the catalog listing.
type ComicsFetcher interface {
	Comics(ctx context.Context) ([]marvel.Comic, error)
}

// ImageHost uploads and deletes card images.
type ImageHost interface {
	Upload(ctx context.Context, img image.Image, onProgress endpoint.ProgressFunc) (*imgur.UploadResult, error)
	Delete(ctx context.Context, deleteHash string) error
}

// viewState is the comics screen state.
type viewState int

const (
	stateLoading viewState = iota
	stateReady
	stateError
)

// cardScreen is the state of the card detail screen. It lives only while
// the card is shown; going back discards it.
type cardScreen struct {
	comic     marvel.Comic
	layout    card.Layout
	uploading bool
	fraction  float64
	progress  <-chan float64
	result    *imgur.UploadResult
	deleting  bool
	status    string
	statusErr bool
}

// ComicsModel browses the catalog and manages card uploads.
// At most one upload and one delete are outstanding at a time; the keys that
// start them are ignored while their request is in flight.
type ComicsModel struct {
	ctx       context.Context
	catalog   ComicsFetcher
	host      ImageHost
	cardWidth int

	state   viewState
	err     error
	list    list.Model
	spinner spinner.Model
	bar     progress.Model
	keys    browserKeys

	card   *cardScreen
	width  int
	height int
}

// NewComicsModel creates the browser. host may be nil, which disables
// uploads.
func NewComicsModel(ctx context.Context, catalog ComicsFetcher, host ImageHost, cardWidth int) ComicsModel {
	l := list.New(nil, comicDelegate{}, 0, 0)
	l.Title = "Comics on sale this week"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp
	// q and esc are handled by the model so esc can mean "back".
	l.KeyMap.Quit.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return ComicsModel{
		ctx:       ctx,
		catalog:   catalog,
		host:      host,
		cardWidth: cardWidth,
		state:     stateLoading,
		list:      l,
		spinner:   sp,
		bar:       progress.New(progress.WithDefaultGradient()),
		keys:      newBrowserKeys(),
	}
}

func (m ComicsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchComicsCmd(m.ctx, m.catalog))
}

func fetchComicsCmd(ctx context.Context, catalog ComicsFetcher) tea.Cmd {
	return func() tea.Msg {
		comics, err := catalog.Comics(ctx)
		return comicsLoadedMsg{comics: comics, err: err}
	}
}

func uploadCmd(ctx context.Context, host ImageHost, img image.Image, ch chan float64, onProgress endpoint.ProgressFunc) tea.Cmd {
	return func() tea.Msg {
		res, err := host.Upload(ctx, img, onProgress)
		close(ch)
		return uploadDoneMsg{result: res, err: err}
	}
}

func deleteCmd(ctx context.Context, host ImageHost, deleteHash string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: host.Delete(ctx, deleteHash)}
	}
}

func (m ComicsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.bar.Width = min(msg.Width-8, 60)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case comicsLoadedMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			return m, nil
		}
		m.state = stateReady
		m.err = nil
		m.list.SetItems(comicItems(msg.comics))
		return m, nil

	case uploadProgressMsg:
		if m.card == nil || !m.card.uploading {
			return m, nil
		}
		m.card.fraction = float64(msg)
		return m, waitForProgress(m.card.progress)

	case progressClosedMsg:
		return m, nil

	case uploadDoneMsg:
		if m.card == nil {
			return m, nil
		}
		m.card.uploading = false
		if msg.err != nil {
			m.card.status, m.card.statusErr = ErrorMessage(msg.err), true
			return m, nil
		}
		m.card.fraction = 1
		m.card.result = msg.result
		m.card.status, m.card.statusErr = MsgCardReady, false
		return m, nil

	case deleteDoneMsg:
		if m.card == nil {
			return m, nil
		}
		m.card.deleting = false
		if msg.err != nil {
			m.card.status, m.card.statusErr = MsgDeleteFailed, true
			return m, nil
		}
		m.card.result = nil
		m.card.fraction = 0
		m.card.status, m.card.statusErr = MsgDeleted, false
		return m, nil

	case tea.KeyMsg:
		if m.card != nil {
			return m.updateCard(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ComicsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload) && m.state == stateError:
		m.state = stateLoading
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, fetchComicsCmd(m.ctx, m.catalog))

	case key.Matches(msg, m.keys.Select) && m.state == stateReady:
		if item, ok := m.list.SelectedItem().(ComicItem); ok {
			m.card = &cardScreen{comic: item.Comic, layout: card.New(item.Comic)}
		}
		return m, nil
	}

	if m.state != stateReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ComicsModel) updateCard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		// Requests can't be cancelled, so the card stays until they finish.
		if m.card.uploading || m.card.deleting {
			return m, nil
		}
		m.card = nil
		return m, nil

	case key.Matches(msg, m.keys.Upload):
		if m.host == nil {
			m.card.status, m.card.statusErr = MsgUploadDisabled, true
			return m, nil
		}
		if m.card.uploading || m.card.deleting || m.card.result != nil {
			return m, nil
		}
		m.card.uploading = true
		m.card.fraction = 0
		m.card.status, m.card.statusErr = "", false
		ch, onProgress := ProgressChannel()
		m.card.progress = ch
		img := card.Snapshot(m.card.layout)
		return m, tea.Batch(
			uploadCmd(m.ctx, m.host, img, ch, onProgress),
			waitForProgress(ch),
		)

	case key.Matches(msg, m.keys.Delete):
		if m.host == nil || m.card.result == nil || m.card.deleting || m.card.uploading {
			return m, nil
		}
		m.card.deleting = true
		m.card.status, m.card.statusErr = "", false
		return m, deleteCmd(m.ctx, m.host, m.card.result.DeleteHash)
	}
	return m, nil
}

func (m ComicsModel) View() string {
	if m.card != nil {
		return m.viewCard()
	}

	switch m.state {
	case stateLoading:
		return StyleBorder.Render(m.spinner.View() + " " + MsgLoading)
	case stateError:
		return StyleBorder.Render(
			StyleError.Render(ErrorMessage(m.err)) + "\n\n" +
				StyleHelp.Render("r retry • q quit"))
	}

	if len(m.list.Items()) == 0 {
		return StyleBorder.Render("No comics on sale this week.\n\n" + StyleHelp.Render("q quit"))
	}
	return StyleBorder.Render(m.list.View())
}

func (m ComicsModel) viewCard() string {
	c := m.card
	width := m.cardWidth
	if m.width > 0 && m.width-2 < width {
		width = m.width - 2
	}

	var b strings.Builder
	b.WriteString(card.Render(c.layout, width))
	b.WriteString("\n\n")

	switch {
	case c.uploading:
		b.WriteString("Uploading card...\n")
		b.WriteString(m.bar.ViewAs(c.fraction))
		b.WriteString("\n")
	case c.deleting:
		b.WriteString("Deleting card...\n")
	}

	if c.result != nil {
		b.WriteString(StyleSuccess.Render("✓ ") + c.result.Link + "\n")
		b.WriteString(StyleHelp.Render("delete hash: ") + c.result.DeleteHash + "\n")
	}

	if c.status != "" {
		if c.statusErr {
			b.WriteString(StyleError.Render(c.status))
		} else {
			b.WriteString(StyleSuccess.Render(c.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(m.cardHelp()))
	return b.String()
}

func (m ComicsModel) cardHelp() string {
	parts := []string{}
	c := m.card
	if m.host != nil && !c.uploading && !c.deleting && c.result == nil {
		parts = append(parts, "u upload")
	}
	if c.result != nil && !c.deleting {
		parts = append(parts, "d delete")
	}
	if !c.uploading && !c.deleting {
		parts = append(parts, "esc back")
	}
	return strings.Join(parts, " • ")
}

// RunComics launches the interactive browser.
func RunComics(ctx context.Context, catalog ComicsFetcher, host ImageHost, cardWidth int) error {
	p := tea.NewProgram(NewComicsModel(ctx, catalog, host, cardWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running comics browser: %w", err)
	}
	return nil
}
