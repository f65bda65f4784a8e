package tui

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressChannel returns a buffered channel and a ProgressFunc feeding it.
// Reports are dropped rather than blocking the upload when the UI lags.
// The caller closes the channel once the operation finishes.
func ProgressChannel() (chan float64, endpoint.ProgressFunc) {
	ch := make(chan float64, 16)
	fn := func(sent, total int64) {
		select {
		case ch <- endpoint.Fraction(sent, total):
		default:
		}
	}
	return ch, fn
}

// tickMsg is sent periodically to refresh the UI
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// progressClosedMsg is sent once the progress channel is drained.
type progressClosedMsg struct{}

// waitForProgress blocks on the next report. The result arrives in Update,
// the only place model state changes.
func waitForProgress(ch <-chan float64) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return progressClosedMsg{}
		}
		return uploadProgressMsg(f)
	}
}

// progressModel is the Bubble Tea model for a standalone upload bar.
type progressModel struct {
	progress   progress.Model
	label      string
	fraction   float64
	done       bool
	cancelled  bool
	progressCh <-chan float64
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForProgress(m.progressCh))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		return m, tickCmd()

	case progressClosedMsg:
		m.done = true
		return m, tea.Quit

	case uploadProgressMsg:
		m.fraction = float64(msg)
		return m, waitForProgress(m.progressCh)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		return m, nil
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", m.label, m.progress.ViewAs(m.fraction))
}

// ShowProgress displays a progress bar fed by progressCh until the channel
// is closed. Returns an error if the user pressed Ctrl+C; the upload itself
// keeps running since in-flight requests are not cancellable.
func ShowProgress(label string, progressCh <-chan float64) error {
	m := progressModel{
		progress:   progress.New(progress.WithDefaultGradient()),
		label:      label,
		progressCh: progressCh,
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(progressModel); ok && fm.cancelled {
		return fmt.Errorf("cancelled by user")
	}
	return nil
}
