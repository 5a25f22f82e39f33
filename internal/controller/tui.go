package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI renders a Bubble Tea progress bar while a sampling run executes.
type TUI struct {
	out      io.Writer
	program  *tea.Program
	finished chan struct{}
}

// NewTUI creates a TUI writing to out.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(total int) error {
	t.program = tea.NewProgram(
		newSampleModel(total),
		tea.WithOutput(t.out),
		tea.WithoutSignalHandler(),
	)
	t.finished = make(chan struct{})

	go func() {
		defer close(t.finished)
		_, _ = t.program.Run()
	}()
	return nil
}

// Progress forwards completion counts to the running program.
func (t *TUI) Progress(done int) {
	if t.program != nil {
		t.program.Send(progressMsg(done))
	}
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}
	t.program.Send(finishedMsg{})
	<-t.finished
	t.program = nil
}

// progressMsg carries the number of completed samples.
type progressMsg int

// finishedMsg tells the model to quit.
type finishedMsg struct{}

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

// sampleModel is the Bubble Tea model for the sampling progress bar.
type sampleModel struct {
	bar   progress.Model
	total int
	done  int
}

func newSampleModel(total int) sampleModel {
	return sampleModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m sampleModel) Init() tea.Cmd {
	return nil
}

func (m sampleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = int(msg)
		if m.done >= m.total {
			return m, tea.Quit
		}
		return m, nil

	case finishedMsg:
		m.done = m.total
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m sampleModel) View() string {
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s\n%s %d/%d\n",
		titleStyle.Render("Sampling mutations"),
		m.bar.ViewAs(ratio),
		m.done, m.total,
	)
}
