package khat

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

// FormatError renders err as the block khat prints on stderr before exiting.
func FormatError(err error, color bool) string {
	header, msg, hint := "khat error.", err.Error(), HintFor(err)
	if color {
		header = headerStyle.Render(header)
		msg = errorStyle.Render(msg)
		hint = hintStyle.Render(hint)
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(msg + "\n")
	b.WriteString(hint + "\n")
	return b.String()
}

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(m.footer())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.MouseWheelEnabled = true
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) footer() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return footerStyle.Render(fmt.Sprintf("%s  %3.f%%  (q to quit)", m.title, percent))
}

func (m pagerModel) View() string {
	if !m.ready {
		return "  Loading..."
	}
	return m.viewport.View() + "\n" + m.footer()
}

func runPager(ctx context.Context, title, content string, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	if in == nil {
		opts = append(opts, tea.WithInputTTY())
	} else {
		opts = append(opts, tea.WithInput(in))
	}

	p := tea.NewProgram(newPagerModel(title, content), opts...)
	_, err := p.Run()
	return err
}
