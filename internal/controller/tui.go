package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "excgen.dev/pkg/excgen/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// pagerChrome is the number of lines taken by the pager title and footer.
const pagerChrome = 4

// TUI implements UI using Bubble Tea to page through long reports.
// Short messages are printed like SimpleUI does.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayStats shows the statistics tables in a scrollable pager. YAML output
// is printed directly so it can be piped.
func (t *TUI) DisplayStats(ctx context.Context, stats m.Stats, format Format) error {
	if format == FormatYAML {
		return t.SimpleUI.DisplayStats(ctx, stats, format)
	}

	title := fmt.Sprintf("%d of %d flag vectors accepted", stats.Accepted, stats.Vectors)

	return t.page(ctx, newPager(title, renderStatsTables(stats)))
}

// DisplayCheck pages through the check report.
func (t *TUI) DisplayCheck(ctx context.Context, diffs []m.ShardDiff) error {
	return t.page(ctx, newPager(checkTitle(diffs), renderCheck(diffs)))
}

func (t *TUI) page(ctx context.Context, model pager) error {
	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func checkTitle(diffs []m.ShardDiff) string {
	outdated := 0

	for _, diff := range diffs {
		if diff.Status != m.UpToDate {
			outdated++
		}
	}

	return fmt.Sprintf("%d of %d shard artifacts out of date", outdated, len(diffs))
}

// pager is a Bubble Tea model showing fixed content in a viewport.
type pager struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPager(title, content string) pager {
	return pager{title: title, content: content}
}

func (p pager) Init() tea.Cmd {
	return nil
}

func (p pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pager) View() string {
	if !p.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", p.viewport.ScrollPercent()*100)))

	return b.String()
}
