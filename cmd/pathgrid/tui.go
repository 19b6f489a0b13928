package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/runner"
	"github.com/katalvlaran/pathgrid/traversal"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF")).MarginBottom(1)

	gridBoxStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#00FFFF"))

	panelStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#00FF00")).Padding(0, 1).MarginLeft(1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)

	cellStyles = map[string]lipgloss.Style{
		"empty":    lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")),
		"wall":     lipgloss.NewStyle().Background(lipgloss.Color("#808080")),
		"start":    lipgloss.NewStyle().Background(lipgloss.Color("#00FF00")),
		"end":      lipgloss.NewStyle().Background(lipgloss.Color("#FF0000")),
		"frontier": lipgloss.NewStyle().Background(lipgloss.Color("#90EE90")),
		"visited":  lipgloss.NewStyle().Background(lipgloss.Color("#ADD8E6")),
		"path":     lipgloss.NewStyle().Background(lipgloss.Color("#FFFF00")),
	}
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Wall   key.Binding
	Start  key.Binding
	End    key.Binding
	Mode   key.Binding
	Conn   key.Binding
	Toggle key.Binding
	Escape key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Wall: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "wall"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "move start"),
	),
	End: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "move end"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	Conn: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "4/8 neighbors"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/pause"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel/clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Escape, k.Wall, k.Mode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Wall, k.Start, k.End},
		{k.Mode, k.Conn, k.Toggle, k.Escape},
		{k.Quit},
	}
}

type model struct {
	ctrl     *runner.Controller
	cursor   gridgraph.Coord
	interval time.Duration
	help     help.Model
	keys     keyMap
	message  string
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func initialModel(c *runner.Controller, interval time.Duration) model {
	return model{
		ctrl:     c,
		interval: interval,
		help:     help.New(),
		keys:     keys,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if st := m.ctrl.Status(); st == runner.Ready || st == runner.Run {
			if _, err := m.ctrl.Tick(); err != nil {
				m.message = err.Error()
			}
		}
		return m, tickCmd(m.interval)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.message = ""
		if err := m.handleKey(msg); err != nil {
			m.message = err.Error()
		}
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) error {
	g := m.ctrl.Grid()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1, g)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1, g)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0, g)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0, g)
	case key.Matches(msg, m.keys.Wall):
		return m.ctrl.ToggleWall(m.cursor)
	case key.Matches(msg, m.keys.Start):
		return m.ctrl.MoveStart(m.cursor)
	case key.Matches(msg, m.keys.End):
		return m.ctrl.MoveEnd(m.cursor)
	case key.Matches(msg, m.keys.Mode):
		return m.ctrl.NextMode()
	case key.Matches(msg, m.keys.Conn):
		next := gridgraph.Conn8
		if m.ctrl.Connectivity() == gridgraph.Conn8 {
			next = gridgraph.Conn4
		}
		return m.ctrl.SetConnectivity(next)
	case key.Matches(msg, m.keys.Toggle):
		return m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Escape):
		return m.ctrl.Escape()
	}
	return nil
}

func (m *model) moveCursor(dx, dy int, g *gridgraph.Grid) {
	next := m.cursor.Add([2]int{dx, dy})
	if g.Contains(next) {
		m.cursor = next
	}
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("pathgrid"))
	s.WriteString("\n")

	board := gridBoxStyle.Render(m.renderGrid())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(m.renderPanel())))

	if m.message != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("✗ " + m.message))
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

// cellClass names the style of a cell; the path overrides run markers but
// never Start, End or walls.
func cellClass(c *gridgraph.Cell, onPath bool) string {
	switch {
	case c.Kind == gridgraph.Wall:
		return "wall"
	case c.Kind == gridgraph.Start:
		return "start"
	case c.Kind == gridgraph.End:
		return "end"
	case onPath:
		return "path"
	case c.Visit == gridgraph.Frontier:
		return "frontier"
	case c.Visit == gridgraph.Visited:
		return "visited"
	default:
		return "empty"
	}
}

func (m model) renderGrid() string {
	g := m.ctrl.Grid()
	onPath := make(map[gridgraph.Coord]bool)
	for _, p := range m.ctrl.Path() {
		onPath[p] = true
	}

	var s strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell, _ := g.CellAt(x, y)
			glyph := "  "
			if cell.Pos == m.cursor {
				glyph = "[]"
			}
			s.WriteString(cellStyles[cellClass(cell, onPath[cell.Pos])].Render(glyph))
		}
		if y < g.Height-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m model) renderPanel() string {
	c := m.ctrl
	var s strings.Builder
	fmt.Fprintf(&s, "status   %s\n", c.Status())
	fmt.Fprintf(&s, "mode     %s\n", c.Mode())
	fmt.Fprintf(&s, "conn     %s\n", c.Connectivity())
	fmt.Fprintf(&s, "ticks    %d\n", c.Ticks())
	fmt.Fprintf(&s, "frontier %d\n", c.Last().FrontierLen)
	fmt.Fprintf(&s, "elapsed  %s\n", c.Elapsed().Round(time.Millisecond))
	if c.Status() == runner.Complete {
		fmt.Fprintf(&s, "outcome  %s\n", c.Outcome())
		fmt.Fprintf(&s, "path     %d\n", len(c.Path()))
	}

	if info, err := c.DebugInfo(m.cursor); err == nil {
		s.WriteString("\n")
		for _, field := range traversal.DebugFields(c.Mode()) {
			fmt.Fprintf(&s, "%-8s %s\n", field, info[field])
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

func newTUICmd(root *rootOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a grid and watch the search step by step",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			log := logging.NewNop()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				level, err := cfg.Level()
				if err != nil {
					return err
				}
				log = logging.NewWriter(f, level)
			}

			g, err := cfg.BuildGrid()
			if err != nil {
				return err
			}
			opts, err := cfg.ControllerOptions()
			if err != nil {
				return err
			}
			c, err := runner.New(g, append(opts, runner.WithLogger(log))...)
			if err != nil {
				return err
			}
			return runTUI(cmd, c, cfg.Tick, log)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the UI owns the terminal")
	return cmd
}

func runTUI(cmd *cobra.Command, c *runner.Controller, interval time.Duration, log *slog.Logger) error {
	p := tea.NewProgram(initialModel(c, interval),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error("ui stopped", "error", err)
		return err
	}
	return nil
}
