package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/components"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/terminal"
)

// panelZone is the bubblezone ID of the metric panel.
const panelZone = "pulsegauge-panel"

// Options configures a Model.
type Options struct {
	// Logger receives sampling failures and unsaved preference changes.
	// Nil discards them.
	Logger *slog.Logger

	// Profile is the colour profile used both to pick gradient stops and to
	// render the frame.
	Profile termenv.Profile

	// DetectProfile re-reads the terminal's colour capability whenever the
	// gradient is resolved. Profile still sets the renderer.
	DetectProfile bool

	// Context bounds every sample. Nil means context.Background().
	Context context.Context

	// Zones enables mouse hit-testing on the panel. Nil disables it.
	Zones *zone.Manager
}

// DefaultOptions returns Options that follow the environment's colour
// capability, with logging discarded.
func DefaultOptions() Options {
	return Options{Profile: terminal.DetectColorProfile(), DetectProfile: true}
}

// Model is the root bubbletea model: one panel showing a single metric as a
// gradient gauge or a sparkline, plus a key hint line.
type Model struct {
	store    *config.Store
	sampler  collectors.Sampler
	ctx      context.Context
	logger   *slog.Logger
	profile  termenv.Profile
	detect   bool
	renderer *lipgloss.Renderer
	zones    *zone.Manager

	keys    KeyMap
	help    help.Model
	history *History
	ratio   float64

	width    int
	height   int
	quitting bool
}

// New creates a Model that samples s and reads and mutates preferences
// through store.
func New(store *config.Store, s collectors.Sampler, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return Model{
		store:    store,
		sampler:  s,
		ctx:      opts.Context,
		logger:   opts.Logger,
		profile:  opts.Profile,
		detect:   opts.DetectProfile,
		renderer: components.NewRenderer(io.Discard, opts.Profile),
		zones:    opts.Zones,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		history:  NewHistory(HistoryCapacity),
	}
}

// Init takes the first sample. Each completed sample schedules the next
// tick, so exactly one sampling chain is active.
func (m Model) Init() tea.Cmd {
	return SampleCmd(m.ctx, m.sampler)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickEvent:
		return m, SampleCmd(m.ctx, m.sampler)

	case SampleEvent:
		r := msg.Reading
		if r.Err != nil {
			m.logger.Warn("sample failed", "metric", r.Source, "error", r.Err)
		} else {
			m.ratio = r.Ratio
			m.history.Push(r.Ratio)
		}
		return m, TickCmd(m.store.Interval())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.logOutcome("next theme", m.store.NextTheme())
	case key.Matches(msg, m.keys.View):
		m.logOutcome("next view", m.store.NextViewType())
	case key.Matches(msg, m.keys.IntervalUp):
		m.logOutcome("increase interval", m.store.IncInterval())
	case key.Matches(msg, m.keys.IntervalDown):
		m.logOutcome("decrease interval", m.store.DecInterval())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse cycles the theme when the panel is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if z := m.zones.Get(panelZone); z != nil && z.InBounds(msg) {
		m.logOutcome("next theme", m.store.NextTheme())
	}
	return m, nil
}

// logOutcome records a preference save that did not reach disk. The change
// itself is already applied in memory.
func (m Model) logOutcome(op string, o config.Outcome) {
	if o.OK() {
		return
	}
	m.logger.Debug("preferences not saved", "op", op, "path", o.Path, "error", o.Err)
}

// View implements tea.Model. Only the panel is registered as a mouse zone;
// the key hint below it is not clickable.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w, h, hint := m.layout()
	out := m.Snapshot(w, h-len(hint))
	if m.zones != nil {
		out = m.zones.Mark(panelZone, out)
	}
	if len(hint) > 0 {
		buf := components.NewBuffer(components.NewRect(0, 0, w, len(hint)))
		m.paintHint(buf, 0, hint)
		out += "\n" + buf.Render(m.renderer)
	}
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// Frame paints the current state into a fresh buffer sized to the window,
// or to terminal.DefaultSize before the first WindowSizeMsg.
func (m Model) Frame() *components.Buffer {
	w, h, hint := m.layout()
	buf := components.NewBuffer(components.NewRect(0, 0, w, h))
	panel := components.NewRect(0, 0, w, h-len(hint))
	m.paintPanel(buf, panel)
	m.paintHint(buf, panel.Bottom(), hint)
	return buf
}

// Snapshot renders the panel alone at the given size, without the key
// hint. It is used for one-shot output when no terminal is attached.
func (m Model) Snapshot(width, height int) string {
	buf := components.NewBuffer(components.NewRect(0, 0, width, height))
	m.paintPanel(buf, buf.Area())
	return buf.Render(m.renderer)
}

// layout returns the frame size and the key hint lines shown below the
// panel. The hint is dropped when it would leave no room for the panel.
func (m Model) layout() (w, h int, hint []string) {
	w, h = m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = terminal.DefaultSize.Cols, terminal.DefaultSize.Rows
	}
	hint = strings.Split(ansi.Strip(m.help.View(m.keys)), "\n")
	if len(hint) >= h {
		hint = nil
	}
	return w, h, hint
}

// paintHint writes the hint lines into buf starting at row y.
func (m Model) paintHint(buf *components.Buffer, y int, hint []string) {
	w := buf.Area().Width
	style := lipgloss.NewStyle().Foreground(m.store.Palette().Text)
	for i, line := range hint {
		row := y + i
		buf.SetString(0, row, line, components.NewRect(0, row, w, 1), style)
	}
}

// paintPanel draws the bordered gauge or sparkline into area.
func (m Model) paintPanel(buf *components.Buffer, area components.Rect) {
	palette := m.store.Palette()
	colors := palette.Gradient(m.profile)
	if m.detect {
		colors = palette.ResolveGradient()
	}
	block := components.NewBlock(m.Title())
	block.Style = lipgloss.NewStyle().Foreground(palette.Border)
	block.TitleStyle = lipgloss.NewStyle().Foreground(palette.Text).Bold(true)

	switch m.store.ViewType() {
	case config.Gauge:
		components.GradientGauge{Area: area, Ratio: m.ratio, Colors: colors, Block: block}.Paint(buf)
	default:
		components.Sparkline{Area: area, Values: m.history.Values(), Max: 1, Colors: colors, Block: block}.Paint(buf)
	}
}

// Title is the panel heading: metric name, current percentage and the
// sampling interval.
func (m Model) Title() string {
	pct := int(math.Round(components.GradientGauge{Ratio: m.ratio}.EffectiveRatio() * 100))
	return fmt.Sprintf("%s %d%% · %dms", m.sampler.Name(), pct, m.store.Interval().Milliseconds())
}

// Width returns the last known terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last known terminal height.
func (m Model) Height() int { return m.height }

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool { return m.quitting }

// Ratio returns the most recent successful reading.
func (m Model) Ratio() float64 { return m.ratio }

// History returns the recorded readings, oldest first.
func (m Model) History() []float64 { return m.history.Values() }

// HelpVisible reports whether the expanded help is shown.
func (m Model) HelpVisible() bool { return m.help.ShowAll }
