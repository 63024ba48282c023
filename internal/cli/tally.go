package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/report"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rapid adjust timing for a held [-]/[+] button.
const (
	repeatDelay    = 400 * time.Millisecond
	repeatInterval = 100 * time.Millisecond
)

// Screen layout used for mouse hit testing.
const (
	rowOffset   = 2
	cursorWidth = 2
	buttonWidth = 3
	countWidth  = 6
)

type tallyKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	QuickAdd key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k tallyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.QuickAdd, k.Quit}
}

func (k tallyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Inc, k.Dec, k.QuickAdd}, {k.Help, k.Quit}}
}

func newTallyKeyMap() tallyKeyMap {
	return tallyKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:      key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "add 1")),
		Dec:      key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "remove 1")),
		QuickAdd: key.NewBinding(key.WithKeys("5", "t", "w", "f"), key.WithHelp("5/t/w/f", "+5/+10/+20/+50")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// quickAdd maps the quick-add keys onto the catalog steps.
var quickAdd = map[string]int{"5": 5, "t": 10, "w": 20, "f": 50}

// repeatTickMsg drives a held button. Ticks whose generation no longer
// matches the model's are stale and dropped.
type repeatTickMsg struct{ gen int }

type toastExpiredMsg struct{ gen int }

type repeatState struct {
	active bool
	gen    int
	row    int
	delta  int
}

type tallyModel struct {
	ctx       context.Context
	counters  app.CounterUseCase
	kind      domain.Kind
	labels    report.Strings
	date      time.Time
	vibration bool
	bell      io.Writer

	cats   []string
	counts domain.CounterMap
	cursor int

	keys tallyKeyMap
	help help.Model

	toast    *notify.Toast
	toastGen int
	repeat   repeatState
	width    int
}

type tallyOptions struct {
	Lang      domain.Language
	Date      time.Time
	Vibration bool
	Bell      io.Writer
}

func newTallyModel(ctx context.Context, counters app.CounterUseCase, k domain.Kind, opts tallyOptions) (*tallyModel, error) {
	counts, err := counters.Counts(ctx, k)
	if err != nil {
		return nil, err
	}
	bell := opts.Bell
	if bell == nil {
		bell = io.Discard
	}
	return &tallyModel{
		ctx:       ctx,
		counters:  counters,
		kind:      k,
		labels:    report.For(opts.Lang),
		date:      opts.Date,
		vibration: opts.Vibration,
		bell:      bell,
		cats:      domain.CategoriesFor(k),
		counts:    counts,
		keys:      newTallyKeyMap(),
		help:      help.New(),
	}, nil
}

func (m *tallyModel) Init() tea.Cmd { return nil }

func (m *tallyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.stopRepeat()
		return m, nil

	case tea.KeyMsg:
		m.stopRepeat()
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case repeatTickMsg:
		if !m.repeat.active || msg.gen != m.repeat.gen {
			return m, nil
		}
		cmd := m.adjust(m.repeat.row, m.repeat.delta)
		return m, tea.Batch(cmd, m.scheduleRepeat(repeatInterval))

	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = nil
		}
		return m, nil
	}
	return m, nil
}

func (m *tallyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.cats)) % len(m.cats)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.cats)
	case key.Matches(msg, m.keys.Inc):
		return m, m.adjust(m.cursor, 1)
	case key.Matches(msg, m.keys.Dec):
		return m, m.adjust(m.cursor, -1)
	case key.Matches(msg, m.keys.QuickAdd):
		return m, m.adjust(m.cursor, quickAdd[msg.String()])
	}
	return m, nil
}

func (m *tallyModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, delta, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.stopRepeat()
		m.cursor = row
		m.repeat.active, m.repeat.row, m.repeat.delta = true, row, delta
		return m, tea.Batch(m.adjust(row, delta), m.scheduleRepeat(repeatDelay))

	case tea.MouseActionRelease:
		m.stopRepeat()

	case tea.MouseActionMotion:
		if !m.repeat.active {
			return m, nil
		}
		row, delta, ok := m.hitTest(msg.X, msg.Y)
		if !ok || row != m.repeat.row || delta != m.repeat.delta {
			m.stopRepeat()
		}
	}
	return m, nil
}

// stopRepeat cancels a held button. Bumping the generation invalidates any
// tick already in flight.
func (m *tallyModel) stopRepeat() {
	m.repeat.active = false
	m.repeat.gen++
}

func (m *tallyModel) scheduleRepeat(d time.Duration) tea.Cmd {
	gen := m.repeat.gen
	return tea.Tick(d, func(time.Time) tea.Msg { return repeatTickMsg{gen: gen} })
}

func (m *tallyModel) adjust(row, delta int) tea.Cmd {
	if row < 0 || row >= len(m.cats) || delta == 0 {
		return nil
	}
	res, err := m.counters.Adjust(m.ctx, m.kind, m.cats[row], delta)
	if err != nil {
		return m.showToast(notify.Error(err.Error()))
	}
	m.counts.Set(m.cats[row], res.Value)
	if m.vibration {
		notify.Bell(m.bell)
	}
	if len(res.Warnings) > 0 {
		return m.showToast(notify.Error(fmt.Sprintf("%s: %v", m.labels.SaveError, app.Warning(res.Warnings))))
	}
	return nil
}

func (m *tallyModel) showToast(t notify.Toast) tea.Cmd {
	m.toast = &t
	m.toastGen++
	gen := m.toastGen
	return tea.Tick(notify.ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{gen: gen} })
}

func (m *tallyModel) labelWidth() int {
	w := 0
	for _, c := range m.cats {
		w = max(w, lipgloss.Width(m.labels.CategoryLabel(c)))
	}
	return w
}

// hitTest maps a cell to the row and button under it.
func (m *tallyModel) hitTest(x, y int) (row, delta int, ok bool) {
	row = y - rowOffset
	if row < 0 || row >= len(m.cats) {
		return 0, 0, false
	}
	minusStart := cursorWidth
	plusStart := cursorWidth + buttonWidth + 1 + m.labelWidth() + 1 + countWidth + 1
	switch {
	case x >= minusStart && x < minusStart+buttonWidth:
		return row, -1, true
	case x >= plusStart && x < plusStart+buttonWidth:
		return row, 1, true
	}
	return 0, 0, false
}

func (m *tallyModel) View() string {
	var b strings.Builder
	title := formatter.KindColor(m.kind).Bold(true).Render(strings.ToUpper(m.labels.KindLabel(m.kind)))
	fmt.Fprintf(&b, "%s  %s\n\n", title, formatter.Dim(m.date.Format(domain.ReportDateLayout)))

	lw := m.labelWidth()
	for i, c := range m.cats {
		cursor := "  "
		label := m.labels.CategoryLabel(c)
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("›") + " "
			label = formatter.Bold(label)
		}
		n := m.counts.Get(c)
		count := fmt.Sprintf("%*s", countWidth, strconv.Itoa(n))
		if n == 0 {
			count = formatter.Dim(count)
		} else {
			count = formatter.Bold(count)
		}
		pad := strings.Repeat(" ", lw-lipgloss.Width(m.labels.CategoryLabel(c)))
		fmt.Fprintf(&b, "%s%s %s%s %s %s\n",
			cursor, formatter.StyleRed.Render("[-]"), label, pad, count, formatter.StyleGreen.Render("[+]"))
	}

	fmt.Fprintf(&b, "\n%s %s\n", formatter.Dim("Σ"), formatter.Bold(strconv.Itoa(m.counts.Total())))
	if m.toast != nil {
		b.WriteString(notify.Render(*m.toast))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
