package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timegear/timegear/gear"
	"github.com/timegear/timegear/logger"
	"github.com/timegear/timegear/store"
	"github.com/timegear/timegear/zone"
)

// clockView identifies which screen the clock UI is showing.
type clockView int

const (
	// clocksView is the main screen: the zone cards and the gear ruler.
	clocksView clockView = iota
	// addView is the searchable city picker.
	addView
	// removeView is the city removal list.
	removeView
)

// unitsPerCell converts terminal cells of pointer travel into gear drag
// units. One cell is a coarse unit of motion, so each cell counts for
// several drag units to keep the gear responsive at terminal resolution.
const unitsPerCell = 5

// gearY is the screen row the ruler is drawn on, used to hit-test mouse
// presses. The View method must keep the ruler on this row.
const gearY = 3

// Key bindings
type clockKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Add    key.Binding
	Remove key.Binding
	Reset  key.Binding
	Up     key.Binding
	Down   key.Binding
	Space  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

var clockKeys = clockKeyMap{
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "15m earlier")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "15m later")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add city")),
	Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove cities")),
	Reset:  key.NewBinding(key.WithKeys("x", "esc", "r"), key.WithHelp("x/esc", "reset gear")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Space:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Styles
var (
	clockTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	rulerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	dayCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("214"))

	cityStyle = lipgloss.NewStyle().
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	clockDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	clockCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	clockHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tickMsg carries the wall-clock time on each refresh.
type tickMsg time.Time

// tickCmd schedules the next clock refresh on the minute.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clockModel is the Bubbletea model for the interactive clock.
type clockModel struct {
	st        *store.Store
	selection []zone.Descriptor
	locs      map[string]*time.Location

	// The gear quantizes pointer travel into 15-minute notches and
	// reports the offset through its callback. Both fields are pointers
	// so gear state survives the model being copied on every Update.
	g      *gear.Gear
	offset *int

	ref  time.Time
	view clockView

	// Add view
	search  textinput.Model
	results []zone.Descriptor
	cursor  int

	// Remove view
	removeCursor int
	marked       map[string]bool

	width   int
	height  int
	lastErr string

	quitting bool
}

// newClockModel creates the clock model for a loaded selection.
func newClockModel(st *store.Store, selection []zone.Descriptor) clockModel {
	search := textinput.New()
	search.Placeholder = "city or timezone"
	search.CharLimit = 64
	search.Width = 32

	offset := new(int)
	m := clockModel{
		st:        st,
		selection: selection,
		locs:      make(map[string]*time.Location),
		g: gear.New(func(offsetMinutes int) {
			*offset = offsetMinutes
		}),
		offset:  offset,
		ref:     time.Now(),
		view:    clocksView,
		search:  search,
		results: zone.Search(""),
	}
	return m
}

// locationFor resolves and caches a descriptor's location.
func (m clockModel) locationFor(d zone.Descriptor) (*time.Location, error) {
	if loc, ok := m.locs[d.Zone]; ok {
		return loc, nil
	}
	loc, err := d.Location()
	if err != nil {
		return nil, err
	}
	m.locs[d.Zone] = loc
	return loc, nil
}

// persist saves the current selection, remembering any failure for the
// status line.
func (m *clockModel) persist() {
	if err := m.st.Save(m.selection); err != nil {
		m.lastErr = err.Error()
	}
}

// refreshResults recomputes the add-view matches, hiding cities already
// selected.
func (m *clockModel) refreshResults() {
	matches := zone.Search(m.search.Value())
	m.results = m.results[:0]
	for _, d := range matches {
		if !zone.Contains(m.selection, d.Zone) {
			m.results = append(m.results, d)
		}
	}
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

// Init implements tea.Model
func (m clockModel) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model
func (m clockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ref = time.Time(msg)
		return m, tickCmd()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch m.view {
		case addView:
			return m.updateAdd(msg)
		case removeView:
			return m.updateRemove(msg)
		}
		return m.updateClocks(msg)
	}

	return m, nil
}

// updateMouse drives the gear from pointer input: press on the ruler
// starts a drag session, motion while dragging feeds it, release ends
// it. The wheel scrubs one notch per click.
func (m clockModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != clocksView {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.g.Scrub(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.g.Scrub(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == gearY {
			m.g.StartDrag(msg.X * unitsPerCell)
		}
	case msg.Action == tea.MouseActionMotion && m.g.Dragging():
		m.g.Drag(msg.X * unitsPerCell)
	case msg.Action == tea.MouseActionRelease:
		m.g.EndDrag()
	}

	return m, nil
}

// updateClocks handles keyboard input on the main screen.
func (m clockModel) updateClocks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, clockKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, clockKeys.Left):
		m.g.Scrub(-1)
		return m, nil

	case key.Matches(msg, clockKeys.Right):
		m.g.Scrub(1)
		return m, nil

	case key.Matches(msg, clockKeys.Reset):
		m.g.Reset()
		return m, nil

	case key.Matches(msg, clockKeys.Add):
		m.view = addView
		m.search.SetValue("")
		m.cursor = 0
		m.refreshResults()
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, clockKeys.Remove):
		if len(m.selection) > 0 {
			m.view = removeView
			m.removeCursor = 0
			m.marked = make(map[string]bool)
		}
		return m, nil
	}

	return m, nil
}

// updateAdd handles keyboard input in the city picker.
func (m clockModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, clockKeys.Escape):
		m.view = clocksView
		m.search.Blur()
		return m, nil

	case key.Matches(msg, clockKeys.Quit) && msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case msg.String() == "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, clockKeys.Enter):
		if m.cursor < len(m.results) {
			m.selection = zone.Add(m.selection, m.results[m.cursor])
			m.persist()
		}
		m.view = clocksView
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshResults()
	return m, cmd
}

// updateRemove handles keyboard input in the removal list: space marks
// cities, enter removes everything marked. With nothing marked, enter
// removes the city under the cursor.
func (m clockModel) updateRemove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, clockKeys.Escape):
		m.view = clocksView
		return m, nil

	case key.Matches(msg, clockKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, clockKeys.Up):
		if m.removeCursor > 0 {
			m.removeCursor--
		}
		return m, nil

	case key.Matches(msg, clockKeys.Down):
		if m.removeCursor < len(m.selection)-1 {
			m.removeCursor++
		}
		return m, nil

	case key.Matches(msg, clockKeys.Space):
		if m.removeCursor < len(m.selection) {
			z := m.selection[m.removeCursor].Zone
			m.marked[z] = !m.marked[z]
		}
		return m, nil

	case key.Matches(msg, clockKeys.Enter):
		if len(m.marked) == 0 && m.removeCursor < len(m.selection) {
			m.marked[m.selection[m.removeCursor].Zone] = true
		}
		changed := false
		for z, on := range m.marked {
			if on {
				m.selection = zone.Remove(m.selection, z)
				changed = true
			}
		}
		if changed {
			m.persist()
		}
		m.view = clocksView
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m clockModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case addView:
		return m.viewAdd()
	case removeView:
		return m.viewRemove()
	}
	return m.viewClocks()
}

// viewClocks renders the main screen. The first four rows are fixed so
// mouse hit-testing on gearY stays valid: title, blank, offset, ruler.
func (m clockModel) viewClocks() string {
	width := m.width
	if width < 40 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(clockTitleStyle.Render("⏰ timegear"))
	b.WriteString(clockDimStyle.Render("  " + m.ref.Format("Monday, January 2, 2006 3:04 PM")))
	b.WriteString("\n\n")

	offset := *m.offset
	if offset == 0 {
		b.WriteString(clockDimStyle.Render("now"))
	} else {
		b.WriteString(offsetStyle.Render("Time change: " + gear.FormatTimeChange(offset)))
	}
	b.WriteString("\n")
	b.WriteString(rulerStyle.Render(m.g.Ruler(width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderCards(width))
	b.WriteString("\n")

	if m.lastErr != "" {
		b.WriteString(clockHelpStyle.Render("save failed: "+m.lastErr) + "\n")
	}
	b.WriteString(clockHelpStyle.Render("drag ruler or ←→: shift time • x: reset • a: add • d: remove • q: quit"))
	return b.String()
}

// renderCards renders one card per selected city, wrapping rows to the
// terminal width.
func (m clockModel) renderCards(width int) string {
	offset := *m.offset

	cards := make([]string, 0, len(m.selection))
	for _, d := range m.selection {
		loc, err := m.locationFor(d)
		if err != nil {
			continue
		}
		cards = append(cards, m.renderCard(d, zone.Render(m.ref, offset, loc)))
	}
	if len(cards) == 0 {
		return clockDimStyle.Render("no cities selected, press a to add one")
	}

	perRow := width / (lipgloss.Width(cards[0]) + 1)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders a single city card.
func (m clockModel) renderCard(d zone.Descriptor, r zone.Record) string {
	icon := "☾"
	style := cardStyle
	if r.Daytime {
		icon = "☀"
		style = dayCardStyle
	}

	name := d.Name
	if len(name) > 16 {
		name = name[:15] + "…"
	}

	lines := []string{
		cityStyle.Render(fmt.Sprintf("%-16s", name)) + " " + icon,
		clockStyle.Render(fmt.Sprintf("%7s %s", r.Clock, r.Meridiem)),
		r.Date,
		clockDimStyle.Render(fmt.Sprintf("%-12s %s", r.RelativeDay, d.OffsetLabel)),
	}
	return style.Render(strings.Join(lines, "\n"))
}

// viewAdd renders the searchable city picker.
func (m clockModel) viewAdd() string {
	var b strings.Builder
	b.WriteString(clockTitleStyle.Render("Add a city"))
	b.WriteString("\n\n")
	b.WriteString("🔍 " + m.search.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(clockDimStyle.Render("  no matches"))
	}

	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := start; i < end; i++ {
		d := m.results[i]
		line := fmt.Sprintf("%-20s %-22s %s", d.Name, d.Zone, d.OffsetLabel)
		if i == m.cursor {
			b.WriteString(clockCursorStyle.Render("► " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(clockHelpStyle.Render("↑↓: navigate • enter: add • esc: back"))
	return b.String()
}

// viewRemove renders the removal list.
func (m clockModel) viewRemove() string {
	var b strings.Builder
	b.WriteString(clockTitleStyle.Render("Remove cities"))
	b.WriteString("\n\n")

	for i, d := range m.selection {
		mark := "[ ]"
		if m.marked[d.Zone] {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %-20s %s", mark, d.Name, d.Zone)
		if i == m.removeCursor {
			b.WriteString(clockCursorStyle.Render("► " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(clockHelpStyle.Render("↑↓: navigate • space: toggle • enter: remove • esc: back"))
	return b.String()
}

// runClock starts the interactive clock and blocks until the user quits.
func runClock(st *store.Store, selection []zone.Descriptor) error {
	// Disable logging before starting the TUI to prevent interference
	// with the display.
	logger.Disable()

	m := newClockModel(st, selection)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running clock: %w", err)
	}
	return nil
}
