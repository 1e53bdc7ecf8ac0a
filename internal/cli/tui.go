package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/drawrows/pkg/core/rows"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle       = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// barWidth is the width of the position column in characters.
const barWidth = 32

// viewMode selects what the assignment viewer lists.
type viewMode int

const (
	modeIntervals viewMode = iota
	modeSegments
)

// =============================================================================
// AssignmentModel - Interactive assignment browser
// =============================================================================

// AssignmentModel is the bubbletea model for browsing a row assignment.
type AssignmentModel struct {
	Result *rows.Result
	Title  string
	Mode   viewMode
	ByRow  bool
	Cursor int
	Offset int
	Height int

	// order lists interval indices in display order.
	order     []int
	low, high int64
}

// NewAssignmentModel creates a viewer over res.
func NewAssignmentModel(res *rows.Result, title string) AssignmentModel {
	m := AssignmentModel{Result: res, Title: title, Height: 15}
	m.low, m.high, _ = res.Span()
	m.sortOrder()
	return m
}

func (m *AssignmentModel) sortOrder() {
	m.order = make([]int, len(m.Result.Intervals))
	for i := range m.order {
		m.order[i] = i
	}
	if m.ByRow {
		sort.SliceStable(m.order, func(a, b int) bool {
			ia, ib := m.order[a], m.order[b]
			if m.Result.Rows[ia] != m.Result.Rows[ib] {
				return m.Result.Rows[ia] < m.Result.Rows[ib]
			}
			return m.Result.Intervals[ia].Begin < m.Result.Intervals[ib].Begin
		})
	}
}

func (m AssignmentModel) items() int {
	if m.Mode == modeSegments {
		return len(m.Result.Segments)
	}
	return len(m.order)
}

func (m AssignmentModel) Init() tea.Cmd {
	return nil
}

func (m AssignmentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown", " ":
			m.move(m.Height)
		case "home", "g":
			m.move(-m.items())
		case "end", "G":
			m.move(m.items())
		case "tab":
			if m.Mode == modeIntervals {
				m.Mode = modeSegments
			} else {
				m.Mode = modeIntervals
			}
			m.Cursor, m.Offset = 0, 0
		case "s":
			if m.Mode == modeIntervals {
				m.ByRow = !m.ByRow
				m.sortOrder()
				m.Cursor, m.Offset = 0, 0
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta and keeps it inside the window.
func (m *AssignmentModel) move(delta int) {
	n := m.items()
	if n == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), n-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m AssignmentModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s intervals · %d rows · max depth %d",
		humanize.Comma(int64(len(m.Result.Intervals))), m.Result.RowCount, m.Result.MaxDepth)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab intervals/segments  s sort by row  q quit"))
	b.WriteString("\n\n")

	if m.items() == 0 {
		b.WriteString(listDimStyle.Render("  nothing to show"))
		return b.String()
	}

	var t *table.Table
	if m.Mode == modeSegments {
		t = m.segmentTable()
	} else {
		t = m.intervalTable()
	}
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.items())))

	return b.String()
}

func (m AssignmentModel) window() (int, int) {
	return m.Offset, min(m.Offset+m.Height, m.items())
}

func (m AssignmentModel) intervalTable() *table.Table {
	start, end := m.window()
	data := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		idx := m.order[i]
		iv := m.Result.Intervals[idx]
		data = append(data, []string{
			cursorMark(i == m.Cursor),
			strconv.Itoa(iv.Seq),
			strconv.FormatInt(iv.Begin, 10),
			strconv.FormatInt(iv.End, 10),
			strconv.Itoa(m.Result.Rows[idx]),
			m.bar(iv.Begin, iv.End),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Begin", "End", "Row", "Position").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			i := start + row
			if i == m.Cursor {
				return listSelectedStyle
			}
			if col == 5 && i < end {
				return lipgloss.NewStyle().Foreground(rowColor(m.Result.Rows[m.order[i]]))
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
}

func (m AssignmentModel) segmentTable() *table.Table {
	start, end := m.window()
	data := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		s := m.Result.Segments[i]
		data = append(data, []string{
			cursorMark(i == m.Cursor),
			strconv.FormatInt(s.Low, 10),
			strconv.FormatInt(s.High, 10),
			strconv.FormatUint(s.Len(), 10),
			strconv.Itoa(s.Depth),
			depthBar(s.Depth, m.Result.MaxDepth),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Low", "High", "Len", "Depth", "").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if start+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 5 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
}

// bar draws [begin, end] scaled onto barWidth cells of the covered span.
func (m AssignmentModel) bar(begin, end int64) string {
	span := float64(m.high) - float64(m.low) + 1
	from := int((float64(begin) - float64(m.low)) / span * barWidth)
	to := int((float64(end) - float64(m.low) + 1) / span * barWidth)
	from = min(max(from, 0), barWidth-1)
	to = min(max(to, from+1), barWidth)
	from = min(from, to-1)
	return strings.Repeat(" ", from) + strings.Repeat("━", to-from) + strings.Repeat(" ", barWidth-to)
}

func depthBar(depth, maxDepth int) string {
	if maxDepth <= 0 {
		return ""
	}
	n := max(depth*barWidth/maxDepth, 1)
	return strings.Repeat("▮", n)
}

func cursorMark(current bool) string {
	if current {
		return "▸"
	}
	return " "
}

func rowColor(row int) lipgloss.Color {
	if row < 1 {
		return colorDim
	}
	return rowColors[(row-1)%len(rowColors)]
}
