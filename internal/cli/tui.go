package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/solver"
)

// Board styles
var (
	boardCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	boardStartStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	boardEndStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	boardPathStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// solveDoneMsg carries the search outcome back into the model.
type solveDoneMsg struct {
	result solver.Result
}

// BoardModel is the bubbletea model for the interactive grid board.
// The user moves a cursor to pick start and end cells, sees parity
// feasibility update live, and runs the search in place.
type BoardModel struct {
	Size    grid.Size
	Cursor  grid.Point
	Start   *grid.Point
	End     *grid.Point
	Budget  uint32
	Solving bool
	Result  *solver.Result
}

// NewBoardModel creates a board for the given grid size.
func NewBoardModel(s grid.Size, budget uint32) BoardModel {
	return BoardModel{Size: s, Budget: budget}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Solving {
			// Only quitting is allowed while the search runs.
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor.Row > 0 {
				m.Cursor.Row--
			}
		case "down", "j":
			if m.Cursor.Row < m.Size.Rows-1 {
				m.Cursor.Row++
			}
		case "left", "h":
			if m.Cursor.Col > 0 {
				m.Cursor.Col--
			}
		case "right", "l":
			if m.Cursor.Col < m.Size.Cols-1 {
				m.Cursor.Col++
			}
		case "enter", " ":
			m = m.selectCell()
		case "r":
			m.Start = nil
			m.End = nil
			m.Result = nil
		case "s":
			if m.Start != nil && m.End != nil {
				m.Solving = true
				m.Result = nil
				return m, m.solveCmd()
			}
		}
	case solveDoneMsg:
		m.Solving = false
		res := msg.result
		m.Result = &res
	}
	return m, nil
}

// selectCell assigns the cursor cell to start, then end. Re-selecting
// the start cell as end is ignored.
func (m BoardModel) selectCell() BoardModel {
	cur := m.Cursor
	switch {
	case m.Start == nil:
		m.Start = &cur
	case m.End == nil && cur != *m.Start:
		m.End = &cur
		m.Result = nil
	}
	return m
}

// solveCmd runs the search off the update loop.
func (m BoardModel) solveCmd() tea.Cmd {
	start, end, size, budget := *m.Start, *m.End, m.Size, m.Budget
	return func() tea.Msg {
		res, err := solver.Find(start, end, size, budget)
		if err != nil {
			// Endpoints come from cursor movement, so they are always
			// in bounds; treat errors as an empty result.
			return solveDoneMsg{}
		}
		return solveDoneMsg{result: res}
	}
}

func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Gridroute %dx%d", m.Size.Rows, m.Size.Cols)))
	b.WriteString("\n")
	b.WriteString(boardEmptyStyle.Render("↑/↓/←/→ move  ⏎ pick start/end  s solve  r reset  q quit"))
	b.WriteString("\n\n")

	glyphs := m.pathGlyphs()
	for row := 0; row < m.Size.Rows; row++ {
		for col := 0; col < m.Size.Cols; col++ {
			p := grid.Point{Row: row, Col: col}
			b.WriteString(m.renderCell(p, glyphs))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// renderCell draws one cell as a fixed-width token.
func (m BoardModel) renderCell(p grid.Point, glyphs map[grid.Point]string) string {
	var text string
	var style lipgloss.Style

	switch {
	case m.Start != nil && p == *m.Start:
		text, style = "S", boardStartStyle
	case m.End != nil && p == *m.End:
		text, style = "E", boardEndStyle
	default:
		if g, ok := glyphs[p]; ok {
			text, style = g, boardPathStyle
		} else {
			text, style = "·", boardEmptyStyle
		}
	}

	if p == m.Cursor {
		style = boardCursorStyle
	}
	return style.Render(" "+text+" ")
}

// pathGlyphs maps each solved path cell to an arrow pointing at its
// successor.
func (m BoardModel) pathGlyphs() map[grid.Point]string {
	if m.Result == nil || !m.Result.Found {
		return nil
	}
	glyphs := make(map[grid.Point]string, len(m.Result.Path))
	for i, p := range m.Result.Path {
		if i == len(m.Result.Path)-1 {
			break
		}
		next := m.Result.Path[i+1]
		switch {
		case next.Row < p.Row:
			glyphs[p] = "↑"
		case next.Row > p.Row:
			glyphs[p] = "↓"
		case next.Col < p.Col:
			glyphs[p] = "←"
		default:
			glyphs[p] = "→"
		}
	}
	return glyphs
}

// statusLine reports parity feasibility and search outcome. While only
// the start is picked, feasibility tracks the cursor as a candidate
// end, so the user can see viable targets before committing.
func (m BoardModel) statusLine() string {
	switch {
	case m.Solving:
		return StyleDim.Render("Searching...")
	case m.Start == nil:
		return StyleDim.Render("Pick a start cell")
	case m.End == nil:
		if m.Cursor == *m.Start {
			return StyleDim.Render("Pick an end cell")
		}
		if solver.Feasible(*m.Start, m.Cursor, m.Size) {
			return StyleSuccess.Render(fmt.Sprintf("%d,%d is a feasible end", m.Cursor.Row, m.Cursor.Col))
		}
		return StyleWarning.Render(fmt.Sprintf("%d,%d is ruled out by parity", m.Cursor.Row, m.Cursor.Col))
	case m.Result != nil:
		if m.Result.Found {
			return StyleSuccess.Render(fmt.Sprintf("Path found: %d cells, %d iterations", len(m.Result.Path), m.Result.Iterations))
		}
		if m.Result.Iterations == 0 {
			return StyleWarning.Render("No path can exist between these cells")
		}
		return StyleWarning.Render(fmt.Sprintf("No path found within %d iterations", m.Budget))
	case !solver.Feasible(*m.Start, *m.End, m.Size):
		return StyleWarning.Render("Parity rules these endpoints out - press s to confirm or r to reset")
	default:
		return StyleDim.Render("Press s to solve")
	}
}
