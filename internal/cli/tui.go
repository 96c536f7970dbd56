package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SeedListModel - Interactive seed selection
// =============================================================================

// SeedRow is one line of the seed list.
type SeedRow struct {
	Name    string
	Parent  string // empty for roots
	Op      string // label of the edge from Parent
	Depth   int    // number of ancestors
	Crashed bool
}

// seedRows builds the rows for every node of g, sorted by name. With
// crashesOnly, only crash inputs are listed.
func seedRows(g *seedtree.Graph, crashesOnly bool) []SeedRow {
	parentEdge := make(map[string]seedtree.Edge)
	for _, e := range g.Edges() {
		if _, ok := parentEdge[e.Child]; !ok {
			parentEdge[e.Child] = e
		}
	}

	var rows []SeedRow
	for _, n := range g.Nodes() {
		if crashesOnly && !n.Crashed {
			continue
		}
		row := SeedRow{Name: n.Name, Crashed: n.Crashed}
		if e, ok := parentEdge[n.Name]; ok {
			row.Parent, row.Op = e.Parent, e.Label
		}
		// A broken lineage still gets listed, at depth 0.
		if lineage, err := g.SelfAndItsPredecessorsOf(n.Name); err == nil {
			row.Depth = len(lineage) - 1
		}
		rows = append(rows, row)
	}
	return rows
}

// SeedListModel is the bubbletea model for interactive seed selection.
type SeedListModel struct {
	Seeds    []SeedRow
	Cursor   int
	Selected *SeedRow
	Height   int
	Offset   int
}

// NewSeedListModel creates a new seed list model.
func NewSeedListModel(seeds []SeedRow) SeedListModel {
	return SeedListModel{Seeds: seeds, Height: 15}
}

func (m SeedListModel) Init() tea.Cmd {
	return nil
}

func (m SeedListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Seeds)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Seeds) == 0 {
				return m, tea.Quit
			}
			seed := m.Seeds[m.Cursor]
			m.Selected = &seed
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m SeedListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Seed"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show lineage  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Seeds))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Seeds[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		parent, op := s.Parent, s.Op
		if parent == "" {
			parent, op = "—", "—"
		}
		rows = append(rows, []string{cursor, s.Name, parent, op, fmt.Sprint(s.Depth)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Seed", "Parent", "Op", "Depth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Seeds) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if m.Seeds[idx].Crashed {
				base = base.Foreground(colorRed)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			if col >= 2 && !m.Seeds[idx].Crashed {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Seeds)), len(m.Seeds))))

	return b.String()
}
