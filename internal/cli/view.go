package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mio "github.com/matzehuels/robinson/pkg/io"
	"github.com/matzehuels/robinson/pkg/pipeline"
)

// viewCommand creates the interactive matrix viewer.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a matrix and its Robinson reordering in the terminal",
		Long: `View resolves a matrix and opens an interactive viewer. Tab switches between
the original order and the resolved order; the arrow keys slide the window
along the diagonal. The first violating cell of the shown order is
highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runView(ctx context.Context, path string) error {
	m, err := mio.Import(path)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Resolve(ctx, m.Table, pipeline.Options{})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newMatrixModel(path, m, res), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// ordering is one order the viewer can show.
type ordering struct {
	name string
	perm []int
	bad  *cell
}

// matrixModel is the bubbletea model of the viewer.
type matrixModel struct {
	title     string
	matrix    *mio.Matrix
	orderings []ordering
	current   int
	offset    int
	window    int
}

func newMatrixModel(title string, m *mio.Matrix, res *pipeline.Result) matrixModel {
	n := m.Table.Size()
	orders := []ordering{newOrdering("original", m, identityOrder(n))}
	if len(res.Permutation) == n {
		orders = append(orders, newOrdering("resolved", m, res.Permutation))
	}
	return matrixModel{
		title:     title,
		matrix:    m,
		orderings: orders,
		window:    min(n, 16),
	}
}

func newOrdering(name string, m *mio.Matrix, perm []int) ordering {
	o := ordering{name: name, perm: perm}
	if reordered, err := m.Table.Reorder(perm); err == nil {
		if i, j, found := reordered.Violation(); found {
			o.bad = &cell{row: i, col: j}
		}
	}
	return o
}

func (m matrixModel) Init() tea.Cmd {
	return nil
}

func (m matrixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := m.matrix.Table.Size()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", " ":
			m.current = (m.current + 1) % len(m.orderings)
		case "down", "right", "j", "l":
			m.offset = min(m.offset+1, max(n-m.window, 0))
		case "up", "left", "k", "h":
			m.offset = max(m.offset-1, 0)
		case "pgdown":
			m.offset = min(m.offset+m.window, max(n-m.window, 0))
		case "pgup":
			m.offset = max(m.offset-m.window, 0)
		case "home", "g":
			m.offset = 0
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, the table borders and the footer.
		m.window = max(min(n, msg.Height-9, (msg.Width-8)/6), 1)
		m.offset = min(m.offset, max(n-m.window, 0))
	}
	return m, nil
}

func (m matrixModel) View() string {
	var b strings.Builder
	o := m.orderings[m.current]

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(o.name))
	b.WriteString("  ")
	if o.bad == nil {
		b.WriteString(StyleSuccess.Render(iconSuccess + " Robinson"))
	} else {
		b.WriteString(StyleError.Render(fmt.Sprintf("%s violation at (%d,%d)", iconError, o.bad.row, o.bad.col)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab switch order  ↑/↓ slide window  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.window, len(o.perm))
	var bad *cell
	if o.bad != nil && o.bad.row > m.offset && o.bad.col <= end {
		bad = &cell{row: o.bad.row - m.offset, col: o.bad.col - m.offset}
	}
	b.WriteString(renderMatrix(m.matrix, o.perm[m.offset:end], bad))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  elements %d–%d of %d", m.offset+1, end, len(o.perm))))

	return b.String()
}
