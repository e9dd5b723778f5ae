package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mio "github.com/matzehuels/robinson/pkg/io"
)

// maxMatrixDisplay is the largest matrix printed in full.
const maxMatrixDisplay = 30

// cell is a 1-based position in a displayed matrix.
type cell struct{ row, col int }

var (
	matrixHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	matrixCellStyle   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Align(lipgloss.Right)
	matrixDiagStyle   = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1).Align(lipgloss.Right)
	matrixBadStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true).Padding(0, 1).Align(lipgloss.Right)
)

// identityOrder returns [1..n].
func identityOrder(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i + 1
	}
	return perm
}

// renderMatrix renders m with rows and columns in perm order. The matrix is
// shown symmetric. A non-nil bad cell is highlighted in both triangles.
func renderMatrix(m *mio.Matrix, perm []int, bad *cell) string {
	headers := make([]string, 0, len(perm)+1)
	headers = append(headers, "")
	headers = append(headers, m.Permuted(perm)...)

	rows := make([][]string, len(perm))
	for i, a := range perm {
		row := make([]string, 0, len(perm)+1)
		row = append(row, m.Label(a))
		for _, b := range perm {
			row = append(row, strconv.Itoa(m.Table.Lookup(a, b)))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1 || col == 0:
				return matrixHeaderStyle
			case bad != nil && ((row+1 == bad.row && col == bad.col) || (row+1 == bad.col && col == bad.row)):
				return matrixBadStyle
			case row+1 == col:
				return matrixDiagStyle
			default:
				return matrixCellStyle
			}
		}).
		Render()
}

// printMatrix prints m under perm unless it is too large to be useful.
func printMatrix(title string, m *mio.Matrix, perm []int, bad *cell) {
	if len(perm) > maxMatrixDisplay {
		printDetail("%s: %d×%d matrix not shown (limit %d)", title, len(perm), len(perm), maxMatrixDisplay)
		return
	}
	printDetail("%s", title)
	printLine(renderMatrix(m, perm, bad))
}

func printLine(s string) {
	_, _ = stdout.Write([]byte(s + "\n"))
}
