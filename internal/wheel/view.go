package wheel

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
)

// cellKind selects the style of one grid cell.
type cellKind int

const (
	kindBlank cellKind = iota
	kindOuter
	kindInner
	kindNumber
	kindHighlight
	kindHub
	kindHubLabel
	kindHubLetter
	kindHubNumber
	kindHubField
	kindCipher
	kindPlain
)

// hubFieldRowOffset is how far above the centre the "L = NN" line sits.
const hubFieldRowOffset = 4

type cell struct {
	ch   rune
	kind cellKind
}

type grid struct {
	cells [][]cell
	cols  int
	rows  int
}

var cellStyles = map[cellKind]lipgloss.Style{
	kindBlank:     lipgloss.NewStyle(),
	kindOuter:     lipgloss.NewStyle().Background(lipgloss.Color("#2563eb")).Foreground(lipgloss.Color("#ffffff")).Bold(true),
	kindInner:     lipgloss.NewStyle().Background(lipgloss.Color("#b91c1c")).Foreground(lipgloss.Color("#ffffff")).Bold(true),
	kindNumber:    lipgloss.NewStyle().Background(lipgloss.Color("#22c55e")).Foreground(lipgloss.Color("#dcfce7")).Bold(true),
	kindHighlight: lipgloss.NewStyle().Background(lipgloss.Color("#facc15")).Foreground(lipgloss.Color("#1e293b")).Bold(true),
	kindHub:       lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")),
	kindHubLabel:  lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")).Foreground(lipgloss.Color("#cbd5e1")).Bold(true),
	kindHubLetter: lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")).Foreground(lipgloss.Color("#ffffff")).Bold(true),
	kindHubNumber: lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")).Foreground(lipgloss.Color("#facc15")).Bold(true),
	kindHubField:  lipgloss.NewStyle().Background(lipgloss.Color("#facc15")).Foreground(lipgloss.Color("#0b1120")).Bold(true).Underline(true),
	kindCipher:    lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")).Foreground(lipgloss.Color("#ef4444")).Bold(true),
	kindPlain:     lipgloss.NewStyle().Background(lipgloss.Color("#0b1120")).Foreground(lipgloss.Color("#3b82f6")).Bold(true),
}

// View renders the wheel for the terminal.
func (w *Widget) View(p Props) string {
	return w.layout(p).render()
}

// layout places every ring label and hub line on a character grid.
func (w *Widget) layout(p Props) grid {
	g := w.geo
	gr := newGrid(g.Cols(), g.Rows())
	cx, cy := g.Centre()

	for row := 0; row < gr.rows; row++ {
		for col := 0; col < gr.cols; col++ {
			dx := (float64(col) - cx) / g.Aspect
			dy := float64(row) - cy
			switch g.bandAt(dx, dy) {
			case bandOuter:
				gr.cells[row][col].kind = kindOuter
			case bandInner:
				gr.cells[row][col].kind = kindInner
			case bandNumber:
				gr.cells[row][col].kind = kindNumber
			case bandHub:
				gr.cells[row][col].kind = kindHub
			}
		}
	}

	rotation := dial.AssemblyRotation(p.Shift)
	highlighted := p.ReferenceNumber()
	for i := 0; i < dial.Slots; i++ {
		gr.place(g, g.OuterRadius, dial.SlotAngle(i), string(cipher.Letter(i)), kindOuter)
		gr.place(g, g.InnerRadius, dial.SlotAngle(i)+rotation, string(cipher.Letter(i)), kindInner)
		if i != highlighted {
			gr.place(g, g.NumberRadius, dial.SlotAngle(i)+rotation, strconv.Itoa(i), kindNumber)
		}
	}
	// Drawn last so neighbouring labels never cover it.
	gr.place(g, g.NumberRadius, dial.SlotAngle(highlighted)+rotation, " "+strconv.Itoa(highlighted)+" ", kindHighlight)

	w.layoutHub(&gr, p, int(cy))
	return gr
}

func (w *Widget) layoutHub(gr *grid, p Props, cy int) {
	letterKind, numberKind := kindHubLetter, kindHubNumber
	letter := string(p.letter())
	number := dial.PadNumber(p.ReferenceNumber())
	switch w.focus {
	case FieldLetter:
		letterKind = kindHubField
		letter = padRight(w.letter.Value(), 1)
	case FieldNumber:
		numberKind = kindHubField
		number = padRight(w.number.Value(), 2)
	}

	gr.centreSegments(cy-hubFieldRowOffset, []segment{
		{text: letter, kind: letterKind},
		{text: " = ", kind: kindHubLabel},
		{text: number, kind: numberKind},
	})
	gr.centreSegments(cy-2, []segment{{text: "CIPHER CODE", kind: kindHubLabel}})
	gr.centreSegments(cy-1, []segment{{text: dial.Readout(p.CipherText), kind: kindCipher}})
	gr.centreSegments(cy+1, []segment{{text: "CRACKED CODE", kind: kindHubLabel}})
	gr.centreSegments(cy+2, []segment{{text: dial.Readout(p.PlainText), kind: kindPlain}})
}

func newGrid(cols, rows int) grid {
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cols)
		for c := range cells[r] {
			cells[r][c] = cell{ch: ' ', kind: kindBlank}
		}
	}
	return grid{cells: cells, cols: cols, rows: rows}
}

// place centres label on the point at radius/angle.
func (gr *grid) place(g Geometry, radius, angle float64, label string, kind cellKind) {
	cx, cy := g.Centre()
	// Columns are stretched by the aspect ratio, rows are not.
	x, _ := dial.Point(cx, cy, radius*g.Aspect, angle)
	_, y := dial.Point(cx, cy, radius, angle)
	runes := []rune(label)
	left := int(math.Round(x - float64(len(runes)-1)/2))
	row := int(math.Round(y))
	gr.write(row, left, runes, kind)
}

type segment struct {
	text string
	kind cellKind
}

func (gr *grid) centreSegments(row int, segs []segment) {
	total := 0
	for _, s := range segs {
		total += len([]rune(s.text))
	}
	col := gr.cols/2 - total/2
	for _, s := range segs {
		runes := []rune(s.text)
		gr.write(row, col, runes, s.kind)
		col += len(runes)
	}
}

func (gr *grid) write(row, col int, runes []rune, kind cellKind) {
	if row < 0 || row >= gr.rows {
		return
	}
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= gr.cols {
			continue
		}
		gr.cells[row][c] = cell{ch: r, kind: kind}
	}
}

// render joins runs of equally styled cells so each run is styled once.
func (gr grid) render() string {
	lines := make([]string, 0, gr.rows)
	for _, row := range gr.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].kind == row[start].kind {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, c := range row[start:i] {
				run = append(run, c.ch)
			}
			b.WriteString(cellStyles[row[start].kind].Render(string(run)))
			start = i
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// text returns the grid without styling, one line per row.
func (gr grid) text() string {
	lines := make([]string, 0, gr.rows)
	for _, row := range gr.cells {
		runes := make([]rune, len(row))
		for i, c := range row {
			runes[i] = c.ch
		}
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat("_", width-n)
	}
	return s
}
