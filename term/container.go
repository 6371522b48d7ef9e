package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teadoc/teadoc/toolkit"
)

// Layout strategy names as stored on placements.
const (
	attachPack  = "pack"
	attachGrid  = "grid"
	attachPlace = "place"
)

// placement records one attached child together with the strategy and
// options it was attached with.
type placement struct {
	child  toolkit.Widget
	layout string
	opts   toolkit.Options
}

// container is the shared implementation of widgets that hold children.
// It accepts all three attachment strategies and renders each group in
// attachment order: packed children first, then the grid, then placed
// children overlaid on their own canvas.
type container struct {
	base

	children []placement
	rows     []int
	columns  []int
}

// PackChild implements [toolkit.PackContainer].
func (c *container) PackChild(child toolkit.Widget, opts toolkit.Options) error {
	c.children = append(c.children, placement{child, attachPack, opts.Clone()})

	return nil
}

// GridChild implements [toolkit.GridContainer].
func (c *container) GridChild(child toolkit.Widget, opts toolkit.Options) error {
	c.children = append(c.children, placement{child, attachGrid, opts.Clone()})

	return nil
}

// PlaceChild implements [toolkit.PlaceContainer].
func (c *container) PlaceChild(child toolkit.Widget, opts toolkit.Options) error {
	c.children = append(c.children, placement{child, attachPlace, opts.Clone()})

	return nil
}

// WeighRow implements [toolkit.GridContainer].
func (c *container) WeighRow(index int) {
	c.rows = appendIndex(c.rows, index)
}

// WeighColumn implements [toolkit.GridContainer].
func (c *container) WeighColumn(index int) {
	c.columns = appendIndex(c.columns, index)
}

func appendIndex(indices []int, index int) []int {
	for _, i := range indices {
		if i == index {
			return indices
		}
	}

	return append(indices, index)
}

// Children implements [toolkit.ChildLister].
func (c *container) Children() []toolkit.Widget {
	children := make([]toolkit.Widget, len(c.children))
	for i, p := range c.children {
		children[i] = p.child
	}

	return children
}

// content renders every attached child.
func (c *container) content() string {
	sections := make([]string, 0, 3)

	if s := c.renderPack(); s != "" {
		sections = append(sections, s)
	}

	if s := c.renderGrid(); s != "" {
		sections = append(sections, s)
	}

	if s := c.renderPlace(); s != "" {
		sections = append(sections, s)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPack stacks packed children along their requested sides. Children
// on the same side keep attachment order; bottom and right children stack
// toward their edge, so the first one attached lands outermost.
func (c *container) renderPack() string {
	var top, bottom, left, right []string

	for _, p := range c.children {
		if p.layout != attachPack {
			continue
		}

		s := renderWidget(p.child)

		side, _ := p.opts.GetString(toolkit.OptionSide)
		switch side {
		case "bottom":
			bottom = append(bottom, s)
		case "left":
			left = append(left, s)
		case "right":
			right = append(right, s)
		default:
			top = append(top, s)
		}
	}

	if len(top)+len(bottom)+len(left)+len(right) == 0 {
		return ""
	}

	rows := make([]string, 0, len(top)+len(bottom)+1)
	rows = append(rows, top...)

	if len(left)+len(right) > 0 {
		middle := make([]string, 0, len(left)+len(right))
		middle = append(middle, left...)

		for i := len(right) - 1; i >= 0; i-- {
			middle = append(middle, right[i])
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, middle...))
	}

	for i := len(bottom) - 1; i >= 0; i-- {
		rows = append(rows, bottom[i])
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderGrid lays grid children out as a table of cells. Column widths come
// from the widest occupant; spanning children size their origin column.
// Sticky edges map to cell alignment: w left, e right, anything else
// centered.
func (c *container) renderGrid() string {
	type occupant struct {
		content string
		sticky  string
	}

	cells := make(map[[2]int]occupant)
	maxRow, maxCol := -1, -1

	for _, p := range c.children {
		if p.layout != attachGrid {
			continue
		}

		cell, err := toolkit.GridCell(p.opts)
		if err != nil {
			// Geometry was validated at attachment.
			continue
		}

		sticky, _ := p.opts.GetString("sticky")
		cells[[2]int{cell.Row, cell.Column}] = occupant{
			content: renderWidget(p.child),
			sticky:  sticky,
		}

		maxRow = max(maxRow, cell.Row+cell.RowSpan-1)
		maxCol = max(maxCol, cell.Column+cell.ColumnSpan-1)
	}

	if maxRow < 0 {
		return ""
	}

	widths := make([]int, maxCol+1)
	for pos, o := range cells {
		widths[pos[1]] = max(widths[pos[1]], lipgloss.Width(o.content))
	}

	rows := make([]string, 0, maxRow+1)

	for r := 0; r <= maxRow; r++ {
		row := make([]string, 0, maxCol+1)

		for col := 0; col <= maxCol; col++ {
			o := cells[[2]int{r, col}]

			align := lipgloss.Center
			if strings.Contains(o.sticky, "w") {
				align = lipgloss.Left
			} else if strings.Contains(o.sticky, "e") {
				align = lipgloss.Right
			}

			cell := lipgloss.NewStyle().
				Width(widths[col]).
				Align(align).
				Render(o.content)
			row = append(row, cell)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPlace overlays placed children at their x and y offsets on a canvas
// just large enough to hold them all.
func (c *container) renderPlace() string {
	type placed struct {
		content string
		x, y    int
	}

	var children []placed

	width, height := 0, 0

	for _, p := range c.children {
		if p.layout != attachPlace {
			continue
		}

		x, _ := p.opts.GetInt(toolkit.OptionX)
		y, _ := p.opts.GetInt(toolkit.OptionY)
		s := renderWidget(p.child)

		children = append(children, placed{content: s, x: x, y: y})
		width = max(width, x+lipgloss.Width(s))
		height = max(height, y+lipgloss.Height(s))
	}

	if len(children) == 0 {
		return ""
	}

	blank := strings.TrimRight(
		strings.Repeat(strings.Repeat(" ", width)+"\n", height), "\n",
	)

	for _, p := range children {
		blank = overlayAt(blank, p.content, p.x, p.y, width, height)
	}

	return blank
}

// frame is a plain grouping container. A border option draws the theme
// border around its content, and a padding option insets it.
type frame struct {
	container
}

func newFrame(theme Theme, args []any, opts toolkit.Options) *frame {
	return &frame{
		container: container{base: makeBase(toolkit.KindFrame, theme, args, opts)},
	}
}

func (f *frame) render() string {
	content := f.content()

	style := lipgloss.NewStyle()
	if bordered, ok := f.opts.GetBool("border"); ok && bordered {
		style = f.theme.Border
	}

	if pad := f.optInt("padding", 0); pad > 0 {
		style = style.Padding(pad)
	}

	return f.styled(style).Render(content)
}

// window is the root widget: a title bar over its content.
type window struct {
	container
}

func newWindow(theme Theme, args []any, opts toolkit.Options) *window {
	return &window{
		container: container{base: makeBase(toolkit.KindRoot, theme, args, opts)},
	}
}

func (w *window) render() string {
	content := w.content()

	if pad := w.optInt("padding", 0); pad > 0 {
		content = lipgloss.NewStyle().Padding(pad).Render(content)
	}

	title := w.optString("title", "")
	if title == "" {
		return content
	}

	bar := w.theme.Title.
		Width(max(lipgloss.Width(content), lipgloss.Width(title)+2)).
		Align(lipgloss.Center).
		Render(title)

	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}

	return strings.Split(s, "\n")
}

// overlayAt writes overlay into base at column x and row y, padding base
// lines to width so the overlay always lands at the same column.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}

		target := padRight(baseLines[row], width)
		left := cutPlain(target, 0, x)
		right := cutPlain(target, x+overlayWidth, width)

		baseLines[row] = left + padRight(line, overlayWidth) + right
	}

	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}

	return s
}

func cutPlain(s string, left, right int) string {
	if right <= left {
		return ""
	}

	runes := []rune(s)

	left = min(max(left, 0), len(runes))
	right = min(right, len(runes))

	if right <= left {
		return ""
	}

	return string(runes[left:right])
}
