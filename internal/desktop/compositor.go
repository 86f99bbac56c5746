package desktop

import (
	"strings"

	"deskfolio/internal/registry"
	"deskfolio/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var styles = theme.Default()

// ContentFunc supplies the title and body lines for a window at the given
// inner dimensions.
type ContentFunc func(id registry.ID, w, h int) (string, []string)

// Compose paints the visible windows onto a width×height canvas, back to
// front, so higher stack orders end up in front. The focused window gets the
// highlighted border.
func Compose(stack []*Lifecycle, focused registry.ID, content ContentFunc, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := make([]string, height)
	blank := styles.Backdrop.Render(strings.Repeat(" ", width))
	for i := range canvas {
		canvas[i] = blank
	}

	for _, lc := range stack {
		x, y, w, h := frameFor(lc)
		if w < 4 || h < 2 {
			continue
		}
		box := renderBox(lc, w, h, lc.ID == focused, content)
		for i, line := range box {
			row := y + i
			if row < 0 || row >= height {
				continue
			}
			canvas[row] = overlay(canvas[row], line, x, w, width)
		}
	}
	return strings.Join(canvas, "\n")
}

// frameFor returns the effective frame, shrinking toward the window centre
// while the entrance transition plays.
func frameFor(lc *Lifecycle) (x, y, w, h int) {
	scale := lc.EntranceScale()
	w = int(float64(lc.W)*scale + 0.5)
	h = int(float64(lc.H)*scale + 0.5)
	if w > lc.W {
		w = lc.W
	}
	if h > lc.H {
		h = lc.H
	}
	x = lc.X + (lc.W-w)/2
	y = lc.Y + (lc.H-h)/2
	return x, y, w, h
}

func renderBox(lc *Lifecycle, w, h int, focused bool, content ContentFunc) []string {
	border := styles.WindowBorder
	if focused {
		border = styles.WindowFocused
	}
	title, body := content(lc.ID, w-2, h-2)

	lines := make([]string, 0, h)
	lines = append(lines, renderTitleRow(title, w, border))
	for i := 0; i < h-2; i++ {
		var text string
		if i < len(body) {
			text = body[i]
		}
		text = fit(text, w-2)
		lines = append(lines,
			border.Render("│")+styles.WindowBody.Render(text)+border.Render("│"))
	}
	if h >= 2 {
		lines = append(lines, border.Render("╰"+strings.Repeat("─", w-2)+"╯"))
	}
	return lines
}

func renderTitleRow(title string, w int, border *lipgloss.Style) string {
	inner := w - 2
	label := " " + title + " "
	if ansi.StringWidth(label) > inner-2 {
		label = ansi.Truncate(label, inner-2, "…")
	}
	pad := inner - ansi.StringWidth(label)
	left := pad / 2
	right := pad - left
	return border.Render("╭"+strings.Repeat("─", left)) +
		styles.WindowTitle.Render(label) +
		border.Render(strings.Repeat("─", right)+"╮")
}

// fit pads or truncates text to exactly width cells, ANSI-aware.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(text)
	if w > width {
		return ansi.Truncate(text, width, "")
	}
	return text + strings.Repeat(" ", width-w)
}

// overlay splices over into base at column x. Negative x and overflow past
// the canvas edge are clipped.
func overlay(base, over string, x, overWidth, canvasWidth int) string {
	if x >= canvasWidth {
		return base
	}
	if x < 0 {
		over = ansi.TruncateLeft(over, -x, "")
		overWidth += x
		x = 0
	}
	if overWidth <= 0 {
		return base
	}
	if x+overWidth > canvasWidth {
		over = ansi.Truncate(over, canvasWidth-x, "")
		overWidth = canvasWidth - x
	}
	left := ansi.Truncate(base, x, "")
	leftW := ansi.StringWidth(left)
	if leftW < x {
		left += strings.Repeat(" ", x-leftW)
	}
	right := ansi.TruncateLeft(base, x+overWidth, "")
	return left + over + right
}
