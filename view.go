package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeToolStyle = toolStyle.Copy().Reverse(true).Bold(true)
	labelStyle      = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle     = lipgloss.NewStyle().Bold(true)
)

var helpLines = []string{
	"Scrawl Help",
	"===========",
	"",
	"Drawing:",
	"--------",
	"  mouse drag       Draw (pen), erase (eraser)",
	"  mouse click      Fill the whole surface (fill)",
	"",
	"Tools:",
	"------",
	"  p                Pen",
	"  e                Eraser",
	"  f                Fill",
	"  c                Clear the surface",
	"",
	"Pen:",
	"----",
	"  +/-              Pen size up/down",
	"  s                Type a pen size",
	"  #                Type a colour (#RRGGBB)",
	"  y                Copy colour to clipboard",
	"  P                Paste colour from clipboard",
	"  [/]              Transparency down/up",
	"  a                Type a transparency (0 to 1)",
	"",
	"Offset:",
	"-------",
	"  Shift+arrows     Nudge offset by 1",
	"  H/J/K/L          Nudge offset by 5",
	"  o/O              Type offset X/Y",
	"",
	"General:",
	"  u                Undo",
	"  U/Ctrl+R         Redo",
	"  Esc              Clear message/stop drawing",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.toolbarView())
	result.WriteString("\n")

	rows := m.height - toolbarRows - statusRows
	if rows < 0 {
		rows = 0
	}
	if m.surface != nil {
		for _, line := range renderCells(m.surface.Image(), m.width, rows) {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	result.WriteString(m.statusView())
	return result.String()
}

func (m model) toolbarView() string {
	mode := ModePen
	undo, redo := 0, 0
	if m.controller != nil {
		mode = m.controller.Mode()
		undo = m.controller.History().UndoDepth()
		redo = m.controller.History().RedoDepth()
	}

	var parts []string
	for _, t := range []Mode{ModePen, ModeEraser, ModeFill} {
		if t == mode {
			parts = append(parts, activeToolStyle.Render(t.String()))
		} else {
			parts = append(parts, toolStyle.Render(t.String()))
		}
	}

	swatch := "?"
	if paint := m.settings.Paint(); paint.Valid() {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(paint.NRGBA()))).Render("■")
	}

	parts = append(parts,
		labelStyle.Render("size")+fmt.Sprintf(" %d", m.settings.PenSize),
		swatch+" "+m.settings.Color,
		labelStyle.Render("alpha")+fmt.Sprintf(" %.2f", m.settings.Alpha),
		labelStyle.Render("offset")+fmt.Sprintf(" %d,%d", m.settings.OffsetX, m.settings.OffsetY),
		labelStyle.Render("undo")+fmt.Sprintf(" %d ", undo)+labelStyle.Render("redo")+fmt.Sprintf(" %d", redo),
	)
	return strings.Join(parts, " │ ")
}

func (m model) statusView() string {
	if m.prompt != PromptNone {
		text := m.promptText[:m.promptCursor] + "█" + m.promptText[m.promptCursor:]
		return promptStyle.Render(promptLabel(m.prompt)+": ") + text
	}
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	return statusStyle.Render("? help  q quit")
}

func promptLabel(field PromptField) string {
	switch field {
	case PromptPenSize:
		return "Pen size"
	case PromptColor:
		return "Colour"
	case PromptAlpha:
		return "Transparency"
	case PromptOffsetX:
		return "Offset X"
	case PromptOffsetY:
		return "Offset Y"
	default:
		return ""
	}
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(helpLines) {
		start = len(helpLines)
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	return strings.Join(helpLines[start:end], "\n")
}

// renderCells draws im as half-block cells, two pixels per cell, limited to
// cols x rows. Runs of identical cells share one styled span.
func renderCells(im *image.RGBA, cols, rows int) []string {
	b := im.Bounds()
	if cols > b.Dx()/pixelsPerCellX {
		cols = b.Dx() / pixelsPerCellX
	}
	if rows > b.Dy()/pixelsPerCellY {
		rows = b.Dy() / pixelsPerCellY
	}

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var line strings.Builder
		runTop, runBottom, runLen := "", "", 0
		flush := func() {
			if runLen == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			line.WriteString(style.Render(strings.Repeat("▀", runLen)))
			runLen = 0
		}
		for c := 0; c < cols; c++ {
			top := hexOf(overPage(im.RGBAAt(b.Min.X+c, b.Min.Y+r*pixelsPerCellY)))
			bottom := hexOf(overPage(im.RGBAAt(b.Min.X+c, b.Min.Y+r*pixelsPerCellY+1)))
			if runLen > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			runLen++
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

// overPage composites a premultiplied pixel over the white page.
func overPage(c color.RGBA) color.RGBA {
	inv := 255 - c.A
	return color.RGBA{R: c.R + inv, G: c.G + inv, B: c.B + inv, A: 255}
}
