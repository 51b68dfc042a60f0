package main

type Mode int

const (
	ModePen Mode = iota
	ModeEraser
	ModeFill
)

func (m Mode) String() string {
	switch m {
	case ModePen:
		return "PEN"
	case ModeEraser:
		return "ERASER"
	case ModeFill:
		return "FILL"
	default:
		return "UNKNOWN"
	}
}

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
	PointerCancel
)

// PromptField selects which setting the inline prompt edits.
type PromptField int

const (
	PromptNone PromptField = iota
	PromptPenSize
	PromptColor
	PromptAlpha
	PromptOffsetX
	PromptOffsetY
)

const (
	defaultPenSize = 5
	defaultColor   = "#000000"
	defaultAlpha   = 1.0

	alphaStep = 0.05

	// Each terminal cell shows two vertically stacked pixels.
	pixelsPerCellX = 1
	pixelsPerCellY = 2

	toolbarRows = 1
	statusRows  = 1
)
