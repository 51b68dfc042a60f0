package main

import "log/slog"

type model struct {
	width          int
	height         int
	settings       *Settings
	config         *Config
	surface        *RasterSurface
	controller     *Controller
	logger         *slog.Logger
	help           bool
	helpScroll     int
	prompt         PromptField
	promptText     string
	promptCursor   int
	errorMessage   string
	successMessage string
}

// Position is a surface-local coordinate.
type Position struct {
	X, Y float64
}

// Rect is the on-screen bounding rectangle of the surface, in device units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Touch is a single contact point of a touch-style event.
type Touch struct {
	X, Y float64
}

// PointerEvent carries device coordinates for mouse-style events, or a
// list of contact points for touch-style events.
type PointerEvent struct {
	Kind    PointerKind
	X, Y    float64
	Touches []Touch
}
