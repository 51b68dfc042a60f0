package main

import "log/slog"

// Controller is the tool state machine. It turns pointer events into
// surface operations and records history.
type Controller struct {
	settings *Settings
	surface  Surface
	history  *History
	rect     Rect
	mode     Mode
	drawing  bool
	last     Position
	logger   *slog.Logger
}

func NewController(settings *Settings, surface Surface, history *History, rect Rect, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = newNopLogger()
	}
	return &Controller{
		settings: settings,
		surface:  surface,
		history:  history,
		rect:     rect,
		mode:     ModePen,
		logger:   logger,
	}
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Drawing() bool { return c.drawing }

func (c *Controller) History() *History { return c.history }

// SelectMode switches tools. A stroke in progress keeps going.
func (c *Controller) SelectMode(mode Mode) {
	if mode == c.mode {
		return
	}
	c.logger.Debug("mode selected", "from", c.mode.String(), "to", mode.String())
	c.mode = mode
}

func (c *Controller) Dispatch(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.PointerDown(ev)
	case PointerMove:
		c.PointerMove(ev)
	case PointerUp, PointerLeave, PointerCancel:
		c.PointerUp()
	}
}

// PointerDown fills the whole surface in fill mode and saves afterwards.
// For pen and eraser it starts a stroke and saves before anything is drawn.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.mode == ModeFill {
		c.surface.FillRect(c.surface.Bounds(), c.settings.Paint())
		c.history.Save()
		return
	}
	c.drawing = true
	c.last = mapPosition(ev, c.rect, c.settings)
	c.history.Save()
}

// PointerMove draws one straight segment from the last sampled position.
func (c *Controller) PointerMove(ev PointerEvent) {
	if !c.drawing || c.mode == ModeFill {
		return
	}
	current := mapPosition(ev, c.rect, c.settings)
	width := float64(c.settings.PenSize)

	switch c.mode {
	case ModePen:
		c.surface.DrawSegment(c.last, current, width, PaintInk(c.settings.Paint()))
	case ModeEraser:
		c.surface.DrawSegment(c.last, current, width, EraseInk())
	}

	c.last = current
}

func (c *Controller) PointerUp() {
	c.drawing = false
}

// Clear wipes the surface and saves the empty result.
func (c *Controller) Clear() {
	c.surface.ClearRect(c.surface.Bounds())
	c.history.Save()
}

func (c *Controller) Undo() bool { return c.history.Undo() }

func (c *Controller) Redo() bool { return c.history.Redo() }
