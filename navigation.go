package main

// mapPosition converts a device position into surface coordinates, minus
// the configured offset. Touch-style events use their first contact point
// only.
func mapPosition(ev PointerEvent, rect Rect, s *Settings) Position {
	x, y := ev.X, ev.Y
	if len(ev.Touches) > 0 {
		x, y = ev.Touches[0].X, ev.Touches[0].Y
	}
	return Position{
		X: x - rect.Left - float64(s.OffsetX),
		Y: y - rect.Top - float64(s.OffsetY),
	}
}

// cellToDevice converts a terminal cell to device units.
func cellToDevice(cellX, cellY int) (float64, float64) {
	return float64(cellX * pixelsPerCellX), float64(cellY * pixelsPerCellY)
}

// surfaceRect is where the surface sits on screen, below the toolbar.
func surfaceRect(width, height int) Rect {
	return Rect{
		Left:   0,
		Top:    float64(toolbarRows * pixelsPerCellY),
		Width:  float64(width),
		Height: float64(height),
	}
}

func (m *model) handleOffsetNudge(key string, speed int) {
	x, y := m.settings.OffsetX, m.settings.OffsetY
	switch key {
	case "shift+left", "H":
		x -= speed
	case "shift+right", "L":
		x += speed
	case "shift+up", "K":
		y -= speed
	case "shift+down", "J":
		y += speed
	}
	m.settings.SetOffset(x, y)
}

func getNudgeSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J":
		return 5
	default:
		return 1
	}
}
