package main

import (
	"log/slog"
	"slices"
)

// History keeps undo and redo stacks of surface snapshots. A limit of zero
// leaves the undo stack unbounded; otherwise the oldest entry is evicted
// once the stack would exceed the limit.
type History struct {
	surface   Surface
	undoStack []Snapshot
	redoStack []Snapshot
	limit     int
	logger    *slog.Logger
}

func NewHistory(surface Surface, limit int, logger *slog.Logger) *History {
	if logger == nil {
		logger = newNopLogger()
	}
	if limit < 0 {
		limit = 0
	}
	return &History{
		surface:   surface,
		undoStack: []Snapshot{},
		redoStack: []Snapshot{},
		limit:     limit,
		logger:    logger,
	}
}

// Save records the surface as it is now and forgets everything that could
// have been redone.
func (h *History) Save() {
	h.pushUndo(h.surface.Snapshot())
	clear(h.redoStack)
	h.redoStack = h.redoStack[:0]
	h.logger.Debug("history saved", "undo", len(h.undoStack))
}

// Undo restores the most recent saved snapshot. It reports false, touching
// nothing, when there is no snapshot to go back to.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}

	lastIndex := len(h.undoStack) - 1
	snap := h.undoStack[lastIndex]
	h.undoStack[lastIndex] = Snapshot{}
	h.undoStack = h.undoStack[:lastIndex]

	h.redoStack = append(h.redoStack, h.surface.Snapshot())
	h.surface.Restore(snap)
	h.logger.Debug("undo", "undo", len(h.undoStack), "redo", len(h.redoStack))
	return true
}

func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}

	lastIndex := len(h.redoStack) - 1
	snap := h.redoStack[lastIndex]
	h.redoStack[lastIndex] = Snapshot{}
	h.redoStack = h.redoStack[:lastIndex]

	h.pushUndo(h.surface.Snapshot())
	h.surface.Restore(snap)
	h.logger.Debug("redo", "undo", len(h.undoStack), "redo", len(h.redoStack))
	return true
}

func (h *History) UndoDepth() int { return len(h.undoStack) }

func (h *History) RedoDepth() int { return len(h.redoStack) }

func (h *History) pushUndo(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if h.limit > 0 && len(h.undoStack) > h.limit {
		h.undoStack = slices.Delete(h.undoStack, 0, len(h.undoStack)-h.limit)
	}
}
