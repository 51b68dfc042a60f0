package main

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

func initialModel(config *Config, settings *Settings) model {
	return model{
		config:   config,
		settings: settings,
		logger:   newNopLogger(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.controller == nil {
			m.allocateSurface()
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg)
			return m, nil
		}
		if m.prompt != PromptNone {
			m.handlePromptKey(msg)
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

// allocateSurface sizes the surface to the first reported window. Later
// resizes do not change it.
func (m *model) allocateSurface() {
	rows := m.height - toolbarRows - statusRows
	if rows < 1 {
		rows = 1
	}
	cols := m.width
	if cols < 1 {
		cols = 1
	}
	w, h := cols*pixelsPerCellX, rows*pixelsPerCellY

	m.surface = NewRasterSurface(w, h, m.logger)
	history := NewHistory(m.surface, m.config.HistoryLimit, m.logger)
	m.controller = NewController(m.settings, m.surface, history, surfaceRect(w, h), m.logger)
	m.logger.Info("surface allocated", "width", w, "height", h, "history_limit", m.config.HistoryLimit)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.controller == nil {
		return
	}
	// A release always ends the session, even over help or a prompt.
	if m.help || m.prompt != PromptNone {
		if msg.Action == tea.MouseActionRelease {
			m.controller.Dispatch(PointerEvent{Kind: PointerUp})
		}
		return
	}
	x, y := cellToDevice(msg.X, msg.Y)
	ev := PointerEvent{X: x, Y: y}
	inside := m.controller.rect.Contains(x, y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return
		}
		ev.Kind = PointerDown
	case msg.Action == tea.MouseActionMotion:
		if inside {
			ev.Kind = PointerMove
		} else {
			ev.Kind = PointerLeave
		}
	case msg.Action == tea.MouseActionRelease:
		ev.Kind = PointerUp
	default:
		return
	}
	m.controller.Dispatch(ev)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.cancelStroke()
		m.help = true
		m.helpScroll = 0
		return nil
	case "esc":
		m.errorMessage = ""
		m.successMessage = ""
		m.cancelStroke()
		return nil
	case "s":
		m.openPrompt(PromptPenSize, fmt.Sprint(m.settings.PenSize))
		return nil
	case "#":
		m.openPrompt(PromptColor, m.settings.Color)
		return nil
	case "a":
		m.openPrompt(PromptAlpha, fmt.Sprint(m.settings.Alpha))
		return nil
	case "o":
		m.openPrompt(PromptOffsetX, fmt.Sprint(m.settings.OffsetX))
		return nil
	case "O":
		m.openPrompt(PromptOffsetY, fmt.Sprint(m.settings.OffsetY))
		return nil
	case "+", "=":
		m.settings.SetPenSize(m.settings.PenSize + 1)
		return nil
	case "-", "_":
		if m.settings.PenSize > 1 {
			m.settings.SetPenSize(m.settings.PenSize - 1)
		}
		return nil
	case "]":
		m.settings.SetAlpha(stepAlpha(m.settings.Alpha, alphaStep))
		return nil
	case "[":
		m.settings.SetAlpha(stepAlpha(m.settings.Alpha, -alphaStep))
		return nil
	case "y":
		if err := writeClipboardText(m.settings.Color); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			return nil
		}
		m.successMessage = "Copied " + m.settings.Color
		return nil
	case "P":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
			return nil
		}
		m.settings.SetColor(cleanClipboardColor(text))
		m.successMessage = "Colour " + m.settings.Color
		return nil
	case "shift+left", "shift+right", "shift+up", "shift+down", "H", "J", "K", "L":
		m.handleOffsetNudge(key, getNudgeSpeed(key))
		return nil
	}

	if m.controller == nil {
		return nil
	}
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "p":
		m.controller.SelectMode(ModePen)
	case "e":
		m.controller.SelectMode(ModeEraser)
	case "f":
		m.controller.SelectMode(ModeFill)
	case "c":
		m.controller.Clear()
	case "u":
		if !m.controller.Undo() {
			m.errorMessage = "Nothing to undo"
		}
	case "U", "ctrl+r":
		if !m.controller.Redo() {
			m.errorMessage = "Nothing to redo"
		}
	}
	return nil
}

// stepAlpha moves alpha by delta, clamped to [0,1] and rounded to two
// decimals so repeated steps land on exact values.
func stepAlpha(alpha, delta float64) float64 {
	return clamp(math.Round((alpha+delta)*100)/100, 0, 1)
}

// cancelStroke ends any drawing session before input moves away from the
// surface.
func (m *model) cancelStroke() {
	if m.controller != nil {
		m.controller.Dispatch(PointerEvent{Kind: PointerCancel})
	}
}

func (m *model) openPrompt(field PromptField, initial string) {
	m.cancelStroke()
	m.prompt = field
	m.promptText = initial
	m.promptCursor = len(initial)
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) closePrompt() {
	m.prompt = PromptNone
	m.promptText = ""
	m.promptCursor = 0
}

func (m *model) handlePromptKey(msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.closePrompt()
	case msg.Type == tea.KeyEnter:
		if err := m.commitPrompt(); err != nil {
			m.errorMessage = err.Error()
		}
		m.closePrompt()
	case msg.String() == "left":
		if m.promptCursor > 0 {
			m.promptCursor--
		}
	case msg.String() == "right":
		if m.promptCursor < len(m.promptText) {
			m.promptCursor++
		}
	case msg.Type == tea.KeyBackspace:
		if m.promptCursor > 0 {
			m.promptText = m.promptText[:m.promptCursor-1] + m.promptText[m.promptCursor:]
			m.promptCursor--
		}
	case msg.Type == tea.KeyDelete:
		if m.promptCursor < len(m.promptText) {
			m.promptText = m.promptText[:m.promptCursor] + m.promptText[m.promptCursor+1:]
		}
	default:
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.promptText = m.promptText[:m.promptCursor] + keyStr + m.promptText[m.promptCursor:]
			m.promptCursor++
		}
	}
}

// commitPrompt writes the prompt text into its setting. The colour is
// taken as typed.
func (m *model) commitPrompt() error {
	switch m.prompt {
	case PromptPenSize:
		n, err := parsePenSize(m.promptText)
		if err != nil {
			return err
		}
		m.settings.SetPenSize(n)
	case PromptColor:
		m.settings.SetColor(m.promptText)
	case PromptAlpha:
		a, err := parseAlpha(m.promptText)
		if err != nil {
			return err
		}
		m.settings.SetAlpha(a)
	case PromptOffsetX:
		n, err := parseOffset(m.promptText)
		if err != nil {
			return err
		}
		m.settings.SetOffset(n, m.settings.OffsetY)
	case PromptOffsetY:
		n, err := parseOffset(m.promptText)
		if err != nil {
			return err
		}
		m.settings.SetOffset(m.settings.OffsetX, n)
	}
	return nil
}

func (m *model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		maxScroll := len(helpLines) - (m.height - 1)
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
}
