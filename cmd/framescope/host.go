package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/frame"
)

// tcellHost implements frame.Host on a single tcell screen. The demo
// maps one host frame to the whole screen: the sidebar window occupies
// a column on the configured side and the remaining area shows the
// selected buffer's name.
type tcellHost struct {
	mu      sync.Mutex
	screen  tcell.Screen
	nextID  int
	current buffer.Buffer
	src     buffer.Source
	sidebar struct {
		side  frame.Side
		size  int
		lines []string
		open  bool
	}
}

type tcellFrame struct{ id string }

func (f *tcellFrame) ID() string { return f.id }

type tcellWindow struct{ id string }

func (w *tcellWindow) ID() string { return w.id }

func newTCellHost(screen tcell.Screen, src buffer.Source) *tcellHost {
	return &tcellHost{screen: screen, src: src}
}

func (h *tcellHost) CreateFrame(title string) (frame.HostFrame, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	return &tcellFrame{id: fmt.Sprintf("frame-%d", h.nextID)}, nil
}

func (h *tcellHost) SplitWindow(f frame.HostFrame, side frame.Side, size int) (frame.HostWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.sidebar.side = side
	h.sidebar.size = size
	h.sidebar.open = true
	return &tcellWindow{id: fmt.Sprintf("win-%d", h.nextID)}, nil
}

func (h *tcellHost) SetWindowText(w frame.HostWindow, lines []string) error {
	h.mu.Lock()
	h.sidebar.lines = append([]string(nil), lines...)
	h.mu.Unlock()
	h.draw(-1)
	return nil
}

func (h *tcellHost) CloseWindow(w frame.HostWindow) error {
	h.mu.Lock()
	h.sidebar.open = false
	h.sidebar.lines = nil
	h.mu.Unlock()
	h.draw(-1)
	return nil
}

func (h *tcellHost) CloseFrame(f frame.HostFrame) error {
	return nil
}

func (h *tcellHost) SwitchToBuffer(f frame.HostFrame, bufferID string) error {
	set := h.src.Buffers()
	b, ok := set.Find(bufferID)
	if !ok {
		return fmt.Errorf("buffer %s not found", bufferID)
	}
	h.mu.Lock()
	h.current = b
	h.mu.Unlock()
	h.draw(-1)
	return nil
}

// draw repaints the screen. cursor is the highlighted sidebar line, or
// -1 to keep plain rendering.
func (h *tcellHost) draw(cursor int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.screen.Clear()
	width, height := h.screen.Size()

	sbX, mainX := 0, 0
	if h.sidebar.open {
		switch h.sidebar.side {
		case frame.SideRight:
			sbX = width - h.sidebar.size
		case frame.SideLeft:
			mainX = h.sidebar.size + 1
		}

		for y, line := range h.sidebar.lines {
			if y >= height-1 {
				break
			}
			style := tcell.StyleDefault
			if y == cursor {
				style = style.Reverse(true)
			}
			drawString(h.screen, sbX, y, line, style)
		}
	}

	main := "no buffer selected"
	if h.current.ID != "" {
		main = fmt.Sprintf("%s  [%s]", h.current.Name, h.current.MajorMode)
	}
	drawString(h.screen, mainX, height-1, main, tcell.StyleDefault.Bold(true))

	h.screen.Show()
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
