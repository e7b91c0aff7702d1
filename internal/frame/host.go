package frame

// Side identifies which edge of a frame a sidebar occupies.
type Side int

const (
	// SideLeft places the sidebar on the left edge.
	SideLeft Side = iota
	// SideRight places the sidebar on the right edge.
	SideRight
	// SideTop places the sidebar along the top edge.
	SideTop
	// SideBottom places the sidebar along the bottom edge.
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseSide parses a side name. Unknown names map to SideRight, the
// default sidebar placement.
func ParseSide(s string) Side {
	switch s {
	case "left":
		return SideLeft
	case "right":
		return SideRight
	case "top":
		return SideTop
	case "bottom":
		return SideBottom
	default:
		return SideRight
	}
}

// HostFrame is the host's handle for a top-level window grouping.
type HostFrame interface {
	// ID returns the host's identifier for the frame.
	ID() string
}

// HostWindow is the host's handle for a window within a frame.
type HostWindow interface {
	// ID returns the host's identifier for the window.
	ID() string
}

// Host adapts framescope to the editor's frame and window primitives.
//
// Implementations are pure pass-throughs into the host API: no
// filtering or sidebar logic belongs here.
type Host interface {
	// CreateFrame creates a new top-level window grouping.
	CreateFrame(title string) (HostFrame, error)

	// SplitWindow splits off a window on the given side of the frame,
	// size cells wide (or tall, for top/bottom).
	SplitWindow(f HostFrame, side Side, size int) (HostWindow, error)

	// SetWindowText replaces the window's displayed lines.
	SetWindowText(w HostWindow, lines []string) error

	// CloseWindow closes a window created by SplitWindow.
	CloseWindow(w HostWindow) error

	// CloseFrame closes a frame created by CreateFrame.
	CloseFrame(f HostFrame) error

	// SwitchToBuffer displays the buffer in the frame's main window.
	SwitchToBuffer(f HostFrame, bufferID string) error
}
