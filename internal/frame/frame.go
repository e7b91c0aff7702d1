package frame

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/purpose"
)

// Frame is a top-level host window grouping with an attached purpose.
//
// The purpose is immutable for the life of the frame. Sidebar state
// (open or not) is the only thing that changes after creation, and it
// is tracked by the sidebar package, not here.
type Frame struct {
	id        string
	title     string
	purpose   *purpose.Purpose
	host      HostFrame
	createdAt time.Time

	sidebarSide       Side
	sidebarAutoUpdate bool
	sortFuncs         []Less
}

// ID returns the frame's identifier.
func (f *Frame) ID() string {
	return f.id
}

// Title returns the frame's display title.
func (f *Frame) Title() string {
	return f.title
}

// Purpose returns the frame's purpose.
func (f *Frame) Purpose() *purpose.Purpose {
	return f.purpose
}

// HostFrame returns the host's handle for this frame.
func (f *Frame) HostFrame() HostFrame {
	return f.host
}

// CreatedAt returns when the frame was created.
func (f *Frame) CreatedAt() time.Time {
	return f.createdAt
}

// SidebarSide returns the configured sidebar placement.
func (f *Frame) SidebarSide() Side {
	return f.sidebarSide
}

// SidebarAutoUpdate reports whether the sidebar re-renders on
// buffer-set-changed notifications.
func (f *Frame) SidebarAutoUpdate() bool {
	return f.sidebarAutoUpdate
}

// SortFuncs returns the sidebar sort comparators in application order.
func (f *Frame) SortFuncs() []Less {
	return append([]Less(nil), f.sortFuncs...)
}

// Buffers filters the host's buffer enumeration by this frame's
// purpose, preserving order. Filtering is explicit: the host passes
// the enumeration it owns, and no global enumeration hook is
// installed.
func (f *Frame) Buffers(set buffer.Set) buffer.Set {
	return purpose.Filter(set, f.purpose)
}

// ScopedSource wraps a host buffer source so every enumeration is
// pre-filtered by the frame's purpose. Opt-in convenience for call
// sites that would otherwise thread the frame through every lookup.
func ScopedSource(f *Frame, src buffer.Source) buffer.Source {
	return buffer.SourceFunc(func() buffer.Set {
		return f.Buffers(src.Buffers())
	})
}

// newFrame builds a registered frame record.
func newFrame(cfg Config, p *purpose.Purpose, host HostFrame) *Frame {
	return &Frame{
		id:                uuid.NewString(),
		title:             cfg.defaultTitle(),
		purpose:           p,
		host:              host,
		createdAt:         time.Now(),
		sidebarSide:       cfg.SidebarSide,
		sidebarAutoUpdate: cfg.SidebarAutoUpdate,
		sortFuncs:         append([]Less(nil), cfg.SortFuncs...),
	}
}
