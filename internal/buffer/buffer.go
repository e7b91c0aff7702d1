package buffer

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Buffer is a read-only snapshot of a host document handle.
//
// Buffers are value types: filtering and rendering never hold references
// into host state, only copies of the attributes they need.
type Buffer struct {
	// ID uniquely identifies the buffer within the host session.
	ID string

	// Name is the display name (usually the file's base name).
	Name string

	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// MajorMode is the host's primary editing mode for the buffer
	// (e.g. "go-mode", "python", "text").
	MajorMode string

	// Modified indicates unsaved changes.
	Modified bool

	// Visible indicates the buffer is displayed in a window of the
	// frame currently under consideration. The host sets this per
	// snapshot; it is not a global property of the buffer.
	Visible bool
}

// New creates a buffer snapshot from a file path and major mode.
// The display name is derived from the path; scratch buffers (empty
// path) are named "Untitled". A fresh ID is assigned.
func New(path, majorMode string) Buffer {
	name := "Untitled"
	if path != "" {
		name = filepath.Base(path)
	}
	return Buffer{
		ID:        uuid.NewString(),
		Name:      name,
		Path:      path,
		MajorMode: majorMode,
	}
}

// IsScratch returns true if the buffer has no backing file.
func (b Buffer) IsScratch() bool {
	return b.Path == ""
}

// Set is an ordered list of buffer snapshots as enumerated by the host.
// Order is host order and is preserved by all operations in this module.
type Set []Buffer

// Source enumerates the host's current buffers.
//
// Hosts implement Source once and pass it (or the Set it returns) to
// each operation that needs the buffer list. Filtering is always
// explicit; no global enumeration hook is ever installed.
type Source interface {
	// Buffers returns a snapshot of the current buffer list.
	Buffers() Set
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() Set

// Buffers implements Source.
func (f SourceFunc) Buffers() Set {
	return f()
}

// Clone returns a copy of the set. The copy shares no storage with the
// original.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Find returns the buffer with the given ID and true, or a zero buffer
// and false if no buffer in the set has that ID.
func (s Set) Find(id string) (Buffer, bool) {
	for _, b := range s {
		if b.ID == id {
			return b, true
		}
	}
	return Buffer{}, false
}

// Names returns the display names of the buffers in set order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, b := range s {
		names[i] = b.Name
	}
	return names
}
