package sidebar

import "errors"

// Sidebar errors.
var (
	// ErrNoPurpose indicates a sidebar was requested for a frame
	// without a purpose.
	ErrNoPurpose = errors.New("frame has no purpose")

	// ErrBlacklisted indicates the frame's title matches a blacklist
	// pattern and may not host a sidebar.
	ErrBlacklisted = errors.New("sidebar blacklisted for this frame")

	// ErrClosed indicates an operation on a closed sidebar.
	ErrClosed = errors.New("sidebar is closed")

	// ErrNoSelection indicates Select was called with no line under
	// the cursor (empty sidebar).
	ErrNoSelection = errors.New("no buffer selected")

	// ErrUnknownAction indicates a dispatch for an action the sidebar
	// does not implement.
	ErrUnknownAction = errors.New("unknown sidebar action")
)
