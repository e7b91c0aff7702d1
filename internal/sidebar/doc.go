// Package sidebar renders the live buffer list for a purpose frame.
//
// A sidebar is derived state: every update recomputes the frame's
// filtered buffer list, sorts it, and re-renders the full text. There
// is no incremental bookkeeping, so re-rendering an unchanged buffer
// set produces byte-identical output.
//
// Updates are triggered manually (Refresh), or by buffer events on the
// bus when the frame was created with auto-update. An optional minimum
// interval throttles recomputation under high-frequency notifications;
// the trailing edge always flushes, so the last change is never lost.
package sidebar
