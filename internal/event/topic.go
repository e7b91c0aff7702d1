package event

import "strings"

// Topic is a hierarchical, dot-separated event type.
// A trailing ".*" segment in a subscription pattern matches any topic
// sharing the prefix, and the bare pattern "*" matches everything.
type Topic string

// Topics published by this module and by hosts.
const (
	// TopicBufferListChanged is published when the host's buffer set
	// changes in any way (the coarse "buffer set changed" notification).
	TopicBufferListChanged Topic = "buffer.list.changed"

	// TopicBufferCreated is published when the host opens a buffer.
	TopicBufferCreated Topic = "buffer.created"

	// TopicBufferClosed is published when the host closes a buffer.
	TopicBufferClosed Topic = "buffer.closed"

	// TopicBufferDirtyChanged is published when a buffer's modified
	// flag changes.
	TopicBufferDirtyChanged Topic = "buffer.dirty.changed"

	// TopicFrameCreated is published when a purpose frame is created.
	TopicFrameCreated Topic = "frame.created"

	// TopicFrameClosed is published when a purpose frame is closed.
	TopicFrameClosed Topic = "frame.closed"

	// TopicSidebarUpdated is published after a sidebar re-render.
	TopicSidebarUpdated Topic = "sidebar.updated"
)

// Matches reports whether the pattern matches the topic.
func (pattern Topic) Matches(t Topic) bool {
	if pattern == t || pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(string(pattern), ".*"); ok {
		return strings.HasPrefix(string(t), prefix+".")
	}
	return false
}
