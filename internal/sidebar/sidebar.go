package sidebar

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/event"
	"github.com/dshills/framescope/internal/frame"
	"github.com/dshills/framescope/internal/logging"
)

// DefaultWidth is the sidebar width in display cells when no width is
// configured.
const DefaultWidth = 30

// Sidebar is the live buffer list panel of one purpose frame.
type Sidebar struct {
	mu       sync.Mutex
	frame    *frame.Frame
	host     frame.Host
	src      buffer.Source
	window   frame.HostWindow
	width    int
	lines    []Line
	cursor   int
	closed   bool
	throttle *throttler
	bus      *event.Bus
	sub      event.Subscription
	hasSub   bool
	logger   *logging.Logger
}

// Option configures a sidebar.
type Option func(*options)

type options struct {
	width       int
	minInterval time.Duration
	blacklist   []string
	bus         *event.Bus
	logger      *logging.Logger
}

// WithWidth sets the sidebar width in display cells.
func WithWidth(w int) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithMinInterval enables update throttling: recomputation runs at
// most once per interval, with a trailing-edge flush. Zero disables
// throttling (the default).
func WithMinInterval(d time.Duration) Option {
	return func(o *options) {
		o.minInterval = d
	}
}

// WithBlacklist refuses sidebars for frames whose title matches any of
// the given regexes.
func WithBlacklist(patterns ...string) Option {
	return func(o *options) {
		o.blacklist = append(o.blacklist, patterns...)
	}
}

// WithBus attaches the sidebar to an event bus. Required for
// auto-update frames; also used to publish sidebar.updated.
func WithBus(bus *event.Bus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

// WithLogger sets the sidebar's logger. Defaults to logging.NullLogger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Open creates the sidebar window for a frame and renders the initial
// buffer list.
//
// Open fails synchronously, creating no window and no subscriptions,
// when the frame has no purpose (ErrNoPurpose), when the frame title
// matches a blacklist pattern (ErrBlacklisted), or when a blacklist
// pattern does not compile.
func Open(f *frame.Frame, host frame.Host, src buffer.Source, opts ...Option) (*Sidebar, error) {
	o := &options{
		width:  DefaultWidth,
		logger: logging.NullLogger,
	}
	for _, opt := range opts {
		opt(o)
	}

	if f.Purpose() == nil {
		return nil, ErrNoPurpose
	}

	for _, pat := range o.blacklist {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid blacklist pattern %q: %w", pat, err)
		}
		if re.MatchString(f.Title()) {
			return nil, ErrBlacklisted
		}
	}

	win, err := host.SplitWindow(f.HostFrame(), f.SidebarSide(), o.width)
	if err != nil {
		return nil, fmt.Errorf("creating sidebar window: %w", err)
	}

	s := &Sidebar{
		frame:  f,
		host:   host,
		src:    src,
		window: win,
		width:  o.width,
		bus:    o.bus,
		logger: o.logger.WithComponent("sidebar"),
	}
	if o.minInterval > 0 {
		s.throttle = newThrottler(o.minInterval, func() {
			if err := s.Refresh(); err != nil {
				s.logger.Warn("throttled refresh failed: %v", err)
			}
		})
	}

	if err := s.Refresh(); err != nil {
		_ = host.CloseWindow(win)
		return nil, err
	}

	if f.SidebarAutoUpdate() && o.bus != nil {
		sub, err := o.bus.Subscribe("buffer.*", func(event.Event) {
			s.notify()
		})
		if err != nil {
			_ = host.CloseWindow(win)
			return nil, err
		}
		s.sub = sub
		s.hasSub = true
	}

	s.logger.Debug("sidebar opened for frame %s on %s", f.ID(), f.SidebarSide())
	return s, nil
}

// notify routes a buffer-set-changed notification through the throttle
// when one is configured.
func (s *Sidebar) notify() {
	if s.throttle != nil {
		s.throttle.Call()
		return
	}
	if err := s.Refresh(); err != nil {
		s.logger.Warn("refresh failed: %v", err)
	}
}

// Refresh re-enumerates the host's buffers and updates the sidebar.
func (s *Sidebar) Refresh() error {
	return s.Update(s.src.Buffers())
}

// Update recomputes the sidebar from the given buffer snapshot: filter
// by the frame's purpose, sort, render, and push the text to the host
// window. Idempotent for unchanged input.
func (s *Sidebar) Update(set buffer.Set) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	matched := s.frame.Buffers(set)
	sorted := sortBuffers(matched, s.frame.SortFuncs())
	s.lines = renderLines(sorted, s.width)
	if s.cursor >= len(s.lines) {
		s.cursor = len(s.lines) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}

	text := make([]string, len(s.lines))
	for i, ln := range s.lines {
		text[i] = ln.Text
	}
	window := s.window
	s.mu.Unlock()

	if err := s.host.SetWindowText(window, text); err != nil {
		return fmt.Errorf("rendering sidebar: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(event.TopicSidebarUpdated, s.frame.ID())
	}
	return nil
}

// Lines returns the current rendered lines.
func (s *Sidebar) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Cursor returns the current cursor line index.
func (s *Sidebar) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// MoveNext moves the cursor down one line, clamped to the last line.
func (s *Sidebar) MoveNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.lines)-1 {
		s.cursor++
	}
}

// MovePrev moves the cursor up one line, clamped to the first line.
func (s *Sidebar) MovePrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
}

// Select switches the frame's main window to the buffer under the
// cursor.
func (s *Sidebar) Select() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.cursor >= len(s.lines) || len(s.lines) == 0 {
		s.mu.Unlock()
		return ErrNoSelection
	}
	id := s.lines[s.cursor].BufferID
	s.mu.Unlock()

	if err := s.host.SwitchToBuffer(s.frame.HostFrame(), id); err != nil {
		return fmt.Errorf("switching to buffer %s: %w", id, err)
	}
	return nil
}

// SelectLine moves the cursor to the given line and selects it.
func (s *Sidebar) SelectLine(line int) error {
	s.mu.Lock()
	if line < 0 || line >= len(s.lines) {
		s.mu.Unlock()
		return ErrNoSelection
	}
	s.cursor = line
	s.mu.Unlock()
	return s.Select()
}

// Close tears down the sidebar: cancels any scheduled update, removes
// the bus subscription, and closes the host window. Safe to call more
// than once.
func (s *Sidebar) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	window := s.window
	s.mu.Unlock()

	if s.throttle != nil {
		s.throttle.Cancel()
	}
	if s.hasSub && s.bus != nil {
		s.bus.Unsubscribe(s.sub)
	}

	if err := s.host.CloseWindow(window); err != nil {
		return fmt.Errorf("closing sidebar window: %w", err)
	}
	s.logger.Debug("sidebar closed for frame %s", s.frame.ID())
	return nil
}
