package frame

import (
	"fmt"
	"sync"

	"github.com/dshills/framescope/internal/event"
	"github.com/dshills/framescope/internal/logging"
)

// Manager creates and tracks purpose frames.
type Manager struct {
	mu     sync.RWMutex
	host   Host
	bus    *event.Bus
	logger *logging.Logger
	frames map[string]*Frame
	order  []string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithBus publishes frame lifecycle events on the given bus.
func WithBus(bus *event.Bus) ManagerOption {
	return func(m *Manager) {
		m.bus = bus
	}
}

// WithLogger sets the manager's logger. Defaults to logging.NullLogger.
func WithLogger(l *logging.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = l
	}
}

// NewManager creates a frame manager backed by the given host shim.
func NewManager(host Host, opts ...ManagerOption) (*Manager, error) {
	if host == nil {
		return nil, ErrNoHost
	}

	m := &Manager{
		host:   host,
		logger: logging.NullLogger,
		frames: make(map[string]*Frame),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithComponent("frame")
	return m, nil
}

// Host returns the host shim the manager was created with.
func (m *Manager) Host() Host {
	return m.host
}

// Create validates the configuration, builds the purpose, creates the
// host frame, and registers the result.
//
// Configuration errors (conflicting or missing predicate sources,
// invalid regexes) abort before any host call; no partial state is
// created. If the host refuses the frame, nothing is registered.
func (m *Manager) Create(cfg Config) (*Frame, error) {
	p, err := cfg.buildPurpose()
	if err != nil {
		return nil, err
	}

	hf, err := m.host.CreateFrame(cfg.defaultTitle())
	if err != nil {
		return nil, fmt.Errorf("creating host frame: %w", err)
	}

	f := newFrame(cfg, p, hf)

	m.mu.Lock()
	m.frames[f.ID()] = f
	m.order = append(m.order, f.ID())
	m.mu.Unlock()

	m.logger.Info("frame created: %s (%s)", f.Title(), f.ID())
	if m.bus != nil {
		m.bus.Publish(event.TopicFrameCreated, f.ID())
	}
	return f, nil
}

// Get returns the frame with the given ID.
func (m *Manager) Get(id string) (*Frame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.frames[id]
	if !ok {
		return nil, ErrFrameNotFound
	}
	return f, nil
}

// List returns all live frames in creation order.
func (m *Manager) List() []*Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Frame, 0, len(m.frames))
	for _, id := range m.order {
		if f, ok := m.frames[id]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Close closes the host frame and unregisters it.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	f, ok := m.frames[id]
	if !ok {
		m.mu.Unlock()
		return ErrFrameNotFound
	}
	delete(m.frames, id)
	for i, fid := range m.order {
		if fid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if err := m.host.CloseFrame(f.HostFrame()); err != nil {
		return fmt.Errorf("closing host frame: %w", err)
	}

	m.logger.Info("frame closed: %s (%s)", f.Title(), f.ID())
	if m.bus != nil {
		m.bus.Publish(event.TopicFrameClosed, id)
	}
	return nil
}
