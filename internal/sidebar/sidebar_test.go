package sidebar

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/event"
	"github.com/dshills/framescope/internal/frame"
)

// fakeHost records host calls for verification.
type fakeHost struct {
	mu       sync.Mutex
	nextID   int
	text     map[string][][]string // window ID -> history of SetWindowText calls
	switched []string
	closed   []string
	failWin  bool
}

type fakeHostFrame struct{ id string }

func (f *fakeHostFrame) ID() string { return f.id }

type fakeHostWindow struct{ id string }

func (w *fakeHostWindow) ID() string { return w.id }

func newFakeHost() *fakeHost {
	return &fakeHost{text: make(map[string][][]string)}
}

func (h *fakeHost) CreateFrame(title string) (frame.HostFrame, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	return &fakeHostFrame{id: fmt.Sprintf("hf-%d", h.nextID)}, nil
}

func (h *fakeHost) SplitWindow(f frame.HostFrame, side frame.Side, size int) (frame.HostWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failWin {
		return nil, errors.New("no room for sidebar")
	}
	h.nextID++
	return &fakeHostWindow{id: fmt.Sprintf("hw-%d", h.nextID)}, nil
}

func (h *fakeHost) SetWindowText(w frame.HostWindow, lines []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.text[w.ID()] = append(h.text[w.ID()], append([]string(nil), lines...))
	return nil
}

func (h *fakeHost) CloseWindow(w frame.HostWindow) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = append(h.closed, w.ID())
	return nil
}

func (h *fakeHost) CloseFrame(f frame.HostFrame) error {
	return nil
}

func (h *fakeHost) SwitchToBuffer(f frame.HostFrame, bufferID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.switched = append(h.switched, bufferID)
	return nil
}

// renderCount returns the total number of SetWindowText calls.
func (h *fakeHost) renderCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, calls := range h.text {
		n += len(calls)
	}
	return n
}

// lastText returns the most recent rendered lines across all windows.
func (h *fakeHost) lastText() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, calls := range h.text {
		if len(calls) > 0 {
			return calls[len(calls)-1]
		}
	}
	return nil
}

func pythonFrame(t *testing.T, host frame.Host, cfg frame.Config) *frame.Frame {
	t.Helper()
	m, err := frame.NewManager(host)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if cfg.Modes == nil && cfg.Filenames == nil && cfg.Predicate == nil {
		cfg.Modes = []string{"python"}
	}
	f, err := m.Create(cfg)
	if err != nil {
		t.Fatalf("Create frame: %v", err)
	}
	return f
}

func staticSource(set buffer.Set) buffer.Source {
	return buffer.SourceFunc(func() buffer.Set {
		return set.Clone()
	})
}

func testBuffers() buffer.Set {
	return buffer.Set{
		{ID: "1", Name: "zebra.py", Path: "/p/zebra.py", MajorMode: "python"},
		{ID: "2", Name: "alpha.py", Path: "/p/alpha.py", MajorMode: "python", Modified: true},
		{ID: "3", Name: "beta.txt", Path: "/p/beta.txt", MajorMode: "text"},
		{ID: "4", Name: "mid.py", Path: "/p/mid.py", MajorMode: "python", Visible: true},
	}
}

func TestOpen_RendersFilteredSortedList(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	lines := s.Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3 (text buffer filtered out)", len(lines))
	}

	// Default sort: lexicographic by name.
	wantOrder := []string{"alpha.py", "mid.py", "zebra.py"}
	for i, want := range wantOrder {
		if !strings.Contains(lines[i].Text, want) {
			t.Errorf("line %d = %q, want name %q", i, lines[i].Text, want)
		}
	}

	// Emphasis markers.
	if !strings.HasPrefix(lines[0].Text, "* ") {
		t.Errorf("modified buffer line = %q, want leading %q", lines[0].Text, "* ")
	}
	if !strings.HasPrefix(lines[1].Text, " >") {
		t.Errorf("visible buffer line = %q, want %q marker", lines[1].Text, ">")
	}

	// Back-references.
	if lines[0].BufferID != "2" || lines[2].BufferID != "1" {
		t.Errorf("back-references wrong: %+v", lines)
	}
}

func TestOpen_NoPurposeRejected(t *testing.T) {
	// A frame always carries a purpose through Manager.Create, so this
	// exercises the guard directly with a zero frame.
	host := newFakeHost()
	f := &frame.Frame{}

	if _, err := Open(f, host, staticSource(nil)); !errors.Is(err, ErrNoPurpose) {
		t.Errorf("err = %v, want ErrNoPurpose", err)
	}
}

func TestOpen_Blacklisted(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "*scratch*"})

	_, err := Open(f, host, staticSource(nil), WithBlacklist(`^\*.*\*$`))
	if !errors.Is(err, ErrBlacklisted) {
		t.Errorf("err = %v, want ErrBlacklisted", err)
	}
	if host.renderCount() != 0 {
		t.Error("blacklisted open should create no window state")
	}
}

func TestOpen_InvalidBlacklistPattern(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	if _, err := Open(f, host, staticSource(nil), WithBlacklist("(bad")); err == nil {
		t.Error("invalid blacklist pattern should fail Open")
	}
}

func TestOpen_WindowFailure(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})
	host.failWin = true

	if _, err := Open(f, host, staticSource(nil)); err == nil {
		t.Error("window creation failure should fail Open")
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	first := strings.Join(host.lastText(), "\n")

	// Shuffle the input order; output must be byte-identical.
	shuffled := buffer.Set{}
	in := testBuffers()
	for i := len(in) - 1; i >= 0; i-- {
		shuffled = append(shuffled, in[i])
	}
	if err := s.Update(shuffled); err != nil {
		t.Fatalf("Update: %v", err)
	}

	second := strings.Join(host.lastText(), "\n")
	if first != second {
		t.Errorf("render not deterministic:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestUpdate_ModifiedFirstGrouping(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{
		Title:     "py",
		SortFuncs: []frame.Less{ModifiedFirst},
	})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	lines := s.Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	// alpha.py (modified) first, then the clean ones by name.
	if lines[0].BufferID != "2" {
		t.Errorf("line 0 = %q, want modified buffer first", lines[0].Text)
	}
	if !strings.Contains(lines[1].Text, "mid.py") || !strings.Contains(lines[2].Text, "zebra.py") {
		t.Errorf("clean buffers out of order: %q, %q", lines[1].Text, lines[2].Text)
	}
}

func TestSelect(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	// Cursor starts at the first line (alpha.py, ID 2).
	if err := s.Select(); err != nil {
		t.Fatalf("Select: %v", err)
	}
	s.MoveNext()
	s.MoveNext()
	if err := s.Select(); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if len(host.switched) != 2 || host.switched[0] != "2" || host.switched[1] != "1" {
		t.Errorf("switched = %v, want [2 1]", host.switched)
	}

	if err := s.SelectLine(1); err != nil {
		t.Fatalf("SelectLine: %v", err)
	}
	if host.switched[2] != "4" {
		t.Errorf("SelectLine(1) switched to %s, want 4", host.switched[2])
	}

	if err := s.SelectLine(99); !errors.Is(err, ErrNoSelection) {
		t.Errorf("SelectLine(99): err = %v, want ErrNoSelection", err)
	}
}

func TestSelect_EmptySidebar(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Select(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
}

func TestCursorClamping(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for i := 0; i < 10; i++ {
		s.MoveNext()
	}
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want clamped to 2", s.Cursor())
	}

	// Shrinking the list pulls the cursor back in range.
	if err := s.Update(buffer.Set{{ID: "1", Name: "only.py", MajorMode: "python"}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after shrink", s.Cursor())
	}

	for i := 0; i < 5; i++ {
		s.MovePrev()
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want clamped to 0", s.Cursor())
	}
}

func TestAutoUpdate(t *testing.T) {
	host := newFakeHost()
	bus := event.NewBus()

	set := testBuffers()
	var mu sync.Mutex
	src := buffer.SourceFunc(func() buffer.Set {
		mu.Lock()
		defer mu.Unlock()
		return set.Clone()
	})

	f := pythonFrame(t, host, frame.Config{Title: "py", SidebarAutoUpdate: true})

	s, err := Open(f, host, src, WithBus(bus))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	before := host.renderCount()

	mu.Lock()
	set = append(set, buffer.Buffer{ID: "5", Name: "new.py", MajorMode: "python"})
	mu.Unlock()
	bus.Publish(event.TopicBufferCreated, "5")

	if host.renderCount() != before+1 {
		t.Errorf("renderCount = %d, want %d", host.renderCount(), before+1)
	}
	lines := s.Lines()
	if len(lines) != 4 {
		t.Errorf("lines = %d, want 4 after new buffer", len(lines))
	}

	// Closing removes the subscription.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	after := host.renderCount()
	bus.Publish(event.TopicBufferCreated, "6")
	if host.renderCount() != after {
		t.Error("closed sidebar should not re-render on events")
	}
}

func TestThrottledAutoUpdate_TrailingEdge(t *testing.T) {
	host := newFakeHost()
	bus := event.NewBus()
	f := pythonFrame(t, host, frame.Config{Title: "py", SidebarAutoUpdate: true})

	s, err := Open(f, host, staticSource(testBuffers()),
		WithBus(bus),
		WithMinInterval(50*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	before := host.renderCount()

	// A burst of notifications inside the interval.
	for i := 0; i < 10; i++ {
		bus.Publish(event.TopicBufferDirtyChanged, "2")
	}

	// Leading edge may have fired once; the rest collapse into one
	// trailing render.
	time.Sleep(150 * time.Millisecond)

	got := host.renderCount() - before
	if got < 1 || got > 2 {
		t.Errorf("renders during burst = %d, want 1 or 2", got)
	}
}

func TestDispatch(t *testing.T) {
	host := newFakeHost()
	f := pythonFrame(t, host, frame.Config{Title: "py"})

	s, err := Open(f, host, staticSource(testBuffers()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Dispatch(ActionNext); err != nil {
		t.Errorf("Dispatch(next): %v", err)
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d after next, want 1", s.Cursor())
	}
	if err := s.Dispatch(ActionPrev); err != nil {
		t.Errorf("Dispatch(prev): %v", err)
	}
	if err := s.Dispatch(ActionRefresh); err != nil {
		t.Errorf("Dispatch(refresh): %v", err)
	}
	if err := s.Dispatch(ActionSelect); err != nil {
		t.Errorf("Dispatch(select): %v", err)
	}
	if err := s.Dispatch("sidebar.bogus"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch(bogus): err = %v, want ErrUnknownAction", err)
	}
	if err := s.Dispatch(ActionClose); err != nil {
		t.Errorf("Dispatch(close): %v", err)
	}
	if err := s.Refresh(); !errors.Is(err, ErrClosed) {
		t.Errorf("Refresh after close: err = %v, want ErrClosed", err)
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	if len(km) == 0 {
		t.Fatal("default keymap should not be empty")
	}

	actions := map[string]bool{}
	for _, b := range km {
		if b.Keys == "" || b.Action == "" {
			t.Errorf("binding %+v missing keys or action", b)
		}
		actions[b.Action] = true
	}
	for _, want := range []string{ActionSelect, ActionNext, ActionPrev, ActionRefresh, ActionClose} {
		if !actions[want] {
			t.Errorf("default keymap missing action %s", want)
		}
	}
}
