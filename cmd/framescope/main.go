// Package main is a demonstration host for framescope: a synthetic
// buffer set, one purpose frame built from flags, and a live sidebar
// rendered on a tcell screen.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/config"
	"github.com/dshills/framescope/internal/event"
	"github.com/dshills/framescope/internal/frame"
	"github.com/dshills/framescope/internal/logging"
	"github.com/dshills/framescope/internal/sidebar"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type flags struct {
	modes      string
	files      string
	title      string
	configPath string
	logLevel   string
	version    bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.modes, "modes", "", "comma-separated major modes for the frame's purpose")
	flag.StringVar(&f.files, "files", "", "comma-separated filename regexes for the frame's purpose")
	flag.StringVar(&f.title, "title", "", "frame title")
	flag.StringVar(&f.configPath, "config", "", "path to framescope.toml")
	flag.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.BoolVar(&f.version, "version", false, "print version and exit")
	flag.Parse()
	return f
}

func run() int {
	f := parseFlags()
	if f.version {
		fmt.Printf("framescope %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	logFile, err := os.CreateTemp("", "framescope-*.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Output: logFile,
		Prefix: "framescope",
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	store := newDemoStore()
	host := newTCellHost(screen, store)
	bus := event.NewBus()

	mgr, err := frame.NewManager(host, frame.WithBus(bus), frame.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	frameCfg := frame.Config{
		Title:             f.title,
		SidebarSide:       frame.ParseSide(cfg.Sidebar.Side),
		SidebarAutoUpdate: cfg.Sidebar.AutoUpdate,
	}
	if f.modes != "" {
		frameCfg.Modes = splitList(f.modes)
	}
	if f.files != "" {
		frameCfg.Filenames = splitList(f.files)
	}
	if frameCfg.Modes == nil && frameCfg.Filenames == nil {
		frameCfg.Modes = []string{"go-mode"}
	}
	if cfg.Sidebar.ModifiedFirst {
		frameCfg.SortFuncs = []frame.Less{sidebar.ModifiedFirst}
	}

	fr, err := mgr.Create(frameCfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sbOpts := []sidebar.Option{
		sidebar.WithBus(bus),
		sidebar.WithWidth(cfg.Sidebar.Width),
		sidebar.WithLogger(logger),
		sidebar.WithBlacklist(cfg.Sidebar.Blacklist...),
	}
	if d := cfg.Sidebar.MinInterval(); d > 0 {
		sbOpts = append(sbOpts, sidebar.WithMinInterval(d))
	}

	sb, err := sidebar.Open(fr, host, store, sbOpts...)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer sb.Close()

	host.draw(sb.Cursor())

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			host.draw(sb.Cursor())
		case *tcell.EventKey:
			if done := handleKey(tev, sb, store, bus); done {
				return 0
			}
			host.draw(sb.Cursor())
		}
	}
}

// handleKey routes key input through the sidebar keymap. The m key is
// demo-only: it toggles the modified flag of the buffer under the
// cursor and publishes the change, exercising auto-update.
func handleKey(ev *tcell.EventKey, sb *sidebar.Sidebar, store *demoStore, bus *event.Bus) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() == tcell.KeyEnter {
		_ = sb.Dispatch(sidebar.ActionSelect)
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'n', 'j':
		_ = sb.Dispatch(sidebar.ActionNext)
	case 'p', 'k':
		_ = sb.Dispatch(sidebar.ActionPrev)
	case 'g':
		_ = sb.Dispatch(sidebar.ActionRefresh)
	case 'm':
		lines := sb.Lines()
		cur := sb.Cursor()
		if cur < len(lines) {
			id := lines[cur].BufferID
			store.toggleModified(id)
			bus.Publish(event.TopicBufferDirtyChanged, id)
		}
	}
	return false
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// demoStore is the synthetic buffer set the demo host enumerates.
type demoStore struct {
	mu   sync.Mutex
	bufs buffer.Set
}

func newDemoStore() *demoStore {
	bufs := buffer.Set{}
	for _, spec := range []struct {
		path string
		mode string
	}{
		{"/proj/cmd/main.go", "go-mode"},
		{"/proj/internal/server.go", "go-mode"},
		{"/proj/internal/server_test.go", "go-mode"},
		{"/proj/scripts/build.py", "python"},
		{"/proj/README.md", "markdown"},
		{"/proj/notes.txt", "text"},
	} {
		bufs = append(bufs, buffer.New(spec.path, spec.mode))
	}
	return &demoStore{bufs: bufs}
}

// Buffers implements buffer.Source.
func (d *demoStore) Buffers() buffer.Set {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bufs.Clone()
}

func (d *demoStore) toggleModified(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.bufs {
		if d.bufs[i].ID == id {
			d.bufs[i].Modified = !d.bufs[i].Modified
			return
		}
	}
}
