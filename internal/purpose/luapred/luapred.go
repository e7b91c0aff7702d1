package luapred

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/purpose"
)

// ErrClosed is returned when evaluating a predicate whose source has
// been closed.
var ErrClosed = errors.New("lua predicate source is closed")

// ErrNoMatchFunction indicates the script did not define a global
// match function.
var ErrNoMatchFunction = errors.New("script does not define a match function")

// ErrorHandler receives runtime errors from predicate evaluation.
// Evaluation errors make the predicate return false; they do not abort
// the filter.
type ErrorHandler func(err error)

// Source compiles Lua scripts into buffer predicates.
//
// One Source owns one Lua state. Close releases the state; predicates
// built from a closed source report false and surface ErrClosed to the
// error handler.
type Source struct {
	mu      sync.Mutex
	state   *lua.LState
	closed  bool
	onError ErrorHandler
}

// Option configures a Source.
type Option func(*Source)

// WithErrorHandler sets the handler for predicate runtime errors.
// The default handler discards errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(s *Source) {
		s.onError = h
	}
}

// NewSource creates a Lua predicate source.
func NewSource(opts ...Option) *Source {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // open selectively below
	})

	// Predicates are pure tests: string/table/math helpers only.
	// Intentionally not opened: io, os, debug, package.
	lua.OpenBase(L)
	lua.OpenString(L)
	lua.OpenTable(L)
	lua.OpenMath(L)

	s := &Source{
		state:   L,
		onError: func(error) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compile loads a script and returns a predicate backed by its match
// function.
//
// The script must define a global function match(buffer) returning a
// boolean (any truthy value counts as a match). The buffer argument is
// a table with string fields name, path, mode and boolean fields
// modified, visible. Compilation and load errors are returned
// immediately; nothing is registered on failure.
//
// The match function is captured by value, so a later Compile on the
// same source does not disturb previously built predicates.
func (s *Source) Compile(script string) (purpose.Predicate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	fn, err := s.state.Load(strings.NewReader(script), "predicate")
	if err != nil {
		return nil, fmt.Errorf("compiling predicate script: %w", err)
	}

	s.state.Push(fn)
	if err := s.state.PCall(0, 0, nil); err != nil {
		return nil, fmt.Errorf("loading predicate script: %w", err)
	}

	matchFn, ok := s.state.GetGlobal("match").(*lua.LFunction)
	if !ok {
		return nil, ErrNoMatchFunction
	}

	return func(b buffer.Buffer) bool {
		return s.eval(matchFn, b)
	}, nil
}

// eval calls the match function with the buffer pushed as a table.
func (s *Source) eval(fn *lua.LFunction, b buffer.Buffer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.onError(ErrClosed)
		return false
	}

	tbl := s.state.NewTable()
	s.state.SetField(tbl, "name", lua.LString(b.Name))
	s.state.SetField(tbl, "path", lua.LString(b.Path))
	s.state.SetField(tbl, "mode", lua.LString(b.MajorMode))
	s.state.SetField(tbl, "modified", lua.LBool(b.Modified))
	s.state.SetField(tbl, "visible", lua.LBool(b.Visible))

	s.state.Push(fn)
	s.state.Push(tbl)
	if err := s.state.PCall(1, 1, nil); err != nil {
		s.onError(fmt.Errorf("evaluating predicate for %q: %w", b.Name, err))
		return false
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state. Predicates built from this source
// report false afterward.
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.state.Close()
}
