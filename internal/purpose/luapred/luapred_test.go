package luapred

import (
	"errors"
	"testing"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/purpose"
)

func TestCompile_ModeMatch(t *testing.T) {
	src := NewSource()
	defer src.Close()

	pred, err := src.Compile(`
		function match(buf)
			return buf.mode == "python"
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !pred(buffer.Buffer{Name: "a.py", MajorMode: "python"}) {
		t.Error("python buffer should match")
	}
	if pred(buffer.Buffer{Name: "b.txt", MajorMode: "text"}) {
		t.Error("text buffer should not match")
	}
}

func TestCompile_PathPattern(t *testing.T) {
	src := NewSource()
	defer src.Close()

	pred, err := src.Compile(`
		function match(buf)
			return string.find(buf.path, "^/proj/") ~= nil
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !pred(buffer.Buffer{Path: "/proj/x.py"}) {
		t.Error("/proj/x.py should match")
	}
	if pred(buffer.Buffer{Path: "/other/y.py"}) {
		t.Error("/other/y.py should not match")
	}
}

func TestCompile_ModifiedFlag(t *testing.T) {
	src := NewSource()
	defer src.Close()

	pred, err := src.Compile(`
		function match(buf)
			return buf.modified
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !pred(buffer.Buffer{Modified: true}) {
		t.Error("modified buffer should match")
	}
	if pred(buffer.Buffer{}) {
		t.Error("clean buffer should not match")
	}
}

func TestCompile_SyntaxError(t *testing.T) {
	src := NewSource()
	defer src.Close()

	if _, err := src.Compile(`function match(buf`); err == nil {
		t.Error("syntax error should fail Compile")
	}
}

func TestCompile_NoMatchFunction(t *testing.T) {
	src := NewSource()
	defer src.Close()

	_, err := src.Compile(`x = 1`)
	if !errors.Is(err, ErrNoMatchFunction) {
		t.Errorf("err = %v, want ErrNoMatchFunction", err)
	}
}

func TestCompile_RuntimeErrorReportsAndReturnsFalse(t *testing.T) {
	var reported error
	src := NewSource(WithErrorHandler(func(err error) {
		reported = err
	}))
	defer src.Close()

	pred, err := src.Compile(`
		function match(buf)
			error("boom")
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if pred(buffer.Buffer{Name: "a"}) {
		t.Error("erroring predicate should report false")
	}
	if reported == nil {
		t.Error("runtime error should reach the error handler")
	}
}

func TestCompile_LaterCompileDoesNotDisturbEarlier(t *testing.T) {
	src := NewSource()
	defer src.Close()

	first, err := src.Compile(`
		function match(buf)
			return buf.mode == "python"
		end
	`)
	if err != nil {
		t.Fatalf("Compile first: %v", err)
	}

	_, err = src.Compile(`
		function match(buf)
			return false
		end
	`)
	if err != nil {
		t.Fatalf("Compile second: %v", err)
	}

	if !first(buffer.Buffer{MajorMode: "python"}) {
		t.Error("first predicate should still use its own match function")
	}
}

func TestClosed(t *testing.T) {
	src := NewSource()

	pred, err := src.Compile(`
		function match(buf)
			return true
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	src.Close()
	src.Close() // double close is a no-op

	if pred(buffer.Buffer{}) {
		t.Error("predicate from closed source should report false")
	}

	if _, err := src.Compile(`function match(b) return true end`); !errors.Is(err, ErrClosed) {
		t.Errorf("Compile after Close: err = %v, want ErrClosed", err)
	}
}

func TestCompile_WorksAsExplicitPurposePredicate(t *testing.T) {
	src := NewSource()
	defer src.Close()

	pred, err := src.Compile(`
		function match(buf)
			return buf.mode == "python"
		end
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	p, err := purpose.NewBuilder().WithTitle("lua").WithPredicate(pred).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	set := buffer.Set{
		{ID: "1", Name: "a.py", MajorMode: "python"},
		{ID: "2", Name: "b.txt", MajorMode: "text"},
	}

	got := purpose.Filter(set, p)
	if len(got) != 1 || got[0].Name != "a.py" {
		t.Errorf("Filter = %v, want [a.py]", got.Names())
	}
}
