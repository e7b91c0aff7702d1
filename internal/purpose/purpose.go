package purpose

import (
	"regexp"
	"time"

	"github.com/dshills/framescope/internal/buffer"
)

// Predicate reports whether a buffer belongs to a purpose.
// Predicates must be pure: no side effects, no mutation of the buffer.
type Predicate func(buffer.Buffer) bool

// Purpose restricts which buffers a frame considers.
//
// A Purpose is immutable after construction. The zero value has no
// predicate and matches everything; see Filter.
type Purpose struct {
	title     string
	predicate Predicate
	modes     []string
	filenames []string
	createdAt time.Time
}

// Title returns the purpose's display title.
func (p *Purpose) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

// CreatedAt returns when the purpose was built.
func (p *Purpose) CreatedAt() time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.createdAt
}

// Modes returns the mode specification entries, or nil for an
// explicit-predicate purpose.
func (p *Purpose) Modes() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.modes...)
}

// Filenames returns the filename specification entries, or nil for an
// explicit-predicate purpose.
func (p *Purpose) Filenames() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.filenames...)
}

// Matches reports whether the buffer belongs to this purpose.
// A nil purpose or a purpose without a predicate matches every buffer.
func (p *Purpose) Matches(b buffer.Buffer) bool {
	if p == nil || p.predicate == nil {
		return true
	}
	return p.predicate(b)
}

// Builder constructs a Purpose from exactly one predicate source.
//
// Mode and filename specifications combine (a buffer matches if any mode
// entry or any filename entry matches), but they are mutually exclusive
// with an explicit predicate. Build reports a configuration error when
// both or neither source is supplied.
type Builder struct {
	title     string
	modes     []string
	filenames []string
	predicate Predicate
}

// NewBuilder creates an empty purpose builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithTitle sets the purpose's display title.
func (bd *Builder) WithTitle(title string) *Builder {
	bd.title = title
	return bd
}

// WithModes adds major-mode specification entries. Each entry matches a
// buffer whose MajorMode equals the entry, or whose MajorMode matches
// the entry compiled as an anchored regular expression. Entries that do
// not compile as regexes (mode names like "c++-mode") match by equality
// only.
func (bd *Builder) WithModes(modes ...string) *Builder {
	bd.modes = append(bd.modes, modes...)
	return bd
}

// WithFilenames adds filename specification entries. Each entry is a
// regular expression matched against the buffer's Path.
func (bd *Builder) WithFilenames(patterns ...string) *Builder {
	bd.filenames = append(bd.filenames, patterns...)
	return bd
}

// WithPredicate sets an explicit predicate function.
func (bd *Builder) WithPredicate(p Predicate) *Builder {
	bd.predicate = p
	return bd
}

// Build validates the configuration and constructs the purpose.
//
// Exactly one predicate source must be present: either an explicit
// predicate, or at least one mode/filename entry. No partial state is
// created on error.
func (bd *Builder) Build() (*Purpose, error) {
	hasSpec := len(bd.modes) > 0 || len(bd.filenames) > 0

	if bd.predicate != nil && hasSpec {
		return nil, ErrConflictingSources
	}
	if bd.predicate == nil && !hasSpec {
		return nil, ErrNoPredicateSource
	}

	pred := bd.predicate
	if pred == nil {
		var err error
		pred, err = compileSpec(bd.modes, bd.filenames)
		if err != nil {
			return nil, err
		}
	}

	return &Purpose{
		title:     bd.title,
		predicate: pred,
		modes:     append([]string(nil), bd.modes...),
		filenames: append([]string(nil), bd.filenames...),
		createdAt: time.Now(),
	}, nil
}

// compileSpec turns mode and filename entries into a single predicate.
// The result is true if any mode entry or any filename entry matches.
func compileSpec(modes, filenames []string) (Predicate, error) {
	modeExprs := make([]*regexp.Regexp, 0, len(modes))
	for _, m := range modes {
		// Anchored so "go" does not match "gofmt-mode". Real mode
		// names are not always valid regexes ("c++-mode"); those still
		// match through the literal-equality path below.
		re, err := regexp.Compile("^(?:" + m + ")$")
		if err != nil {
			continue
		}
		modeExprs = append(modeExprs, re)
	}

	fileExprs := make([]*regexp.Regexp, 0, len(filenames))
	for _, pat := range filenames {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &SpecError{Kind: "filename", Entry: pat, Err: err}
		}
		fileExprs = append(fileExprs, re)
	}

	literalModes := make(map[string]bool, len(modes))
	for _, m := range modes {
		literalModes[m] = true
	}

	return func(b buffer.Buffer) bool {
		if literalModes[b.MajorMode] {
			return true
		}
		for _, re := range modeExprs {
			if re.MatchString(b.MajorMode) {
				return true
			}
		}
		for _, re := range fileExprs {
			if re.MatchString(b.Path) {
				return true
			}
		}
		return false
	}, nil
}
