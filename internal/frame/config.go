package frame

import (
	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/purpose"
)

// Less orders two buffers for sidebar display.
type Less func(a, b buffer.Buffer) bool

// Config describes a purpose frame to be created.
//
// Exactly one predicate source must be set: Modes and/or Filenames, or
// Predicate. Everything else is optional.
type Config struct {
	// Title is the frame's display title. Defaults to a summary of
	// the mode/filename specs when empty.
	Title string

	// Modes are major-mode specification entries (literal names or
	// anchored regexes).
	Modes []string

	// Filenames are regexes matched against buffer paths.
	Filenames []string

	// Predicate is an explicit predicate function. Mutually exclusive
	// with Modes and Filenames.
	Predicate purpose.Predicate

	// SidebarSide is where a sidebar is placed when opened.
	SidebarSide Side

	// SidebarAutoUpdate re-renders the sidebar on buffer-set-changed
	// notifications.
	SidebarAutoUpdate bool

	// SortFuncs order the sidebar's buffer list. Applied in order:
	// earlier comparators dominate. Empty means sort lexicographically
	// by name.
	SortFuncs []Less
}

// buildPurpose validates the config's predicate sources and builds the
// purpose. Mirrors the purpose builder's own validation so callers get
// a ConfigError naming the offending fields.
func (c Config) buildPurpose() (*purpose.Purpose, error) {
	hasSpec := len(c.Modes) > 0 || len(c.Filenames) > 0

	if c.Predicate != nil && hasSpec {
		return nil, &ConfigError{
			Field:  "Predicate",
			Reason: "mutually exclusive with Modes/Filenames",
			Err:    purpose.ErrConflictingSources,
		}
	}
	if c.Predicate == nil && !hasSpec {
		return nil, &ConfigError{
			Field:  "Modes/Filenames/Predicate",
			Reason: "at least one predicate source is required",
			Err:    purpose.ErrNoPredicateSource,
		}
	}

	bd := purpose.NewBuilder().WithTitle(c.Title)
	if c.Predicate != nil {
		bd.WithPredicate(c.Predicate)
	} else {
		bd.WithModes(c.Modes...).WithFilenames(c.Filenames...)
	}

	p, err := bd.Build()
	if err != nil {
		return nil, &ConfigError{Field: "Modes/Filenames", Reason: "invalid specification", Err: err}
	}
	return p, nil
}

// defaultTitle derives a display title from the specification when the
// config does not name one.
func (c Config) defaultTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if len(c.Modes) > 0 {
		return c.Modes[0]
	}
	if len(c.Filenames) > 0 {
		return c.Filenames[0]
	}
	return "purpose"
}
