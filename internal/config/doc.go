// Package config loads framescope defaults from a TOML file.
//
// Configuration covers display defaults only (sidebar side, width,
// throttle interval, sort grouping, blacklist); purposes themselves
// are never persisted. A missing file is not an error: hosts get the
// built-in defaults. The watcher reloads the file on change so hosts
// can pick up new defaults without restarting.
package config
