// Package frame attaches purposes to host editor frames.
//
// A Frame records the immutable purpose a top-level host window was
// created with, plus its sidebar display options. The Manager validates
// frame configurations, asks the host shim to create the actual window,
// and tracks live frames.
//
// Filtering is explicit: hosts pass their buffer enumeration into
// Frame.Buffers (or wrap a Source with ScopedSource). There is no
// global enumeration hook and no package-level current frame.
package frame
