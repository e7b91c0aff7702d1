// Package buffer defines the read-only view of host editor buffers.
//
// The host editor owns its buffers; framescope never creates, mutates, or
// destroys them. Hosts hand the module snapshots of their buffer list
// (a Set) at call time, and everything downstream — purpose filtering,
// sidebar rendering — works over those snapshots.
package buffer
