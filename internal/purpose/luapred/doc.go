// Package luapred builds buffer predicates from Lua scripts.
//
// Hosts that want user-configurable "arbitrary predicate" purposes can
// accept a Lua chunk defining a match(buffer) function instead of
// compiling Go code. The chunk is compiled once at registration; each
// evaluation pushes the buffer's attributes as a Lua table and calls
// match.
//
// gopher-lua's LState is not goroutine-safe, so all evaluation is
// serialized behind a mutex.
package luapred
