// Package event carries buffer-set and frame notifications from the
// host to subscribers such as auto-updating sidebars.
//
// Delivery is synchronous and in subscription order: Publish returns
// after every matching handler has run. Handler panics are recovered
// and counted rather than propagated.
package event
