// Package diagnostic provides structured findings about an alias table:
// errors that make a table unusable, warnings about entries that will be
// shadowed by last-write-wins, and informational notes on key collisions.
package diagnostic
