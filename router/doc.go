// Package router maps navigation locations to views and mounts the matched
// view into the shell's outlet.
//
// Route paths are written without a leading slash and split on "/". A segment
// of the form ":name" captures a parameter, the empty path matches the root
// location, and "**" matches anything and must be declared last. Routes are
// tried in declaration order.
//
// A Router is not safe for concurrent use; it is driven from the bubbletea
// update loop.
package router
