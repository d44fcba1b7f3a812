// Package views contains the screens the router mounts into the shell outlet.
//
// Allowed here:
// - screen state, screen rendering, the default route table
//
// Not allowed here:
// - route matching or history (router) and shell chrome (core)
package views
