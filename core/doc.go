// Package core contains the application shell and the contracts around it.
//
// Allowed here:
// - the shell (identity plus the view tree with its single navigation outlet)
// - the program model that hosts the shell inside the bubbletea update loop
// - message contracts, key registry, theme and the tree painter
//
// Not allowed here:
// - route tables, route matching or history (router)
// - concrete routed screens (views)
package core
