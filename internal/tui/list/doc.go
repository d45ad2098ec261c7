// Package listview provides a scrolling list for Bubble Tea views that
// renders only the rows around the viewport.
//
// Items can be replaced at any time with SetItems, which keeps the selection
// in bounds; this is how filtered views (such as the impact log browser)
// swap their result set without rebuilding the model.
package listview
