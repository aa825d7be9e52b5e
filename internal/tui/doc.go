// Package tui is the shared settings-editor engine. A panel hands it a
// confedit.Store, a registry of editable items, and an optional post-write
// hook; the engine runs a single-threaded loop reading decoded terminal
// events, mutating navigation state, writing value changes through the
// store, and redrawing a full frame after every event.
//
// The engine never touches the file except through the store, and it never
// draws partial updates: one frame is composed and written in a single pass.
package tui
