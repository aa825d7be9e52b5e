// Package panels declares the configuration surfaces duskytune can edit.
//
// Each panel binds the shared editor engine to one config file: a title, a
// default XDG path, an item registry, and an optional reload command that
// runs after successful writes. Panels hold no machinery of their own;
// everything they declare is data.
package panels
