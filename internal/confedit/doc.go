// Package confedit reads and edits brace-scoped configuration files of the
// form used by Hyprland and its companion tools:
//
//	general {
//	    gaps_in = 4        # inner gaps
//	    border_size = 2
//	}
//
// A Store parses the whole file once into a (key, scope) -> value cache and
// performs minimally-invasive edits: a successful write changes only the
// value portion of the one line it targets, preserving whitespace, comments,
// and every other byte of the file. Writes go through a temporary file in
// the same directory followed by an atomic rename, so a crash mid-write can
// never leave a half-written configuration behind.
package confedit
