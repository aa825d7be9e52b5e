package tui

import "github.com/duskydots/duskytune/internal/registry"

// nav tracks which view is active, which row is selected, and how far the
// visible window is scrolled. It is created at startup and never persisted.
type nav struct {
	reg    *registry.Registry
	window int

	tab    int            // active top-level tab index
	menu   *registry.View // non-nil while drilled into a submenu
	row    int
	scroll int

	// Parent position saved on drill-down, restored on drill-up.
	savedRow    int
	savedScroll int
}

func newNav(reg *registry.Registry, window int) *nav {
	return &nav{reg: reg, window: window}
}

// view returns the active view: the drilled-into submenu if any, else the
// active tab.
func (n *nav) view() *registry.View {
	if n.menu != nil {
		return n.menu
	}
	return n.reg.Tabs()[n.tab]
}

func (n *nav) count() int {
	return len(n.view().Items)
}

// selected returns the item under the cursor. The bool is false for an
// empty view, where selection is pinned at zero and every operation is a
// no-op.
func (n *nav) selected() (registry.Item, bool) {
	items := n.view().Items
	if len(items) == 0 {
		return registry.Item{}, false
	}
	return items[n.row], true
}

// navigate moves the selection by delta rows, wrapping at both ends.
func (n *nav) navigate(delta int) {
	count := n.count()
	if count == 0 {
		n.row, n.scroll = 0, 0
		return
	}
	n.row = ((n.row+delta)%count + count) % count
	n.clampScroll()
}

// page moves the selection by a full window, clamped at the ends.
func (n *nav) page(delta int) {
	count := n.count()
	if count == 0 {
		n.row, n.scroll = 0, 0
		return
	}
	n.row += delta * n.window
	if n.row < 0 {
		n.row = 0
	}
	if n.row > count-1 {
		n.row = count - 1
	}
	n.clampScroll()
}

// jumpStart and jumpEnd move the selection to the first or last row.
func (n *nav) jumpStart() {
	n.row = 0
	n.clampScroll()
}

func (n *nav) jumpEnd() {
	if count := n.count(); count > 0 {
		n.row = count - 1
	}
	n.clampScroll()
}

// switchTab advances the active top-level tab by delta with wraparound and
// resets selection and scroll. It is unavailable inside a submenu. The
// return value reports whether the active view changed and its values must
// be reloaded.
func (n *nav) switchTab(delta int) bool {
	if n.menu != nil {
		return false
	}
	tabs := len(n.reg.Tabs())
	if tabs < 2 {
		return false
	}
	n.tab = ((n.tab+delta)%tabs + tabs) % tabs
	n.row, n.scroll = 0, 0
	return true
}

// activateTab jumps straight to tab index i (mouse clicks on the tab strip).
func (n *nav) activateTab(i int) bool {
	if n.menu != nil || i < 0 || i >= len(n.reg.Tabs()) || i == n.tab {
		return false
	}
	n.tab = i
	n.row, n.scroll = 0, 0
	return true
}

// drillDown enters the submenu under the cursor, saving the parent
// position. It reports whether the active view changed.
func (n *nav) drillDown() bool {
	if n.menu != nil {
		return false
	}
	it, ok := n.selected()
	if !ok || it.Kind != registry.Submenu {
		return false
	}
	n.savedRow, n.savedScroll = n.row, n.scroll
	n.menu = it.Menu
	n.row, n.scroll = 0, 0
	return true
}

// drillUp returns from a submenu to the saved parent position.
func (n *nav) drillUp() bool {
	if n.menu == nil {
		return false
	}
	n.menu = nil
	n.row, n.scroll = n.savedRow, n.savedScroll
	n.clampScroll()
	return true
}

// clampScroll keeps the selected row inside the visible window and never
// scrolls past the point where the last row would leave a short page.
func (n *nav) clampScroll() {
	count := n.count()
	maxScroll := count - n.window
	if maxScroll < 0 {
		maxScroll = 0
	}
	if n.row < n.scroll {
		n.scroll = n.row
	}
	if n.row >= n.scroll+n.window {
		n.scroll = n.row - n.window + 1
	}
	if n.scroll > maxScroll {
		n.scroll = maxScroll
	}
	if n.scroll < 0 {
		n.scroll = 0
	}
}
