package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duskydots/duskytune/internal/registry"
)

// labelWidth is the fixed column width item labels are padded or truncated to.
const labelWidth = 30

// tabZone is the clickable column span of one tab on the tab strip,
// 1-based and inclusive, matching mouse report coordinates.
type tabZone struct {
	view  int
	start int
	end   int
}

// frame is one fully composed screen: its lines, the clickable tab zones,
// and the 1-based terminal row of the first item line for mouse mapping.
type frame struct {
	lines   []string
	zones   []tabZone
	itemTop int
}

// buildFrame lays out the whole screen for the current state. The frame
// height is fixed regardless of item count: short views are padded so the
// footer never moves.
func (e *Engine) buildFrame(width int) frame {
	inner := width - 2
	view := e.nav.view()
	count := len(view.Items)

	var f frame
	hbar := strings.Repeat("─", inner)
	f.lines = append(f.lines, BorderStyle.Render("┌"+hbar+"┐"))

	title := e.title
	if e.nav.menu != nil {
		title += " ▸ " + e.nav.menu.Title
	}
	f.lines = append(f.lines, boxLine(TitleStyle.Render(centerText(title, inner)), inner))

	tabs, zones := e.buildTabStrip(inner)
	f.zones = zones
	f.lines = append(f.lines, tabs)

	f.lines = append(f.lines, BorderStyle.Render("└"+hbar+"┘"))

	if e.nav.scroll > 0 {
		f.lines = append(f.lines, ScrollHintStyle.Render("  "+markerUp))
	} else {
		f.lines = append(f.lines, "")
	}
	f.itemTop = len(f.lines) + 1

	start := e.nav.scroll
	end := start + e.window
	if end > count {
		end = count
	}
	for i := start; i < end; i++ {
		f.lines = append(f.lines, e.buildItemRow(view.Items[i], i == e.nav.row))
	}
	for i := end - start; i < e.window; i++ {
		f.lines = append(f.lines, "")
	}

	if end < count {
		hint := fmt.Sprintf("  %s (%d/%d)", markerDown, e.nav.row+1, count)
		f.lines = append(f.lines, ScrollHintStyle.Render(hint))
	} else {
		f.lines = append(f.lines, "")
	}

	if e.status != "" {
		f.lines = append(f.lines, StatusErrorStyle.Render("  ✗ "+e.status))
	} else {
		f.lines = append(f.lines, StatusInfoStyle.Render("  "+e.store.Path()))
	}
	f.lines = append(f.lines, FooterStyle.Render(
		"  ↑/↓ move  ←/→ adjust  tab switch  enter open  esc back  d defaults  q quit"))

	return f
}

// buildTabStrip renders the tab row and records each tab's clickable span.
func (e *Engine) buildTabStrip(inner int) (string, []tabZone) {
	var (
		sb    strings.Builder
		zones []tabZone
	)
	sb.WriteString(" ")
	col := 3 // border at column 1, leading space at 2
	for i, tab := range e.reg.Tabs() {
		label := " " + tab.Title + " "
		w := lipgloss.Width(label)
		if i == e.nav.tab {
			sb.WriteString(ActiveTabStyle.Render(label))
		} else {
			sb.WriteString(TabStyle.Render(label))
		}
		zones = append(zones, tabZone{view: i, start: col, end: col + w - 1})
		col += w
		sb.WriteString(" ")
		col++
	}
	return boxLine(sb.String(), inner), zones
}

// buildItemRow renders one item line. The selected row is drawn as a single
// reversed span; unselected rows style label and value independently.
func (e *Engine) buildItemRow(it registry.Item, selected bool) string {
	label := it.Label
	if len(label) > labelWidth {
		label = label[:labelWidth-1] + "…"
	}
	value := e.valueText(it)

	if selected {
		return SelectedItemStyle.Render(fmt.Sprintf("▸ %-*s %s", labelWidth, label, value))
	}
	return fmt.Sprintf("  %s %s",
		ItemStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)),
		styleValue(value))
}

// valueText formats the displayed value for an item: booleans become
// ON/OFF, submenus an arrow, unset keys a warning marker, everything else
// its literal text.
func (e *Engine) valueText(it registry.Item) string {
	if it.Kind == registry.Submenu {
		return markerSubmenu
	}
	v := e.values[it.Label]
	if !v.Set {
		return markerUnset
	}
	if it.Kind == registry.Bool {
		if parseBool(v.Text) {
			return markerOn
		}
		return markerOff
	}
	return v.Text
}

func styleValue(text string) string {
	switch text {
	case markerOn:
		return ValueOnStyle.Render(text)
	case markerOff:
		return ValueOffStyle.Render(text)
	case markerUnset:
		return UnsetStyle.Render(text)
	default:
		return text
	}
}

// boxLine wraps already-styled content in the header box borders, padding
// it to the interior width. Widths are measured ANSI-aware so styling never
// skews the layout.
func boxLine(content string, inner int) string {
	pad := inner - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	return BorderStyle.Render("│") + content + strings.Repeat(" ", pad) + BorderStyle.Render("│")
}

// centerText pads plain text to width w with the text centered.
func centerText(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
