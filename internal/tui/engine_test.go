package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duskydots/duskytune/internal/confedit"
	"github.com/duskydots/duskytune/internal/input"
	"github.com/duskydots/duskytune/internal/registry"
)

const engineSample = `general {
    border_size = 2
    gaps_in = 5
}

decoration {
    rounding = 10
    active_opacity = 1.0
}

animations {
    enabled = true
}
`

func sampleStore(t *testing.T) *confedit.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte(engineSample), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := confedit.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func sampleRegistry() *registry.Registry {
	r := registry.New()
	tab := r.AddTab("General")
	tab.AddInt("Border Size", "border_size", "general",
		registry.IntSpec{Min: 0, Max: 10, Step: 1, Bounded: true}, "2")
	tab.AddFloat("Active Opacity", "active_opacity", "decoration",
		registry.FloatSpec{Min: 0, Max: 1, Step: 0.1, Bounded: true}, "1.0")
	tab.AddBool("Animations", "enabled", "animations", "true")
	tab.AddBool("Missing Key", "no_such_key", "general", "")
	r.AddTab("Misc").AddInt("Gaps In", "gaps_in", "general",
		registry.IntSpec{Min: 0, Max: 50, Step: 1, Bounded: true}, "5")
	return r
}

func newTestEngine(t *testing.T, hook func()) *Engine {
	t.Helper()
	e, err := New(Config{
		Title:    "hyprland",
		Store:    sampleStore(t),
		Registry: sampleRegistry(),
		Hook:     hook,
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNewRequiresStoreRegistryAndTabs(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New without store and registry should fail")
	}
	if _, err := New(Config{Store: sampleStore(t), Registry: registry.New()}); err == nil {
		t.Error("New with an empty registry should fail")
	}
}

func TestModifyWritesThroughAndFiresHook(t *testing.T) {
	hooks := 0
	e := newTestEngine(t, func() { hooks++ })

	// Border Size is the first row: 2 -> 3.
	e.handleKey(input.KeyEvent{Key: input.KeyRight})

	if got, _ := e.store.Get("border_size", "general"); got != "3" {
		t.Errorf("stored border_size = %q, want \"3\"", got)
	}
	if v := e.values["Border Size"]; v.Text != "3" || !v.Set {
		t.Errorf("cached value = %+v, want {3 true}", v)
	}
	if hooks != 1 {
		t.Errorf("hook fired %d times, want 1", hooks)
	}

	// The change must be in the file, not only in memory.
	data, err := os.ReadFile(e.store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "border_size = 3") {
		t.Errorf("file does not contain the updated line:\n%s", data)
	}
}

func TestModifyFailureKeepsCacheAndSkipsHook(t *testing.T) {
	hooks := 0
	e := newTestEngine(t, func() { hooks++ })

	// Missing Key is row 3; the write must fail because the key is not in
	// the file.
	e.nav.row = 3
	e.modify(+1)

	if e.status == "" {
		t.Error("failed write should surface in the status line")
	}
	if v := e.values["Missing Key"]; v.Set {
		t.Errorf("cache updated after failed write: %+v", v)
	}
	if hooks != 0 {
		t.Errorf("hook fired %d times after a failed write, want 0", hooks)
	}

	// A subsequent successful write clears the status.
	e.nav.row = 0
	e.modify(+1)
	if e.status != "" {
		t.Errorf("status not cleared by a successful write: %q", e.status)
	}
}

func TestEnterTogglesNonSubmenuItem(t *testing.T) {
	e := newTestEngine(t, nil)

	// Animations is row 2, currently true.
	e.nav.row = 2
	e.handleKey(input.KeyEvent{Key: input.KeyEnter})

	if got, _ := e.store.Get("enabled", "animations"); got != "false" {
		t.Errorf("enabled = %q after enter, want \"false\"", got)
	}
}

func TestTabSwitchReloadsValues(t *testing.T) {
	e := newTestEngine(t, nil)

	e.handleKey(input.KeyEvent{Key: input.KeyTab})
	if e.nav.tab != 1 {
		t.Fatalf("tab = %d, want 1", e.nav.tab)
	}
	if v := e.values["Gaps In"]; v.Text != "5" || !v.Set {
		t.Errorf("values not reloaded for new tab: %+v", v)
	}
	if _, ok := e.values["Border Size"]; ok {
		t.Error("cache still holds entries from the previous tab")
	}
}

func TestResetDefaultsFiresHookOnce(t *testing.T) {
	hooks := 0
	e := newTestEngine(t, func() { hooks++ })

	// Drift two settings away from their defaults first.
	if err := e.store.Set("border_size", "general", "7"); err != nil {
		t.Fatal(err)
	}
	if err := e.store.Set("enabled", "animations", "false"); err != nil {
		t.Fatal(err)
	}
	e.reloadValues()

	e.handleRune('d')

	if got, _ := e.store.Get("border_size", "general"); got != "2" {
		t.Errorf("border_size = %q after reset, want \"2\"", got)
	}
	if got, _ := e.store.Get("enabled", "animations"); got != "true" {
		t.Errorf("enabled = %q after reset, want \"true\"", got)
	}
	if hooks != 1 {
		t.Errorf("hook fired %d times for a batch reset, want 1", hooks)
	}
	// Missing Key has no default and no line in the file, so the batch
	// must not report a failure for it.
	if e.status != "" {
		t.Errorf("unexpected status after reset: %q", e.status)
	}
}

func TestQuitKeys(t *testing.T) {
	e := newTestEngine(t, nil)

	if !e.handleRune('q') {
		t.Error("q should quit")
	}
	if !e.handleKey(input.KeyEvent{Key: input.KeyCtrlC}) {
		t.Error("ctrl-c should quit")
	}
	if !e.handleKey(input.KeyEvent{Key: input.KeyEscape}) {
		t.Error("escape at top level should quit")
	}
}

func TestEscapeLeavesSubmenuBeforeQuitting(t *testing.T) {
	r := registry.New()
	tab := r.AddTab("Input")
	tab.AddBool("Repeat", "repeat", "input", "")
	menu := r.AddSubmenu(tab, "Touchpad...", "touchpad", "Touchpad")
	menu.AddBool("Natural Scroll", "natural_scroll", "touchpad", "")

	e, err := New(Config{Title: "hyprland", Store: sampleStore(t), Registry: r})
	if err != nil {
		t.Fatal(err)
	}

	e.nav.row = 1
	if !e.nav.drillDown() {
		t.Fatal("drillDown failed")
	}
	if e.handleKey(input.KeyEvent{Key: input.KeyEscape}) {
		t.Error("escape inside a submenu should go back, not quit")
	}
	if e.nav.menu != nil {
		t.Error("still inside the submenu after escape")
	}
	if !e.handleKey(input.KeyEvent{Key: input.KeyEscape}) {
		t.Error("second escape should quit")
	}
}

func TestMouseScrollNavigates(t *testing.T) {
	e := newTestEngine(t, nil)

	e.handleMouse(input.MouseEvent{Button: input.ButtonScrollDown, Press: true})
	if e.nav.row != 1 {
		t.Errorf("row = %d after scroll down, want 1", e.nav.row)
	}
	e.handleMouse(input.MouseEvent{Button: input.ButtonScrollUp, Press: true})
	if e.nav.row != 0 {
		t.Errorf("row = %d after scroll up, want 0", e.nav.row)
	}

	// Releases are ignored.
	e.handleMouse(input.MouseEvent{Button: input.ButtonScrollDown, Press: false})
	if e.nav.row != 0 {
		t.Errorf("row = %d after release, want 0", e.nav.row)
	}
}

func TestMouseClickSelectsItemAndSwitchesTab(t *testing.T) {
	e := newTestEngine(t, nil)

	out, err := os.CreateTemp(t.TempDir(), "frame")
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	e.out = out
	e.draw()

	if e.itemTop == 0 || len(e.zones) != 2 {
		t.Fatalf("draw did not record mouse geometry: itemTop=%d zones=%d", e.itemTop, len(e.zones))
	}

	// Click the third visible item row.
	e.handleMouse(input.MouseEvent{
		Button: input.ButtonLeft,
		Col:    10,
		Row:    e.itemTop + 2,
		Press:  true,
	})
	if e.nav.row != 2 {
		t.Errorf("row = %d after item click, want 2", e.nav.row)
	}

	// Click inside the second tab's zone on the tab strip row.
	z := e.zones[1]
	e.handleMouse(input.MouseEvent{
		Button: input.ButtonLeft,
		Col:    z.start,
		Row:    3,
		Press:  true,
	})
	if e.nav.tab != 1 {
		t.Errorf("tab = %d after tab click, want 1", e.nav.tab)
	}
	if v := e.values["Gaps In"]; !v.Set {
		t.Error("values not reloaded after tab click")
	}

	// A click below the item window is ignored.
	e.handleMouse(input.MouseEvent{
		Button: input.ButtonLeft,
		Col:    10,
		Row:    e.itemTop + e.window + 3,
		Press:  true,
	})
	if e.nav.tab != 1 || e.nav.row != 0 {
		t.Error("click outside the frame changed state")
	}
}

func TestSignalErrorExitCode(t *testing.T) {
	err := &SignalError{Sig: os.Interrupt}
	if got := err.ExitCode(); got != 130 {
		t.Errorf("ExitCode for SIGINT = %d, want 130", got)
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
