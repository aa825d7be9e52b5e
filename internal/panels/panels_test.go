package panels

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAllPanelsAreWellFormed(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("got %d panels, want 5", len(all))
	}

	seen := make(map[string]bool)
	for _, p := range all {
		if p.Name == "" || p.Title == "" || p.Short == "" || p.File == "" {
			t.Errorf("panel %q has empty metadata: %+v", p.Name, p)
		}
		if seen[p.Name] {
			t.Errorf("duplicate panel name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Build == nil {
			t.Errorf("panel %q has no registry builder", p.Name)
			continue
		}
		// Building must not panic and must declare at least one tab.
		r := p.Build()
		if len(r.Tabs()) == 0 {
			t.Errorf("panel %q declares no tabs", p.Name)
		}
	}
}

func TestConfigPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p := hyprlandPanel()
	got, err := p.ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg", "hypr", "hyprland.conf")
	if got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}

func TestConfigPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/dusky")

	p := sunsetPanel()
	got, err := p.ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, filepath.Join(".config", "hypr", "hyprsunset.conf")) {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestBordersPathIsNested(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p := bordersPanel()
	got, err := p.ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg", "hypr", "dusky", "borders.conf")
	if got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}

func TestHookFunc(t *testing.T) {
	if lockPanel().HookFunc() != nil {
		t.Error("lock panel should have no hook")
	}
	if hyprlandPanel().HookFunc() == nil {
		t.Error("hyprland panel should have a hook")
	}

	// A hook whose command cannot start must not panic or propagate.
	hook := HookCommand([]string{"/nonexistent/binary/for/test"})
	hook()
}

func TestHyprlandSubmenus(t *testing.T) {
	r := buildHyprland()

	found := 0
	for _, tab := range r.Tabs() {
		for _, it := range tab.Items {
			if it.Menu != nil {
				found++
				if len(it.Menu.Items) == 0 {
					t.Errorf("submenu %q is empty", it.Label)
				}
			}
		}
	}
	if found != 2 {
		t.Errorf("got %d submenus, want 2 (Blur, Touchpad)", found)
	}
}
