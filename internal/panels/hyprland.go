package panels

import "github.com/duskydots/duskytune/internal/registry"

func hyprlandPanel() Panel {
	return Panel{
		Name:  "hyprland",
		Short: "Edit hyprland.conf (layout, decoration, animations, input)",
		Title: "Hyprland",
		File:  "hyprland.conf",
		Hook:  []string{"hyprctl", "reload"},
		Build: buildHyprland,
	}
}

func buildHyprland() *registry.Registry {
	r := registry.New()

	general := r.AddTab("General")
	general.AddInt("Inner Gaps", "gaps_in", "general",
		registry.IntSpec{Min: 0, Max: 50, Step: 1, Bounded: true}, "5")
	general.AddInt("Outer Gaps", "gaps_out", "general",
		registry.IntSpec{Min: 0, Max: 100, Step: 2, Bounded: true}, "20")
	general.AddInt("Border Size", "border_size", "general",
		registry.IntSpec{Min: 0, Max: 10, Step: 1, Bounded: true}, "2")
	general.AddBool("Resize On Border", "resize_on_border", "general", "false")
	general.AddCycle("Layout", "layout", "general",
		[]string{"dwindle", "master"}, "dwindle")

	deco := r.AddTab("Decoration")
	deco.AddInt("Rounding", "rounding", "decoration",
		registry.IntSpec{Min: 0, Max: 30, Step: 1, Bounded: true}, "10")
	deco.AddFloat("Active Opacity", "active_opacity", "decoration",
		registry.FloatSpec{Min: 0.5, Max: 1.0, Step: 0.05, Bounded: true}, "1.0")
	deco.AddFloat("Inactive Opacity", "inactive_opacity", "decoration",
		registry.FloatSpec{Min: 0.5, Max: 1.0, Step: 0.05, Bounded: true}, "0.9")
	deco.AddBool("Dim Inactive", "dim_inactive", "decoration", "false")
	blur := r.AddSubmenu(deco, "Blur...", "blur", "Blur")
	blur.AddBool("Enabled", "enabled", "blur", "true")
	blur.AddInt("Size", "size", "blur",
		registry.IntSpec{Min: 1, Max: 20, Step: 1, Bounded: true}, "8")
	blur.AddInt("Passes", "passes", "blur",
		registry.IntSpec{Min: 1, Max: 4, Step: 1, Bounded: true}, "2")
	blur.AddFloat("Vibrancy", "vibrancy", "blur",
		registry.FloatSpec{Min: 0, Max: 1, Step: 0.05, Bounded: true}, "0.2")

	anim := r.AddTab("Animations")
	anim.AddBool("Enabled", "enabled", "animations", "true")
	anim.AddBool("First Launch Animation", "first_launch_animation", "animations", "true")

	in := r.AddTab("Input")
	in.AddFloat("Sensitivity", "sensitivity", "input",
		registry.FloatSpec{Min: -1.0, Max: 1.0, Step: 0.1, Bounded: true}, "0")
	in.AddInt("Repeat Rate", "repeat_rate", "input",
		registry.IntSpec{Min: 5, Max: 100, Step: 5, Bounded: true}, "25")
	in.AddInt("Repeat Delay", "repeat_delay", "input",
		registry.IntSpec{Min: 100, Max: 2000, Step: 50, Bounded: true}, "600")
	in.AddBool("Numlock By Default", "numlock_by_default", "input", "false")
	touchpad := r.AddSubmenu(in, "Touchpad...", "touchpad", "Touchpad")
	touchpad.AddBool("Natural Scroll", "natural_scroll", "touchpad", "false")
	touchpad.AddBool("Tap To Click", "tap-to-click", "touchpad", "true")
	touchpad.AddBool("Disable While Typing", "disable_while_typing", "touchpad", "true")
	touchpad.AddFloat("Scroll Factor", "scroll_factor", "touchpad",
		registry.FloatSpec{Min: 0.1, Max: 3.0, Step: 0.1, Bounded: true}, "1.0")

	misc := r.AddTab("Misc")
	misc.AddBool("Disable Hyprland Logo", "disable_hyprland_logo", "misc", "true")
	misc.AddBool("Variable Refresh", "vfr", "misc", "true")
	misc.AddBool("Focus On Activate", "focus_on_activate", "misc", "false")
	misc.AddInt("Default Wallpaper", "force_default_wallpaper", "misc",
		registry.IntSpec{Min: -1, Max: 2, Step: 1, Bounded: true}, "0")

	return r
}
