package panels

import "github.com/duskydots/duskytune/internal/registry"

// borders edits the Dusky decoration override file that hyprland.conf
// sources, so a reload of the compositor picks it up.
func bordersPanel() Panel {
	return Panel{
		Name:  "borders",
		Short: "Edit the Dusky border override file",
		Title: "Dusky Borders",
		File:  "dusky/borders.conf",
		Hook:  []string{"hyprctl", "reload"},
		Build: buildBorders,
	}
}

func buildBorders() *registry.Registry {
	r := registry.New()

	tab := r.AddTab("Borders")
	tab.AddInt("Border Size", "border_size", "general",
		registry.IntSpec{Min: 0, Max: 12, Step: 1, Bounded: true}, "2")
	tab.AddBool("No Border On Floating", "no_border_on_floating", "general", "false")
	tab.AddInt("Rounding", "rounding", "decoration",
		registry.IntSpec{Min: 0, Max: 30, Step: 1, Bounded: true}, "10")
	tab.AddInt("Gradient Angle", "gradient_angle", "general",
		registry.IntSpec{Min: 0, Max: 360, Step: 15, Bounded: true}, "45")

	return r
}
