package panels

import "github.com/duskydots/duskytune/internal/registry"

// hyprlock reads its config when it launches, so this panel has no hook.
func lockPanel() Panel {
	return Panel{
		Name:  "lock",
		Short: "Edit hyprlock.conf (lock screen appearance)",
		Title: "Hyprlock",
		File:  "hyprlock.conf",
		Build: buildLock,
	}
}

func buildLock() *registry.Registry {
	r := registry.New()

	bg := r.AddTab("Background")
	bg.AddInt("Blur Passes", "blur_passes", "background",
		registry.IntSpec{Min: 0, Max: 5, Step: 1, Bounded: true}, "2")
	bg.AddInt("Blur Size", "blur_size", "background",
		registry.IntSpec{Min: 1, Max: 20, Step: 1, Bounded: true}, "7")
	bg.AddFloat("Brightness", "brightness", "background",
		registry.FloatSpec{Min: 0.1, Max: 1.5, Step: 0.1, Bounded: true}, "0.8")
	bg.AddFloat("Contrast", "contrast", "background",
		registry.FloatSpec{Min: 0.1, Max: 2.0, Step: 0.1, Bounded: true}, "0.9")

	field := r.AddTab("Input Field")
	field.AddBool("Fade On Empty", "fade_on_empty", "input-field", "true")
	field.AddBool("Hide Input", "hide_input", "input-field", "false")
	field.AddInt("Rounding", "rounding", "input-field",
		registry.IntSpec{Min: -1, Max: 50, Step: 1, Bounded: true}, "-1")
	field.AddFloat("Dot Size", "dots_size", "input-field",
		registry.FloatSpec{Min: 0.1, Max: 1.0, Step: 0.05, Bounded: true}, "0.33")

	label := r.AddTab("Label")
	label.AddInt("Font Size", "font_size", "label",
		registry.IntSpec{Min: 8, Max: 120, Step: 2, Bounded: true}, "24")
	label.AddCycle("Horizontal Align", "halign", "label",
		[]string{"left", "center", "right"}, "center")
	label.AddCycle("Vertical Align", "valign", "label",
		[]string{"top", "center", "bottom"}, "center")

	return r
}
