package panels

import "github.com/duskydots/duskytune/internal/registry"

func sunsetPanel() Panel {
	return Panel{
		Name:  "sunset",
		Short: "Edit hyprsunset.conf (screen temperature and gamma)",
		Title: "Hyprsunset",
		File:  "hyprsunset.conf",
		Hook:  []string{"systemctl", "--user", "restart", "hyprsunset.service"},
		Build: buildSunset,
	}
}

func buildSunset() *registry.Registry {
	r := registry.New()

	tab := r.AddTab("Sunset")
	tab.AddInt("Temperature (K)", "temperature", "general",
		registry.IntSpec{Min: 1000, Max: 10000, Step: 250, Bounded: true}, "6000")
	tab.AddInt("Max Gamma (%)", "max-gamma", "general",
		registry.IntSpec{Min: 50, Max: 200, Step: 10, Bounded: true}, "100")
	tab.AddBool("Identity At Day", "identity", "general", "true")

	return r
}
