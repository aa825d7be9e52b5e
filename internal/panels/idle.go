package panels

import "github.com/duskydots/duskytune/internal/registry"

func idlePanel() Panel {
	return Panel{
		Name:  "idle",
		Short: "Edit hypridle.conf (idle timeouts and inhibitors)",
		Title: "Hypridle",
		File:  "hypridle.conf",
		Hook:  []string{"systemctl", "--user", "restart", "hypridle.service"},
		Build: buildIdle,
	}
}

func buildIdle() *registry.Registry {
	r := registry.New()

	general := r.AddTab("General")
	general.AddBool("Ignore DBus Inhibit", "ignore_dbus_inhibit", "general", "false")
	general.AddBool("Ignore Systemd Inhibit", "ignore_systemd_inhibit", "general", "false")
	general.AddBool("Inhibit Sleep", "inhibit_sleep", "general", "true")

	listener := r.AddTab("Listener")
	listener.AddInt("Idle Timeout (s)", "timeout", "listener",
		registry.IntSpec{Min: 60, Max: 3600, Step: 60, Bounded: true}, "300")

	return r
}
