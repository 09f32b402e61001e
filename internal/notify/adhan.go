package notify

import (
	"os/exec"

	"github.com/spf13/afero"

	"github.com/salahbar/salahbar/pkg/logger"
)

// startCommand launches a fire-and-forget external process. Overridable in
// tests so no player is actually spawned.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// PlayAdhan starts the adhan audio asset with mpv. A missing asset or a
// failed spawn is logged and swallowed: the notification it accompanies
// has already fired and must stand on its own.
func PlayAdhan(fs afero.Fs, path string, log logger.Logger) {
	if ok, err := afero.Exists(fs, path); err != nil || !ok {
		return
	}
	if err := startCommand("mpv", "--no-terminal", "--volume=15", path); err != nil {
		log.Warning("adhan playback failed: %v", err)
	}
}
