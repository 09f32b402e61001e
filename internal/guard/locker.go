package guard

import "os/exec"

// startCommand launches the lock command without awaiting completion.
// Overridable in tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Locker performs the screen-lock action.
type Locker interface {
	Lock() error
}

// CommandLocker locks by spawning an external command (hyprlock by
// default). The command is not awaited; it owns the session from here.
type CommandLocker struct {
	Command string
}

// Lock spawns the lock command.
func (l CommandLocker) Lock() error {
	return startCommand(l.Command)
}

var _ Locker = CommandLocker{}
