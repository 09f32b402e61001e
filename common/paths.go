package common

import (
	"os"
	"path/filepath"
)

// Default file locations. Every path can be overridden through the
// corresponding environment variable; the defaults match the ones the
// waybar/hyprland collaborator scripts read.
const (
	defaultCacheName   = "salahbar_prayers.json"
	defaultStateName   = "salahbar_prayer_state"
	defaultJournalName = "salahbar_journal.db"
	defaultSocketName  = "salahbar_guard.sock"
	defaultAdhanName   = "adhan.mp3"

	// EnvFileName is the optional dotenv file read at startup.
	EnvFileName = "salahbar.env"
)

// ConfigDir returns the salahbar configuration directory
// (~/.config/salahbar). The directory is not created here.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "salahbar")
}

func cacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cache")
}

// CacheFile returns the prayer timetable cache file path.
func CacheFile() string {
	if p := os.Getenv(CacheFileEnv); p != "" {
		return p
	}
	return filepath.Join(cacheDir(), defaultCacheName)
}

// StateFile returns the notification state file path. It lives under the
// temp dir so the debounce state resets on reboot, like the cache of a
// fresh day.
func StateFile() string {
	if p := os.Getenv(StateFileEnv); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), defaultStateName)
}

// JournalFile returns the sqlite event journal path.
func JournalFile() string {
	if p := os.Getenv(JournalFileEnv); p != "" {
		return p
	}
	return filepath.Join(cacheDir(), defaultJournalName)
}

// SocketPath returns the guard control socket path.
func SocketPath() string {
	if p := os.Getenv(SocketPathEnv); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), defaultSocketName)
}

// AdhanFile returns the adhan audio asset path.
func AdhanFile() string {
	if p := os.Getenv(AdhanFileEnv); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), defaultAdhanName)
}
