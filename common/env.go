// Package common provides shared types and constants used across the salahbar
// CLI and the guard daemon, including environment variable names, RPC method
// names, and default file locations.
package common

// Environment variable names for configuration.
const (
	// CacheFileEnv overrides the prayer timetable cache file path.
	CacheFileEnv = "SALAHBAR_CACHE_FILE"

	// StateFileEnv overrides the notification state file path.
	StateFileEnv = "SALAHBAR_STATE_FILE"

	// AdhanFileEnv overrides the adhan audio asset path.
	AdhanFileEnv = "SALAHBAR_ADHAN_FILE"

	// JournalFileEnv overrides the sqlite event journal path.
	JournalFileEnv = "SALAHBAR_JOURNAL_FILE"

	// SocketPathEnv overrides the guard control socket path.
	SocketPathEnv = "SALAHBAR_SOCKET_PATH"

	// LockCommandEnv overrides the screen lock command.
	LockCommandEnv = "SALAHBAR_LOCK_CMD"

	// MethodEnv overrides the AlAdhan calculation method id.
	MethodEnv = "SALAHBAR_METHOD"

	// PollIntervalEnv overrides the guard poll interval (Go duration string).
	PollIntervalEnv = "SALAHBAR_POLL_INTERVAL"
)
