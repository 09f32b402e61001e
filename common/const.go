package common

// JSON-RPC method names served by the guard control socket.
const (
	MethodGuardStatus = "guard.status"
	MethodGuardStop   = "guard.stop"
	MethodVersion     = "system.getVersion"
)

// Journal event kinds.
const (
	EventPrepare = "prepare"
	EventAdhan   = "adhan"
	EventWarning = "warning"
	EventLock    = "lock"
)
