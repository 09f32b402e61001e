// Package notify drives the outbound side effects: desktop notifications
// over D-Bus, the best-effort adhan audio cue, and the persisted
// notification debouncer that keeps repeated evaluations from re-firing.
package notify

// Urgency levels per the freedesktop notification spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// ExpireTimeout is how long notifications stay up (15 minutes), matching
// the length of the "prepare" window.
const ExpireTimeout = 900000 // milliseconds

// Notifier sends a desktop notification. Implementations must be safe to
// call from the guard loop; a failed send is the caller's to log, never to
// escalate.
type Notifier interface {
	Notify(urgency Urgency, summary, body string) error
}

// Recorder persists fired events to the journal. All writes are
// best-effort: a nil Recorder or a write error never blocks a
// notification.
type Recorder interface {
	Record(kind, prayer, detail string) error
}
