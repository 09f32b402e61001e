package cmd

import "time"

const (
	// DefaultLockCommand is the screen locker spawned by the guard.
	DefaultLockCommand = "hyprlock"

	// DefaultStopTimeout bounds the guard.stop RPC round trip.
	DefaultStopTimeout = 5 * time.Second
)

const DESCRIPTION = `
Salahbar keeps the five daily prayers on your status bar. It fetches
the day's timetable once, caches it, and renders a waybar JSON record
with the next prayer and a countdown. The guard daemon warns you six
minutes before each prayer and locks the screen five minutes before.
`

const (
	StatusDescription = `The status command evaluates the next prayer and prints one
waybar JSON record on stdout. It also fires the "prepare" and
"time for salah" notifications when the countdown crosses their
thresholds, at most once per crossing.

Intended to be called from a waybar custom module every minute.

Example:
        salahbar status

`
	GuardDescription = `The guard command runs the salah guard daemon. It polls the
timetable, sends a warning notification six minutes before each
prayer and locks the screen five minutes before it, each at most
once per prayer. A control socket accepts status and stop requests.

Example:
        salahbar guard

`
	StopDescription = `The stop command shuts down a running guard daemon, first over
its control socket and, failing that, by signalling the process
recorded in the pid file.

Example:
        salahbar stop

`
	TimesDescription = `The times command prints today's prayer timetable in plain text,
fetching or refreshing the cache as needed.

Example:
        salahbar times

`
	QiblaDescription = `The qibla command prints the direction of the Kaaba from your
current location as a compass bearing and an octant.

Example:
        salahbar qibla

`
	LogDescription = `The log command lists recent notification and lock events from
the journal, newest first.

Example:
        salahbar log
        salahbar log -n 50

`
)
