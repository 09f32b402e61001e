package notify

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/pkg/logger"
)

// State is the last notification threshold crossed for the currently
// tracked prayer, persisted so independent short-lived evaluations share
// one history.
type State string

const (
	StateNone State = ""
	StateSoon State = "soon"
	StateNow  State = "now"
)

// target maps a countdown to the state it should be in.
func target(minutes int) State {
	switch {
	case minutes == 0:
		return StateNow
	case minutes > 0 && minutes <= 15:
		return StateSoon
	default:
		return StateNone
	}
}

// Debouncer fires the "prepare" and "time for salah" actions exactly once
// per threshold crossing. The real guarantee is at-most-one-fire-per-run:
// the state is persisted immediately after an action, so a crash in
// between costs a duplicate at worst, never a storm.
type Debouncer struct {
	fs        afero.Fs
	path      string
	notifier  Notifier
	adhanPath string
	journal   Recorder
	log       logger.Logger
}

// NewDebouncer creates a Debouncer persisting to the given state file.
// journal may be nil.
func NewDebouncer(fs afero.Fs, path string, notifier Notifier, adhanPath string, journal Recorder, log logger.Logger) *Debouncer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Debouncer{
		fs:        fs,
		path:      path,
		notifier:  notifier,
		adhanPath: adhanPath,
		journal:   journal,
		log:       log,
	}
}

// Observe feeds one evaluation result through the state machine, firing
// whatever one-shot action the transition calls for.
func (d *Debouncer) Observe(prayer string, minutes int) error {
	cur := target(minutes)
	last := d.load()
	if cur == last {
		return nil
	}

	switch cur {
	case StateSoon:
		d.send(UrgencyCritical, "⏳ Prepare for Salah",
			fmt.Sprintf("%s is in %d min.", prayer, minutes))
		d.record(common.EventPrepare, prayer, fmt.Sprintf("%d min", minutes))
	case StateNow:
		d.send(UrgencyCritical, "🕌 It is time for Salah",
			fmt.Sprintf("Time for %s.", prayer))
		PlayAdhan(d.fs, d.adhanPath, d.log)
		d.record(common.EventAdhan, prayer, "")
	case StateNone:
		// Countdown left the window; just clear the history.
	}

	return d.persist(cur)
}

func (d *Debouncer) send(urgency Urgency, summary, body string) {
	if err := d.notifier.Notify(urgency, summary, body); err != nil {
		// Still persist the transition afterwards: a missed notification
		// beats a repeating one.
		d.log.Error("notification failed: %v", err)
	}
}

func (d *Debouncer) record(kind, prayer, detail string) {
	if d.journal == nil {
		return
	}
	if err := d.journal.Record(kind, prayer, detail); err != nil {
		d.log.Warning("journal write failed: %v", err)
	}
}

func (d *Debouncer) load() State {
	data, err := afero.ReadFile(d.fs, d.path)
	if err != nil {
		return StateNone
	}
	switch State(strings.TrimSpace(string(data))) {
	case StateSoon:
		return StateSoon
	case StateNow:
		return StateNow
	default:
		return StateNone
	}
}

func (d *Debouncer) persist(s State) error {
	if err := d.fs.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(d.fs, d.path, []byte(s), 0644)
}
