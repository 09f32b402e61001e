// Package guard implements the long-running salah guard: a poll loop that
// warns six minutes before each prayer and locks the screen five minutes
// before it, each at most once per prayer per day.
//
// The warning/lock debounce lives in process memory only: a guard
// restarted inside a trigger window re-fires once. This mirrors the
// persisted-but-separate notification debouncer and is reported through
// guard.status rather than papered over.
package guard

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/notify"
	"github.com/salahbar/salahbar/internal/salah"
	"github.com/salahbar/salahbar/internal/timetable"
	"github.com/salahbar/salahbar/pkg/logger"
)

// Defaults for the poll loop.
const (
	DefaultInterval = 10 * time.Second
	DefaultGrace    = 3 * time.Second
)

// Trigger windows in minutes relative to the prayer time (negative =
// before). Each window is one poll-proof minute wide; warning precedes
// lock by exactly one minute.
const (
	warningFrom = -6.0
	warningTo   = -5.0
	lockFrom    = -5.0
	lockTo      = -4.0
)

// Source supplies the current timetable; normally the cache-backed store.
type Source interface {
	Timetable(ctx context.Context, now time.Time) (*timetable.Timetable, error)
}

// Config tunes the guard loop. Zero values take the defaults.
type Config struct {
	Interval time.Duration
	Grace    time.Duration
}

// Guard is the poll loop plus its in-process debounce state.
type Guard struct {
	source   Source
	notifier notify.Notifier
	locker   Locker
	clock    Clock
	journal  notify.Recorder
	log      logger.Logger
	interval time.Duration
	grace    time.Duration

	mu               sync.Mutex
	lastLockedPrayer string
	warningSentFor   string
	status           common.GuardStatus
}

// New creates a Guard. journal may be nil; a nil clock gets RealClock.
func New(source Source, notifier notify.Notifier, locker Locker, clock Clock, journal notify.Recorder, log logger.Logger, cfg Config) *Guard {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Grace <= 0 {
		cfg.Grace = DefaultGrace
	}
	return &Guard{
		source:   source,
		notifier: notifier,
		locker:   locker,
		clock:    clock,
		journal:  journal,
		log:      log,
		interval: cfg.Interval,
		grace:    cfg.Grace,
	}
}

// Run polls until ctx is cancelled. A failed tick is a no-op tick; the
// loop itself never stops early.
func (g *Guard) Run(ctx context.Context) error {
	g.log.Info("salah guard active, locking before each prayer")
	for {
		g.safeTick(ctx)
		select {
		case <-ctx.Done():
			g.log.Info("salah guard stopped")
			return nil
		case <-g.clock.After(g.interval):
		}
	}
}

// Status reports the guard's view of the schedule and its debounce state.
func (g *Guard) Status() common.GuardStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *Guard) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("tick panic: %v\n%s", r, debug.Stack())
		}
	}()
	g.tick(ctx)
}

func (g *Guard) tick(ctx context.Context) {
	now := g.clock.Now()

	tt, err := g.source.Timetable(ctx, now)
	if err != nil {
		g.log.Warning("tick skipped: %v", err)
		return
	}

	g.updateStatus(tt, now)

	for _, name := range timetable.PrayerNames {
		value, ok := tt.Times[name]
		if !ok {
			continue
		}
		at, err := salah.ParseClock(now, value)
		if err != nil {
			g.log.Warning("unparseable time for %s: %v", name, err)
			continue
		}
		diff := now.Sub(at).Minutes()

		switch {
		case diff >= warningFrom && diff < warningTo:
			g.warn(name)
		case diff >= lockFrom && diff < lockTo:
			g.lock(name)
		}
	}
}

func (g *Guard) warn(name string) {
	g.mu.Lock()
	already := g.warningSentFor == name
	if !already {
		g.warningSentFor = name
		g.status.WarningSentFor = name
	}
	g.mu.Unlock()
	if already {
		return
	}

	g.notify("⚠️ Salah Guard", fmt.Sprintf("System will lock in 1 minute for %s.", name))
	g.record(common.EventWarning, name, "")
}

func (g *Guard) lock(name string) {
	g.mu.Lock()
	already := g.lastLockedPrayer == name
	g.mu.Unlock()
	if already {
		return
	}

	g.log.Info("locking for %s", name)
	g.notify("🔒 Salah Guard", fmt.Sprintf("Time to prepare for %s. Locking system.", name))
	g.clock.Sleep(g.grace)
	if err := g.locker.Lock(); err != nil {
		g.log.Error("lock command failed: %v", err)
	}
	g.record(common.EventLock, name, "")

	g.mu.Lock()
	g.lastLockedPrayer = name
	g.warningSentFor = ""
	g.status.LastLockedPrayer = name
	g.status.WarningSentFor = ""
	g.mu.Unlock()
}

func (g *Guard) notify(summary, body string) {
	if err := g.notifier.Notify(notify.UrgencyCritical, summary, body); err != nil {
		g.log.Error("notification failed: %v", err)
	}
}

func (g *Guard) record(kind, prayer, detail string) {
	if g.journal == nil {
		return
	}
	if err := g.journal.Record(kind, prayer, detail); err != nil {
		g.log.Warning("journal write failed: %v", err)
	}
}

func (g *Guard) updateStatus(tt *timetable.Timetable, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status.CacheDate = tt.Date
	g.status.Location = tt.Location.Label
	g.status.Offline = tt.Offline

	next, err := salah.Evaluate(tt.Times, now)
	if err != nil {
		return
	}
	g.status.NextPrayer = next.Name
	g.status.MinutesLeft = next.Minutes
	g.status.Tomorrow = next.Tomorrow
}
