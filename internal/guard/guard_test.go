package guard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/salahbar/salahbar/internal/notify"
	"github.com/salahbar/salahbar/internal/timetable"
	"github.com/salahbar/salahbar/pkg/logger"
)

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
	tick  chan time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now, tick: make(chan time.Time)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time { return c.tick }

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = append(c.slept, d)
}

func (c *fakeClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fakeSource struct {
	tt  *timetable.Timetable
	err error
}

func (f *fakeSource) Timetable(ctx context.Context, now time.Time) (*timetable.Timetable, error) {
	return f.tt, f.err
}

type panicSource struct{}

func (panicSource) Timetable(ctx context.Context, now time.Time) (*timetable.Timetable, error) {
	panic("boom")
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeNotifier) Notify(urgency notify.Urgency, summary, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, summary+" | "+body)
	return nil
}

func (f *fakeNotifier) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeLocker struct {
	mu    sync.Mutex
	locks int
}

func (f *fakeLocker) Lock() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locks++
	return nil
}

func (f *fakeLocker) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks
}

func testGuardTimetable() *timetable.Timetable {
	return &timetable.Timetable{
		Date: "14-03-2026",
		Times: map[string]string{
			"Fajr":    "05:00",
			"Dhuhr":   "12:00",
			"Asr":     "15:30",
			"Maghrib": "18:45",
			"Isha":    "20:00",
		},
		Location: timetable.Location{Label: "Europe/Berlin"},
	}
}

// dhuhrAt returns a clock instant offset from the 12:00 Dhuhr anchor by
// the given signed minutes.
func dhuhrAt(min float64) time.Time {
	anchor := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	return anchor.Add(time.Duration(min * float64(time.Minute)))
}

func newTestGuard(src Source) (*Guard, *fakeNotifier, *fakeLocker, *fakeClock) {
	n := &fakeNotifier{}
	l := &fakeLocker{}
	c := newFakeClock(dhuhrAt(-30))
	g := New(src, n, l, c, nil, logger.NewNopLogger(), Config{})
	return g, n, l, c
}

func TestTick_WarningThenLockExactlyOnce(t *testing.T) {
	g, n, l, c := newTestGuard(&fakeSource{tt: testGuardTimetable()})

	// Approach Dhuhr through both windows with uneven tick spacing.
	for _, offset := range []float64{-7, -6, -5.5, -5, -4.5, -3} {
		c.set(dhuhrAt(offset))
		g.tick(context.Background())
	}

	calls := n.all()
	var warnings, locks []int
	for i, call := range calls {
		if strings.Contains(call, "lock in 1 minute") {
			warnings = append(warnings, i)
		}
		if strings.Contains(call, "Locking system") {
			locks = append(locks, i)
		}
	}
	if len(warnings) != 1 {
		t.Fatalf("warning fired %d times, want 1 (calls: %v)", len(warnings), calls)
	}
	if len(locks) != 1 {
		t.Fatalf("lock notice fired %d times, want 1 (calls: %v)", len(locks), calls)
	}
	if warnings[0] > locks[0] {
		t.Errorf("warning after lock: %v", calls)
	}
	if l.count() != 1 {
		t.Errorf("locker invoked %d times, want 1", l.count())
	}
	if len(c.slept) != 1 || c.slept[0] != DefaultGrace {
		t.Errorf("grace sleep = %v, want one %v", c.slept, DefaultGrace)
	}
}

func TestTick_RearmsForNextPrayer(t *testing.T) {
	g, _, l, c := newTestGuard(&fakeSource{tt: testGuardTimetable()})

	c.set(dhuhrAt(-4.5))
	g.tick(context.Background())
	if l.count() != 1 {
		t.Fatalf("dhuhr lock count = %d", l.count())
	}

	// Asr is 15:30; -4.5 minutes is 15:25:30.
	c.set(time.Date(2026, 3, 14, 15, 25, 30, 0, time.Local))
	g.tick(context.Background())
	if l.count() != 2 {
		t.Errorf("asr did not re-arm the lock: count = %d", l.count())
	}

	st := g.Status()
	if st.LastLockedPrayer != "Asr" {
		t.Errorf("lastLockedPrayer = %q", st.LastLockedPrayer)
	}
	if st.WarningSentFor != "" {
		t.Errorf("warning state not cleared after lock: %q", st.WarningSentFor)
	}
}

func TestTick_SourceErrorIsNoop(t *testing.T) {
	log := logger.NewMockLogger()
	n := &fakeNotifier{}
	l := &fakeLocker{}
	c := newFakeClock(dhuhrAt(-5.5))
	g := New(&fakeSource{err: errors.New("no cache")}, n, l, c, nil, log, Config{})

	g.safeTick(context.Background())

	if len(n.all()) != 0 || l.count() != 0 {
		t.Error("failed tick produced side effects")
	}
	if len(log.WarningCalls) == 0 {
		t.Error("failed tick not logged")
	}
}

func TestTick_PanicRecovered(t *testing.T) {
	log := logger.NewMockLogger()
	g := New(panicSource{}, &fakeNotifier{}, &fakeLocker{}, newFakeClock(dhuhrAt(0)), nil, log, Config{})

	g.safeTick(context.Background()) // must not propagate

	if len(log.ErrorCalls) == 0 {
		t.Error("panic not logged")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	g, _, _, _ := newTestGuard(&fakeSource{tt: testGuardTimetable()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRun_TicksOnClock(t *testing.T) {
	src := &fakeSource{tt: testGuardTimetable()}
	n := &fakeNotifier{}
	l := &fakeLocker{}
	c := newFakeClock(dhuhrAt(-5.5))
	g := New(src, n, l, c, nil, logger.NewNopLogger(), Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	// First tick happens immediately on entry; advance into the lock
	// window and release one more tick.
	c.set(dhuhrAt(-4.5))
	select {
	case c.tick <- c.Now():
	case <-time.After(2 * time.Second):
		t.Fatal("loop never waited on the clock")
	}

	deadline := time.After(2 * time.Second)
	for l.count() < 1 {
		select {
		case <-deadline:
			t.Fatal("lock window tick never fired")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	cancel()
	<-done
}

func TestStatus_TracksEvaluation(t *testing.T) {
	g, _, _, c := newTestGuard(&fakeSource{tt: testGuardTimetable()})

	c.set(dhuhrAt(-5)) // 11:55
	g.tick(context.Background())

	st := g.Status()
	if st.NextPrayer != "Dhuhr" || st.MinutesLeft != 5 {
		t.Errorf("status = %+v, want Dhuhr in 5", st)
	}
	if st.CacheDate != "14-03-2026" || st.Location != "Europe/Berlin" {
		t.Errorf("status cache fields = %+v", st)
	}
}
