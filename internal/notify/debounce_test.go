package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/salahbar/salahbar/pkg/logger"
)

const statePath = "/tmp/salahbar_prayer_state"

type mockNotifier struct {
	calls []string
	err   error
}

func (m *mockNotifier) Notify(urgency Urgency, summary, body string) error {
	m.calls = append(m.calls, summary+" | "+body)
	return m.err
}

type mockRecorder struct {
	kinds []string
}

func (m *mockRecorder) Record(kind, prayer, detail string) error {
	m.kinds = append(m.kinds, kind+":"+prayer)
	return nil
}

func newTestDebouncer(t *testing.T) (*Debouncer, *mockNotifier, *mockRecorder) {
	t.Helper()
	n := &mockNotifier{}
	r := &mockRecorder{}
	d := NewDebouncer(afero.NewMemMapFs(), statePath, n, "/nonexistent/adhan.mp3", r, logger.NewNopLogger())
	return d, n, r
}

func TestObserve_FiresOncePerCrossing(t *testing.T) {
	d, n, r := newTestDebouncer(t)

	// A whole approach: far, soon window, now, then past the prayer.
	for _, minutes := range []int{20, 14, 10, 1, 0, 310} {
		if err := d.Observe("Dhuhr", minutes); err != nil {
			t.Fatalf("Observe(%d): %v", minutes, err)
		}
	}

	var soon, now int
	for _, c := range n.calls {
		if strings.Contains(c, "Prepare") {
			soon++
		}
		if strings.Contains(c, "time for Salah") {
			now++
		}
	}
	if soon != 1 {
		t.Errorf("prepare fired %d times, want exactly 1 (calls: %v)", soon, n.calls)
	}
	if now != 1 {
		t.Errorf("now fired %d times, want exactly 1 (calls: %v)", now, n.calls)
	}
	if len(r.kinds) != 2 || r.kinds[0] != "prepare:Dhuhr" || r.kinds[1] != "adhan:Dhuhr" {
		t.Errorf("journal kinds = %v", r.kinds)
	}
}

func TestObserve_MessageContents(t *testing.T) {
	d, n, _ := newTestDebouncer(t)

	d.Observe("Asr", 14)
	if len(n.calls) != 1 || n.calls[0] != "⏳ Prepare for Salah | Asr is in 14 min." {
		t.Errorf("prepare call = %v", n.calls)
	}

	d.Observe("Asr", 0)
	if len(n.calls) != 2 || n.calls[1] != "🕌 It is time for Salah | Time for Asr." {
		t.Errorf("now call = %v", n.calls)
	}
}

func TestObserve_StatePersistsAcrossInstances(t *testing.T) {
	fs := afero.NewMemMapFs()
	n1 := &mockNotifier{}
	d1 := NewDebouncer(fs, statePath, n1, "", nil, logger.NewNopLogger())
	if err := d1.Observe("Maghrib", 12); err != nil {
		t.Fatal(err)
	}
	if len(n1.calls) != 1 {
		t.Fatalf("first run fired %d times", len(n1.calls))
	}

	// A fresh process (new Debouncer over the same file) sees the history.
	n2 := &mockNotifier{}
	d2 := NewDebouncer(fs, statePath, n2, "", nil, logger.NewNopLogger())
	if err := d2.Observe("Maghrib", 9); err != nil {
		t.Fatal(err)
	}
	if len(n2.calls) != 0 {
		t.Errorf("second run re-fired: %v", n2.calls)
	}
}

func TestObserve_ResetAfterWindow(t *testing.T) {
	fs := afero.NewMemMapFs()
	n := &mockNotifier{}
	d := NewDebouncer(fs, statePath, n, "", nil, logger.NewNopLogger())

	d.Observe("Isha", 5)
	d.Observe("Isha", 200) // countdown now points far at the next prayer

	data, err := afero.ReadFile(fs, statePath)
	if err != nil {
		t.Fatalf("state file: %v", err)
	}
	if string(data) != "" {
		t.Errorf("state = %q, want cleared", data)
	}

	// The next prayer's soon window fires again.
	d.Observe("Fajr", 15)
	if len(n.calls) != 2 {
		t.Errorf("expected a second prepare after reset, got %v", n.calls)
	}
}

func TestObserve_NotifierFailureStillPersists(t *testing.T) {
	fs := afero.NewMemMapFs()
	n := &mockNotifier{err: errFailed}
	log := logger.NewMockLogger()
	d := NewDebouncer(fs, statePath, n, "", nil, log)

	if err := d.Observe("Dhuhr", 10); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	data, _ := afero.ReadFile(fs, statePath)
	if string(data) != "soon" {
		t.Errorf("state = %q, want soon despite notify failure", data)
	}
	if len(log.ErrorCalls) == 0 {
		t.Error("notify failure not logged")
	}
}

var errFailed = errors.New("session bus gone")
