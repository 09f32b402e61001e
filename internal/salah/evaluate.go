// Package salah computes which prayer is next and renders the waybar
// record. It is pure logic over an injected clock value; all I/O lives in
// the timetable store and the notifiers.
package salah

import (
	"fmt"
	"sort"
	"time"

	"github.com/salahbar/salahbar/internal/timetable"
)

// Next identifies the upcoming prayer.
type Next struct {
	// Name is the prayer name ("Fajr", ... "Isha").
	Name string

	// Minutes until the prayer, floored. 0 is a valid "now" state.
	Minutes int

	// Tomorrow is set when every prayer of the day has passed and Next
	// points at the following day's Fajr.
	Tomorrow bool
}

// ParseClock anchors a timetable value to now's calendar date. Only the
// leading "HH:MM" is significant; trailing annotations like " (CET)" are
// discarded.
func ParseClock(now time.Time, value string) (time.Time, error) {
	if len(value) < 5 {
		return time.Time{}, fmt.Errorf("malformed time %q", value)
	}
	clock, err := time.Parse("15:04", value[:5])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed time %q: %w", value, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

type anchor struct {
	name string
	at   time.Time
}

func anchors(times map[string]string, now time.Time) ([]anchor, error) {
	out := make([]anchor, 0, len(timetable.PrayerNames))
	for _, name := range timetable.PrayerNames {
		v, ok := times[name]
		if !ok {
			return nil, fmt.Errorf("timetable missing %s", name)
		}
		at, err := ParseClock(now, v)
		if err != nil {
			return nil, err
		}
		out = append(out, anchor{name: name, at: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	return out, nil
}

// Evaluate returns the next prayer relative to now. When now is after
// Isha the result rolls over to the following day's Fajr with 24 hours
// added to the countdown.
func Evaluate(times map[string]string, now time.Time) (Next, error) {
	sorted, err := anchors(times, now)
	if err != nil {
		return Next{}, err
	}

	for _, a := range sorted {
		if diff := a.at.Sub(now); diff > 0 {
			return Next{Name: a.name, Minutes: int(diff.Minutes())}, nil
		}
	}

	// All five have passed; point at tomorrow's Fajr.
	for _, a := range sorted {
		if a.name == "Fajr" {
			diff := a.at.Add(24 * time.Hour).Sub(now)
			return Next{Name: a.name, Minutes: int(diff.Minutes()), Tomorrow: true}, nil
		}
	}
	return Next{}, fmt.Errorf("timetable missing Fajr")
}

// progress is the elapsed fraction (0-100) of the interval between the
// previous and the next prayer, used for waybar's percentage field.
func progress(times map[string]string, now time.Time) int {
	sorted, err := anchors(times, now)
	if err != nil {
		return 0
	}

	var prev, next time.Time
	for _, a := range sorted {
		if !a.at.After(now) {
			prev = a.at
		} else if next.IsZero() {
			next = a.at
		}
	}
	// Before Fajr the previous anchor is yesterday's Isha; after Isha the
	// next is tomorrow's Fajr.
	if prev.IsZero() {
		prev = sorted[len(sorted)-1].at.Add(-24 * time.Hour)
	}
	if next.IsZero() {
		next = sorted[0].at.Add(24 * time.Hour)
	}

	total := next.Sub(prev)
	if total <= 0 {
		return 0
	}
	pct := int(100 * now.Sub(prev) / total)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
