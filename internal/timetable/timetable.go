// Package timetable owns the daily prayer timetable: the AlAdhan fetch
// client, the on-disk cache, and the load-if-fresh-else-refetch-else-stale
// fallback policy.
package timetable

// DateLayout is the gregorian date format used by the cache file ("DD-MM-YYYY").
const DateLayout = "02-01-2006"

// PrayerNames lists the five daily prayers in chronological order.
var PrayerNames = [5]string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Document is the cached AlAdhan payload. Extra timing keys (Sunrise,
// Midnight, ...) are carried through untouched so the cache round-trips;
// unknown top-level keys are tolerated and dropped on rewrite.
type Document struct {
	Timings map[string]string `json:"timings"`
	Date    DateInfo          `json:"date"`
	Meta    Meta              `json:"meta"`
}

// DateInfo wraps the gregorian date the document is valid for.
type DateInfo struct {
	Gregorian GregorianDate `json:"gregorian"`
}

// GregorianDate holds a "DD-MM-YYYY" date string.
type GregorianDate struct {
	Date string `json:"date"`
}

// Meta carries the coordinates and timezone the times were computed for.
type Meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Location is the place a Timetable belongs to. Label is a display name:
// the detected city on a fresh fetch, the cached timezone on a cache hit,
// or "Offline" when serving a stale record.
type Location struct {
	Latitude  float64
	Longitude float64
	Label     string
}

// Timetable is one day's prayer schedule.
type Timetable struct {
	// Date is the gregorian date ("DD-MM-YYYY") the times are valid for.
	Date string

	// Location the times were computed for.
	Location Location

	// Times maps each of the five prayer names to a wall-clock string.
	// Values are "HH:MM", possibly with a trailing annotation like
	// " (CET)" that callers must ignore.
	Times map[string]string

	// Offline marks a date-stale record served after a fetch failure.
	Offline bool
}

// fromDocument projects a cached document into a Timetable, keeping only
// the five prayer entries.
func fromDocument(doc *Document, label string, offline bool) *Timetable {
	times := make(map[string]string, len(PrayerNames))
	for _, name := range PrayerNames {
		if v, ok := doc.Timings[name]; ok {
			times[name] = v
		}
	}
	return &Timetable{
		Date: doc.Date.Gregorian.Date,
		Location: Location{
			Latitude:  doc.Meta.Latitude,
			Longitude: doc.Meta.Longitude,
			Label:     label,
		},
		Times:   times,
		Offline: offline,
	}
}
