package salah

import (
	"fmt"
	"strings"
	"time"

	"github.com/salahbar/salahbar/internal/qibla"
	"github.com/salahbar/salahbar/internal/timetable"
)

// Output is the render record waybar consumes, printed as a single JSON
// line on stdout.
type Output struct {
	Text       string `json:"text"`
	Tooltip    string `json:"tooltip"`
	Class      string `json:"class"`
	Percentage int    `json:"percentage"`
}

// NoData is the degraded record for the no-network-no-cache case.
func NoData() Output {
	return Output{
		Text:    "🚫 No Net",
		Tooltip: "Connect to internet to fetch prayer times",
		Class:   "error",
	}
}

// Render builds the waybar record for a timetable and its evaluation.
func Render(tt *timetable.Timetable, next Next, now time.Time) Output {
	name := next.Name
	if next.Tomorrow {
		name = "Fajr (Tom)"
	}

	var countdown string
	if next.Minutes >= 60 {
		countdown = fmt.Sprintf("%s -%dh %dm", name, next.Minutes/60, next.Minutes%60)
	} else {
		countdown = fmt.Sprintf("%s -%dm", name, next.Minutes)
	}

	class := "prayer-far"
	if next.Minutes < 15 {
		class = "prayer-soon"
	}

	return Output{
		Text:       "🕌 " + countdown,
		Tooltip:    tooltip(tt),
		Class:      class,
		Percentage: progress(tt.Times, now),
	}
}

func tooltip(tt *timetable.Timetable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s\n", tt.Location.Label)
	if tt.Location.Latitude != 0 || tt.Location.Longitude != 0 {
		deg, dir := qibla.Bearing(tt.Location.Latitude, tt.Location.Longitude)
		fmt.Fprintf(&b, "📍 Qibla: %d° %s\n", deg, dir)
	}
	b.WriteString("\n")
	for i, name := range timetable.PrayerNames {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", name, tt.Times[name])
	}
	return b.String()
}
