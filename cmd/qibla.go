package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	clicommon "github.com/salahbar/salahbar/cmd/common"
	"github.com/salahbar/salahbar/internal/geoip"
	"github.com/salahbar/salahbar/internal/qibla"
)

// qiblaCmd prints the qibla bearing, preferring the coordinates recorded in
// the timetable cache and falling back to a live geolocation lookup.
func qiblaCmd(ctx *cli.Context) error {
	loadEnv()
	l := stderrLogger()

	var lat, lon float64
	if tt, err := newStore(l).Timetable(context.Background(), time.Now()); err == nil &&
		(tt.Location.Latitude != 0 || tt.Location.Longitude != 0) {
		lat, lon = tt.Location.Latitude, tt.Location.Longitude
	} else {
		loc, err := geoip.NewClient(nil, "").Locate(context.Background())
		if err != nil {
			clicommon.PrintRuntimeErr(ctx, "qibla", "locate", err)
			return nil
		}
		lat, lon = loc.Latitude, loc.Longitude
	}

	deg, dir := qibla.Bearing(lat, lon)
	fmt.Printf("Qibla: %d° %s (from %.4f, %.4f)\n", deg, dir, lat, lon)
	return nil
}
