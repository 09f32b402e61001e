package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	clicommon "github.com/salahbar/salahbar/cmd/common"
	"github.com/salahbar/salahbar/internal/timetable"
)

func times(ctx *cli.Context) error {
	loadEnv()
	l := stderrLogger()

	tt, err := newStore(l).Timetable(context.Background(), time.Now())
	if err != nil {
		clicommon.PrintRuntimeErr(ctx, "times", "load_timetable", err)
		return nil
	}

	header := fmt.Sprintf("Prayer times for %s (%s)", tt.Date, tt.Location.Label)
	if tt.Offline {
		header += " [stale cache]"
	}
	fmt.Println(header)
	for _, name := range timetable.PrayerNames {
		fmt.Printf("  %-8s %s\n", name, tt.Times[name])
	}
	return nil
}
