package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/journal"
	"github.com/salahbar/salahbar/internal/notify"
	"github.com/salahbar/salahbar/internal/salah"
	"github.com/salahbar/salahbar/pkg/logger"
)

// status is the once-a-minute waybar evaluation: render the next prayer as
// one JSON line on stdout and fire any pending threshold notifications.
// Every failure degrades to the error record; waybar must always get valid
// JSON and a zero exit.
func status(ctx *cli.Context) error {
	loadEnv()
	l := stderrLogger()
	now := time.Now()

	tt, err := newStore(l).Timetable(context.Background(), now)
	if err != nil {
		return printRecord(salah.NoData())
	}

	next, err := salah.Evaluate(tt.Times, now)
	if err != nil {
		l.Error("evaluation failed: %v", err)
		return printRecord(salah.NoData())
	}

	if err := printRecord(salah.Render(tt, next, now)); err != nil {
		return err
	}

	observeThresholds(l, next)
	return nil
}

func printRecord(out salah.Output) error {
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// observeThresholds runs the persisted notification debounce for this
// evaluation. Notification plumbing failures are logged and swallowed; the
// record already went out.
func observeThresholds(l logger.Logger, next salah.Next) {
	var rec notify.Recorder
	if j, err := journal.Open(common.JournalFile()); err != nil {
		l.Warning("journal unavailable: %v", err)
	} else {
		defer j.Close()
		rec = j
	}

	n, err := notify.NewDBusNotifier()
	if err != nil {
		l.Warning("session bus unavailable: %v", err)
		return
	}
	defer n.Close()

	d := notify.NewDebouncer(afero.NewOsFs(), common.StateFile(), n, common.AdhanFile(), rec, l)
	if err := d.Observe(next.Name, next.Minutes); err != nil {
		l.Warning("notification state write failed: %v", err)
	}
}
