package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	clicommon "github.com/salahbar/salahbar/cmd/common"
	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/journal"
)

var logFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "limit, n",
		Usage: "maximum number of events to list",
		Value: 20,
	},
}

func logCmd(ctx *cli.Context) error {
	loadEnv()

	j, err := journal.Open(common.JournalFile())
	if err != nil {
		clicommon.PrintRuntimeErr(ctx, "log", "open_journal", err)
		return nil
	}
	defer j.Close()

	events, err := j.Recent(ctx.Int("limit"))
	if err != nil {
		clicommon.PrintRuntimeErr(ctx, "log", "read_journal", err)
		return nil
	}
	if len(events) == 0 {
		fmt.Println("No events recorded yet.")
		return nil
	}
	for _, e := range events {
		detail := e.Detail
		if detail != "" {
			detail = " (" + detail + ")"
		}
		fmt.Printf("%s  %-8s %s%s\n",
			e.At.Format("2006-01-02 15:04:05"), e.Kind, e.Prayer, detail)
	}
	return nil
}
