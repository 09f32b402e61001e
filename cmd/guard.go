package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	clicommon "github.com/salahbar/salahbar/cmd/common"
	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/guard"
	"github.com/salahbar/salahbar/internal/journal"
	"github.com/salahbar/salahbar/internal/notify"
	"github.com/salahbar/salahbar/internal/server"
	"github.com/salahbar/salahbar/pkg/logger"
)

// guardController bridges the control socket to the running guard. Stop
// cancels the daemon context, which unwinds the loop, the server, and the
// pid file in order.
type guardController struct {
	g      *guard.Guard
	cancel context.CancelFunc
}

func (c guardController) Status() common.GuardStatus { return c.g.Status() }

func (c guardController) Stop() { c.cancel() }

func guardCmd(ctx *cli.Context) error {
	loadEnv()
	l := logger.NewStandardLogger(log.Default())

	if err := WritePidFile(); err != nil {
		clicommon.PrintRuntimeErr(ctx, "guard", "write_pidfile", err)
		return nil
	}
	defer func() {
		if err := RemovePidFile(); err != nil {
			l.Warning("pid file cleanup failed: %v", err)
		}
	}()

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		s := <-sig
		l.Info("received %s, shutting down", s)
		cancel()
	}()

	var rec notify.Recorder
	if j, err := journal.Open(common.JournalFile()); err != nil {
		l.Warning("journal unavailable: %v", err)
	} else {
		defer j.Close()
		rec = j
	}

	notifier, err := notify.NewDBusNotifier()
	if err != nil {
		clicommon.PrintRuntimeErr(ctx, "guard", "session_bus", err)
		return nil
	}
	defer notifier.Close()

	g := guard.New(
		newStore(l),
		notifier,
		guard.CommandLocker{Command: lockCommand()},
		nil,
		rec,
		l,
		guard.Config{Interval: pollInterval()},
	)

	srv := server.New(l, guardController{g: g, cancel: cancel}, common.VersionResult{
		Version:   build.Version,
		Commit:    build.Commit,
		BuildType: build.BuildType,
	})
	go func() {
		if err := srv.Start(runCtx, common.SocketPath()); err != nil {
			l.Error("control socket unavailable: %v", err)
		}
	}()

	return g.Run(runCtx)
}
