package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/server"
)

// stop shuts down a running guard, preferring a clean RPC over the control
// socket and falling back to signalling the pid from the pid file.
func stop(ctx *cli.Context) error {
	loadEnv()

	if c, err := server.Dial(common.SocketPath()); err == nil {
		defer c.Close()
		callCtx, cancel := context.WithTimeout(context.Background(), DefaultStopTimeout)
		defer cancel()
		if err := c.StopGuard(callCtx); err == nil {
			fmt.Println("Guard stopped.")
			return nil
		}
	}

	return stopDaemon(ctx)
}
