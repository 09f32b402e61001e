package server

import (
	"context"
	"net"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"

	"github.com/salahbar/salahbar/common"
)

// DialTimeout bounds the unix-socket connect for control clients.
const DialTimeout = 2 * time.Second

// Client talks to a running guard over its control socket.
type Client struct {
	cli *jrpc2.Client
}

// Dial connects to the guard's control socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, DialTimeout)
	if err != nil {
		return nil, err
	}
	return &Client{cli: jrpc2.NewClient(channel.Line(conn, conn), nil)}, nil
}

// GuardStatus fetches the guard's current evaluation and debounce state.
func (c *Client) GuardStatus(ctx context.Context) (*common.GuardStatus, error) {
	var status common.GuardStatus
	if err := c.cli.CallResult(ctx, common.MethodGuardStatus, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// StopGuard asks the guard to shut down.
func (c *Client) StopGuard(ctx context.Context) error {
	var res common.EmptyResult
	return c.cli.CallResult(ctx, common.MethodGuardStop, nil, &res)
}

// Version reports the running guard's build information.
func (c *Client) Version(ctx context.Context) (*common.VersionResult, error) {
	var v common.VersionResult
	if err := c.cli.CallResult(ctx, common.MethodVersion, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.cli.Close()
}
