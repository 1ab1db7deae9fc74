package cli

import (
	"context"
	"fmt"

	"github.com/lgoulart/jumpmap/pkg/oracle"
)

// newOracle dials the configured oracle. The --oracle flag takes
// precedence over the config file address. With --script the in-process
// scripted oracle is used instead, which needs no running game.
func (c *CLI) newOracle(ctx context.Context, addr string, script bool) (oracle.Oracle, error) {
	if script {
		c.Logger.Debug("Using in-process scripted oracle")
		return oracle.NewScript(), nil
	}
	if addr == "" {
		addr = c.Config.Oracle.Address
	}
	if addr == "" {
		return nil, fmt.Errorf("no oracle address configured (set --oracle, or oracle.address in %s, or use --script)", configFileName)
	}
	c.Logger.Debugf("Dialing oracle at %s", addr)
	return oracle.DialRemote(ctx, addr, c.Config.Oracle.RuntimeConfig())
}
