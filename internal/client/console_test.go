package client

import (
	"strings"
	"testing"

	"orrery.space/internal/ship"
	"orrery.space/internal/vec"
)

func consoleClient(t *testing.T) *Client {
	t.Helper()
	return &Client{sim: newReplica(t)}
}

func runLine(c *Client, line string) string {
	var out strings.Builder
	c.execLine(line, &out)
	c.sim.Step()
	return out.String()
}

func TestConsoleListShips(t *testing.T) {
	c := consoleClient(t)
	c.sim.CreateShip(ship.Info{ID: "beta"})
	c.sim.CreateShip(ship.Info{ID: "alpha"})
	if out := runLine(c, "list_ships"); !strings.Contains(out, "[alpha beta]") {
		t.Errorf("output %q, want sorted ids", out)
	}
}

func TestConsoleGetShipData(t *testing.T) {
	c := consoleClient(t)
	c.sim.CreateShip(ship.Info{ID: "probe", SpawnPos: vec.Vec3{Z: 5e9}})
	out := runLine(c, "get_ship_data probe")
	if !strings.Contains(out, "ship probe") || !strings.Contains(out, "dominant: sun") {
		t.Errorf("output %q", out)
	}
	if out := runLine(c, "get_ship_data nope"); !strings.Contains(out, "no ship") {
		t.Errorf("output %q", out)
	}
}

func TestConsoleCreateShipArgErrors(t *testing.T) {
	c := consoleClient(t)
	if out := runLine(c, "create_ship probe 1 2"); !strings.Contains(out, "usage:") {
		t.Errorf("output %q", out)
	}
	if out := runLine(c, "create_ship probe 1 2 oops"); !strings.Contains(out, "bad coordinate") {
		t.Errorf("output %q", out)
	}
	longID := strings.Repeat("x", 33)
	if out := runLine(c, "create_ship "+longID+" 1 2 3"); !strings.Contains(out, "create_ship failed") {
		t.Errorf("output %q", out)
	}
	if c.sim.Ships.Len() != 0 {
		t.Errorf("%d ships created from rejected commands", c.sim.Ships.Len())
	}
}

func TestConsoleUnknownCommand(t *testing.T) {
	c := consoleClient(t)
	out := runLine(c, "warp 9")
	if !strings.Contains(out, "unknown command") || !strings.Contains(out, "list of commands") {
		t.Errorf("output %q", out)
	}
}
