package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"orrery.space/internal/ship"
	"orrery.space/internal/sim"
	"orrery.space/internal/vec"
)

const consoleUsage = `list of commands:
    help : print the list of all available commands
    create_ship <id> <x> <y> <z> [vx vy vz] : spawn a ship at a position (km), optional velocity (km/day)
    list_ships : print the list of ships
    get_ship_data <id> : print the data of the ship with id <id>`

// runConsole reads interactive commands from stdin. Commands that inspect
// simulation state are staged on the command queue and execute at the next
// drain; creation goes through CreateShip so it also reaches the server.
func (c *Client) runConsole(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		c.execLine(scanner.Text(), os.Stdout)
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (c *Client) execLine(line string, out io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(out, consoleUsage)
	case "create_ship":
		if len(args) < 4 {
			fmt.Fprintln(out, "usage: create_ship <id> <x> <y> <z> [vx vy vz]")
			return
		}
		info := ship.Info{ID: args[0]}
		coords, err := parseCoords(args[1:])
		if err != nil {
			fmt.Fprintf(out, "bad coordinate: %v\n", err)
			return
		}
		info.SpawnPos = vec.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}
		if len(coords) >= 6 {
			info.SpawnVel = vec.Vec3{X: coords[3], Y: coords[4], Z: coords[5]}
		}
		if err := c.CreateShip(info); err != nil {
			fmt.Fprintf(out, "create_ship failed: %v\n", err)
			return
		}
		fmt.Fprintf(out, "ship %s created at %+v\n", info.ID, info.SpawnPos)
	case "list_ships":
		c.sim.Enqueue(func(sm *sim.Simulation) {
			fmt.Fprintf(out, "ships: %v\n", sm.Ships.IDs())
		})
	case "get_ship_data":
		if len(args) == 0 {
			fmt.Fprintln(out, "usage: get_ship_data <id>")
			return
		}
		id := args[0]
		c.sim.Enqueue(func(sm *sim.Simulation) {
			sh := sm.Ships.Get(id)
			if sh == nil {
				fmt.Fprintf(out, "no ship with id %q\n", id)
				return
			}
			fmt.Fprintf(out, "ship %s\n  pos: %+v\n  vel: %+v\n  dominant: %s\n",
				sh.ID, sh.Pos, sh.Vel, sh.Influence.Dominant)
		})
	default:
		fmt.Fprintf(out, "unknown command %q\n%s\n", cmd, consoleUsage)
	}
}

func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
