package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"orrery.space/internal/sim"
	"orrery.space/internal/wire"
)

const consoleUsage = `list of commands:
    help : print the list of all available commands
    toggle_time : start the simulation or pause it if already started
    time_scale [n] : set the timescale to n, or print the current timescale
    list_ships : print the list of ships
    get_ship_data <id> : print the data of the ship with id <id>
    get_bodys_data : print data of all bodies
    test : print the id and position of every ship
    test_set_pos <id> <x> <y> <z> : teleport a ship`

// runConsole reads administrative commands from stdin. Each line is staged
// on the command queue so it executes on the simulation goroutine at the
// next drain.
func (s *Server) runConsole(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		s.sim.Enqueue(func(sm *sim.Simulation) {
			execCommand(sm, line, os.Stdout, s.announceToggle)
		})
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// announceToggle replicates a running-flag change to every client.
func (s *Server) announceToggle(running bool) {
	s.broadcastReliable(wire.KindToggleTime, wire.ToggleTime{Running: running})
}

// execCommand parses and runs one console line against the simulation.
// Unknown commands print the usage; malformed numeric arguments are
// reported and default to 0.
func execCommand(sm *sim.Simulation, line string, out io.Writer, onToggle func(bool)) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(out, consoleUsage)
	case "toggle_time":
		running := sm.Clock.Toggle()
		fmt.Fprintf(out, "time running: %v\n", running)
		if onToggle != nil {
			onToggle(running)
		}
	case "time_scale":
		if len(args) > 0 {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				fmt.Fprintf(out, "timescale must be a positive integer: %v\n", err)
			} else {
				sm.Clock.SetStep(n)
			}
		}
		fmt.Fprintf(out, "current timescale = %d\n", sm.Clock.Step())
	case "list_ships":
		fmt.Fprintf(out, "ships: %v\n", sm.Ships.IDs())
	case "get_ship_data":
		if len(args) == 0 {
			fmt.Fprintln(out, "usage: get_ship_data <id>")
			return
		}
		sh := sm.Ships.Get(args[0])
		if sh == nil {
			fmt.Fprintf(out, "no ship with id %q\n", args[0])
			return
		}
		fmt.Fprintf(out, "ship %s\n  pos: %+v\n  vel: %+v\n  acc: %+v\n  dominant: %s\n  influencers: %v\n",
			sh.ID, sh.Pos, sh.Vel, sh.Acc, sh.Influence.Dominant, sh.Influence.Influencers)
	case "get_bodys_data":
		for i, b := range sm.Bodies.All() {
			fmt.Fprintf(out, "%d - %s (%s) pos: %+v vel: %+v dominance: %g km\n",
				i, b.Name, b.Type, b.Pos, b.Vel, b.Dominance)
		}
	case "test":
		for _, sh := range sm.Ships.All() {
			fmt.Fprintf(out, "%s %+v\n", sh.ID, sh.Pos)
		}
	case "test_set_pos":
		if len(args) == 0 {
			fmt.Fprintln(out, "usage: test_set_pos <id> <x> <y> <z>")
			return
		}
		sh := sm.Ships.Get(args[0])
		if sh == nil {
			fmt.Fprintf(out, "no ship with id %q\n", args[0])
			return
		}
		sh.Pos.X = parseCoord(args, 1, out)
		sh.Pos.Y = parseCoord(args, 2, out)
		sh.Pos.Z = parseCoord(args, 3, out)
		fmt.Fprintf(out, "ship %s pos: %+v\n", sh.ID, sh.Pos)
	default:
		fmt.Fprintf(out, "unknown command %q\n%s\n", cmd, consoleUsage)
	}
}

// parseCoord reads the i-th argument as a float; missing or malformed
// values are reported and default to 0.
func parseCoord(args []string, i int, out io.Writer) float64 {
	if i >= len(args) {
		fmt.Fprintf(out, "missing coordinate %d, defaulting to 0\n", i)
		return 0
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		fmt.Fprintf(out, "bad coordinate %q, defaulting to 0: %v\n", args[i], err)
		return 0
	}
	return v
}
