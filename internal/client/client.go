// Package client runs a replica peer: it mirrors the authoritative clock
// and ship kinematics, simulating locally between corrections. It can also
// run standalone as its own authority (singleplayer).
package client

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"

	"orrery.space/internal/body"
	"orrery.space/internal/config"
	"orrery.space/internal/ship"
	"orrery.space/internal/sim"
	"orrery.space/internal/wire"
)

// Client is a replica connected to an authoritative server.
type Client struct {
	cfg   config.Client
	sim   *sim.Simulation
	conn  *websocket.Conn
	udp   *net.UDPConn
	token string
}

// Dial connects to the server, waits for its initial data, builds the
// local mirror simulation from the replicated catalog filter, and
// registers the unreliable return address.
func Dial(cfg config.Client) (*Client, error) {
	url := fmt.Sprintf("ws://%s:%d/ws", cfg.ServerAddr, cfg.ServerPort)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read initial data: %w", err)
	}
	conn.SetReadDeadline(time.Time{})
	kind, payload, err := wire.Unmarshal(data)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("decode initial data: %w", err)
	}
	if kind != wire.KindInitialData {
		conn.Close()
		return nil, fmt.Errorf("expected initial data, got %s", kind)
	}
	var initial wire.InitialData
	if err := wire.Decode(kind, payload, &initial); err != nil {
		conn.Close()
		return nil, err
	}

	simulation, err := sim.New(initial.Bodies, cfg.StepSize)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("build mirror simulation: %w", err)
	}
	simulation.Clock.SetRunning(initial.ClockRunning)

	udpAddr := &net.UDPAddr{IP: net.ParseIP(cfg.ServerAddr), Port: cfg.ServerUDP}
	udp, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("dial udp %s: %w", udpAddr, err)
	}
	c := &Client{cfg: cfg, sim: simulation, conn: conn, udp: udp, token: initial.Token}
	if err := c.sendHello(); err != nil {
		c.Close()
		return nil, err
	}
	log.Printf("connected to %s, clock running: %v", url, initial.ClockRunning)
	return c, nil
}

func (c *Client) sendHello() error {
	data, err := wire.Marshal(wire.KindHello, wire.Hello{Token: c.token})
	if err != nil {
		return err
	}
	if _, err := c.udp.Write(data); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}
	return nil
}

// Sim exposes the local mirror simulation.
func (c *Client) Sim() *sim.Simulation {
	return c.sim
}

// Close tears down both channels.
func (c *Client) Close() {
	c.conn.Close()
	c.udp.Close()
}

// Run drives the replica until the context is cancelled: a local fixed
// tick loop, with both channels feeding reconciliation commands into the
// simulation's queue.
func (c *Client) Run(ctx context.Context) {
	go c.readReliable()
	go c.readUnreliable()
	go c.runConsole(ctx)

	tick := time.NewTicker(time.Second / time.Duration(c.cfg.TickRate))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Close()
			return
		case <-tick.C:
			c.sim.Step()
		}
	}
}

func (c *Client) readReliable() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("reliable channel closed: %v", err)
			return
		}
		kind, payload, err := wire.Unmarshal(data)
		if err != nil {
			log.Printf("malformed server message: %v", err)
			continue
		}
		c.apply(kind, payload)
	}
}

func (c *Client) readUnreliable() {
	buffer := make([]byte, 65535)
	for {
		n, err := c.udp.Read(buffer)
		if err != nil {
			return
		}
		kind, payload, err := wire.Unmarshal(buffer[:n])
		if err != nil {
			continue
		}
		c.apply(kind, payload)
	}
}

// apply stages an authoritative message on the local command queue. The
// single authoritative writer makes every application last-write-wins.
func (c *Client) apply(kind wire.Kind, payload []byte) {
	switch kind {
	case wire.KindToggleTime:
		var msg wire.ToggleTime
		if err := wire.Decode(kind, payload, &msg); err != nil {
			log.Printf("%v", err)
			return
		}
		c.sim.Enqueue(func(sm *sim.Simulation) {
			sm.Clock.SetRunning(msg.Running)
		})
	case wire.KindBodiesConfig:
		var msg wire.BodiesConfig
		if err := wire.Decode(kind, payload, &msg); err != nil {
			log.Printf("%v", err)
			return
		}
		c.sim.Enqueue(func(sm *sim.Simulation) {
			if err := sm.Reconfigure(msg.Bodies); err != nil {
				log.Printf("apply bodies config: %v", err)
			}
		})
	case wire.KindPeriodicUpdate:
		var msg wire.PeriodicUpdate
		if err := wire.Decode(kind, payload, &msg); err != nil {
			return
		}
		c.sim.Enqueue(func(sm *sim.Simulation) {
			ApplyPeriodicUpdate(sm, msg)
		})
	default:
		log.Printf("unhandled %s message from server", kind)
	}
}

// CreateShip spawns the ship locally and submits the creation to the
// authoritative peer on the reliable channel.
func (c *Client) CreateShip(info ship.Info) error {
	if err := wire.CheckID(info.ID); err != nil {
		return err
	}
	done := make(chan wire.CreateShip, 1)
	c.sim.Enqueue(func(sm *sim.Simulation) {
		sm.CreateShip(info)
		sh := sm.Ships.Get(info.ID)
		done <- wire.CreateShip{Info: info, Pos: sh.Pos, Vel: sh.Vel}
	})
	msg := <-done
	data, err := wire.Marshal(wire.KindCreateShip, msg)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

// RunStandalone runs a singleplayer instance: the local simulation is its
// own authority, with the clock started immediately and no network.
func RunStandalone(ctx context.Context, cfg config.Client) error {
	simulation, err := sim.New(body.Config{SmallestType: body.ParseType(cfg.SmallestBody)}, cfg.StepSize)
	if err != nil {
		return err
	}
	simulation.Clock.SetRunning(true)
	tick := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			simulation.Step()
		}
	}
}
