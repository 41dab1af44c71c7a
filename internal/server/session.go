package server

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"orrery.space/internal/ship"
	"orrery.space/internal/sim"
	"orrery.space/internal/wire"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// session is one connected replica: its reliable websocket connection,
// its unreliable return address once registered, and its inbound limiter.
type session struct {
	token   string
	conn    *websocket.Conn
	limiter *rate.Limiter

	mu      sync.Mutex
	udpAddr *net.UDPAddr
}

func (c *session) setUDPAddr(addr *net.UDPAddr) {
	c.mu.Lock()
	c.udpAddr = addr
	c.mu.Unlock()
}

func (c *session) getUDPAddr() *net.UDPAddr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.udpAddr
}

// send writes one reliable message; websocket writes need serializing.
func (c *session) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

type sessionRegistry struct {
	mu      sync.RWMutex
	byToken map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{byToken: make(map[string]*session)}
}

func (r *sessionRegistry) add(c *session) {
	r.mu.Lock()
	r.byToken[c.token] = c
	r.mu.Unlock()
}

func (r *sessionRegistry) remove(token string) {
	r.mu.Lock()
	delete(r.byToken, token)
	r.mu.Unlock()
}

func (r *sessionRegistry) lookup(token string) *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byToken[token]
}

func (r *sessionRegistry) all() []*session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*session, 0, len(r.byToken))
	for _, c := range r.byToken {
		out = append(out, c)
	}
	return out
}

func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

func (r *sessionRegistry) closeAll() {
	for _, c := range r.all() {
		c.conn.Close()
	}
}

func newToken() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// handleWS accepts a replica connection, sends its initial data, and reads
// its reliable messages until it disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	c := &session{
		token:   newToken(),
		conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(s.cfg.ClientMessageRate), int(s.cfg.ClientMessageRate)),
	}
	s.sessions.add(c)
	s.metrics.ConnectedClients.Set(float64(s.sessions.count()))
	log.Printf("client connected from %s", conn.RemoteAddr())

	initial, err := wire.Marshal(wire.KindInitialData, wire.InitialData{
		Bodies:       s.sim.Config,
		ClockRunning: s.sim.Clock.Running(),
		Token:        c.token,
	})
	if err != nil {
		log.Printf("encode initial data: %v", err)
		conn.Close()
		s.sessions.remove(c.token)
		return
	}
	if err := c.send(initial); err != nil {
		log.Printf("send initial data: %v", err)
		conn.Close()
		s.sessions.remove(c.token)
		return
	}
	s.metrics.WSMessages.WithLabelValues(wire.KindInitialData.String(), "out").Inc()

	go s.readLoop(c)
}

func (s *Server) readLoop(c *session) {
	defer func() {
		c.conn.Close()
		s.sessions.remove(c.token)
		s.metrics.ConnectedClients.Set(float64(s.sessions.count()))
		log.Printf("client disconnected from %s", c.conn.RemoteAddr())
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if !c.limiter.Allow() {
			s.metrics.DroppedTotal.WithLabelValues("rate_limited").Inc()
			continue
		}
		kind, payload, err := wire.Unmarshal(data)
		if err != nil {
			s.metrics.DroppedTotal.WithLabelValues("malformed").Inc()
			log.Printf("malformed message from %s: %v", c.conn.RemoteAddr(), err)
			continue
		}
		s.metrics.WSMessages.WithLabelValues(kind.String(), "in").Inc()
		s.dispatch(kind, payload, c)
	}
}

// dispatch stages an inbound reliable message on the command queue; it is
// applied at the drain point of the next tick, keeping a single writer on
// the simulation state.
func (s *Server) dispatch(kind wire.Kind, payload []byte, c *session) {
	switch kind {
	case wire.KindCreateShip:
		var msg wire.CreateShip
		if err := wire.Decode(kind, payload, &msg); err != nil {
			s.metrics.DroppedTotal.WithLabelValues("malformed").Inc()
			log.Printf("decode create_ship: %v", err)
			return
		}
		if err := wire.CheckID(msg.Info.ID); err != nil {
			s.metrics.DroppedTotal.WithLabelValues("bad_id").Inc()
			log.Printf("create_ship rejected: %v", err)
			return
		}
		s.sim.Enqueue(func(sm *sim.Simulation) {
			sm.AdoptShip(msg.Info, msg.Pos, msg.Vel)
		})
	default:
		s.metrics.DroppedTotal.WithLabelValues("unexpected_kind").Inc()
		log.Printf("unexpected %s message on reliable channel", kind)
	}
}

// broadcastReliable sends a control message to every connected replica.
func (s *Server) broadcastReliable(kind wire.Kind, msg any) {
	data, err := wire.Marshal(kind, msg)
	if err != nil {
		log.Printf("encode %s: %v", kind, err)
		return
	}
	for _, c := range s.sessions.all() {
		if err := c.send(data); err != nil {
			log.Printf("send %s to %s: %v", kind, c.conn.RemoteAddr(), err)
			continue
		}
		s.metrics.WSMessages.WithLabelValues(kind.String(), "out").Inc()
	}
}

// snapshot projects the current ship kinematics for a periodic update.
func snapshot(tick uint64, ships []*ship.Ship) wire.PeriodicUpdate {
	update := wire.PeriodicUpdate{Tick: tick, Ships: make([]wire.ShipState, 0, len(ships))}
	for _, sh := range ships {
		update.Ships = append(update.Ships, wire.ShipState{
			ID:  sh.ID,
			Pos: sh.Pos,
			Vel: sh.Vel,
		})
	}
	return update
}
