package server

import (
	"log"

	"orrery.space/internal/wire"
)

// serveUDP drains the unreliable channel. The only inbound datagram is the
// Hello registering a replica's return address; everything else is dropped.
func (s *Server) serveUDP() {
	buffer := make([]byte, 65535)
	for {
		n, remoteAddr, err := s.udpConn.ReadFromUDP(buffer)
		if err != nil {
			// Closed during shutdown.
			return
		}
		s.metrics.UDPBytes.WithLabelValues("in").Add(float64(n))
		kind, payload, err := wire.Unmarshal(buffer[:n])
		if err != nil {
			s.metrics.DroppedTotal.WithLabelValues("malformed").Inc()
			continue
		}
		if kind != wire.KindHello {
			s.metrics.DroppedTotal.WithLabelValues("unexpected_kind").Inc()
			continue
		}
		var hello wire.Hello
		if err := wire.Decode(kind, payload, &hello); err != nil {
			s.metrics.DroppedTotal.WithLabelValues("malformed").Inc()
			continue
		}
		c := s.sessions.lookup(hello.Token)
		if c == nil {
			s.metrics.DroppedTotal.WithLabelValues("unknown_token").Inc()
			continue
		}
		c.setUDPAddr(remoteAddr)
		log.Printf("registered udp return address %s", remoteAddr)
	}
}

// sendPeriodicUpdate broadcasts the snapshot on the unreliable channel to
// every replica that has registered a return address. Sends are
// fire-and-forget: a lost datagram is superseded by the next update.
func (s *Server) sendPeriodicUpdate(update wire.PeriodicUpdate) {
	data, err := wire.Marshal(wire.KindPeriodicUpdate, update)
	if err != nil {
		log.Printf("encode periodic update: %v", err)
		return
	}
	for _, c := range s.sessions.all() {
		addr := c.getUDPAddr()
		if addr == nil {
			continue
		}
		n, err := s.udpConn.WriteToUDP(data, addr)
		if err != nil {
			continue
		}
		s.metrics.UDPBytes.WithLabelValues("out").Add(float64(n))
	}
	s.metrics.UpdatesSentTotal.Inc()
}
