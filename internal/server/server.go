// Package server runs the authoritative peer: the simulation loop, the
// reliable websocket channel, the unreliable UDP channel, the periodic
// broadcaster, and the admin console.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"orrery.space/internal/body"
	"orrery.space/internal/config"
	"orrery.space/internal/metrics"
	"orrery.space/internal/sim"
)

// Server owns the authoritative simulation and its network endpoints.
type Server struct {
	cfg      config.Server
	sim      *sim.Simulation
	metrics  *metrics.Collector
	sessions *sessionRegistry

	httpServer *http.Server
	udpConn    *net.UDPConn

	wg sync.WaitGroup
}

// New builds a server from its configuration: catalog filtered per the
// smallest body type, clock paused at tick 0 with the configured step size.
func New(cfg config.Server) (*Server, error) {
	simulation, err := sim.New(body.Config{SmallestType: body.ParseType(cfg.SmallestBody)}, cfg.StepSize)
	if err != nil {
		return nil, fmt.Errorf("build simulation: %w", err)
	}
	return &Server{
		cfg:      cfg,
		sim:      simulation,
		metrics:  metrics.NewCollector(),
		sessions: newSessionRegistry(),
	}, nil
}

// Sim exposes the simulation for the admin console and tests.
func (s *Server) Sim() *sim.Simulation {
	return s.sim
}

// Run starts the network endpoints and blocks in the simulation loop until
// the context is cancelled. Transport setup failures are returned before
// the loop starts; they are fatal to the process.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.Port)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	udpAddr := &net.UDPAddr{IP: net.ParseIP(s.cfg.Addr), Port: s.cfg.UDPPort}
	s.udpConn, err = net.ListenUDP("udp", udpAddr)
	if err != nil {
		listener.Close()
		return fmt.Errorf("listen on udp %s: %w", udpAddr, err)
	}

	go func() {
		if err := s.metrics.Serve(s.cfg.MetricsAddr); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		var err error
		if s.cfg.TLSDomain != "" {
			s.httpServer.TLSConfig = tlsConfig(s.cfg.TLSDomain, s.cfg.CertCacheDir)
			log.Printf("serving wss on %s for %s", addr, s.cfg.TLSDomain)
			err = s.httpServer.ServeTLS(listener, "", "")
		} else {
			log.Printf("serving ws on %s", addr)
			err = s.httpServer.Serve(listener)
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("websocket server error: %v", err)
		}
	}()
	go func() {
		defer s.wg.Done()
		s.serveUDP()
	}()
	go s.runConsole(ctx)

	log.Printf("simulation loop at %d Hz, broadcasting at %d Hz", s.cfg.TickRate, s.cfg.BroadcastRate)
	s.loop(ctx)
	return s.shutdown()
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("websocket shutdown error: %v", err)
	}
	if err := s.udpConn.Close(); err != nil {
		log.Printf("udp shutdown error: %v", err)
	}
	s.sessions.closeAll()
	s.wg.Wait()
	return nil
}
