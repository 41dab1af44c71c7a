// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server configures the authoritative peer.
type Server struct {
	Addr          string `env:"ORRERY_ADDR" envDefault:"0.0.0.0"`
	Port          int    `env:"ORRERY_PORT" envDefault:"5000"`
	UDPPort       int    `env:"ORRERY_UDP_PORT" envDefault:"5001"`
	MetricsAddr   string `env:"ORRERY_METRICS_ADDR" envDefault:":9090"`
	StepSize      uint64 `env:"ORRERY_STEP_SIZE" envDefault:"1"`
	TickRate      int    `env:"ORRERY_TICK_RATE" envDefault:"64"`
	BroadcastRate int    `env:"ORRERY_BROADCAST_RATE" envDefault:"60"`
	SmallestBody  string `env:"ORRERY_SMALLEST_BODY" envDefault:"moon"`

	// TLSDomain enables autocert TLS on the websocket endpoint when set.
	TLSDomain    string `env:"ORRERY_TLS_DOMAIN"`
	CertCacheDir string `env:"ORRERY_CERT_CACHE" envDefault:"certs"`

	// Inbound reliable messages allowed per client per second, with a
	// burst of the same size.
	ClientMessageRate float64 `env:"ORRERY_CLIENT_MSG_RATE" envDefault:"20"`
}

// Client configures a replica or singleplayer peer.
type Client struct {
	ServerAddr   string `env:"ORRERY_SERVER_ADDR" envDefault:"127.0.0.1"`
	ServerPort   int    `env:"ORRERY_SERVER_PORT" envDefault:"5000"`
	ServerUDP    int    `env:"ORRERY_SERVER_UDP_PORT" envDefault:"5001"`
	StepSize     uint64 `env:"ORRERY_STEP_SIZE" envDefault:"1"`
	TickRate     int    `env:"ORRERY_TICK_RATE" envDefault:"64"`
	SmallestBody string `env:"ORRERY_SMALLEST_BODY" envDefault:"moon"`
}

// LoadServer parses the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse server config: %w", err)
	}
	if cfg.TickRate <= 0 || cfg.BroadcastRate <= 0 {
		return cfg, fmt.Errorf("tick and broadcast rates must be positive")
	}
	return cfg, nil
}

// LoadClient parses the client configuration from the environment.
func LoadClient() (Client, error) {
	var cfg Client
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse client config: %w", err)
	}
	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("tick rate must be positive")
	}
	return cfg, nil
}
