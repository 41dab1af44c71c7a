// Command orrery-server runs the authoritative simulation server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"orrery.space/internal/config"
	"orrery.space/internal/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		log.Println("shutting down...")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
	log.Println("server shutdown complete")
}
