// Command orrery-client runs a replica peer in multiplayer mode, or a
// standalone singleplayer instance acting as its own authority.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"orrery.space/internal/client"
	"orrery.space/internal/config"
)

func main() {
	mode := flag.String("mode", "multiplayer", "multiplayer or singleplayer")
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		log.Println("shutting down...")
		cancel()
	}()

	switch *mode {
	case "singleplayer":
		if err := client.RunStandalone(ctx, cfg); err != nil {
			log.Fatalf("singleplayer error: %v", err)
		}
	case "multiplayer":
		c, err := client.Dial(cfg)
		if err != nil {
			log.Fatalf("failed to connect: %v", err)
		}
		c.Run(ctx)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
