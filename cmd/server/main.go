package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/connectra/navigator/internal/navcue"
	"github.com/connectra/navigator/internal/routes"
	"github.com/connectra/navigator/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	menuDir := os.Getenv("MENU_DIR")
	if menuDir == "" {
		menuDir = "./menu"
	}

	// Fail fast: a broken menu configuration must never serve traffic.
	menu, flags, err := navcue.Load(menuDir)
	if err != nil {
		log.Fatalf("loading menu configuration: %v", err)
	}
	log.Printf("menu configuration loaded from %s (%d groups)", menuDir, len(menu.Groups))

	registry, err := routes.DefaultRegistry()
	if err != nil {
		log.Fatalf("building route registry: %v", err)
	}

	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	if err := server.Run(ctx, server.Config{
		Port:   port,
		Menu:   menu,
		Routes: registry,
		Flags:  flags,
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
