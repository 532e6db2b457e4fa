package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mychits/customer-core/internal/config"
	"github.com/mychits/customer-core/internal/server"
	"github.com/mychits/customer-core/pkg/mychits"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Initialize configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Using config file: %s", *configFile)

	// Initialize the upstream API client
	client := mychits.NewClient(cfg.Upstream.BaseURL)
	log.Printf("MyChits API client initialized with base URL: %s", cfg.Upstream.BaseURL)

	srv := server.New(cfg, client)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalChan
		log.Println("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	go func() {
		log.Printf("Customer core listening on port %s", cfg.Server.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Customer core shut down")
}
