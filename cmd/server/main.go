package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/config"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override environment values
	flag.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Listen host")
	flag.StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "Server port")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "Development logging")
	flag.IntVar(&cfg.Algebra.Dimension, "dimension", cfg.Algebra.Dimension, "Default algebra dimension (2, 4, 8, 16, 32)")
	flag.IntVar(&cfg.Algebra.Precision, "precision", cfg.Algebra.Precision, "Default leaf precision in bits (32, 64)")
	flag.Float64Var(&cfg.Algebra.Tolerance, "tolerance", cfg.Algebra.Tolerance, "Tolerance for approximate comparisons")
	flag.BoolVar(&cfg.RateLimit.Enabled, "rate-limit", cfg.RateLimit.Enabled, "Enable rate limiting")
	flag.StringVar(&cfg.RateLimit.Scope, "rate-limit-scope", cfg.RateLimit.Scope, "Rate limit scope (client, global)")
	flag.Parse()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}
