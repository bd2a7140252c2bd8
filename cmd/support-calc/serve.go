package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cpilink/support-calculator/internal/api"
	"github.com/cpilink/support-calculator/internal/calculation"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculation HTTP API",
	Long: `Start an HTTP server exposing the calculation engine.

POST /api/calculations       run a calculation
GET  /api/cpi/{year}/{month} fetch one CPI observation
GET  /api/healthz            liveness probe

The port comes from --port, or the PORT environment variable (a .env
file in the working directory is honored).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP server port (default $PORT or 8080)")
}

func resolvePort() int {
	if servePort != 0 {
		return servePort
	}
	if env := os.Getenv("PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil && p > 0 {
			return p
		}
	}
	return 8080
}

func runServe(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	provider, err := newQuoteProvider()
	if err != nil {
		return fmt.Errorf("failed to initialize index data source: %w", err)
	}

	engine := calculation.NewCalculationEngine(provider)
	engine.SetLogger(newStdLogger())
	engine.Debug = debug

	router := api.NewRouter(api.NewHandler(engine))
	port := resolvePort()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
