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

	"github.com/mvvm-samples/post-viewer/internal/config"
	"github.com/mvvm-samples/post-viewer/internal/fetch"
	"github.com/mvvm-samples/post-viewer/internal/server"
	"github.com/mvvm-samples/post-viewer/internal/viewmodel"
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize fetch service and view model
	fetcher := fetch.NewService(cfg.Fetch)
	dispatcher := viewmodel.NewDispatcher()
	vm := viewmodel.NewPostList(fetcher, dispatcher)

	// Console renderer: the registered presentation surface. It re-reads
	// the batch on every notification and prints one row per post.
	vm.SetOnDataChanged(func() {
		posts := vm.Posts()
		log.Printf("Feed updated: %d posts", len(posts))
		for _, post := range posts {
			log.Printf("  [%d] %s", post.ID, post.Title)
		}
	})
	vm.SetOnFetchError(func(err error) {
		log.Printf("Feed refresh failed: %v", err)
	})

	// Initialize HTTP presentation surface
	httpServer := server.NewServer(cfg.Server, vm)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server
	go func() {
		log.Printf("Starting HTTP server on port %d", cfg.Server.Port)
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Fetch the initial batch
	log.Printf("Fetching posts from %s", cfg.Fetch.Endpoint)
	vm.FetchPosts(context.Background())

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	dispatcher.Stop()
	log.Println("Shutdown complete")
}
