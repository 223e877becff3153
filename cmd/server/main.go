package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/persona"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	log.Println("Starting portfolio backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.OpenRouterAPIKey == "" {
		log.Println("! OPENROUTER_API_KEY is not set; chat requests will fail until it is")
	}

	// ──── Step 2: Load Knowledge Base ────
	knowledge := persona.LoadKnowledge(cfg.KnowledgePath)
	composer := persona.NewComposer(knowledge, cfg.RefusalSentence)
	log.Println("✓ Knowledge base loaded")

	// ──── Step 3: Initialize OpenRouter Client ────
	openRouter := services.NewOpenRouterService(
		cfg.OpenRouterBaseURL,
		cfg.OpenRouterModel,
		cfg.ChatTemperature,
		cfg.ChatMaxTokens,
		time.Duration(cfg.UpstreamTimeout)*time.Second,
	)
	log.Printf("✓ OpenRouter client initialized (model: %s)", cfg.OpenRouterModel)

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(composer, openRouter, cfg.OpenRouterAPIKey)
	r := router.New(chatHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Portfolio backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
