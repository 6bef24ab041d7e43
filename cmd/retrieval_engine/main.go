package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/docquery/go-retrieval-engine/api"
	"github.com/docquery/go-retrieval-engine/config"
	"github.com/docquery/go-retrieval-engine/internal/chunker"
	"github.com/docquery/go-retrieval-engine/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		configPath = flag.String("config", "", "Path to a YAML file with chunking defaults")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Retrieval Engine - TF-IDF document retrieval with pluggable chunking\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                            # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config chunking.yaml     # Load chunking defaults from file\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Retrieval Engine v1.0.0\n")
		fmt.Printf("Eight chunking strategies, TF-IDF vector index, extractive answers\n")
		return
	}

	// Load chunking defaults
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Probe the sentence tokenizer once; the capability flag decides whether
	// the sentence_tokenizer strategy is available or degrades to regex.
	cfg.SentenceTokenizerAvailable = chunker.ProbeSentenceTokenizer()
	if !cfg.SentenceTokenizerAvailable {
		log.Printf("Sentence tokenizer unavailable, sentence_tokenizer strategy will fall back to regex splitting")
	}

	// Initialize the retrieval engine
	log.Printf("Using %s chunking strategy", cfg.Strategy)
	retrievalEngine, err := engine.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create retrieval engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, retrievalEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
