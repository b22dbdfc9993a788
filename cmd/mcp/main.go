package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"jobhunt/internal/app"
	"jobhunt/internal/config"
	dbpostgres "jobhunt/internal/database/postgres"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// stdout carries the MCP protocol; logs go to stderr.
	logger := log.New(os.Stderr, "", log.LstdFlags)

	if err := godotenv.Load(); err != nil {
		logger.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadTools()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := dbpostgres.Connect(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	uc := app.NewUsecases(cfg, db, nil, nil, nil, logger)

	s := server.NewMCPServer("jobhunt", "1.0.0")
	registerSearchJobs(s, uc.JobSearch)
	registerRecommendJobs(s, uc.JobRecommendation)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
