// Package main provides the entry point for the Career Coach HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercoach",
	Short: "Career Coach HTTP API Server",
	Long:  "Career Coach ingests a resume, generates an AI career roadmap, and runs mock chat and audio interviews with scored feedback via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
