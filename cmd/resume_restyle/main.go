// Package main provides the entry point for the Resume Restyle CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_restyle",
	Short: "Resume Restyle CLI and HTTP API Server",
	Long:  "Resume Restyle decodes resumes (PDF, DOCX, DOC, TXT), extracts their fields with heuristics or Gemini, and re-renders them through placeholder templates via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
