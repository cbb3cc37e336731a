// Command jobtrack runs keyword job searches, scores and filters the hits,
// and appends anything new to a tracking spreadsheet.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Personal job-search aggregator",
	Long: "jobtrack queries a web search API for job postings, scores them against\n" +
		"a configured rule set, drops everything already seen in earlier runs and\n" +
		"appends the survivors to a Google Sheet.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
