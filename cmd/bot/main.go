// Package main is the entry point for the prismbot command processor
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prismbot",
	Short: "Chat game master assistant",
	Long:  `Prismbot interprets chat commands for character management and resolves prism-based dice rolls.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
