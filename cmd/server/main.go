// Package main is the entry point for the rpg-stats server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-stats",
	Short: "Rule-driven stat scaling server",
	Long: `rpg-stats scales character stats by level according to a rule set.
It serves owners over gRPC, stores rule sets in Redis, and can simulate a
leveling curve offline.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
