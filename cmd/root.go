package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"melodex/server"
)

var rootCmd = &cobra.Command{
	Use:   "melodex",
	Short: "Melodex is a content-based music recommendation service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting Melodex server...")
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
