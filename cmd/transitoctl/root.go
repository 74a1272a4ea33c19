package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transitoctl",
	Short: "Vehicle registry query API",
	Long:  `transitoctl runs and manages the API Consultas Vehiculares server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
