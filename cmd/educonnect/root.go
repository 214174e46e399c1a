package main

import "github.com/spf13/cobra"

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "educonnect",
	Short:   "EduConnect is an educational social platform backend",
	Version: version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
