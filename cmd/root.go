package cmd

import (
	"os"

	"walletbot/logx"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "walletbot",
	Short: "Wallet bot CLI",
	Long:  "Command line interface for running and managing the signing wallet bot.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
