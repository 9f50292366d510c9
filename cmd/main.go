package main

import (
	"os"

	"AccountSystem/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCMD(&cli.CmdParams{
		Use:   "accountsys",
		Alias: "acs",
		Short: "Account balance manager",
		Long: `Account balance manager - view, credit and debit a single in-memory
balance from an interactive menu.`,
	})

	// cobra has already printed the error
	if err := rootCmd.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
