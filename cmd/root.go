package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Tool for creating, shuffling and dealing card decks",
	Long: `Deckhand is a command-line tool for creating, shuffling, dealing and
saving decks of playing cards. Saved decks live in a deck library under your
XDG data directory and can be reloaded and dealt from later.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
