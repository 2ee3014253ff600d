package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the game command. secret is called once per run.
func newRootCmd(secret func() int) *cobra.Command {

	return &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number between 1 and 100",
		Long: `Guess the Number picks a secret number between 1 and 100 (inclusive).
Type a guess and press enter; you'll be told whether it was too small
or too big. The game ends when you find the number.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd.OutOrStdout())
			return newGame(secret(), cmd.InOrStdin(), out).play()
		},
	}

}

func main() {

	if err := newRootCmd(randomSecret).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[Error]", err)
		os.Exit(1)
	}

}
