package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nfa2regex",
	Short: "nfa2regex converts finite automata into GOLDBAR expressions",
	Long: `nfa2regex reads a finite-state automaton description (states, an
initial state, accept states and a labeled transition table) and converts
it into an equivalent regular expression by state elimination, printed in
GOLDBAR operator notation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
