package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	nfa2regex "github.com/vidyaap/nfa-to-regex"
)

var (
	convertFormat     string
	convertJSONOutput bool
	convertNoSimplify bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert an automaton document into a GOLDBAR expression",
	Long: `Reads an automaton document from the given file, or from stdin when
no file is given, and prints the equivalent GOLDBAR expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", "json", "Input document format (json or yaml)")
	convertCmd.Flags().BoolVar(&convertJSONOutput, "json", false, "Print a {\"goldbar\": ...} JSON message instead of the bare expression")
	convertCmd.Flags().BoolVar(&convertNoSimplify, "no-simplify", false, "Skip the simplification pass")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	automaton, err := parseDocument(in, convertFormat)
	if err != nil {
		return err
	}

	result, err := nfa2regex.Convert(automaton)
	if err != nil {
		return err
	}
	if nfa2regex.IsEmptyLanguage(result) {
		slog.Error("no accepting path from the initial state", "initial", automaton.Initial, "accepts", automaton.Accepts)
		return fmt.Errorf("automaton accepts the empty language")
	}

	if !convertNoSimplify {
		result = nfa2regex.Simplify(result)
	}

	goldbar, err := nfa2regex.ToGoldbar(result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if convertJSONOutput {
		return json.NewEncoder(out).Encode(map[string]string{"goldbar": goldbar})
	}
	_, err = fmt.Fprintln(out, goldbar)
	return err
}

func parseDocument(r io.Reader, format string) (*nfa2regex.Automaton, error) {
	switch format {
	case "json":
		return nfa2regex.ParseJSON(r)
	case "yaml", "yml":
		return nfa2regex.ParseYAML(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}
