package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sniff/internal/report"
	"sniff/internal/source"
	"sniff/internal/stream"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.php",
	Short: "Tokenize a PHP source file",
	Long:  `Tokenize breaks a PHP source file into its tokens, including whitespace, comments, and doc-block parts`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	s, merr := stream.Build(fs, id)
	if merr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], merr.Error())
		os.Exit(2)
	}

	switch format {
	case "pretty":
		return report.FormatTokensPretty(os.Stdout, s.Tokens(), fs)
	case "json":
		return report.FormatTokensJSON(os.Stdout, s.Tokens())
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
