package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sniff/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sniff",
	Short: "PHP coding-style checker and fixer",
	Long:  `Sniff tokenizes PHP sources, reports style violations, and rewrites the fixable ones in place`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics per file (0 = config default)")
	rootCmd.PersistentFlags().String("config", "", "path to sniff.toml (default: nearest upward from cwd)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
