package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sniff/internal/engine"
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Rewrite fixable violations in place",
	Long:  `Fix runs the rules to a fixed point, rewriting each file until no rule stages further changes`,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().String("format", "pretty", "output format for remaining violations (pretty|short|json)")
	fixCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	st, err := loadSetup(cmd)
	if err != nil {
		return err
	}
	opts, err := st.engineOptions(cmd, true)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// The result cache never serves fix runs.
	run, err := st.runOptions(cmd, nil)
	if err != nil {
		return err
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	useTUI := shouldUseTUI(mode) && format == "pretty" && !quietEnabled(cmd)

	paths := targetPaths(args)
	files, err := engine.ListFiles(paths, st.cfg.Engine.Exclude)
	if err != nil {
		return err
	}

	eng := engine.New(st.registry, opts)
	_, results, err := runEngine(cmd.Context(), eng, files, run, "sniff fix", useTUI)
	if err != nil {
		return err
	}

	applied := 0
	changedFiles := 0
	for _, res := range results {
		if !res.Changed {
			continue
		}
		applied += res.Applied
		changedFiles++
		if dryRun {
			if !quietEnabled(cmd) {
				fmt.Fprintf(os.Stdout, "would fix %s (%d fixes in %d passes)\n", res.Path, res.Applied, res.Passes)
			}
			continue
		}
		if err := writeFixed(res.Path, res.Output); err != nil {
			return fmt.Errorf("failed to write %s: %w", res.Path, err)
		}
		if !quietEnabled(cmd) {
			fmt.Fprintf(os.Stdout, "fixed %s (%d fixes in %d passes)\n", res.Path, res.Applied, res.Passes)
		}
	}

	exitCode := reportResults(cmd, results, format, true)
	if !quietEnabled(cmd) && format == "pretty" {
		verb := "applied"
		if dryRun {
			verb = "would apply"
		}
		fmt.Fprintf(os.Stdout, "%s %d fixes across %d of %d files\n", verb, applied, changedFiles, len(files))
		printSummary(os.Stdout, results, len(files))
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// writeFixed replaces the file's content, preserving its permission bits.
func writeFixed(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
