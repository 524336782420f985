package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sniff/internal/diag"
	"sniff/internal/engine"
	"sniff/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report style violations without modifying files",
	Long:  `Check tokenizes every PHP file under the given paths and reports rule violations`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache")
	checkCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := loadSetup(cmd)
	if err != nil {
		return err
	}
	opts, err := st.engineOptions(cmd, false)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	var cache *engine.Cache
	if !noCache {
		// A cache failure means an uncached run, never a failed one.
		cache, _ = engine.OpenCache("sniff")
	}
	run, err := st.runOptions(cmd, cache)
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
	_, results, err := runEngine(cmd.Context(), eng, files, run, "sniff check", useTUI)
	if err != nil {
		return err
	}

	exitCode := reportResults(cmd, results, format, false)
	if !quietEnabled(cmd) && format == "pretty" {
		printSummary(os.Stdout, results, len(files))
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// reportResults renders all per-file bags and returns the exit code:
// 2 when any file was malformed, 1 when violations remain, else 0.
func reportResults(cmd *cobra.Command, results []engine.FileResult, format string, showFixed bool) int {
	popts := report.PrettyOpts{
		Color:     colorEnabled(cmd, os.Stdout),
		PathMode:  report.PathModeRelative,
		ShowNotes: true,
		ShowFixed: showFixed,
	}

	malformed := false
	violations := false

	var combined report.Output
	for _, res := range results {
		if res.Malformed != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", res.Path, res.Malformed.Error())
			malformed = true
			continue
		}
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			violations = true
		}

		switch format {
		case "pretty":
			report.Pretty(os.Stdout, res.Bag, res.FS, popts)
		case "short":
			if out := diag.FormatShort(res.Bag.Items(), res.FS); out != "" {
				fmt.Fprintln(os.Stdout, out)
			}
		case "json":
			o := report.BuildOutput(res.Bag, res.FS, report.JSONOpts{PathMode: report.PathModeRelative})
			combined.Violations = append(combined.Violations, o.Violations...)
		}
	}

	if format == "json" {
		combined.Count = len(combined.Violations)
		if combined.Violations == nil {
			combined.Violations = []report.ViolationJSON{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(combined); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode JSON: %v\n", err)
		}
	}

	switch {
	case malformed:
		return 2
	case violations:
		return 1
	default:
		return 0
	}
}

func printSummary(w *os.File, results []engine.FileResult, fileCount int) {
	var errs, warns, fixed int
	for _, res := range results {
		if res.Bag == nil {
			continue
		}
		fixed += res.Bag.FixedCount()
		for _, v := range res.Bag.Items() {
			if v.Fixed {
				continue
			}
			switch v.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			}
		}
	}
	if fixed > 0 {
		fmt.Fprintf(w, "%d errors, %d warnings, %d fixed in %d files\n", errs, warns, fixed, fileCount)
		return
	}
	fmt.Fprintf(w, "%d errors, %d warnings in %d files\n", errs, warns, fileCount)
}
