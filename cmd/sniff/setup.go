package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sniff/internal/config"
	"sniff/internal/diag"
	"sniff/internal/engine"
	"sniff/internal/rule"
	"sniff/internal/rules"
)

// setup is the resolved configuration and registry shared by check/fix.
type setup struct {
	cfg        config.Config
	registry   *rule.Registry
	severities map[string]diag.Severity
}

func loadSetup(cmd *cobra.Command) (*setup, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, _, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	registry := rule.NewRegistry()
	rules.RegisterAll(registry)
	for _, name := range cfg.Rules.Disabled {
		if !registry.Enabled(name) {
			return nil, fmt.Errorf("rules.disabled: unknown rule %q", name)
		}
		registry.Disable(name)
	}

	severities, err := cfg.SeverityOverrides()
	if err != nil {
		return nil, err
	}

	return &setup{cfg: cfg, registry: registry, severities: severities}, nil
}

// engineOptions merges config with the persistent CLI flags.
func (s *setup) engineOptions(cmd *cobra.Command, fix bool) (engine.Options, error) {
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return engine.Options{}, err
	}
	if maxDiag <= 0 {
		maxDiag = s.cfg.Engine.MaxDiagnostics
	}
	return engine.Options{
		Fix:            fix,
		MaxPasses:      s.cfg.Engine.MaxPasses,
		MaxDiagnostics: maxDiag,
		Severities:     s.severities,
	}, nil
}

func (s *setup) runOptions(cmd *cobra.Command, cache *engine.Cache) (engine.RunOptions, error) {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return engine.RunOptions{}, err
	}
	if jobs == 0 {
		jobs = s.cfg.Engine.Jobs
	}
	return engine.RunOptions{
		Jobs:        jobs,
		Exclude:     s.cfg.Engine.Exclude,
		Cache:       cache,
		RulesetHash: s.cfg.Hash(),
	}, nil
}

func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}

func quietEnabled(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

func targetPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
