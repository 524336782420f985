// Package config loads and resolves sniff.toml, the per-project ruleset
// manifest.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"sniff/internal/diag"
)

// EngineConfig tunes the fix loop and the parallel driver.
type EngineConfig struct {
	// MaxPasses caps fix iterations per file before the engine reports
	// non-convergence.
	MaxPasses int `toml:"max_passes"`
	// Jobs is the number of files processed concurrently; 0 means one
	// worker per CPU.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics bounds the violations collected per file.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Exclude lists glob patterns matched against slash-separated relative
	// paths.
	Exclude []string `toml:"exclude"`
}

// RulesConfig selects and re-tunes registered rules.
type RulesConfig struct {
	Disabled []string          `toml:"disabled"`
	Severity map[string]string `toml:"severity"`
}

// Config is the resolved content of sniff.toml.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Rules  RulesConfig  `toml:"rules"`
}

// Default returns the configuration used when no sniff.toml exists.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			MaxPasses:      50,
			MaxDiagnostics: 1000,
		},
		Rules: RulesConfig{
			Severity: map[string]string{},
		},
	}
}

// Load parses the manifest at path, filling unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("engine", "max_passes") && cfg.Engine.MaxPasses < 1 {
		return Config{}, fmt.Errorf("%s: engine.max_passes must be at least 1", path)
	}
	if cfg.Engine.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: engine.jobs must not be negative", path)
	}
	if cfg.Rules.Severity == nil {
		cfg.Rules.Severity = map[string]string{}
	}
	return cfg, nil
}

// SeverityOverrides resolves the [rules].severity section into diagnostic
// severities.
func (c Config) SeverityOverrides() (map[string]diag.Severity, error) {
	out := make(map[string]diag.Severity, len(c.Rules.Severity))
	for name, s := range c.Rules.Severity {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "info":
			out[name] = diag.SevInfo
		case "warning":
			out[name] = diag.SevWarning
		case "error":
			out[name] = diag.SevError
		default:
			return nil, fmt.Errorf("rules.severity[%q]: unknown severity %q", name, s)
		}
	}
	return out, nil
}

// Hash digests every setting that influences diagnostics, for use in
// result-cache keys. Engine.Jobs is excluded: parallelism never changes
// the outcome.
func (c Config) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "max_passes=%d\n", c.Engine.MaxPasses)
	fmt.Fprintf(h, "max_diagnostics=%d\n", c.Engine.MaxDiagnostics)

	disabled := append([]string(nil), c.Rules.Disabled...)
	sort.Strings(disabled)
	for _, name := range disabled {
		fmt.Fprintf(h, "disabled=%s\n", name)
	}

	names := make([]string, 0, len(c.Rules.Severity))
	for name := range c.Rules.Severity {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(h, "severity[%s]=%s\n", name, strings.ToLower(c.Rules.Severity[name]))
	}
	return hex.EncodeToString(h.Sum(nil))
}
