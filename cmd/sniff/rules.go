package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered rules and their configuration",
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	st, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	for _, rl := range st.registry.Rules() {
		state := "enabled"
		if !st.registry.Enabled(rl.Name()) {
			state = "disabled"
		}
		var triggers []string
		for _, k := range rl.Triggers() {
			triggers = append(triggers, k.String())
		}
		line := fmt.Sprintf("%-26s %-8s triggers: %s", rl.Name(), state, strings.Join(triggers, ", "))
		if sev, ok := st.severities[rl.Name()]; ok {
			line += fmt.Sprintf(" severity: %s", sev)
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
