package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillsync-cli/skillsync/pkg/presenter"
	"github.com/skillsync-cli/skillsync/pkg/skills"
)

type SkillCreateConfig struct {
	Global bool
}

func NewSkillCreateConfig() *SkillCreateConfig {
	return &SkillCreateConfig{
		Global: false,
	}
}

var createCmd = &cobra.Command{
	Use:   "create <name> <description>",
	Short: "Create a skill for every supporting agent",
	Long: `Create a skill directory with a SKILL.md definition for every registered
agent. Creation is idempotent: if the skill already exists, the existing
files are reported and nothing is overwritten.

Examples:
  skillsync create deploy-helper "Automates deployments"
  skillsync create deploy-helper "Automates deployments" -g`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config := getSkillCreateConfigFromFlags(cmd)
		runCreate(cmd.Context(), args[0], strings.Join(args[1:], " "), config)
	},
}

func init() {
	defaults := NewSkillCreateConfig()
	createCmd.Flags().BoolP("global", "g", defaults.Global, "Create under each agent's global directory instead of the current project")
	rootCmd.AddCommand(createCmd)
}

func getSkillCreateConfigFromFlags(cmd *cobra.Command) *SkillCreateConfig {
	config := NewSkillCreateConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	return config
}

func runCreate(ctx context.Context, name, description string, config *SkillCreateConfig) {
	mgr, err := newManager()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill manager")
		os.Exit(1)
	}

	scope := skills.ScopeFromProjectLevel(!config.Global)
	report, err := mgr.Create(ctx, name, description, scope)
	if report == nil {
		presenter.Error(err, "Failed to create skill")
		os.Exit(1)
	}

	for _, b := range mgr.Agents() {
		outcome, ok := report[b.Name]
		if !ok {
			continue
		}
		if outcome.Err != nil {
			presenter.Error(outcome.Err, fmt.Sprintf("Failed to create skill for %s", outcome.Agent))
		} else {
			presenter.Success(fmt.Sprintf("Created %s", outcome.File))
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
