package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillsync-cli/skillsync/pkg/presenter"
	"github.com/skillsync-cli/skillsync/pkg/skills"
)

type SkillDeleteConfig struct {
	Global bool
}

func NewSkillDeleteConfig() *SkillDeleteConfig {
	return &SkillDeleteConfig{
		Global: false,
	}
}

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"remove"},
	Short:   "Delete a skill from every agent that has it",
	Long: `Remove a skill's entire directory subtree, including any extra files beside
SKILL.md, for every agent where it exists.

Examples:
  skillsync delete deploy-helper
  skillsync delete deploy-helper -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getSkillDeleteConfigFromFlags(cmd)
		runDelete(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewSkillDeleteConfig()
	deleteCmd.Flags().BoolP("global", "g", defaults.Global, "Delete under each agent's global directory instead of the current project")
	rootCmd.AddCommand(deleteCmd)
}

func getSkillDeleteConfigFromFlags(cmd *cobra.Command) *SkillDeleteConfig {
	config := NewSkillDeleteConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	return config
}

func runDelete(ctx context.Context, name string, config *SkillDeleteConfig) {
	mgr, err := newManager()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill manager")
		os.Exit(1)
	}

	scope := skills.ScopeFromProjectLevel(!config.Global)
	report, err := mgr.Delete(ctx, name, scope)
	if report == nil {
		presenter.Error(err, "Failed to delete skill")
		os.Exit(1)
	}

	for _, b := range mgr.Agents() {
		outcome, ok := report[b.Name]
		if !ok {
			continue
		}
		if outcome.Err != nil {
			presenter.Error(outcome.Err, fmt.Sprintf("Failed to delete skill for %s", outcome.Agent))
		} else {
			presenter.Success(fmt.Sprintf("Removed %s", filepath.Dir(outcome.File)))
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
