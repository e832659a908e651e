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

type SkillEditConfig struct {
	Global    bool
	Broadcast bool
}

func NewSkillEditConfig() *SkillEditConfig {
	return &SkillEditConfig{
		Global:    false,
		Broadcast: false,
	}
}

var editCmd = &cobra.Command{
	Use:   "edit <name> <description>",
	Short: "Update a skill's description for every agent that has it",
	Long: `Rewrite the "description:" frontmatter line of an existing skill. By
default each agent's own copy is edited in place; --broadcast copies the
first agent's edited content to every agent, collapsing any divergence.

Examples:
  skillsync edit deploy-helper "Updated deploy logic"
  skillsync edit deploy-helper "Updated deploy logic" -g`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config := getSkillEditConfigFromFlags(cmd)
		runEdit(cmd.Context(), args[0], strings.Join(args[1:], " "), config)
	},
}

func init() {
	defaults := NewSkillEditConfig()
	editCmd.Flags().BoolP("global", "g", defaults.Global, "Edit under each agent's global directory instead of the current project")
	editCmd.Flags().Bool("broadcast", defaults.Broadcast, "Propagate the first agent's edited content to all agents")
	rootCmd.AddCommand(editCmd)
}

func getSkillEditConfigFromFlags(cmd *cobra.Command) *SkillEditConfig {
	config := NewSkillEditConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if broadcast, err := cmd.Flags().GetBool("broadcast"); err == nil {
		config.Broadcast = broadcast
	}
	return config
}

func runEdit(ctx context.Context, name, description string, config *SkillEditConfig) {
	bindings, err := loadBindings()
	if err != nil {
		presenter.Error(err, "Failed to load agent registry")
		os.Exit(1)
	}

	opts := []skills.Option{skills.WithAgents(bindings...)}
	if config.Broadcast {
		opts = append(opts, skills.WithBroadcastEdit())
	}

	mgr, err := skills.NewManager(opts...)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill manager")
		os.Exit(1)
	}

	scope := skills.ScopeFromProjectLevel(!config.Global)
	report, err := mgr.Edit(ctx, name, description, scope)
	if report == nil {
		presenter.Error(err, "Failed to edit skill")
		os.Exit(1)
	}

	for _, b := range mgr.Agents() {
		outcome, ok := report[b.Name]
		if !ok {
			continue
		}
		if outcome.Err != nil {
			presenter.Error(outcome.Err, fmt.Sprintf("Failed to edit skill for %s", outcome.Agent))
		} else {
			presenter.Success(fmt.Sprintf("Updated %s", outcome.File))
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
