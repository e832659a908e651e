package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillsync-cli/skillsync/pkg/presenter"
	"github.com/skillsync-cli/skillsync/pkg/skills"
)

type SkillListConfig struct {
	Global bool
	Long   bool
}

func NewSkillListConfig() *SkillListConfig {
	return &SkillListConfig{
		Global: false,
		Long:   false,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills per agent",
	Long: `List the skill directories of every registered agent. Agents whose skills
directory does not exist are skipped. With --long, each skill's name and
description are read from its SKILL.md frontmatter.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getSkillListConfigFromFlags(cmd)
		runList(cmd.Context(), config)
	},
}

func init() {
	defaults := NewSkillListConfig()
	listCmd.Flags().BoolP("global", "g", defaults.Global, "List under each agent's global directory instead of the current project")
	listCmd.Flags().BoolP("long", "l", defaults.Long, "Show skill descriptions parsed from SKILL.md")
	rootCmd.AddCommand(listCmd)
}

func getSkillListConfigFromFlags(cmd *cobra.Command) *SkillListConfig {
	config := NewSkillListConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if long, err := cmd.Flags().GetBool("long"); err == nil {
		config.Long = long
	}
	return config
}

func runList(ctx context.Context, config *SkillListConfig) {
	mgr, err := newManager()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill manager")
		os.Exit(1)
	}

	scope := skills.ScopeFromProjectLevel(!config.Global)
	listed, err := mgr.List(ctx, scope)
	if err != nil {
		presenter.Error(err, "Failed to list skills")
		os.Exit(1)
	}

	if len(listed) == 0 {
		presenter.Info("No agent skills directories found")
		return
	}

	if config.Long {
		printLong(listed)
		return
	}

	for _, agent := range listed {
		presenter.Section(agent.Agent)
		if len(agent.Skills) == 0 {
			presenter.Info("(no skills)")
			continue
		}
		for _, name := range agent.Skills {
			presenter.Info(name)
		}
	}
}

func printLong(listed []skills.AgentSkills) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tSKILL\tDESCRIPTION")
	fmt.Fprintln(tw, "-----\t-----\t-----------")

	for _, agent := range listed {
		for _, name := range agent.Skills {
			description := "(unreadable)"
			if skill, err := skills.LoadSkill(filepath.Join(agent.Dir, name, skills.SkillFileName)); err == nil {
				description = skill.Description
			}
			if len(description) > 60 {
				description = description[:57] + "..."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", agent.Agent, name, description)
		}
	}
	tw.Flush()
}
