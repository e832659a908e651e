package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillsync-cli/skillsync/pkg/agents"
	"github.com/skillsync-cli/skillsync/pkg/logger"
	"github.com/skillsync-cli/skillsync/pkg/presenter"
	"github.com/skillsync-cli/skillsync/pkg/skills"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLSYNC")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillsync")
	viper.AddConfigPath(".")

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "fmt")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillsync",
	Short: "Keep agent skills in sync across supporting tools",
	Long: `skillsync manages SKILL.md definitions replicated across every supporting
agent tool, scoped either to the current project or to each agent's global
configuration directory.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, keeping default", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// loadBindings assembles the agent registry: built-in defaults overlaid with
// bindings from a dedicated agents file and inline config.
func loadBindings() ([]agents.Binding, error) {
	bindings := agents.Default()

	if file := viper.GetString("agents_file"); file != "" {
		loaded, err := agents.LoadFile(file)
		if err != nil {
			return nil, err
		}
		bindings = agents.Merge(bindings, loaded)
	}

	if viper.IsSet("agents") {
		var inline []agents.Binding
		if err := viper.UnmarshalKey("agents", &inline); err != nil {
			return nil, errors.Wrap(err, "failed to parse agents config")
		}
		for _, b := range inline {
			if err := b.Validate(); err != nil {
				return nil, err
			}
		}
		bindings = agents.Merge(bindings, inline)
	}

	return bindings, nil
}

func newManager() (*skills.Manager, error) {
	bindings, err := loadBindings()
	if err != nil {
		return nil, err
	}
	return skills.NewManager(skills.WithAgents(bindings...))
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
