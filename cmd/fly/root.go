// ABOUTME: Root cobra command: global flags, settings loading and log level wiring
// ABOUTME: Subcommands read the loaded settings from the CLI struct

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/fly-go/internal/config"
	ilog "github.com/mauromedda/fly-go/internal/log"
)

// CLI holds state shared by subcommands.
type CLI struct {
	configPath  string
	projectRoot string
	logLevel    string

	settings *config.Settings
}

func newCLI() *CLI {
	return &CLI{projectRoot: "."}
}

func (c *CLI) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "fly",
		Short:         "Anchored tooltips and dropdowns for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("fly %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: global and project files)")
	root.PersistentFlags().StringVar(&c.projectRoot, "project", c.projectRoot, "project root searched for .fly.yaml or .fly.toml")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(c.placeCommand())
	root.AddCommand(c.demoCommand())

	return root
}

// setup loads settings and applies the log level. The flag wins over
// FLY_LOG_LEVEL, which wins over the config files.
func (c *CLI) setup() error {
	var err error
	if c.configPath != "" {
		c.settings, err = config.LoadFile(c.configPath)
		if err == nil {
			config.ApplyEnv(c.settings)
		}
	} else {
		c.settings, err = config.Load(c.projectRoot)
	}
	if err != nil {
		return err
	}

	name := c.settings.LogLevel
	if c.logLevel != "" {
		name = c.logLevel
	}
	if name == "" {
		return nil
	}
	level, err := ilog.ParseLevel(name)
	if err != nil {
		return err
	}
	ilog.SetLevel(level)
	ilog.Debug("settings loaded (project %s, pid %d)", c.projectRoot, os.Getpid())
	return nil
}
