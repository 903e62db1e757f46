// ABOUTME: "fly demo" runs a full-screen showcase of tooltips and dropdowns
// ABOUTME: Optionally watches the config files and re-applies overlays on change

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/fly-go/internal/config"
	ilog "github.com/mauromedda/fly-go/internal/log"
	"github.com/mauromedda/fly-go/pkg/fly"
	"github.com/mauromedda/fly-go/pkg/tui"
)

func (c *CLI) demoCommand() *cobra.Command {
	var (
		logFile string
		uuidNS  bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive tooltip and dropdown demo",
		Long: `Run a full-screen demo. Hover anchors for tooltips, click them for
dropdowns, press / for the command palette and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the full-screen frame.
			if logFile == "" {
				ilog.SetOutput(io.Discard)
			} else {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				ilog.SetOutput(f)
			}

			var names fly.NamespaceSource
			if uuidNS {
				names = fly.UUIDNamespaces()
			}

			w, h := terminalSize()
			d, err := newDemo(c.settings, w, h, names, nil)
			if err != nil {
				return err
			}
			defer d.reg.DestroyAll()

			// The watcher lives as long as the program.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				defer cancel()
				return tui.Run(gctx, d, d.model)
			})
			if watch {
				g.Go(func() error {
					c.watch(gctx, d)
					return nil
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the demo runs")
	cmd.Flags().BoolVar(&uuidNS, "uuid-namespaces", false, "name overlay instances with UUIDs instead of a counter")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload overlays when config files change")

	return cmd
}

// watch re-applies settings on the program loop whenever a config file changes.
func (c *CLI) watch(ctx context.Context, d *demo) {
	config.Watch(ctx, c.watchPaths(), 0, func() {
		s, err := c.reload()
		d.model.Scheduler().AfterFunc(0, func() {
			if err == nil {
				err = d.apply(s)
			}
			if err != nil {
				d.status = "reload failed: " + err.Error()
				return
			}
			d.status = "config reloaded"
		})
	})
}

// watchPaths returns the files reload reads: the explicit config file
// when one was given, else the global and project files.
func (c *CLI) watchPaths() []string {
	if c.configPath != "" {
		return []string{c.configPath}
	}
	return config.WatchPaths(c.projectRoot)
}

// reload reads settings the same way setup did.
func (c *CLI) reload() (*config.Settings, error) {
	if c.configPath != "" {
		s, err := config.LoadFile(c.configPath)
		if err != nil {
			return nil, err
		}
		config.ApplyEnv(s)
		return s, nil
	}
	return config.Load(c.projectRoot)
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
