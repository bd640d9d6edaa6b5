package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/graphsite/config"
	"github.com/c360studio/graphsite/site"
)

// appOptions carries the flags shared by all subcommands.
type appOptions struct {
	configPath string
	siteURL    string
	verbose    bool
}

func (o *appOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the layered configuration and applies CLI overrides.
func (o *appOptions) loadConfig(logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.NewLoader(logger).Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.siteURL != "" {
		logger.Info("site_url overridden from command line",
			slog.String("site_url", o.siteURL))
		cfg.Site.SiteURL = o.siteURL
	}
	return cfg, nil
}

func rootCmd() *cobra.Command {
	opts := &appOptions{}

	root := &cobra.Command{
		Use:     appName,
		Short:   "Generate a static site from a fact graph",
		Version: Version,
		Long: `Graphsite builds one HTML page per selected resource of a fact graph.
Each resource's classes are looked up in the graph, the class hierarchy is
walked to find the most specific template mapped to one of them, and the
template is rendered with accessor functions for reading the graph.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default graphsite.yaml)")
	root.PersistentFlags().StringVar(&opts.siteURL, "site-url", "", "override site URL, e.g. http://localhost:8000")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(buildCmd(opts))
	root.AddCommand(serveCmd(opts))
	root.AddCommand(cleanCmd(opts))
	return root
}

func buildCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the site once",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			cfg, err := opts.loadConfig(logger)
			if err != nil {
				return err
			}
			generator, err := site.New(cfg, logger)
			if err != nil {
				return err
			}
			report, err := generator.Build(nil)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Built %d pages in %s (%s)\n", report.Pages, report.Output, report.Duration.Round(time.Millisecond))
			return nil
		},
	}
}

func serveCmd(opts *appOptions) *cobra.Command {
	var addr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			cfg, err := opts.loadConfig(logger)
			if err != nil {
				return err
			}
			if cfg.Site.SiteURL == "" {
				cfg.Site.SiteURL = "http://" + addr
			}

			metrics := site.NewMetrics()
			rebuild := func() error {
				generator, err := site.New(cfg, logger)
				if err != nil {
					return err
				}
				_, err = generator.Build(metrics)
				return err
			}
			if err := rebuild(); err != nil {
				return err
			}

			if watch {
				watched := []string{
					cfg.Templates.Path,
					cfg.Data.DatasetPath,
				}
				go func() {
					if err := site.Watch(watched, rebuild, logger, cmd.Context().Done()); err != nil {
						logger.Error("watch stopped", slog.String("error", err.Error()))
					}
				}()
			}

			server := &site.Server{
				Dir:     cfg.Output.Path,
				Addr:    addr,
				Metrics: metrics,
				Logger:  logger,
			}
			return server.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8000", "address to serve on")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild when templates or data change")
	return cmd
}

func cleanCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the output folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			cfg, err := opts.loadConfig(logger)
			if err != nil {
				return err
			}
			if err := os.RemoveAll(cfg.Output.Path); err != nil {
				return fmt.Errorf("clean output folder: %w", err)
			}
			fmt.Printf("✓ Removed %s\n", cfg.Output.Path)
			return nil
		},
	}
}
