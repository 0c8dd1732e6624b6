package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/daisy/internal/config"
	"github.com/bnema/daisy/internal/server"
	"github.com/bnema/daisy/pkg/logger"
	"github.com/bnema/daisy/pkg/version"
)

func newServeCmd() *cobra.Command {
	var (
		cfgFile string
		addr    string
		theme   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component gallery",
		Long: `Start an HTTP server rendering every component. Configuration is read from
daisy.yaml (or --config), .env and DAISY_* environment variables; flags win.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if theme != "" {
				cfg.Gallery.Theme = strings.ToLower(theme)
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			log := logger.GetLogger()
			if !cmd.Flags().Changed("log-level") && os.Getenv(logger.EnvLogLevel) == "" {
				log.SetLogLevel(cfg.Log.Level)
			}
			logger.Debug("configuration loaded", "file", cfgFile, "addr", cfg.Server.Addr, "theme", cfg.Gallery.Theme)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.New(cfg, log, version.Version()).Run(ctx); err != nil {
				return err
			}
			logger.Info("gallery stopped", "version", version.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./daisy.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config")
	cmd.Flags().StringVar(&theme, "theme", "", "daisyUI theme, overrides the config")
	return cmd
}
