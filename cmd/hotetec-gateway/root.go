package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/joho/godotenv"
	"github.com/ozzus/hotetec-gateway/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliEnv is filled by the root command before any subcommand runs.
type cliEnv struct {
	configPath string
	sessionID  string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &cliEnv{}

	root := &cobra.Command{
		Use:           "hotetec-gateway",
		Short:         "Gateway to the Hotetec hotel-booking XML service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load(".env")

			cfg, err := config.LoadByPath(config.ResolvePath(rt.configPath))
			if err != nil {
				return err
			}
			if rt.sessionID != "" {
				cfg.Hotetec.SessionID = rt.sessionID
			}
			rt.cfg = cfg
			rt.log = setupLogger(cfg.Log.Level)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "path to config file (default $CONFIG_PATH or config/local.yaml)")
	root.PersistentFlags().StringVar(&rt.sessionID, "session", "", "session token from a previous auth (default $HOTETEC_SESSION_ID)")

	root.AddCommand(newServeCmd(rt))
	root.AddCommand(newAuthCmd(rt))
	root.AddCommand(newAvailabilityCmd(rt))
	root.AddCommand(newReservationCmd(rt))
	root.AddCommand(newHotelCmd(rt))

	return root
}

// withApplication builds the service graph for a one-shot command.
func withApplication(cmd *cobra.Command, rt *cliEnv, fn func(ctx context.Context, app *application) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := buildApplication(ctx, rt.cfg, rt.log)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
