package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/EricWal/hr-app/internal/app"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hr-app <command> <subcommand> [flags]",
		Short:         "Short absence and leave requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ hr-app quota
			$ hr-app request absence --date 2026-10-14 --from 08:00 --to 10:00 --acknowledge --sign
			$ hr-app request list --status pending
			$ hr-app request approve 1760428800000 --actor admin@test.com
		`),
	}

	cmd.AddCommand(
		RequestCmd(),
		QuotaCmd(),
		LoginCmd(),
		ReportCmd(),
		JobCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")
	cmd.PersistentFlags().StringP("output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func Execute() {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type session struct {
	ctx      context.Context
	config   app.Config
	logger   log.Logger
	services *app.Services
}

// openSession loads the config, opens the store and tags the context with a
// trace id for this invocation.
func openSession(cmd *cobra.Command) (*session, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("getting config flag value: %w", err)
	}
	config, err := app.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewCtxLoggerWithWriter(
		cmd.ErrOrStderr(),
		config.Log.Level,
		config.Log.Format,
		[]string{log.CtxKeyTraceID, log.CtxKeyActor},
	)

	ctx := context.WithValue(cmd.Context(), log.CtxKeyTraceID, uuid.NewString()) //nolint:staticcheck
	services, err := app.InitServices(ctx, app.ServiceDeps{
		Config:    &config,
		Logger:    logger,
		Validator: validator.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("initializing services: %w", err)
	}

	return &session{
		ctx:      ctx,
		config:   config,
		logger:   logger,
		services: services,
	}, nil
}

func (s *session) Close() {
	if err := s.services.Close(); err != nil {
		s.logger.Error(s.ctx, "failed to close store", "error", err)
	}
}
