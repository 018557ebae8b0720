package cli

import (
	"context"
	"fmt"

	"github.com/EricWal/hr-app/jobs"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Manage jobs",
		Example: heredoc.Doc(`
			$ hr-app job run pending_requests_reminder
		`),
	}

	cmd.AddCommand(
		runJobCmd(),
	)

	return cmd
}

func runJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire a specific job",
		Example: heredoc.Doc(`
			$ hr-app job run pending_requests_reminder
		`),
		Args: cobra.ExactValidArgs(1),
		ValidArgs: []string{
			string(jobs.PendingRequestsReminder),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			handler := jobs.NewHandler(s.logger, s.services.ReportService)

			jobsMap := map[jobs.Type]func(context.Context, jobs.Config) error{
				jobs.PendingRequestsReminder: handler.PendingRequestsReminder,
			}

			jobName := jobs.Type(args[0])
			job := jobsMap[jobName]
			if job == nil {
				return fmt.Errorf("invalid job name: %s", jobName)
			}
			jobConfig := s.config.Jobs[jobName]
			if !jobConfig.Enabled {
				s.logger.Info(s.ctx, "job disabled", "job", jobName)
				return nil
			}
			if err := job(s.ctx, jobConfig.Config); err != nil {
				return fmt.Errorf(`failed to run job "%s": %w`, jobName, err)
			}

			return nil
		},
	}

	return cmd
}
