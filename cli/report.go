package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/EricWal/hr-app/core/report"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summaries and exports",
		Example: heredoc.Doc(`
			$ hr-app report summary
			$ hr-app report export --file requests.xlsx --status approved
		`),
	}

	cmd.AddCommand(
		summaryReportCmd(),
		exportReportCmd(),
	)

	return cmd
}

func summaryReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count requests per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			summary, err := s.services.ReportService.Summary(s.ctx)
			if err != nil {
				return err
			}

			oldest := "-"
			if summary.OldestPending != nil {
				oldest = strconv.FormatInt(summary.OldestPending.ID, 10)
			}
			return render(cmd, summary,
				[]string{"TOTAL", "PENDING", "APPROVED", "REJECTED", "OLDEST PENDING"},
				[][]string{{
					strconv.Itoa(summary.Total),
					strconv.Itoa(summary.Pending),
					strconv.Itoa(summary.Approved),
					strconv.Itoa(summary.Rejected),
					oldest,
				}},
			)
		},
	}
}

func exportReportCmd() *cobra.Command {
	var (
		file     string
		statuses []string
		q        string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export requests to an xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := report.ExportFilter{Q: q}
			var err error
			if filter.Statuses, err = parseStatuses(statuses); err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			n, err := s.services.ReportService.ExportXLSX(s.ctx, f, filter)
			if err != nil {
				return fmt.Errorf("exporting requests: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d request(s) to %s\n", n, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "requests.xlsx", "Output file")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Filter by status: pending, approved or rejected")
	cmd.Flags().StringVarP(&q, "query", "q", "", "Search type, id, dates, notes and reason")

	return cmd
}
