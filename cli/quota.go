package cli

import (
	"strconv"

	"github.com/EricWal/hr-app/domain"
	"github.com/spf13/cobra"
)

func QuotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show this month's short absence allowance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			q := s.services.RequestService.Quota(s.ctx)
			return render(cmd, q,
				[]string{"", "USED", "REMAINING"},
				[][]string{
					{"time", domain.FormatMinutes(q.UsedMinutes), domain.FormatMinutes(q.RemainingMinutes)},
					{"requests", strconv.Itoa(q.UsedCount), strconv.Itoa(q.RemainingCount)},
				},
			)
		},
	}
}
