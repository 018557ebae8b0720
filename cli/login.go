package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func LoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check an account's credentials",
		Example: heredoc.Doc(`
			$ hr-app login --email admin@test.com --password 123
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			account, err := s.services.AuthService.Login(s.ctx, email, password)
			if err != nil {
				return err
			}
			return render(cmd, account,
				[]string{"EMAIL", "ROLE"},
				[][]string{{account.Email, string(account.Role)}},
			)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("email")

	return cmd
}
