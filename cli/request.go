package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/EricWal/hr-app/core/request"
	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/pkg/slices"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var (
	statusAliases = map[string]domain.RequestStatus{
		"pending":  domain.RequestStatusPending,
		"approved": domain.RequestStatusApproved,
		"rejected": domain.RequestStatusRejected,
	}
	leaveSubtypeAliases = map[string]domain.LeaveSubtype{
		"annual":      domain.LeaveSubtypeAnnual,
		"sick":        domain.LeaveSubtypeSick,
		"exceptional": domain.LeaveSubtypeExceptional,
	}
)

func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "request",
		Aliases: []string{"requests"},
		Short:   "Submit and decide requests",
		Example: heredoc.Doc(`
			$ hr-app request absence --date 2026-10-14 --from "8:00 ص" --to "10:30 ص" --acknowledge --sign
			$ hr-app request leave --type annual --start 2026-10-20 --end 2026-10-22 --reason "سفر" --sign
			$ hr-app request list --status pending --page 2
			$ hr-app request reject 1760428800000 --actor admin@test.com --reason "ضغط العمل"
		`),
	}

	cmd.AddCommand(
		submitShortAbsenceCmd(),
		submitLeaveCmd(),
		listRequestsCmd(),
		viewRequestCmd(),
		approveRequestCmd(),
		rejectRequestCmd(),
	)

	return cmd
}

func submitShortAbsenceCmd() *cobra.Command {
	var in request.ShortAbsenceInput

	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Submit a short absence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.services.RequestService.SubmitShortAbsence(s.ctx, in)
			if err != nil {
				return violationsOrError(cmd, err)
			}
			return render(cmd, r, requestHeader, requestRows(r))
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "Calendar day, e.g. 2026-10-14")
	cmd.Flags().StringVar(&in.FromTime, "from", "", `Start time, e.g. "08:30" or "8:30 ص"`)
	cmd.Flags().StringVar(&in.ToTime, "to", "", "End time")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&in.Acknowledged, "acknowledge", false, "Acknowledge the absence rules")
	cmd.Flags().BoolVar(&in.Signed, "sign", false, "Sign the request")
	employeeFlags(cmd, &in.Employee)

	return cmd
}

func submitLeaveCmd() *cobra.Command {
	var (
		in      request.LeaveInput
		subtype string
	)

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Submit a leave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			in.Subtype = domain.LeaveSubtype(subtype)
			if alias, ok := leaveSubtypeAliases[strings.ToLower(subtype)]; ok {
				in.Subtype = alias
			}

			r, err := s.services.RequestService.SubmitLeave(s.ctx, in)
			if err != nil {
				return violationsOrError(cmd, err)
			}
			return render(cmd, r, requestHeader, requestRows(r))
		},
	}

	cmd.Flags().StringVar(&subtype, "type", "", "Leave type: annual, sick or exceptional")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "First day, e.g. 2026-10-20")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "Last day")
	cmd.Flags().StringVar(&in.Reason, "reason", "", "Reason")
	cmd.Flags().BoolVar(&in.Signed, "sign", false, "Sign the request")
	employeeFlags(cmd, &in.Employee)

	return cmd
}

func listRequestsCmd() *cobra.Command {
	var (
		statuses []string
		q        string
		size     int
		page     int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List requests, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if page < 1 {
				return fmt.Errorf("invalid page %d", page)
			}
			if size == 0 {
				size = request.DefaultPageSize
			}
			filter := domain.ListRequestsFilter{Q: q, Size: size, Offset: (page - 1) * size}
			if filter.Statuses, err = parseStatuses(statuses); err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			requests, total, err := s.services.RequestService.List(s.ctx, filter)
			if err != nil {
				return err
			}
			if err := render(cmd, requests, requestHeader, requestRows(requests...)); err != nil {
				return err
			}

			pages := (total + size - 1) / size
			fmt.Fprintf(cmd.ErrOrStderr(), "page %d of %d, %d request(s)\n", page, max(pages, 1), total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Filter by status: pending, approved or rejected")
	cmd.Flags().StringVarP(&q, "query", "q", "", "Search type, id, dates, notes and reason")
	cmd.Flags().IntVar(&size, "size", request.DefaultPageSize, "Requests per page")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}

func viewRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.services.RequestService.GetByID(s.ctx, id)
			if err != nil {
				return err
			}

			header := append([]string{}, requestHeader...)
			rows := requestRows(r)
			rows[0] = append(rows[0], r.RejectionReason)
			return render(cmd, r, append(header, "REJECTION REASON"), rows)
		},
	}
}

func approveRequestCmd() *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.services.RequestService.Approve(s.ctx, id, actor)
			if err != nil {
				return err
			}
			return render(cmd, r, requestHeader, requestRows(r))
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Email of the admin deciding")
	cmd.MarkFlagRequired("actor")

	return cmd
}

func rejectRequestCmd() *cobra.Command {
	var actor, reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.services.RequestService.Reject(s.ctx, id, actor, reason)
			if err != nil {
				return err
			}
			return render(cmd, r, requestHeader, requestRows(r))
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Email of the admin deciding")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")
	cmd.MarkFlagRequired("actor")

	return cmd
}

func employeeFlags(cmd *cobra.Command, e *domain.Employee) {
	cmd.Flags().StringVar(&e.Name, "name", "", "Employee name, defaults to the configured profile")
	cmd.Flags().StringVar(&e.Role, "role", "", "Employee role")
	cmd.Flags().StringVar(&e.Department, "department", "", "Employee department")
}

// violationsOrError lists each violation message before returning err.
func violationsOrError(cmd *cobra.Command, err error) error {
	var verr *request.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", v.Message)
		}
	}
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid request id %q", s)
	}
	return id, nil
}

// parseStatuses accepts English aliases or the stored Arabic labels.
func parseStatuses(values []string) ([]domain.RequestStatus, error) {
	statuses := make([]domain.RequestStatus, 0, len(values))
	for _, v := range slices.GenericsStandardizeSlice(values) {
		status, err := parseStatus(v)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return slices.GenericsUniqueSliceValues(statuses), nil
}

func parseStatus(s string) (domain.RequestStatus, error) {
	if status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	if status := domain.RequestStatus(s); status.IsValid() {
		return status, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}
