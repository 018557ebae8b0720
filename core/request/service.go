package request

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/pkg/audit"
	"github.com/EricWal/hr-app/pkg/diff"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/EricWal/hr-app/pkg/slices"
	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
)

const (
	AuditKeySubmit  = "request.submit"
	AuditKeyApprove = "request.approve"
	AuditKeyReject  = "request.reject"

	DefaultPageSize = 3
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Add(context.Context, *domain.Request) error
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, rejectionReason *string) error
	List(context.Context) []*domain.Request
	GetByID(context.Context, int64) (*domain.Request, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type ShortAbsenceInput struct {
	Date string
	// FromTime and ToTime are read when the minute fields are nil,
	// e.g. "08:30" or "8:30 ص".
	FromTime     string
	ToTime       string
	FromMinutes  *int
	ToMinutes    *int
	Notes        string
	Acknowledged bool
	Signed       bool
	Employee     domain.Employee
}

type LeaveInput struct {
	Subtype   domain.LeaveSubtype
	StartDate string
	EndDate   string
	Reason    string
	Signed    bool
	Employee  domain.Employee
}

type Service struct {
	repo        repository
	validator   *Validator
	policy      domain.QuotaPolicy
	profile     domain.Employee
	logger      log.Logger
	auditLogger auditLogger

	now func() time.Time
	mu  sync.Mutex
}

type ServiceDeps struct {
	Repository  repository
	Validator   *validator.Validate
	Policy      domain.QuotaPolicy
	Profile     domain.Employee
	Logger      log.Logger
	AuditLogger auditLogger

	// Now defaults to time.Now.
	Now func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:        deps.Repository,
		validator:   NewValidator(deps.Validator, deps.Policy),
		policy:      deps.Policy,
		profile:     deps.Profile,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
		now:         now,
	}
}

// Quota reports this month's remaining short-absence allowance.
func (s *Service) Quota(ctx context.Context) domain.Quota {
	return s.policy.Compute(s.now(), s.repo.List(ctx))
}

func (s *Service) SubmitShortAbsence(ctx context.Context, in ShortAbsenceInput) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	check := ShortAbsenceCheck{
		Date:         strings.TrimSpace(in.Date),
		FromMinutes:  in.FromMinutes,
		ToMinutes:    in.ToMinutes,
		Acknowledged: in.Acknowledged,
		Signed:       in.Signed,
	}
	if check.FromMinutes == nil && strings.TrimSpace(in.FromTime) != "" {
		check.FromMinutes, check.MalformedTime = parseTime(in.FromTime, check.MalformedTime)
	}
	if check.ToMinutes == nil && strings.TrimSpace(in.ToTime) != "" {
		check.ToMinutes, check.MalformedTime = parseTime(in.ToTime, check.MalformedTime)
	}

	requests := s.repo.List(ctx)
	quota := s.policy.Compute(s.now(), requests)
	if err := s.validator.ValidateShortAbsence(check, quota); err != nil {
		s.logger.Info(ctx, "short absence rejected by validation", "error", err)
		return nil, err
	}

	from, to := *check.FromMinutes, *check.ToMinutes
	r := domain.NewShortAbsenceRequest(nextID(s.now(), requests), domain.ShortAbsence{
		Date:            check.Date,
		FromTime:        domain.FormatTimeOfDay(from),
		ToTime:          domain.FormatTimeOfDay(to),
		FromTimeMinutes: from,
		ToTimeMinutes:   to,
		DurationMinutes: to - from,
		Notes:           strings.TrimSpace(in.Notes),
	})
	if err := s.submit(ctx, r, in.Employee, in.Signed); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "short absence submitted",
		"id", r.ID,
		"duration_minutes", r.ShortAbsence.DurationMinutes,
		"remaining_minutes", quota.RemainingMinutes-r.ShortAbsence.DurationMinutes,
	)
	return r, nil
}

func (s *Service) SubmitLeave(ctx context.Context, in LeaveInput) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	check := LeaveCheck{
		Subtype:   strings.TrimSpace(string(in.Subtype)),
		StartDate: strings.TrimSpace(in.StartDate),
		EndDate:   strings.TrimSpace(in.EndDate),
		Reason:    strings.TrimSpace(in.Reason),
	}
	if err := s.validator.ValidateLeave(check); err != nil {
		s.logger.Info(ctx, "leave rejected by validation", "error", err)
		return nil, err
	}

	now := s.now()
	r := domain.NewLeaveRequest(nextID(now, s.repo.List(ctx)), domain.Leave{
		Subtype:     domain.LeaveSubtype(check.Subtype),
		StartDate:   check.StartDate,
		EndDate:     check.EndDate,
		CreatedDate: now.Format(domain.CalendarDayLayout),
		Reason:      check.Reason,
	})
	if err := s.submit(ctx, r, in.Employee, in.Signed); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "leave submitted", "id", r.ID, "type", r.Type)
	return r, nil
}

func (s *Service) submit(ctx context.Context, r *domain.Request, employee domain.Employee, signed bool) error {
	if err := mergo.Merge(&employee, s.profile); err != nil {
		return fmt.Errorf("applying employee profile: %w", err)
	}
	r.Employee = employee
	r.Signed = signed

	if err := s.repo.Add(ctx, r); err != nil {
		return fmt.Errorf("storing request: %w", err)
	}
	if err := s.auditLogger.Log(ctx, AuditKeySubmit, r); err != nil {
		s.logger.Error(ctx, "failed to record audit log", "action", AuditKeySubmit, "id", r.ID, "error", err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	if id == 0 {
		return nil, ErrEmptyRequestID
	}
	return s.repo.GetByID(ctx, id)
}

// List returns one page of matching requests, newest first, and the total
// number of matches.
func (s *Service) List(ctx context.Context, filter domain.ListRequestsFilter) ([]*domain.Request, int, error) {
	if filter.Size < 0 || filter.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: size and offset can't be negative", ErrInvalidRequest)
	}

	requests := s.repo.List(ctx)
	matched := make([]*domain.Request, 0, len(requests))
	q := strings.ToLower(strings.TrimSpace(filter.Q))
	for i := len(requests) - 1; i >= 0; i-- {
		r := requests[i]
		if len(filter.Statuses) > 0 && !slices.GenericsSliceContainsOne(filter.Statuses, r.Status) {
			continue
		}
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		matched = append(matched, r)
	}

	size := filter.Size
	if size == 0 {
		size = DefaultPageSize
	}
	return slices.GenericsPaginate(matched, filter.Offset, size), len(matched), nil
}

// Recent returns the n requests with the highest ids.
func (s *Service) Recent(ctx context.Context, n int) []*domain.Request {
	requests := s.repo.List(ctx)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].ID > requests[j].ID
	})
	return slices.GenericsPaginate(requests, 0, n)
}

func (s *Service) Approve(ctx context.Context, id int64, actor string) (*domain.Request, error) {
	return s.decide(ctx, id, actor, AuditKeyApprove, func(r *domain.Request) error {
		return r.Approve()
	})
}

// Reject marks the request rejected. An empty reason leaves the stored
// rejection reason untouched.
func (s *Service) Reject(ctx context.Context, id int64, actor, reason string) (*domain.Request, error) {
	reason = strings.TrimSpace(reason)
	return s.decide(ctx, id, actor, AuditKeyReject, func(r *domain.Request) error {
		if reason == "" {
			return r.Reject(r.RejectionReason)
		}
		return r.Reject(reason)
	})
}

func (s *Service) decide(ctx context.Context, id int64, actor, action string, transition func(*domain.Request) error) (*domain.Request, error) {
	if actor == "" {
		return nil, ErrEmptyActor
	}
	ctx = audit.WithActor(ctx, actor)

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := r.Clone()
	if err := transition(r); err != nil {
		return nil, fmt.Errorf("%w: request %d is %q", err, id, before.Status)
	}

	var reason *string
	if r.RejectionReason != before.RejectionReason {
		reason = &r.RejectionReason
	}
	if err := s.repo.UpdateStatus(ctx, id, r.Status, reason); err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}

	changelog, err := diff.GetChangelog(before, r, actor)
	if err != nil {
		s.logger.Warn(ctx, "failed to compute changelog", "id", id, "error", err)
	}
	if err := s.auditLogger.Log(ctx, action, map[string]interface{}{
		"request_id": id,
		"status":     r.Status,
		"changelog":  changelog,
	}); err != nil {
		s.logger.Error(ctx, "failed to record audit log", "action", action, "id", id, "error", err)
	}

	s.logger.Info(ctx, "request decided", "id", id, "status", r.Status)
	return r, nil
}

func matchesQuery(r *domain.Request, q string) bool {
	fields := []string{r.Type, strconv.FormatInt(r.ID, 10)}
	if r.ShortAbsence != nil {
		fields = append(fields, r.ShortAbsence.Date, r.ShortAbsence.Notes)
	}
	if r.Leave != nil {
		fields = append(fields, r.Leave.StartDate, r.Leave.EndDate, r.Leave.Reason)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// nextID uses the submission time in milliseconds, moved past the highest
// existing id when the clock has not advanced.
func nextID(now time.Time, requests []*domain.Request) int64 {
	id := now.UnixMilli()
	for _, r := range requests {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	return id
}

func parseTime(s string, malformed bool) (*int, bool) {
	m, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil, true
	}
	return &m, malformed
}
