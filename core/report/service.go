package report

import (
	"context"
	"math"
	"sort"

	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/EricWal/hr-app/pkg/slices"
)

//go:generate mockery --name=requestService --exported --with-expecter
type requestService interface {
	List(context.Context, domain.ListRequestsFilter) ([]*domain.Request, int, error)
}

type ServiceDeps struct {
	RequestService requestService
	Logger         log.Logger
}

type Service struct {
	requestService requestService
	logger         log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		requestService: deps.RequestService,
		logger:         deps.Logger,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	requests, err := s.all(ctx, domain.ListRequestsFilter{})
	if err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case domain.RequestStatusPending:
			summary.Pending++
			if summary.OldestPending == nil || r.ID < summary.OldestPending.ID {
				summary.OldestPending = r
			}
		case domain.RequestStatusApproved:
			summary.Approved++
		case domain.RequestStatusRejected:
			summary.Rejected++
		}
	}

	approvedAbsences := slices.GenericsFilter(requests, func(r *domain.Request) bool {
		return r.Status == domain.RequestStatusApproved && r.ShortAbsence != nil
	})
	summary.ApprovedAbsenceMinutes = slices.GenericsSumBy(approvedAbsences, func(r *domain.Request) int {
		return r.ShortAbsence.DurationMinutes
	})
	return summary, nil
}

// all returns every matching request, oldest first.
func (s *Service) all(ctx context.Context, filter domain.ListRequestsFilter) ([]*domain.Request, error) {
	filter.Offset = 0
	filter.Size = math.MaxInt32
	requests, _, err := s.requestService.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].ID < requests[j].ID
	})
	return requests, nil
}
