package request_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EricWal/hr-app/core/request"
	"github.com/EricWal/hr-app/core/request/mocks"
	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var profile = domain.Employee{Name: "عبيد خالد", Role: "موظف اداري", Department: "إدارة المشاريع"}

type ServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockAuditLogger *mocks.AuditLogger
	service         *request.Service
	now             time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = &mocks.Repository{}
	s.mockAuditLogger = &mocks.AuditLogger{}
	s.now = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	s.service = request.NewService(request.ServiceDeps{
		Repository:  s.mockRepo,
		Policy:      domain.DefaultQuotaPolicy(),
		Profile:     profile,
		Logger:      log.NewNoop(),
		AuditLogger: s.mockAuditLogger,
		Now:         func() time.Time { return s.now },
	})
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func absence(id int64, date string, duration int, status domain.RequestStatus) *domain.Request {
	r := domain.NewShortAbsenceRequest(id, domain.ShortAbsence{
		Date:            date,
		FromTimeMinutes: 480,
		ToTimeMinutes:   480 + duration,
		DurationMinutes: duration,
	})
	r.Status = status
	return r
}

func (s *ServiceTestSuite) TestSubmitShortAbsence() {
	s.Run("should store accepted request with profile and computed fields", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().List(mock.Anything).Return([]*domain.Request{
			absence(s.now.UnixMilli(), "2026-10-01", 120, domain.RequestStatusApproved),
		}).Once()
		s.mockRepo.EXPECT().Add(mock.Anything, mock.AnythingOfType("*domain.Request")).Return(nil).
			Run(func(_ context.Context, r *domain.Request) {
				s.Equal(s.now.UnixMilli()+1, r.ID)
				s.Equal(domain.RequestTypeShortAbsence, r.Type)
				s.Equal(domain.RequestStatusPending, r.Status)
				s.Equal(profile, r.Employee)
				s.True(r.Signed)
			}).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, request.AuditKeySubmit, mock.Anything).Return(nil).Once()

		actual, err := s.service.SubmitShortAbsence(context.Background(), request.ShortAbsenceInput{
			Date:         "2026-10-14 - يوم: الأربعاء",
			FromTime:     "8:30 ص",
			ToTime:       "10:00",
			Notes:        " موعد طبي ",
			Acknowledged: true,
			Signed:       true,
		})

		s.Require().NoError(err)
		s.Equal(&domain.ShortAbsence{
			Date:            "2026-10-14 - يوم: الأربعاء",
			FromTime:        "8:30 ص",
			ToTime:          "10:00 ص",
			FromTimeMinutes: 510,
			ToTimeMinutes:   600,
			DurationMinutes: 90,
			Notes:           "موعد طبي",
		}, actual.ShortAbsence)
		s.mockRepo.AssertExpectations(s.T())
		s.mockAuditLogger.AssertExpectations(s.T())
	})

	s.Run("should keep employee fields given by caller", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().List(mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		actual, err := s.service.SubmitShortAbsence(context.Background(), request.ShortAbsenceInput{
			Date:         "2026-10-14",
			FromMinutes:  intPtr(480),
			ToMinutes:    intPtr(540),
			Acknowledged: true,
			Signed:       true,
			Employee:     domain.Employee{Name: "سارة"},
		})

		s.Require().NoError(err)
		s.Equal(domain.Employee{Name: "سارة", Role: profile.Role, Department: profile.Department}, actual.Employee)
	})

	s.Run("should not store request exceeding remaining quota", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().List(mock.Anything).Return([]*domain.Request{
			absence(1, "2026-10-01", 180, domain.RequestStatusApproved),
			absence(2, "2026-10-02", 180, domain.RequestStatusPending),
			absence(3, "2026-10-03", 90, domain.RequestStatusPending),
		}).Once()

		_, err := s.service.SubmitShortAbsence(context.Background(), request.ShortAbsenceInput{
			Date:         "2026-10-14",
			FromMinutes:  intPtr(480),
			ToMinutes:    intPtr(525),
			Acknowledged: true,
			Signed:       true,
		})

		s.ErrorIs(err, request.ErrInvalidRequest)
		s.Equal([]request.ViolationCode{request.ViolationQuotaExceeded}, codesOf(s.T(), err))
		s.mockRepo.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	})

	s.Run("should flag unparsable time text", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().List(mock.Anything).Return(nil).Once()

		_, err := s.service.SubmitShortAbsence(context.Background(), request.ShortAbsenceInput{
			Date:         "2026-10-14",
			FromTime:     "soon",
			ToTime:       "10:00",
			Acknowledged: true,
			Signed:       true,
		})

		s.Equal([]request.ViolationCode{request.ViolationMissingTimeRange, request.ViolationInvalidTimeOfDay}, codesOf(s.T(), err))
	})

	s.Run("should return store error", func() {
		s.SetupTest()
		expectedErr := errors.New("duplicate")
		s.mockRepo.EXPECT().List(mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(expectedErr).Once()

		_, err := s.service.SubmitShortAbsence(context.Background(), request.ShortAbsenceInput{
			Date: "2026-10-14", FromMinutes: intPtr(480), ToMinutes: intPtr(540), Acknowledged: true, Signed: true,
		})

		s.ErrorIs(err, expectedErr)
	})
}

func (s *ServiceTestSuite) TestSubmitLeave() {
	s.Run("should store leave with created date", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().List(mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, request.AuditKeySubmit, mock.Anything).Return(errors.New("ignored")).Once()

		actual, err := s.service.SubmitLeave(context.Background(), request.LeaveInput{
			Subtype:   domain.LeaveSubtypeSick,
			StartDate: "2026-10-20",
			EndDate:   "2026-10-21",
			Reason:    "مرض",
		})

		s.Require().NoError(err)
		s.Equal("إجازة مرضية", actual.Type)
		s.Equal(domain.KindLeave, actual.Kind)
		s.Equal("2026-10-14", actual.Leave.CreatedDate)
		s.Equal(s.now.UnixMilli(), actual.ID)
	})

	s.Run("should reject invalid leave", func() {
		s.SetupTest()

		_, err := s.service.SubmitLeave(context.Background(), request.LeaveInput{
			Subtype:   domain.LeaveSubtypeAnnual,
			StartDate: "2026-10-22",
			EndDate:   "2026-10-20",
			Reason:    "  ",
		})

		s.Equal([]request.ViolationCode{request.ViolationMissingReason, request.ViolationInvalidDateRange}, codesOf(s.T(), err))
		s.mockRepo.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestQuota() {
	s.mockRepo.EXPECT().List(mock.Anything).Return([]*domain.Request{
		absence(1, "2026-10-01", 120, domain.RequestStatusApproved),
		absence(2, "2026-10-05", 90, domain.RequestStatusPending),
		absence(3, "2026-10-13", 60, domain.RequestStatusPending),
		absence(4, "2026-10-13", 60, domain.RequestStatusRejected),
	})

	s.Equal(domain.Quota{UsedMinutes: 270, RemainingMinutes: 210, UsedCount: 3, RemainingCount: 1}, s.service.Quota(context.Background()))
}

func (s *ServiceTestSuite) TestList() {
	leave := domain.NewLeaveRequest(5, domain.Leave{Subtype: domain.LeaveSubtypeAnnual, StartDate: "2026-11-01", EndDate: "2026-11-03", Reason: "Travel"})
	stored := []*domain.Request{
		absence(1, "2026-10-01", 60, domain.RequestStatusApproved),
		absence(2, "2026-10-02", 60, domain.RequestStatusPending),
		absence(3, "2026-10-03", 60, domain.RequestStatusRejected),
		absence(4, "2026-10-04", 60, domain.RequestStatusPending),
		leave,
	}

	ids := func(rs []*domain.Request) []int64 {
		result := []int64{}
		for _, r := range rs {
			result = append(result, r.ID)
		}
		return result
	}

	testCases := []struct {
		name          string
		filter        domain.ListRequestsFilter
		expectedIDs   []int64
		expectedTotal int
	}{
		{"newest first with default page size", domain.ListRequestsFilter{}, []int64{5, 4, 3}, 5},
		{"second page", domain.ListRequestsFilter{Offset: 3}, []int64{2, 1}, 5},
		{"status filter", domain.ListRequestsFilter{Statuses: []domain.RequestStatus{domain.RequestStatusPending}, Size: 10}, []int64{5, 4, 2}, 3},
		{"search by date", domain.ListRequestsFilter{Q: "2026-10-03"}, []int64{3}, 1},
		{"search is case insensitive", domain.ListRequestsFilter{Q: "travel"}, []int64{5}, 1},
		{"search by leave end date", domain.ListRequestsFilter{Q: "11-03"}, []int64{5}, 1},
		{"search by type", domain.ListRequestsFilter{Q: "إجازة"}, []int64{5}, 1},
		{"no match", domain.ListRequestsFilter{Q: "xyz"}, []int64{}, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRepo.EXPECT().List(mock.Anything).Return(stored).Once()

			actual, total, err := s.service.List(context.Background(), tc.filter)

			s.NoError(err)
			s.Equal(tc.expectedIDs, ids(actual))
			s.Equal(tc.expectedTotal, total)
		})
	}

	s.Run("should reject negative paging", func() {
		_, _, err := s.service.List(context.Background(), domain.ListRequestsFilter{Offset: -1})
		s.ErrorIs(err, request.ErrInvalidRequest)
	})
}

func (s *ServiceTestSuite) TestRecent() {
	s.mockRepo.EXPECT().List(mock.Anything).Return([]*domain.Request{
		absence(30, "2026-10-01", 60, domain.RequestStatusApproved),
		absence(10, "2026-10-02", 60, domain.RequestStatusPending),
		absence(40, "2026-10-03", 60, domain.RequestStatusRejected),
		absence(20, "2026-10-04", 60, domain.RequestStatusPending),
	})

	actual := s.service.Recent(context.Background(), 3)

	s.Require().Len(actual, 3)
	s.Equal([]int64{40, 30, 20}, []int64{actual[0].ID, actual[1].ID, actual[2].ID})
}

func (s *ServiceTestSuite) TestApprove() {
	s.Run("should approve pending request and audit the change", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(absence(1, "2026-10-01", 60, domain.RequestStatusPending), nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, int64(1), domain.RequestStatusApproved, (*string)(nil)).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, request.AuditKeyApprove, mock.Anything).Return(nil).
			Run(func(_ context.Context, _ string, data interface{}) {
				d, ok := data.(map[string]interface{})
				s.Require().True(ok)
				s.Equal(int64(1), d["request_id"])
				s.NotEmpty(d["changelog"])
			}).Once()

		actual, err := s.service.Approve(context.Background(), 1, "admin@test.com")

		s.NoError(err)
		s.Equal(domain.RequestStatusApproved, actual.Status)
		s.mockRepo.AssertExpectations(s.T())
		s.mockAuditLogger.AssertExpectations(s.T())
	})

	s.Run("should fail when request is already decided", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(absence(1, "2026-10-01", 60, domain.RequestStatusRejected), nil).Once()

		_, err := s.service.Approve(context.Background(), 1, "admin@test.com")

		s.ErrorIs(err, request.ErrRequestNotPending)
		s.mockRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should return not found", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrRequestNotFound).Once()

		_, err := s.service.Approve(context.Background(), 9, "admin@test.com")

		s.ErrorIs(err, request.ErrRequestNotFound)
	})

	s.Run("should require actor", func() {
		s.SetupTest()
		_, err := s.service.Approve(context.Background(), 1, "")
		s.ErrorIs(err, request.ErrEmptyActor)
	})
}

func (s *ServiceTestSuite) TestReject() {
	s.Run("should reject with reason", func() {
		s.SetupTest()
		reason := "ضغط العمل"
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(absence(2, "2026-10-01", 60, domain.RequestStatusPending), nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, int64(2), domain.RequestStatusRejected, &reason).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, request.AuditKeyReject, mock.Anything).Return(nil).Once()

		actual, err := s.service.Reject(context.Background(), 2, "admin@test.com", reason)

		s.NoError(err)
		s.Equal(domain.RequestStatusRejected, actual.Status)
		s.Equal(reason, actual.RejectionReason)
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("should omit empty reason", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(absence(2, "2026-10-01", 60, domain.RequestStatusPending), nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, int64(2), domain.RequestStatusRejected, (*string)(nil)).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, request.AuditKeyReject, mock.Anything).Return(nil).Once()

		actual, err := s.service.Reject(context.Background(), 2, "admin@test.com", "")

		s.NoError(err)
		s.Empty(actual.RejectionReason)
	})

	s.Run("should not reject approved request", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(absence(2, "2026-10-01", 60, domain.RequestStatusApproved), nil).Once()

		_, err := s.service.Reject(context.Background(), 2, "admin@test.com", "late")

		s.ErrorIs(err, request.ErrRequestNotPending)
	})
}
