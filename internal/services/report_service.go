package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"talenthr/dto"
)

type HeadcountSource interface {
	CountByCompany(ctx context.Context, companyID bson.ObjectID) (int64, error)
	GroupCount(ctx context.Context, companyID bson.ObjectID, field string) (map[string]int64, error)
}

type OpenJobsSource interface {
	CountOpen(ctx context.Context, companyID bson.ObjectID) (int64, error)
}

type PendingLeavesSource interface {
	CountPending(ctx context.Context, companyID bson.ObjectID) (int64, error)
}

// ReportService assembles the dashboard overview from per-collection counts.
type ReportService struct {
	employees HeadcountSource
	jobs      OpenJobsSource
	leaves    PendingLeavesSource
}

func NewReportService(employees HeadcountSource, jobs OpenJobsSource, leaves PendingLeavesSource) *ReportService {
	return &ReportService{employees: employees, jobs: jobs, leaves: leaves}
}

func (s *ReportService) Overview(ctx context.Context, companyID bson.ObjectID) (dto.OverviewReport, error) {
	headcount, err := s.employees.CountByCompany(ctx, companyID)
	if err != nil {
		return dto.OverviewReport{}, err
	}

	byDepartment, err := s.employees.GroupCount(ctx, companyID, "department_id")
	if err != nil {
		return dto.OverviewReport{}, err
	}

	byStatus, err := s.employees.GroupCount(ctx, companyID, "status")
	if err != nil {
		return dto.OverviewReport{}, err
	}

	openJobs, err := s.jobs.CountOpen(ctx, companyID)
	if err != nil {
		return dto.OverviewReport{}, err
	}

	pendingLeaves, err := s.leaves.CountPending(ctx, companyID)
	if err != nil {
		return dto.OverviewReport{}, err
	}

	return dto.OverviewReport{
		Success:       true,
		Headcount:     headcount,
		ByDepartment:  byDepartment,
		ByStatus:      byStatus,
		OpenPositions: openJobs,
		PendingLeaves: pendingLeaves,
	}, nil
}
