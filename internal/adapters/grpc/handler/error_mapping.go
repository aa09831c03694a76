package handler

import (
	"errors"

	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"github.com/ogurasousui/staffhub/internal/core/team"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidTenantID),
		errors.Is(err, employee.ErrInvalidFirstName),
		errors.Is(err, employee.ErrInvalidLastName),
		errors.Is(err, employee.ErrInvalidEmail),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidWeeklyHours),
		errors.Is(err, employee.ErrInvalidHourlyRate),
		errors.Is(err, employee.ErrInvalidSprintCapacity),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidPageToken),
		errors.Is(err, employee.ErrEmployeeTerminated),
		errors.Is(err, project.ErrInvalidID),
		errors.Is(err, project.ErrInvalidTenantID),
		errors.Is(err, project.ErrInvalidName),
		errors.Is(err, project.ErrInvalidCode),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidPageSize),
		errors.Is(err, project.ErrInvalidPageToken),
		errors.Is(err, team.ErrInvalidTenantID),
		errors.Is(err, team.ErrInvalidProjectID),
		errors.Is(err, team.ErrInvalidEmployeeID),
		errors.Is(err, team.ErrInvalidMemberID),
		errors.Is(err, team.ErrInvalidProjectRole),
		errors.Is(err, team.ErrInvalidAllocation),
		errors.Is(err, team.ErrInvalidHoursPerWeek),
		errors.Is(err, team.ErrInvalidSprintCapacity),
		errors.Is(err, team.ErrInvalidStartDate),
		errors.Is(err, team.ErrInvalidDateRange),
		errors.Is(err, team.ErrInvalidStatus),
		errors.Is(err, team.ErrInvalidPerformanceScore),
		errors.Is(err, team.ErrInvalidHours),
		errors.Is(err, team.ErrInvalidTaskCount),
		errors.Is(err, team.ErrInvalidRequiredAlloc),
		errors.Is(err, team.ErrInvalidLimit):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, project.ErrCodeAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, team.ErrMemberNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, employee.ErrTenantIsolation),
		errors.Is(err, project.ErrTenantIsolation),
		errors.Is(err, team.ErrTenantIsolation):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
