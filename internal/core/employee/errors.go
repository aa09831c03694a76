package employee

import "errors"

var (
	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidTenantID       = errors.New("employee: invalid tenant id")
	ErrInvalidLastName       = errors.New("employee: invalid last name")
	ErrInvalidFirstName      = errors.New("employee: invalid first name")
	ErrInvalidEmail          = errors.New("employee: invalid email")
	ErrInvalidStatus         = errors.New("employee: invalid status")
	ErrInvalidWeeklyHours    = errors.New("employee: invalid weekly hours")
	ErrInvalidHourlyRate     = errors.New("employee: invalid hourly rate")
	ErrInvalidSprintCapacity = errors.New("employee: invalid sprint capacity")
	ErrInvalidPageSize       = errors.New("employee: invalid page size")
	ErrInvalidPageToken      = errors.New("employee: invalid page token")
	ErrEmployeeNotFound      = errors.New("employee: not found")
	ErrEmployeeTerminated    = errors.New("employee: already terminated")
	ErrTenantIsolation       = errors.New("employee: cross-tenant access is not allowed")
)
