package team

import "errors"

var (
	ErrInvalidTenantID         = errors.New("team: invalid tenant id")
	ErrInvalidProjectID        = errors.New("team: invalid project id")
	ErrInvalidEmployeeID       = errors.New("team: invalid employee id")
	ErrInvalidMemberID         = errors.New("team: invalid member id")
	ErrInvalidProjectRole      = errors.New("team: invalid project role")
	ErrInvalidAllocation       = errors.New("team: allocation must be between 0 and 100")
	ErrInvalidHoursPerWeek     = errors.New("team: hours per week must not be negative")
	ErrInvalidSprintCapacity   = errors.New("team: sprint capacity must not be negative")
	ErrInvalidStartDate        = errors.New("team: start date is required")
	ErrInvalidDateRange        = errors.New("team: end date must not precede start date")
	ErrInvalidStatus           = errors.New("team: invalid status")
	ErrInvalidPerformanceScore = errors.New("team: performance score must be between 1 and 5")
	ErrInvalidHours            = errors.New("team: logged hours must not be negative")
	ErrInvalidTaskCount        = errors.New("team: task counts must not be negative")
	ErrInvalidRequiredAlloc    = errors.New("team: required allocation must not be negative")
	ErrInvalidLimit            = errors.New("team: invalid limit")
	ErrMemberNotFound          = errors.New("team: member not found")
	ErrTenantIsolation         = errors.New("team: cross-tenant access is not allowed")
	// ErrSummarySyncFailed はレジストリへの書き込みが確定した後に
	// 社員要約の再同期だけが失敗したことを示します。レコードは保存済みで、
	// 同じ社員への次の変更で要約は自己修復されます。
	ErrSummarySyncFailed = errors.New("team: employee summary sync failed")
)
