package team

import "time"

// Status はアサインメントの状態を表します。
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusRemoved   Status = "removed"
)

// Terminal は終端状態かどうかを返します。終端への遷移は active 集合から
// 外れることを意味し、必ず要約の再同期を伴います。
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRemoved
}

// EmployeeSnapshot はアサインメント時点の社員情報の写しです。
// 表示専用であり、不変条件を担うのは employeeID とアロケーションです。
type EmployeeSnapshot struct {
	Name       string
	Email      string
	AvatarURL  string
	Title      string
	Department string
}

// Member は社員 1 人とプロジェクト 1 件を結ぶアサインメントです。
// アロケーションの真実の源(source of truth)はこのレコードです。
type Member struct {
	ID               string
	TenantID         string
	ProjectID        string
	EmployeeID       string
	Employee         EmployeeSnapshot
	ProjectName      string
	ProjectRole      string
	Responsibilities []string
	Allocation       int
	HoursPerWeek     int
	SprintCapacity   int
	StartDate        time.Time
	EndDate          *time.Time
	Status           Status
	TasksAssigned    int
	TasksCompleted   int
	HoursLogged      float64
	PerformanceScore *int
	Permissions      []string
	AssignedAt       time.Time
	AssignedBy       string
	UpdatedAt        time.Time
	LastActiveAt     *time.Time
}
