package employee

import (
	"strings"
	"time"
)

// Status は社員の在籍状態を表します。終了は削除ではなく状態遷移で表現します。
type Status string

const (
	StatusActive     Status = "active"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

// ActiveProject は社員の現在の稼働要約の 1 エントリです。
// チームレジストリの active なアサインメントから導出される非正規化データであり、
// 同期エンジン以外が書き換えてはいけません。
type ActiveProject struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Role        string `json:"role"`
	Allocation  int    `json:"allocation"`
}

// Employee は社員エンティティです。
type Employee struct {
	ID             string
	TenantID       string
	ExternalUserID string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Role           string
	Department     string
	Title          string
	ManagerID      string
	AvatarURL      string
	Status         Status
	EmploymentType string
	WeeklyHours    int
	HourlyRate     *float64
	SprintCapacity *int
	Skills         []string
	ExpertiseLevel string
	Certifications []string
	ActiveProjects []ActiveProject
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
	LastModifiedBy string
}

// FullName は名と姓を連結した表示名を返します。
func (e *Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// TotalActiveAllocation は要約上のアロケーション合計を返します。
func (e *Employee) TotalActiveAllocation() int {
	total := 0
	for _, p := range e.ActiveProjects {
		total += p.Allocation
	}
	return total
}
