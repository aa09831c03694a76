package employee

import (
	"context"
	"time"
)

// Repository は社員永続化の抽象です。すべての操作はテナントでスコープされます。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, tenantID, id string) (*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, string, error)
	// ReplaceActiveProjects は要約配列を丸ごと置き換えます(マージしません)。
	ReplaceActiveProjects(ctx context.Context, tenantID, id string, projects []ActiveProject, updatedAt time.Time) error
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	TenantID       string
	Role           *string
	Department     *string
	Status         *Status
	ManagerID      *string
	Skill          *string
	ExpertiseLevel *string
	Limit          int
	Offset         int
}
