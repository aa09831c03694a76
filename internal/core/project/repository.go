package project

import "context"

// Repository はプロジェクト永続化の抽象です。すべての操作はテナントでスコープされます。
type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, project *Project) (*Project, error)
	FindByID(ctx context.Context, tenantID, id string) (*Project, error)
	FindByCode(ctx context.Context, tenantID, code string) (*Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*Project, string, error)
}

// ListProjectsFilter は一覧取得用フィルタです。
type ListProjectsFilter struct {
	TenantID string
	Status   *Status
	Limit    int
	Offset   int
}
