package team

import "context"

// Repository はアサインメント永続化の抽象です。すべての操作はテナントでスコープされます。
type Repository interface {
	Create(ctx context.Context, member *Member) (*Member, error)
	Update(ctx context.Context, member *Member) (*Member, error)
	Delete(ctx context.Context, tenantID, projectID, memberID string) error
	FindByID(ctx context.Context, tenantID, projectID, memberID string) (*Member, error)
	ListByProject(ctx context.Context, filter ListMembersFilter) ([]*Member, error)
	// ListByEmployee は親プロジェクトを横断して社員のアサインメントを返します
	// (クロスペアレントクエリ)。結果は開始日の降順です。
	ListByEmployee(ctx context.Context, tenantID, employeeID string, status *Status) ([]*Member, error)
}

// ListMembersFilter はプロジェクト配下のメンバー一覧取得用フィルタです。
type ListMembersFilter struct {
	TenantID   string
	ProjectID  string
	EmployeeID *string
	Status     *Status
	Limit      int
}
