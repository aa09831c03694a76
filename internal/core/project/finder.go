package project

import (
	"context"
	"fmt"
	"strings"
)

// Finder はチームレジストリに渡す読み取り専用の窓口です。
// アサインメント作成時のプロジェクト名スナップショットに使われます。
type Finder struct {
	repo Repository
}

// NewFinder は Finder を生成します。
func NewFinder(repo Repository) *Finder {
	return &Finder{repo: repo}
}

// FindProject はテナント配下のプロジェクトを取得します。
func (f *Finder) FindProject(ctx context.Context, tenantID, projectID string) (*Project, error) {
	tenant, err := normalizeTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("project id: %w", ErrInvalidID)
	}
	return f.repo.FindByID(ctx, tenant, projectID)
}
