package employee

import (
	"context"
	"fmt"
	"strings"
)

// SummaryWriter は activeProjects 要約の唯一の正規の書き込み経路です。
// 公開ユースケース(UseCase)には意図的に含めず、チームレジストリの
// 同期エンジンだけに注入することで、要約が手書きされる余地をなくします。
type SummaryWriter struct {
	repo  Repository
	clock Clock
}

// NewSummaryWriter は SummaryWriter を生成します。
func NewSummaryWriter(repo Repository, clock Clock) *SummaryWriter {
	if clock == nil {
		clock = realClock{}
	}
	return &SummaryWriter{repo: repo, clock: clock}
}

// FindEmployee はテナント配下の社員を取得します。
func (w *SummaryWriter) FindEmployee(ctx context.Context, tenantID, employeeID string) (*Employee, error) {
	tenant, err := normalizeTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(employeeID) == "" {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}
	return w.repo.FindByID(ctx, tenant, employeeID)
}

// ReplaceActiveProjects は要約配列を渡された内容で丸ごと置き換えます。
// マージはしません。同期エンジンが冪等に再計算した結果だけを受け取る前提です。
func (w *SummaryWriter) ReplaceActiveProjects(ctx context.Context, tenantID, employeeID string, projects []ActiveProject) error {
	tenant, err := normalizeTenantID(tenantID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(employeeID) == "" {
		return fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	summary := make([]ActiveProject, len(projects))
	copy(summary, projects)

	return w.repo.ReplaceActiveProjects(ctx, tenant, employeeID, summary, w.clock.Now())
}
