package team

import (
	"context"

	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/watch"
)

// syncEmployeeActiveProjects は社員の activeProjects 要約を再計算して
// 丸ごと置き換えます。差分適用ではなく毎回全件を導出し直すため冪等であり、
// 要約が何らかの理由で壊れていても次の呼び出しで自己修復されます。
// 並行する再同期同士は後勝ち(last-write-wins)ですが、どちらの書き込みも
// その時点のレジストリから導出された一貫した集合です。
func (s *Service) syncEmployeeActiveProjects(ctx context.Context, tenantID, employeeID string) error {
	var summary []employee.ActiveProject
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		status := StatusActive
		members, err := s.repo.ListByEmployee(txCtx, tenantID, employeeID, &status)
		if err != nil {
			return err
		}
		summary = make([]employee.ActiveProject, 0, len(members))
		for _, m := range members {
			summary = append(summary, employee.ActiveProject{
				ProjectID:   m.ProjectID,
				ProjectName: m.ProjectName,
				Role:        m.ProjectRole,
				Allocation:  m.Allocation,
			})
		}
		return nil
	}); err != nil {
		return err
	}

	if err := s.directory.ReplaceActiveProjects(ctx, tenantID, employeeID, summary); err != nil {
		return err
	}

	s.hub.Publish(watch.Event{
		TenantID:   tenantID,
		Kind:       watch.KindEmployee,
		EmployeeID: employeeID,
	})
	return nil
}
