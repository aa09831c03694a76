//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/staffhub/internal/adapters/repository/postgres"
	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"github.com/ogurasousui/staffhub/internal/core/team"
	"github.com/ogurasousui/staffhub/internal/core/watch"
	"github.com/ogurasousui/staffhub/internal/platform/config"
	pg "github.com/ogurasousui/staffhub/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

// アサインメントの登録から要約の再同期までを実データベースで検証します。
func TestAllocationResyncIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	txManager := pg.NewTransactionManager(pool)
	hub := watch.NewHub()

	employeeRepo := repo.NewEmployeeRepository(pool)
	projectRepo := repo.NewProjectRepository(pool)
	teamRepo := repo.NewTeamMemberRepository(pool)

	employeeSvc := employee.NewService(employeeRepo, nil, txManager, hub)
	projectSvc := project.NewService(projectRepo, nil, txManager, hub)
	teamSvc := team.NewService(
		teamRepo,
		employee.NewSummaryWriter(employeeRepo, nil),
		project.NewFinder(projectRepo),
		nil,
		txManager,
		hub,
	)

	const tenantID = "tenant-integration"

	emp, err := employeeSvc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		TenantID:  tenantID,
		FirstName: "Hanako",
		LastName:  "Sato",
		Role:      "engineer",
	})
	if err != nil {
		t.Fatalf("CreateEmployee error: %v", err)
	}
	if len(emp.ActiveProjects) != 0 {
		t.Fatalf("expected empty summary on fresh employee, got %d", len(emp.ActiveProjects))
	}

	proj, err := projectSvc.CreateProject(ctx, project.CreateProjectInput{
		TenantID: tenantID,
		Name:     "Apollo",
		Code:     "apollo",
	})
	if err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}

	member, err := teamSvc.AddMember(ctx, team.AddMemberInput{
		TenantID:    tenantID,
		ProjectID:   proj.ID,
		EmployeeID:  emp.ID,
		ProjectRole: "developer",
		Allocation:  60,
		StartDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		ActorID:     "admin-1",
	})
	if err != nil {
		t.Fatalf("AddMember error: %v", err)
	}
	if member.ProjectName != "Apollo" {
		t.Fatalf("expected project name snapshot, got %s", member.ProjectName)
	}

	refreshed, err := employeeSvc.GetEmployee(ctx, employee.GetEmployeeInput{TenantID: tenantID, ID: emp.ID})
	if err != nil {
		t.Fatalf("GetEmployee error: %v", err)
	}
	if len(refreshed.ActiveProjects) != 1 {
		t.Fatalf("expected one summary entry after AddMember, got %d", len(refreshed.ActiveProjects))
	}
	if refreshed.ActiveProjects[0].Allocation != 60 {
		t.Fatalf("expected summary allocation 60, got %d", refreshed.ActiveProjects[0].Allocation)
	}

	available, err := teamSvc.IsEmployeeAvailable(ctx, team.AvailabilityInput{
		TenantID:           tenantID,
		EmployeeID:         emp.ID,
		RequiredAllocation: 50,
	})
	if err != nil {
		t.Fatalf("IsEmployeeAvailable error: %v", err)
	}
	if available {
		t.Fatalf("expected 60+50 to exceed capacity")
	}

	newAllocation := 30
	if _, err := teamSvc.UpdateMember(ctx, team.UpdateMemberInput{
		TenantID:   tenantID,
		ProjectID:  proj.ID,
		MemberID:   member.ID,
		Allocation: &newAllocation,
	}); err != nil {
		t.Fatalf("UpdateMember error: %v", err)
	}

	refreshed, err = employeeSvc.GetEmployee(ctx, employee.GetEmployeeInput{TenantID: tenantID, ID: emp.ID})
	if err != nil {
		t.Fatalf("GetEmployee error: %v", err)
	}
	if refreshed.ActiveProjects[0].Allocation != 30 {
		t.Fatalf("expected summary allocation 30 after update, got %d", refreshed.ActiveProjects[0].Allocation)
	}

	if _, err := teamSvc.UpdateMemberStatus(ctx, team.UpdateMemberStatusInput{
		TenantID:  tenantID,
		ProjectID: proj.ID,
		MemberID:  member.ID,
		Status:    team.StatusCompleted,
	}); err != nil {
		t.Fatalf("UpdateMemberStatus error: %v", err)
	}

	refreshed, err = employeeSvc.GetEmployee(ctx, employee.GetEmployeeInput{TenantID: tenantID, ID: emp.ID})
	if err != nil {
		t.Fatalf("GetEmployee error: %v", err)
	}
	if len(refreshed.ActiveProjects) != 0 {
		t.Fatalf("expected empty summary after completion, got %d", len(refreshed.ActiveProjects))
	}

	if err := teamSvc.RemoveMember(ctx, team.RemoveMemberInput{
		TenantID:  tenantID,
		ProjectID: proj.ID,
		MemberID:  member.ID,
	}); err != nil {
		t.Fatalf("RemoveMember error: %v", err)
	}

	if _, err := teamSvc.GetMember(ctx, team.GetMemberInput{
		TenantID:  tenantID,
		ProjectID: proj.ID,
		MemberID:  member.ID,
	}); !errors.Is(err, team.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}
