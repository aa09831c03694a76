package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/staffhub/internal/core/project"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestScanProject_Success(t *testing.T) {
	t.Parallel()

	desc := "Allocation pilot"
	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 8 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "proj-1"
		*(dest[1].(*string)) = "tenant-1"
		*(dest[2].(*string)) = "Apollo"
		*(dest[3].(*string)) = "apl"
		*(dest[4].(*string)) = string(project.StatusActive)

		d := dest[5].(*sql.NullString)
		d.String = desc
		d.Valid = true

		*(dest[6].(*time.Time)) = createdAt
		*(dest[7].(*time.Time)) = updatedAt
		return nil
	}}

	p, err := scanProject(row)
	if err != nil {
		t.Fatalf("scanProject returned error: %v", err)
	}

	if p.Description == nil || *p.Description != desc {
		t.Fatalf("expected description %s, got %+v", desc, p.Description)
	}
	if p.TenantID != "tenant-1" || p.Code != "apl" {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestScanProject_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanProject(row)
	if !errors.Is(err, project.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestTranslateProjectPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateProjectPgError(pgErr), project.ErrCodeAlreadyExists) {
		t.Fatalf("expected duplicate code error mapping")
	}

	otherErr := errors.New("random")
	if translateProjectPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestProjectRepository_FindByCode(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewProjectRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT id, tenant_id, name, code, status, description, created_at, updated_at
          FROM projects
         WHERE tenant_id = $1 AND code = $2
         LIMIT 1
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "tenant_id", "name", "code", "status", "description", "created_at", "updated_at"}).
		AddRow("proj-1", "tenant-1", "Apollo", "apl", string(project.StatusActive), nil, now, now)

	mock.ExpectQuery(query).
		WithArgs("tenant-1", "apl").
		WillReturnRows(rows)

	found, err := repo.FindByCode(context.Background(), "tenant-1", "apl")
	if err != nil {
		t.Fatalf("FindByCode returned error: %v", err)
	}
	if found.Name != "Apollo" {
		t.Fatalf("expected Apollo, got %s", found.Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProjectRepository_List_WithStatusFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewProjectRepository(mock)
	archived := project.StatusArchived

	query := regexp.QuoteMeta(`
        SELECT id, tenant_id, name, code, status, description, created_at, updated_at
          FROM projects WHERE tenant_id = $1 AND status = $2
         ORDER BY created_at DESC, id DESC
         LIMIT $3
        OFFSET $4
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "tenant_id", "name", "code", "status", "description", "created_at", "updated_at"}).
		AddRow("proj-9", "tenant-1", "Sunset", "sunset", string(project.StatusArchived), nil, now, now)

	mock.ExpectQuery(query).
		WithArgs("tenant-1", string(archived), 3, 0).
		WillReturnRows(rows)

	projects, nextToken, err := repo.List(context.Background(), project.ListProjectsFilter{
		TenantID: "tenant-1",
		Status:   &archived,
		Limit:    2,
		Offset:   0,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
