package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/staffhub/internal/core/project"
	pgdb "github.com/ogurasousui/staffhub/internal/platform/db/postgres"
)

// ProjectRepository は PostgreSQL を利用したプロジェクト永続化の実装です。
type ProjectRepository struct {
	pool pgdb.Queryer
}

// NewProjectRepository は ProjectRepository を生成します。
func NewProjectRepository(pool pgdb.Queryer) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create はプロジェクトを新規作成します。ID はここで採番します。
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO projects (id, tenant_id, name, code, status, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, tenant_id, name, code, status, description, created_at, updated_at
    `,
		uuid.NewString(),
		p.TenantID,
		p.Name,
		p.Code,
		string(p.Status),
		nullableString(p.Description),
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, translateProjectPgError(err)
	}
	return created, nil
}

// Update はプロジェクト情報を更新します。
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE projects
           SET name = $1,
               code = $2,
               status = $3,
               description = $4,
               updated_at = $5
         WHERE tenant_id = $6 AND id = $7
        RETURNING id, tenant_id, name, code, status, description, created_at, updated_at
    `,
		p.Name,
		p.Code,
		string(p.Status),
		nullableString(p.Description),
		p.UpdatedAt,
		p.TenantID,
		p.ID,
	)

	updated, err := scanProject(row)
	if err != nil {
		return nil, translateProjectPgError(err)
	}
	return updated, nil
}

// FindByID はテナント配下のプロジェクトを取得します。
func (r *ProjectRepository) FindByID(ctx context.Context, tenantID, id string) (*project.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, tenant_id, name, code, status, description, created_at, updated_at
          FROM projects
         WHERE tenant_id = $1 AND id = $2
         LIMIT 1
    `, tenantID, id)

	found, err := scanProject(row)
	if err != nil {
		return nil, translateProjectPgError(err)
	}
	return found, nil
}

// FindByCode はテナント配下のプロジェクトをコードで取得します。
func (r *ProjectRepository) FindByCode(ctx context.Context, tenantID, code string) (*project.Project, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, tenant_id, name, code, status, description, created_at, updated_at
          FROM projects
         WHERE tenant_id = $1 AND code = $2
         LIMIT 1
    `, tenantID, code)

	found, err := scanProject(row)
	if err != nil {
		return nil, translateProjectPgError(err)
	}
	return found, nil
}

// List はプロジェクトの一覧を取得します。
func (r *ProjectRepository) List(ctx context.Context, filter project.ListProjectsFilter) ([]*project.Project, string, error) {
	if strings.TrimSpace(filter.TenantID) == "" {
		return nil, "", project.ErrInvalidTenantID
	}
	if filter.Limit <= 0 {
		return nil, "", project.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", project.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)

	tenantPlaceholder := "$" + strconv.Itoa(len(args)+1)
	conditions = append(conditions, "tenant_id = "+tenantPlaceholder)
	args = append(args, filter.TenantID)

	if filter.Status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status = "+placeholder)
		args = append(args, string(*filter.Status))
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT id, tenant_id, name, code, status, description, created_at, updated_at
          FROM projects` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateProjectPgError(err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0, filter.Limit)
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, "", translateProjectPgError(err)
		}
		projects = append(projects, proj)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateProjectPgError(err)
	}

	var nextToken string
	if len(projects) == limitWithBuffer {
		projects = projects[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return projects, nextToken, nil
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var (
		id          string
		tenantID    string
		name        string
		code        string
		status      string
		description sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&name,
		&code,
		&status,
		&description,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, err
	}

	proj := &project.Project{
		ID:        id,
		TenantID:  tenantID,
		Name:      name,
		Code:      code,
		Status:    project.Status(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if description.Valid {
		value := description.String
		proj.Description = &value
	}

	return proj, nil
}

func translateProjectPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return project.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return project.ErrCodeAlreadyExists
		case checkViolationCode:
			return project.ErrInvalidStatus
		}
	}

	return err
}
