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
	"github.com/ogurasousui/staffhub/internal/core/team"
	pgdb "github.com/ogurasousui/staffhub/internal/platform/db/postgres"
)

const teamMemberColumns = `id, tenant_id, project_id, employee_id,
               employee_name, employee_email, employee_avatar_url, employee_title, employee_department,
               project_name, project_role, responsibilities, allocation, hours_per_week, sprint_capacity,
               start_date, end_date, status, tasks_assigned, tasks_completed, hours_logged,
               performance_score, permissions, assigned_at, assigned_by, updated_at, last_active_at`

// TeamMemberRepository は PostgreSQL を利用したアサインメント永続化の実装です。
type TeamMemberRepository struct {
	pool pgdb.Queryer
}

// NewTeamMemberRepository は TeamMemberRepository を生成します。
func NewTeamMemberRepository(pool pgdb.Queryer) *TeamMemberRepository {
	return &TeamMemberRepository{pool: pool}
}

// Create はアサインメントを新規作成します。ID はここで採番します。
func (r *TeamMemberRepository) Create(ctx context.Context, m *team.Member) (*team.Member, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO team_members (id, tenant_id, project_id, employee_id,
                                  employee_name, employee_email, employee_avatar_url, employee_title, employee_department,
                                  project_name, project_role, responsibilities, allocation, hours_per_week, sprint_capacity,
                                  start_date, end_date, status, tasks_assigned, tasks_completed, hours_logged,
                                  performance_score, permissions, assigned_at, assigned_by, updated_at, last_active_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
        RETURNING `+teamMemberColumns+`
    `,
		uuid.NewString(),
		m.TenantID,
		m.ProjectID,
		m.EmployeeID,
		m.Employee.Name,
		m.Employee.Email,
		m.Employee.AvatarURL,
		m.Employee.Title,
		m.Employee.Department,
		m.ProjectName,
		m.ProjectRole,
		m.Responsibilities,
		m.Allocation,
		m.HoursPerWeek,
		m.SprintCapacity,
		m.StartDate,
		nullableTime(m.EndDate),
		string(m.Status),
		m.TasksAssigned,
		m.TasksCompleted,
		m.HoursLogged,
		nullableInt(m.PerformanceScore),
		m.Permissions,
		m.AssignedAt,
		m.AssignedBy,
		m.UpdatedAt,
		nullableTime(m.LastActiveAt),
	)

	created, err := scanTeamMember(row)
	if err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	return created, nil
}

// Update はアサインメントを更新します。
func (r *TeamMemberRepository) Update(ctx context.Context, m *team.Member) (*team.Member, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE team_members
           SET project_role = $1,
               responsibilities = $2,
               allocation = $3,
               hours_per_week = $4,
               sprint_capacity = $5,
               start_date = $6,
               end_date = $7,
               status = $8,
               tasks_assigned = $9,
               tasks_completed = $10,
               hours_logged = $11,
               performance_score = $12,
               permissions = $13,
               updated_at = $14,
               last_active_at = $15
         WHERE tenant_id = $16 AND project_id = $17 AND id = $18
        RETURNING `+teamMemberColumns+`
    `,
		m.ProjectRole,
		m.Responsibilities,
		m.Allocation,
		m.HoursPerWeek,
		m.SprintCapacity,
		m.StartDate,
		nullableTime(m.EndDate),
		string(m.Status),
		m.TasksAssigned,
		m.TasksCompleted,
		m.HoursLogged,
		nullableInt(m.PerformanceScore),
		m.Permissions,
		m.UpdatedAt,
		nullableTime(m.LastActiveAt),
		m.TenantID,
		m.ProjectID,
		m.ID,
	)

	updated, err := scanTeamMember(row)
	if err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	return updated, nil
}

// Delete はアサインメントを物理削除します。
func (r *TeamMemberRepository) Delete(ctx context.Context, tenantID, projectID, memberID string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        DELETE FROM team_members
         WHERE tenant_id = $1 AND project_id = $2 AND id = $3
    `, tenantID, projectID, memberID)
	if err != nil {
		return translateTeamMemberPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrMemberNotFound
	}
	return nil
}

// FindByID はアサインメントを取得します。
func (r *TeamMemberRepository) FindByID(ctx context.Context, tenantID, projectID, memberID string) (*team.Member, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+teamMemberColumns+`
          FROM team_members
         WHERE tenant_id = $1 AND project_id = $2 AND id = $3
         LIMIT 1
    `, tenantID, projectID, memberID)

	found, err := scanTeamMember(row)
	if err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	return found, nil
}

// ListByProject はプロジェクト配下のメンバー一覧を取得します。
func (r *TeamMemberRepository) ListByProject(ctx context.Context, filter team.ListMembersFilter) ([]*team.Member, error) {
	if strings.TrimSpace(filter.TenantID) == "" {
		return nil, team.ErrInvalidTenantID
	}
	if strings.TrimSpace(filter.ProjectID) == "" {
		return nil, team.ErrInvalidProjectID
	}
	if filter.Limit <= 0 {
		return nil, team.ErrInvalidLimit
	}

	args := make([]any, 0, 5)
	conditions := make([]string, 0, 4)

	appendCondition := func(column string, value any) {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, column+" = "+placeholder)
		args = append(args, value)
	}

	appendCondition("tenant_id", filter.TenantID)
	appendCondition("project_id", filter.ProjectID)
	if filter.EmployeeID != nil {
		appendCondition("employee_id", *filter.EmployeeID)
	}
	if filter.Status != nil {
		appendCondition("status", string(*filter.Status))
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Limit)

	query := `
        SELECT ` + teamMemberColumns + `
          FROM team_members
         WHERE ` + strings.Join(conditions, " AND ") + `
         ORDER BY assigned_at ASC, id ASC
         LIMIT ` + limitPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	defer rows.Close()

	return collectTeamMembers(rows, filter.Limit)
}

// ListByEmployee は親プロジェクトを横断して社員のアサインメントを返します。
// (tenant_id, employee_id) の複合インデックスを前提としたクエリです。
func (r *TeamMemberRepository) ListByEmployee(ctx context.Context, tenantID, employeeID string, status *team.Status) ([]*team.Member, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, team.ErrInvalidTenantID
	}
	if strings.TrimSpace(employeeID) == "" {
		return nil, team.ErrInvalidEmployeeID
	}

	args := []any{tenantID, employeeID}
	conditions := []string{"tenant_id = $1", "employee_id = $2"}

	if status != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "status = "+placeholder)
		args = append(args, string(*status))
	}

	query := `
        SELECT ` + teamMemberColumns + `
          FROM team_members
         WHERE ` + strings.Join(conditions, " AND ") + `
         ORDER BY start_date DESC, id DESC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	defer rows.Close()

	return collectTeamMembers(rows, 8)
}

func collectTeamMembers(rows pgx.Rows, sizeHint int) ([]*team.Member, error) {
	members := make([]*team.Member, 0, sizeHint)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, translateTeamMemberPgError(err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, translateTeamMemberPgError(err)
	}
	return members, nil
}

func scanTeamMember(row pgx.Row) (*team.Member, error) {
	var (
		id               string
		tenantID         string
		projectID        string
		employeeID       string
		employeeName     string
		employeeEmail    string
		employeeAvatar   string
		employeeTitle    string
		employeeDept     string
		projectName      string
		projectRole      string
		responsibilities []string
		allocation       int
		hoursPerWeek     int
		sprintCapacity   int
		startDate        time.Time
		endDate          sql.NullTime
		status           string
		tasksAssigned    int
		tasksCompleted   int
		hoursLogged      float64
		performanceScore sql.NullInt64
		permissions      []string
		assignedAt       time.Time
		assignedBy       string
		updatedAt        time.Time
		lastActiveAt     sql.NullTime
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&projectID,
		&employeeID,
		&employeeName,
		&employeeEmail,
		&employeeAvatar,
		&employeeTitle,
		&employeeDept,
		&projectName,
		&projectRole,
		&responsibilities,
		&allocation,
		&hoursPerWeek,
		&sprintCapacity,
		&startDate,
		&endDate,
		&status,
		&tasksAssigned,
		&tasksCompleted,
		&hoursLogged,
		&performanceScore,
		&permissions,
		&assignedAt,
		&assignedBy,
		&updatedAt,
		&lastActiveAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrMemberNotFound
		}
		return nil, err
	}

	member := &team.Member{
		ID:         id,
		TenantID:   tenantID,
		ProjectID:  projectID,
		EmployeeID: employeeID,
		Employee: team.EmployeeSnapshot{
			Name:       employeeName,
			Email:      employeeEmail,
			AvatarURL:  employeeAvatar,
			Title:      employeeTitle,
			Department: employeeDept,
		},
		ProjectName:      projectName,
		ProjectRole:      projectRole,
		Responsibilities: responsibilities,
		Allocation:       allocation,
		HoursPerWeek:     hoursPerWeek,
		SprintCapacity:   sprintCapacity,
		StartDate:        startDate.UTC(),
		Status:           team.Status(status),
		TasksAssigned:    tasksAssigned,
		TasksCompleted:   tasksCompleted,
		HoursLogged:      hoursLogged,
		Permissions:      permissions,
		AssignedAt:       assignedAt,
		AssignedBy:       assignedBy,
		UpdatedAt:        updatedAt,
	}

	if endDate.Valid {
		value := endDate.Time.UTC()
		member.EndDate = &value
	}
	if performanceScore.Valid {
		value := int(performanceScore.Int64)
		member.PerformanceScore = &value
	}
	if lastActiveAt.Valid {
		value := lastActiveAt.Time.UTC()
		member.LastActiveAt = &value
	}

	return member, nil
}

func translateTeamMemberPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return team.ErrMemberNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode:
			return team.ErrInvalidAllocation
		}
	}

	return err
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
