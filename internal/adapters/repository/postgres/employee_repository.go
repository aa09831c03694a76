package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/staffhub/internal/core/employee"
	pgdb "github.com/ogurasousui/staffhub/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

const employeeColumns = `id, tenant_id, external_user_id, first_name, last_name, email, phone,
               role, department, title, manager_id, avatar_url, status, employment_type,
               weekly_hours, hourly_rate, sprint_capacity, skills, expertise_level, certifications,
               active_projects, created_at, updated_at, created_by, last_modified_by`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。ID はここで採番します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	summary, err := marshalActiveProjects(e.ActiveProjects)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (id, tenant_id, external_user_id, first_name, last_name, email, phone,
                               role, department, title, manager_id, avatar_url, status, employment_type,
                               weekly_hours, hourly_rate, sprint_capacity, skills, expertise_level, certifications,
                               active_projects, created_at, updated_at, created_by, last_modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
        RETURNING `+employeeColumns+`
    `,
		uuid.NewString(),
		e.TenantID,
		e.ExternalUserID,
		e.FirstName,
		e.LastName,
		nullableString(e.Email),
		nullableString(e.Phone),
		e.Role,
		e.Department,
		e.Title,
		e.ManagerID,
		e.AvatarURL,
		string(e.Status),
		e.EmploymentType,
		e.WeeklyHours,
		nullableFloat(e.HourlyRate),
		nullableInt(e.SprintCapacity),
		e.Skills,
		e.ExpertiseLevel,
		e.Certifications,
		summary,
		e.CreatedAt,
		e.UpdatedAt,
		e.CreatedBy,
		e.LastModifiedBy,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員情報を更新します。active_projects はこの操作では触りません。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET external_user_id = $1,
               first_name = $2,
               last_name = $3,
               email = $4,
               phone = $5,
               role = $6,
               department = $7,
               title = $8,
               manager_id = $9,
               avatar_url = $10,
               status = $11,
               employment_type = $12,
               weekly_hours = $13,
               hourly_rate = $14,
               sprint_capacity = $15,
               skills = $16,
               expertise_level = $17,
               certifications = $18,
               updated_at = $19,
               last_modified_by = $20
         WHERE tenant_id = $21 AND id = $22
        RETURNING `+employeeColumns+`
    `,
		e.ExternalUserID,
		e.FirstName,
		e.LastName,
		nullableString(e.Email),
		nullableString(e.Phone),
		e.Role,
		e.Department,
		e.Title,
		e.ManagerID,
		e.AvatarURL,
		string(e.Status),
		e.EmploymentType,
		e.WeeklyHours,
		nullableFloat(e.HourlyRate),
		nullableInt(e.SprintCapacity),
		e.Skills,
		e.ExpertiseLevel,
		e.Certifications,
		e.UpdatedAt,
		e.LastModifiedBy,
		e.TenantID,
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// FindByID はテナント配下の社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, tenantID, id string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE tenant_id = $1 AND id = $2
         LIMIT 1
    `, tenantID, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は社員の一覧を取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if strings.TrimSpace(filter.TenantID) == "" {
		return nil, "", employee.ErrInvalidTenantID
	}
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 9)
	conditions := make([]string, 0, 7)

	appendCondition := func(expr string, value any) {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, fmt.Sprintf(expr, placeholder))
		args = append(args, value)
	}

	appendCondition("tenant_id = %s", filter.TenantID)
	if filter.Role != nil {
		appendCondition("role = %s", *filter.Role)
	}
	if filter.Department != nil {
		appendCondition("department = %s", *filter.Department)
	}
	if filter.Status != nil {
		appendCondition("status = %s", string(*filter.Status))
	}
	if filter.ManagerID != nil {
		appendCondition("manager_id = %s", *filter.ManagerID)
	}
	if filter.Skill != nil {
		appendCondition("%s = ANY(skills)", *filter.Skill)
	}
	if filter.ExpertiseLevel != nil {
		appendCondition("expertise_level = %s", *filter.ExpertiseLevel)
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + employeeColumns + `
          FROM employees` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0, filter.Limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	var nextToken string
	if len(employees) == limitWithBuffer {
		employees = employees[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return employees, nextToken, nil
}

// ReplaceActiveProjects は要約の jsonb 列を丸ごと置き換えます。
func (r *EmployeeRepository) ReplaceActiveProjects(ctx context.Context, tenantID, id string, projects []employee.ActiveProject, updatedAt time.Time) error {
	summary, err := marshalActiveProjects(projects)
	if err != nil {
		return err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE employees
           SET active_projects = $1,
               updated_at = $2
         WHERE tenant_id = $3 AND id = $4
    `, summary, updatedAt, tenantID, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id             string
		tenantID       string
		externalUserID string
		firstName      string
		lastName       string
		email          sql.NullString
		phone          sql.NullString
		role           string
		department     string
		title          string
		managerID      string
		avatarURL      string
		status         string
		employmentType string
		weeklyHours    int
		hourlyRate     sql.NullFloat64
		sprintCapacity sql.NullInt64
		skills         []string
		expertiseLevel string
		certifications []string
		summaryRaw     []byte
		createdAt      time.Time
		updatedAt      time.Time
		createdBy      string
		lastModifiedBy string
	)

	if err := row.Scan(
		&id,
		&tenantID,
		&externalUserID,
		&firstName,
		&lastName,
		&email,
		&phone,
		&role,
		&department,
		&title,
		&managerID,
		&avatarURL,
		&status,
		&employmentType,
		&weeklyHours,
		&hourlyRate,
		&sprintCapacity,
		&skills,
		&expertiseLevel,
		&certifications,
		&summaryRaw,
		&createdAt,
		&updatedAt,
		&createdBy,
		&lastModifiedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	summary, err := unmarshalActiveProjects(summaryRaw)
	if err != nil {
		return nil, err
	}

	emp := &employee.Employee{
		ID:             id,
		TenantID:       tenantID,
		ExternalUserID: externalUserID,
		FirstName:      firstName,
		LastName:       lastName,
		Role:           role,
		Department:     department,
		Title:          title,
		ManagerID:      managerID,
		AvatarURL:      avatarURL,
		Status:         employee.Status(status),
		EmploymentType: employmentType,
		WeeklyHours:    weeklyHours,
		Skills:         skills,
		ExpertiseLevel: expertiseLevel,
		Certifications: certifications,
		ActiveProjects: summary,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		CreatedBy:      createdBy,
		LastModifiedBy: lastModifiedBy,
	}

	if email.Valid {
		value := email.String
		emp.Email = &value
	}
	if phone.Valid {
		value := phone.String
		emp.Phone = &value
	}
	if hourlyRate.Valid {
		value := hourlyRate.Float64
		emp.HourlyRate = &value
	}
	if sprintCapacity.Valid {
		value := int(sprintCapacity.Int64)
		emp.SprintCapacity = &value
	}

	return emp, nil
}

func marshalActiveProjects(projects []employee.ActiveProject) ([]byte, error) {
	if projects == nil {
		projects = []employee.ActiveProject{}
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return nil, fmt.Errorf("marshal active projects: %w", err)
	}
	return raw, nil
}

func unmarshalActiveProjects(raw []byte) ([]employee.ActiveProject, error) {
	if len(raw) == 0 {
		return []employee.ActiveProject{}, nil
	}
	var projects []employee.ActiveProject
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("unmarshal active projects: %w", err)
	}
	if projects == nil {
		projects = []employee.ActiveProject{}
	}
	return projects, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode:
			return employee.ErrInvalidStatus
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
