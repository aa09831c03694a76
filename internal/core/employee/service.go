package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/staffhub/internal/core/watch"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は社員ディレクトリのユースケースをまとめます。
// activeProjects 要約の書き込みは SummaryWriter 経由に限定されており、
// この型の公開操作には含まれません。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	hub   *watch.Hub
}

// UseCase は社員ディレクトリの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	TerminateEmployee(ctx context.Context, in TerminateEmployeeInput) (*Employee, error)
	WatchEmployees(ctx context.Context, in WatchEmployeesInput, fn SnapshotFunc) (func(), error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, hub *watch.Hub) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if hub == nil {
		hub = watch.NewHub()
	}
	return &Service{repo: repo, clock: clock, tx: tx, hub: hub}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	TenantID       string
	ExternalUserID string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Role           string
	Department     string
	Title          string
	ManagerID      string
	AvatarURL      string
	Status         *Status
	EmploymentType string
	WeeklyHours    int
	HourlyRate     *float64
	SprintCapacity *int
	Skills         []string
	ExpertiseLevel string
	Certifications []string
	ActorID        string
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは変更されません。
type UpdateEmployeeInput struct {
	TenantID       string
	ID             string
	FirstName      *string
	LastName       *string
	Email          *string
	EmailSet       bool
	Phone          *string
	PhoneSet       bool
	Role           *string
	Department     *string
	Title          *string
	ManagerID      *string
	AvatarURL      *string
	Status         *Status
	EmploymentType *string
	WeeklyHours    *int
	HourlyRate     *float64
	HourlyRateSet  bool
	SprintCapacity *int
	SprintCapSet   bool
	Skills         []string
	SkillsSet      bool
	ExpertiseLevel *string
	Certifications []string
	CertsSet       bool
	ActorID        string
}

// TerminateEmployeeInput は社員の在籍終了(論理削除)の入力です。
type TerminateEmployeeInput struct {
	TenantID string
	ID       string
	ActorID  string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	TenantID string
	ID       string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	TenantID       string
	Role           *string
	Department     *string
	Status         *Status
	ManagerID      *string
	Skill          *string
	ExpertiseLevel *string
	PageSize       int
	PageToken      string
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Employee
	NextPageToken string
}

// WatchEmployeesInput はリアルタイム購読の入力です。
type WatchEmployeesInput struct {
	TenantID   string
	Role       *string
	Department *string
	Status     *Status
	ManagerID  *string
	Limit      int
}

// SnapshotFunc は購読コールバックです。毎回、差分ではなく
// 現在のスナップショット全体を受け取ります。
type SnapshotFunc func(employees []*Employee)

// CreateEmployee は新しい社員を作成します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}

	lastName := strings.TrimSpace(in.LastName)
	if lastName == "" {
		return nil, ErrInvalidLastName
	}
	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" {
		return nil, ErrInvalidFirstName
	}

	email, err := normalizeOptionalEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if in.WeeklyHours < 0 {
		return nil, ErrInvalidWeeklyHours
	}
	if in.HourlyRate != nil && *in.HourlyRate < 0 {
		return nil, ErrInvalidHourlyRate
	}
	if in.SprintCapacity != nil && *in.SprintCapacity < 0 {
		return nil, ErrInvalidSprintCapacity
	}

	status := StatusActive
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		emp := &Employee{
			TenantID:       tenantID,
			ExternalUserID: strings.TrimSpace(in.ExternalUserID),
			FirstName:      firstName,
			LastName:       lastName,
			Email:          email,
			Phone:          cloneStringPtr(in.Phone),
			Role:           strings.TrimSpace(in.Role),
			Department:     strings.TrimSpace(in.Department),
			Title:          strings.TrimSpace(in.Title),
			ManagerID:      strings.TrimSpace(in.ManagerID),
			AvatarURL:      strings.TrimSpace(in.AvatarURL),
			Status:         status,
			EmploymentType: strings.TrimSpace(in.EmploymentType),
			WeeklyHours:    in.WeeklyHours,
			HourlyRate:     cloneFloatPtr(in.HourlyRate),
			SprintCapacity: cloneIntPtr(in.SprintCapacity),
			Skills:         cloneStrings(in.Skills),
			ExpertiseLevel: strings.TrimSpace(in.ExpertiseLevel),
			Certifications: cloneStrings(in.Certifications),
			ActiveProjects: []ActiveProject{},
			CreatedAt:      now,
			UpdatedAt:      now,
			CreatedBy:      strings.TrimSpace(in.ActorID),
			LastModifiedBy: strings.TrimSpace(in.ActorID),
		}

		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.Event{TenantID: tenantID, Kind: watch.KindEmployee, EmployeeID: created.ID})
	return created, nil
}

// UpdateEmployee は社員情報を部分更新します。activeProjects はこの操作では変更できません。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, in.ID)
		if err != nil {
			return err
		}

		if in.FirstName != nil {
			name := strings.TrimSpace(*in.FirstName)
			if name == "" {
				return ErrInvalidFirstName
			}
			existing.FirstName = name
		}
		if in.LastName != nil {
			name := strings.TrimSpace(*in.LastName)
			if name == "" {
				return ErrInvalidLastName
			}
			existing.LastName = name
		}
		if in.EmailSet {
			email, err := normalizeOptionalEmail(in.Email)
			if err != nil {
				return err
			}
			existing.Email = email
		}
		if in.PhoneSet {
			existing.Phone = cloneStringPtr(in.Phone)
		}
		if in.Role != nil {
			existing.Role = strings.TrimSpace(*in.Role)
		}
		if in.Department != nil {
			existing.Department = strings.TrimSpace(*in.Department)
		}
		if in.Title != nil {
			existing.Title = strings.TrimSpace(*in.Title)
		}
		if in.ManagerID != nil {
			existing.ManagerID = strings.TrimSpace(*in.ManagerID)
		}
		if in.AvatarURL != nil {
			existing.AvatarURL = strings.TrimSpace(*in.AvatarURL)
		}
		if in.Status != nil {
			if !isValidStatus(*in.Status) {
				return ErrInvalidStatus
			}
			existing.Status = *in.Status
		}
		if in.EmploymentType != nil {
			existing.EmploymentType = strings.TrimSpace(*in.EmploymentType)
		}
		if in.WeeklyHours != nil {
			if *in.WeeklyHours < 0 {
				return ErrInvalidWeeklyHours
			}
			existing.WeeklyHours = *in.WeeklyHours
		}
		if in.HourlyRateSet {
			if in.HourlyRate != nil && *in.HourlyRate < 0 {
				return ErrInvalidHourlyRate
			}
			existing.HourlyRate = cloneFloatPtr(in.HourlyRate)
		}
		if in.SprintCapSet {
			if in.SprintCapacity != nil && *in.SprintCapacity < 0 {
				return ErrInvalidSprintCapacity
			}
			existing.SprintCapacity = cloneIntPtr(in.SprintCapacity)
		}
		if in.SkillsSet {
			existing.Skills = cloneStrings(in.Skills)
		}
		if in.ExpertiseLevel != nil {
			existing.ExpertiseLevel = strings.TrimSpace(*in.ExpertiseLevel)
		}
		if in.CertsSet {
			existing.Certifications = cloneStrings(in.Certifications)
		}

		existing.UpdatedAt = s.clock.Now()
		existing.LastModifiedBy = strings.TrimSpace(in.ActorID)

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.Event{TenantID: tenantID, Kind: watch.KindEmployee, EmployeeID: updated.ID})
	return updated, nil
}

// TerminateEmployee は社員を terminated 状態に遷移させます。物理削除はしません。
func (s *Service) TerminateEmployee(ctx context.Context, in TerminateEmployeeInput) (*Employee, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var terminated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, in.ID)
		if err != nil {
			return err
		}
		if existing.Status == StatusTerminated {
			return ErrEmployeeTerminated
		}

		existing.Status = StatusTerminated
		existing.UpdatedAt = s.clock.Now()
		existing.LastModifiedBy = strings.TrimSpace(in.ActorID)

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		terminated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.hub.Publish(watch.Event{TenantID: tenantID, Kind: watch.KindEmployee, EmployeeID: terminated.ID})
	return terminated, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, tenantID, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は社員の一覧を取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	filter, err := s.buildListFilter(in)
	if err != nil {
		return nil, err
	}

	var (
		employees []*Employee
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		employees = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}

// WatchEmployees はフィルタに合致する社員一覧のスナップショット購読を開始します。
// 返される解除関数は冪等です。
func (s *Service) WatchEmployees(ctx context.Context, in WatchEmployeesInput, fn SnapshotFunc) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("employee: snapshot callback is required")
	}

	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultListPageSize
	}
	if limit > maxListPageSize {
		return nil, ErrInvalidPageSize
	}

	filter := ListEmployeesFilter{
		TenantID:   tenantID,
		Role:       in.Role,
		Department: in.Department,
		Status:     in.Status,
		ManagerID:  in.ManagerID,
		Limit:      limit,
	}

	snapshot := func() {
		var employees []*Employee
		err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
			result, _, err := s.repo.List(txCtx, filter)
			if err != nil {
				return err
			}
			employees = result
			return nil
		})
		if err != nil {
			// 購読は結果整合で良いため失敗した再取得はスキップする。
			// 次のイベントで追いつく。
			return
		}
		fn(employees)
	}

	// 購読を先に登録してから初回スナップショットを配信する。逆順だと
	// その間に発行されたイベントを取りこぼし、次の変更まで古いまま残る。
	cancel := s.hub.Subscribe(func(e watch.Event) {
		if e.Kind != watch.KindEmployee || e.TenantID != tenantID {
			return
		}
		snapshot()
	})

	snapshot()

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return cancel, nil
}

func (s *Service) buildListFilter(in ListEmployeesInput) (ListEmployeesFilter, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return ListEmployeesFilter{}, err
	}

	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return ListEmployeesFilter{}, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return ListEmployeesFilter{}, err
	}

	if in.Status != nil && !isValidStatus(*in.Status) {
		return ListEmployeesFilter{}, ErrInvalidStatus
	}

	return ListEmployeesFilter{
		TenantID:       tenantID,
		Role:           in.Role,
		Department:     in.Department,
		Status:         in.Status,
		ManagerID:      in.ManagerID,
		Skill:          in.Skill,
		ExpertiseLevel: in.ExpertiseLevel,
		Limit:          limit,
		Offset:         offset,
	}, nil
}

func normalizeTenantID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidTenantID
	}
	return trimmed, nil
}

func normalizeOptionalEmail(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*raw))
	if trimmed == "" {
		return nil, nil
	}
	if !strings.Contains(trimmed, "@") {
		return nil, ErrInvalidEmail
	}
	return &trimmed, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	default:
		return false
	}
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	clone := make([]string, len(values))
	copy(clone, values)
	return clone
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	clone := strings.TrimSpace(*value)
	return &clone
}

func cloneIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}

func cloneFloatPtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
