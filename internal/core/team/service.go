package team

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/project"
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

// EmployeeDirectory は社員ディレクトリへの窓口です。要約の置き換えは
// この抽象を通してのみ行われます(employee.SummaryWriter が実装)。
type EmployeeDirectory interface {
	FindEmployee(ctx context.Context, tenantID, employeeID string) (*employee.Employee, error)
	ReplaceActiveProjects(ctx context.Context, tenantID, employeeID string, projects []employee.ActiveProject) error
}

// ProjectDirectory はプロジェクト名スナップショット用の読み取り窓口です。
type ProjectDirectory interface {
	FindProject(ctx context.Context, tenantID, projectID string) (*project.Project, error)
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxAllocation    = 100
)

// Service はプロジェクトチームレジストリのユースケースをまとめます。
// アロケーションに影響するすべての変更はここを通り、変更の後に必ず
// 対象社員の activeProjects 要約が再同期されます。
type Service struct {
	repo      Repository
	directory EmployeeDirectory
	projects  ProjectDirectory
	clock     Clock
	tx        TransactionManager
	hub       *watch.Hub
}

// UseCase はチームレジストリの公開インターフェースです。
type UseCase interface {
	AddMember(ctx context.Context, in AddMemberInput) (*Member, error)
	GetMember(ctx context.Context, in GetMemberInput) (*Member, error)
	ListMembers(ctx context.Context, in ListMembersInput) ([]*Member, error)
	UpdateMember(ctx context.Context, in UpdateMemberInput) (*Member, error)
	UpdateMemberStatus(ctx context.Context, in UpdateMemberStatusInput) (*Member, error)
	SetTaskCounts(ctx context.Context, in SetTaskCountsInput) (*Member, error)
	LogHours(ctx context.Context, in LogHoursInput) (*Member, error)
	RemoveMember(ctx context.Context, in RemoveMemberInput) error
	GetEmployeeProjects(ctx context.Context, in GetEmployeeProjectsInput) ([]*Member, error)
	IsEmployeeAvailable(ctx context.Context, in AvailabilityInput) (bool, error)
	WatchTeam(ctx context.Context, in WatchTeamInput, fn SnapshotFunc) (func(), error)
}

// NewService は Service を生成します。
func NewService(repo Repository, directory EmployeeDirectory, projects ProjectDirectory, clock Clock, tx TransactionManager, hub *watch.Hub) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if hub == nil {
		hub = watch.NewHub()
	}
	return &Service{repo: repo, directory: directory, projects: projects, clock: clock, tx: tx, hub: hub}
}

// AddMemberInput はアサインメント作成時の入力です。
type AddMemberInput struct {
	TenantID         string
	ProjectID        string
	EmployeeID       string
	ProjectRole      string
	Responsibilities []string
	Allocation       int
	HoursPerWeek     int
	SprintCapacity   int
	StartDate        time.Time
	EndDate          *time.Time
	Status           *Status
	Permissions      []string
	ActorID          string
}

// UpdateMemberInput はアサインメントの部分更新の入力です。nil のフィールドは変更されません。
type UpdateMemberInput struct {
	TenantID            string
	ProjectID           string
	MemberID            string
	ProjectRole         *string
	Responsibilities    []string
	ResponsibilitiesSet bool
	Allocation          *int
	HoursPerWeek        *int
	SprintCapacity      *int
	StartDate           *time.Time
	EndDate             *time.Time
	EndDateSet          bool
	PerformanceScore    *int
	PerformanceScoreSet bool
	Permissions         []string
	PermissionsSet      bool
}

// UpdateMemberStatusInput は状態遷移の入力です。
type UpdateMemberStatusInput struct {
	TenantID  string
	ProjectID string
	MemberID  string
	Status    Status
	EndDate   *time.Time
}

// SetTaskCountsInput はタスクカウンタ更新の入力です。絶対値で指定します。
type SetTaskCountsInput struct {
	TenantID       string
	ProjectID      string
	MemberID       string
	TasksAssigned  *int
	TasksCompleted *int
}

// LogHoursInput は作業時間の加算記録の入力です。
type LogHoursInput struct {
	TenantID  string
	ProjectID string
	MemberID  string
	Hours     float64
}

// RemoveMemberInput はアサインメントの物理削除の入力です。
type RemoveMemberInput struct {
	TenantID  string
	ProjectID string
	MemberID  string
}

// GetMemberInput はアサインメント取得時の入力です。
type GetMemberInput struct {
	TenantID  string
	ProjectID string
	MemberID  string
}

// ListMembersInput はプロジェクト配下のメンバー一覧取得の入力です。
type ListMembersInput struct {
	TenantID   string
	ProjectID  string
	EmployeeID *string
	Status     *Status
	Limit      int
}

// GetEmployeeProjectsInput はクロスペアレントクエリの入力です。
type GetEmployeeProjectsInput struct {
	TenantID   string
	EmployeeID string
	Status     *Status
}

// AvailabilityInput はキャパシティ事前チェックの入力です。
type AvailabilityInput struct {
	TenantID           string
	EmployeeID         string
	RequiredAllocation int
}

// WatchTeamInput はチーム一覧のリアルタイム購読の入力です。
type WatchTeamInput struct {
	TenantID   string
	ProjectID  string
	EmployeeID *string
	Status     *Status
	Limit      int
}

// SnapshotFunc は購読コールバックです。毎回、差分ではなく
// 現在のスナップショット全体を受け取ります。
type SnapshotFunc func(members []*Member)

// AddMember は社員をプロジェクトのチームに追加します。社員が存在しない場合は
// employee.ErrEmployeeNotFound を返します。作成後は呼び出し側の指定に関係なく
// 必ず社員要約を再同期します。再同期だけが失敗した場合、レコードは保存済みの
// まま ErrSummarySyncFailed を含むエラーと作成結果の両方を返します。
func (s *Service) AddMember(ctx context.Context, in AddMemberInput) (*Member, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	projectID, err := normalizeProjectID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(in.ProjectRole)
	if role == "" {
		return nil, ErrInvalidProjectRole
	}
	if err := validateAllocation(in.Allocation); err != nil {
		return nil, err
	}
	if in.HoursPerWeek < 0 {
		return nil, ErrInvalidHoursPerWeek
	}
	if in.SprintCapacity < 0 {
		return nil, ErrInvalidSprintCapacity
	}
	if in.StartDate.IsZero() {
		return nil, ErrInvalidStartDate
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	status := StatusActive
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	var created *Member
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.directory.FindEmployee(txCtx, tenantID, employeeID)
		if err != nil {
			return err
		}
		if emp.TenantID != tenantID {
			return ErrTenantIsolation
		}

		proj, err := s.projects.FindProject(txCtx, tenantID, projectID)
		if err != nil {
			return err
		}
		if proj.TenantID != tenantID {
			return ErrTenantIsolation
		}

		now := s.clock.Now()
		member := &Member{
			TenantID:   tenantID,
			ProjectID:  projectID,
			EmployeeID: employeeID,
			Employee: EmployeeSnapshot{
				Name:       emp.FullName(),
				Email:      derefString(emp.Email),
				AvatarURL:  emp.AvatarURL,
				Title:      emp.Title,
				Department: emp.Department,
			},
			ProjectName:      proj.Name,
			ProjectRole:      role,
			Responsibilities: cloneStrings(in.Responsibilities),
			Allocation:       in.Allocation,
			HoursPerWeek:     in.HoursPerWeek,
			SprintCapacity:   in.SprintCapacity,
			StartDate:        in.StartDate,
			EndDate:          cloneTime(in.EndDate),
			Status:           status,
			Permissions:      cloneStrings(in.Permissions),
			AssignedAt:       now,
			AssignedBy:       strings.TrimSpace(in.ActorID),
			UpdatedAt:        now,
		}

		result, err := s.repo.Create(txCtx, member)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publishTeamEvent(tenantID, projectID, employeeID, created.ID)

	if err := s.syncEmployeeActiveProjects(ctx, tenantID, employeeID); err != nil {
		return created, errors.Join(ErrSummarySyncFailed, err)
	}
	return created, nil
}

// UpdateMember はアサインメントを部分更新します。アロケーションが変更対象に
// 含まれる場合のみ、書き込み後に社員要約を再同期します。
func (s *Service) UpdateMember(ctx context.Context, in UpdateMemberInput) (*Member, error) {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return nil, err
	}

	if in.ProjectRole != nil && strings.TrimSpace(*in.ProjectRole) == "" {
		return nil, ErrInvalidProjectRole
	}
	if in.Allocation != nil {
		if err := validateAllocation(*in.Allocation); err != nil {
			return nil, err
		}
	}
	if in.HoursPerWeek != nil && *in.HoursPerWeek < 0 {
		return nil, ErrInvalidHoursPerWeek
	}
	if in.SprintCapacity != nil && *in.SprintCapacity < 0 {
		return nil, ErrInvalidSprintCapacity
	}
	if in.PerformanceScoreSet && in.PerformanceScore != nil {
		if *in.PerformanceScore < 1 || *in.PerformanceScore > 5 {
			return nil, ErrInvalidPerformanceScore
		}
	}

	var updated *Member
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
		if err != nil {
			return err
		}

		if in.ProjectRole != nil {
			existing.ProjectRole = strings.TrimSpace(*in.ProjectRole)
		}
		if in.ResponsibilitiesSet {
			existing.Responsibilities = cloneStrings(in.Responsibilities)
		}
		if in.Allocation != nil {
			existing.Allocation = *in.Allocation
		}
		if in.HoursPerWeek != nil {
			existing.HoursPerWeek = *in.HoursPerWeek
		}
		if in.SprintCapacity != nil {
			existing.SprintCapacity = *in.SprintCapacity
		}
		if in.StartDate != nil {
			if in.StartDate.IsZero() {
				return ErrInvalidStartDate
			}
			existing.StartDate = *in.StartDate
		}
		if in.EndDateSet {
			existing.EndDate = cloneTime(in.EndDate)
		}
		if existing.EndDate != nil && existing.EndDate.Before(existing.StartDate) {
			return ErrInvalidDateRange
		}
		if in.PerformanceScoreSet {
			existing.PerformanceScore = cloneInt(in.PerformanceScore)
		}
		if in.PermissionsSet {
			existing.Permissions = cloneStrings(in.Permissions)
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publishTeamEvent(tenantID, projectID, updated.EmployeeID, updated.ID)

	if in.Allocation != nil {
		if err := s.syncEmployeeActiveProjects(ctx, tenantID, updated.EmployeeID); err != nil {
			return updated, errors.Join(ErrSummarySyncFailed, err)
		}
	}
	return updated, nil
}

// UpdateMemberStatus はアサインメントの状態を遷移させます。終端状態への遷移で
// endDate が指定されていれば設定します。active 集合の構成が変わるため、
// アロケーション自体が変わらなくても必ず再同期します。
func (s *Service) UpdateMemberStatus(ctx context.Context, in UpdateMemberStatusInput) (*Member, error) {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return nil, err
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Member
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
		if err != nil {
			return err
		}

		existing.Status = in.Status
		if in.Status.Terminal() && in.EndDate != nil {
			if in.EndDate.Before(existing.StartDate) {
				return ErrInvalidDateRange
			}
			existing.EndDate = cloneTime(in.EndDate)
		}
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publishTeamEvent(tenantID, projectID, updated.EmployeeID, updated.ID)

	if err := s.syncEmployeeActiveProjects(ctx, tenantID, updated.EmployeeID); err != nil {
		return updated, errors.Join(ErrSummarySyncFailed, err)
	}
	return updated, nil
}

// SetTaskCounts はタスクカウンタだけを更新します。アロケーションに影響しないため
// 要約の再同期は行いません。
func (s *Service) SetTaskCounts(ctx context.Context, in SetTaskCountsInput) (*Member, error) {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return nil, err
	}
	if in.TasksAssigned != nil && *in.TasksAssigned < 0 {
		return nil, ErrInvalidTaskCount
	}
	if in.TasksCompleted != nil && *in.TasksCompleted < 0 {
		return nil, ErrInvalidTaskCount
	}

	var updated *Member
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
		if err != nil {
			return err
		}

		if in.TasksAssigned != nil {
			existing.TasksAssigned = *in.TasksAssigned
		}
		if in.TasksCompleted != nil {
			existing.TasksCompleted = *in.TasksCompleted
		}
		now := s.clock.Now()
		existing.UpdatedAt = now
		existing.LastActiveAt = &now

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publishTeamEvent(tenantID, projectID, updated.EmployeeID, updated.ID)
	return updated, nil
}

// LogHours は作業時間を加算します。アロケーションに影響しないため
// 要約の再同期は行いません。
func (s *Service) LogHours(ctx context.Context, in LogHoursInput) (*Member, error) {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return nil, err
	}
	if in.Hours < 0 {
		return nil, ErrInvalidHours
	}

	var updated *Member
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
		if err != nil {
			return err
		}

		existing.HoursLogged += in.Hours
		now := s.clock.Now()
		existing.UpdatedAt = now
		existing.LastActiveAt = &now

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publishTeamEvent(tenantID, projectID, updated.EmployeeID, updated.ID)
	return updated, nil
}

// RemoveMember はアサインメントを物理削除します。どの社員を再同期すべきかを
// 知るために削除前にレコードを読み、削除後にその社員の要約を再同期します。
func (s *Service) RemoveMember(ctx context.Context, in RemoveMemberInput) error {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return err
	}

	var employeeID string
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
		if err != nil {
			return err
		}
		employeeID = existing.EmployeeID

		return s.repo.Delete(txCtx, tenantID, projectID, memberID)
	}); err != nil {
		return err
	}

	s.publishTeamEvent(tenantID, projectID, employeeID, memberID)

	if err := s.syncEmployeeActiveProjects(ctx, tenantID, employeeID); err != nil {
		return errors.Join(ErrSummarySyncFailed, err)
	}
	return nil
}

// GetMember はアサインメントを取得します。
func (s *Service) GetMember(ctx context.Context, in GetMemberInput) (*Member, error) {
	tenantID, projectID, memberID, err := normalizeMemberPath(in.TenantID, in.ProjectID, in.MemberID)
	if err != nil {
		return nil, err
	}

	var result *Member
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, tenantID, projectID, memberID)
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

// ListMembers はプロジェクト配下のメンバー一覧を取得します。
func (s *Service) ListMembers(ctx context.Context, in ListMembersInput) ([]*Member, error) {
	filter, err := s.buildListFilter(in)
	if err != nil {
		return nil, err
	}

	var members []*Member
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListByProject(txCtx, filter)
		if err != nil {
			return err
		}
		members = result
		return nil
	}); err != nil {
		return nil, err
	}

	return members, nil
}

// GetEmployeeProjects は親プロジェクトを横断して社員のアサインメントを返します。
// 同期エンジンとキャパシティガードが依存するクエリと同じものです。
func (s *Service) GetEmployeeProjects(ctx context.Context, in GetEmployeeProjectsInput) ([]*Member, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return nil, err
	}
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	var members []*Member
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListByEmployee(txCtx, tenantID, employeeID, in.Status)
		if err != nil {
			return err
		}
		members = result
		return nil
	}); err != nil {
		return nil, err
	}

	return members, nil
}

// IsEmployeeAvailable は「この割り当てを足すと合計が 100% を超えないか」を
// 返します。このチェックは助言的であり、チェックと書き込みの間はロックで
// 保護されません。並行する AddMember が両方ともチェックを通過し、合計で
// 100% を超える可能性があります(次の再同期で要約自体は正しく保たれます)。
func (s *Service) IsEmployeeAvailable(ctx context.Context, in AvailabilityInput) (bool, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return false, err
	}
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return false, err
	}
	if in.RequiredAllocation < 0 {
		return false, ErrInvalidRequiredAlloc
	}

	total := 0
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		status := StatusActive
		members, err := s.repo.ListByEmployee(txCtx, tenantID, employeeID, &status)
		if err != nil {
			return err
		}
		for _, m := range members {
			total += m.Allocation
		}
		return nil
	}); err != nil {
		return false, err
	}

	return total+in.RequiredAllocation <= maxAllocation, nil
}

// WatchTeam はフィルタに合致するメンバー一覧のスナップショット購読を開始します。
// 返される解除関数は冪等です。
func (s *Service) WatchTeam(ctx context.Context, in WatchTeamInput, fn SnapshotFunc) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("team: snapshot callback is required")
	}

	filter, err := s.buildListFilter(ListMembersInput{
		TenantID:   in.TenantID,
		ProjectID:  in.ProjectID,
		EmployeeID: in.EmployeeID,
		Status:     in.Status,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, err
	}

	snapshot := func() {
		var members []*Member
		err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
			result, err := s.repo.ListByProject(txCtx, filter)
			if err != nil {
				return err
			}
			members = result
			return nil
		})
		if err != nil {
			// 購読は結果整合で良いため失敗した再取得はスキップする。
			// 次のイベントで追いつく。
			return
		}
		fn(members)
	}

	// 購読を先に登録してから初回スナップショットを配信する。逆順だと
	// その間に発行されたイベントを取りこぼし、次の変更まで古いまま残る。
	cancel := s.hub.Subscribe(func(e watch.Event) {
		if e.Kind != watch.KindTeam || e.TenantID != filter.TenantID || e.ProjectID != filter.ProjectID {
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

func (s *Service) buildListFilter(in ListMembersInput) (ListMembersFilter, error) {
	tenantID, err := normalizeTenantID(in.TenantID)
	if err != nil {
		return ListMembersFilter{}, err
	}
	projectID, err := normalizeProjectID(in.ProjectID)
	if err != nil {
		return ListMembersFilter{}, err
	}
	if in.Status != nil && !isValidStatus(*in.Status) {
		return ListMembersFilter{}, ErrInvalidStatus
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		return ListMembersFilter{}, ErrInvalidLimit
	}

	return ListMembersFilter{
		TenantID:   tenantID,
		ProjectID:  projectID,
		EmployeeID: in.EmployeeID,
		Status:     in.Status,
		Limit:      limit,
	}, nil
}

func (s *Service) publishTeamEvent(tenantID, projectID, employeeID, memberID string) {
	s.hub.Publish(watch.Event{
		TenantID:   tenantID,
		Kind:       watch.KindTeam,
		ProjectID:  projectID,
		EmployeeID: employeeID,
		MemberID:   memberID,
	})
}

func normalizeMemberPath(rawTenant, rawProject, rawMember string) (string, string, string, error) {
	tenantID, err := normalizeTenantID(rawTenant)
	if err != nil {
		return "", "", "", err
	}
	projectID, err := normalizeProjectID(rawProject)
	if err != nil {
		return "", "", "", err
	}
	memberID := strings.TrimSpace(rawMember)
	if memberID == "" {
		return "", "", "", ErrInvalidMemberID
	}
	return tenantID, projectID, memberID, nil
}

func normalizeTenantID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidTenantID
	}
	return trimmed, nil
}

func normalizeProjectID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidProjectID
	}
	return trimmed, nil
}

func normalizeEmployeeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmployeeID
	}
	return trimmed, nil
}

func validateAllocation(allocation int) error {
	if allocation < 0 || allocation > maxAllocation {
		return ErrInvalidAllocation
	}
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusCompleted, StatusRemoved:
		return true
	default:
		return false
	}
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	clone := make([]string, len(values))
	copy(clone, values)
	return clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
