package team

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"github.com/ogurasousui/staffhub/internal/core/watch"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeMemberRepo struct {
	mu       sync.Mutex
	members  map[string]*Member
	sequence int
	order    []string
	failList error
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, m *Member) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneMember(m)
	r.sequence++
	id := fmt.Sprintf("member-%d", r.sequence)
	clone.ID = id
	r.members[id] = clone
	r.order = append(r.order, id)
	return cloneMember(clone), nil
}

func (r *fakeMemberRepo) Update(_ context.Context, m *Member) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.members[m.ID]
	if !ok || existing.TenantID != m.TenantID {
		return nil, ErrMemberNotFound
	}
	r.members[m.ID] = cloneMember(m)
	return cloneMember(m), nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, tenantID, projectID, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.members[memberID]
	if !ok || existing.TenantID != tenantID || existing.ProjectID != projectID {
		return ErrMemberNotFound
	}
	delete(r.members, memberID)
	for idx, id := range r.order {
		if id == memberID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, tenantID, projectID, memberID string) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.members[memberID]
	if !ok || existing.TenantID != tenantID || existing.ProjectID != projectID {
		return nil, ErrMemberNotFound
	}
	return cloneMember(existing), nil
}

func (r *fakeMemberRepo) ListByProject(_ context.Context, filter ListMembersFilter) ([]*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []*Member
	for _, id := range r.order {
		m := r.members[id]
		if m.TenantID != filter.TenantID || m.ProjectID != filter.ProjectID {
			continue
		}
		if filter.EmployeeID != nil && m.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && m.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, cloneMember(m))
		if len(filtered) == filter.Limit {
			break
		}
	}
	return filtered, nil
}

func (r *fakeMemberRepo) ListByEmployee(_ context.Context, tenantID, employeeID string, status *Status) ([]*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failList != nil {
		return nil, r.failList
	}

	var filtered []*Member
	for _, id := range r.order {
		m := r.members[id]
		if m.TenantID != tenantID || m.EmployeeID != employeeID {
			continue
		}
		if status != nil && m.Status != *status {
			continue
		}
		filtered = append(filtered, cloneMember(m))
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartDate.After(filtered[j].StartDate)
	})
	return filtered, nil
}

func cloneMember(m *Member) *Member {
	if m == nil {
		return nil
	}
	copy := *m
	copy.Responsibilities = cloneStrings(m.Responsibilities)
	copy.Permissions = cloneStrings(m.Permissions)
	copy.EndDate = cloneTime(m.EndDate)
	copy.LastActiveAt = cloneTime(m.LastActiveAt)
	copy.PerformanceScore = cloneInt(m.PerformanceScore)
	return &copy
}

type fakeDirectory struct {
	mu           sync.Mutex
	employees    map[string]*employee.Employee
	summaries    map[string][]employee.ActiveProject
	replaceErr   error
	replaceCalls int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		employees: make(map[string]*employee.Employee),
		summaries: make(map[string][]employee.ActiveProject),
	}
}

func directoryKey(tenantID, employeeID string) string {
	return tenantID + "/" + employeeID
}

func (d *fakeDirectory) add(emp *employee.Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.employees[directoryKey(emp.TenantID, emp.ID)] = emp
}

func (d *fakeDirectory) FindEmployee(_ context.Context, tenantID, employeeID string) (*employee.Employee, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	emp, ok := d.employees[directoryKey(tenantID, employeeID)]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	clone := *emp
	return &clone, nil
}

func (d *fakeDirectory) ReplaceActiveProjects(_ context.Context, tenantID, employeeID string, projects []employee.ActiveProject) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.replaceCalls++
	if d.replaceErr != nil {
		return d.replaceErr
	}
	summary := make([]employee.ActiveProject, len(projects))
	copy(summary, projects)
	d.summaries[directoryKey(tenantID, employeeID)] = summary
	return nil
}

func (d *fakeDirectory) summary(tenantID, employeeID string) []employee.ActiveProject {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summaries[directoryKey(tenantID, employeeID)]
}

func (d *fakeDirectory) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.replaceCalls
}

type fakeProjects struct {
	projects map[string]*project.Project
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{projects: make(map[string]*project.Project)}
}

func (f *fakeProjects) add(p *project.Project) {
	f.projects[directoryKey(p.TenantID, p.ID)] = p
}

func (f *fakeProjects) FindProject(_ context.Context, tenantID, projectID string) (*project.Project, error) {
	p, ok := f.projects[directoryKey(tenantID, projectID)]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

type fixture struct {
	svc       *Service
	repo      *fakeMemberRepo
	directory *fakeDirectory
	projects  *fakeProjects
	clock     *stubClock
	hub       *watch.Hub
}

func newFixture() *fixture {
	repo := newFakeMemberRepo()
	directory := newFakeDirectory()
	projects := newFakeProjects()
	clock := &stubClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	hub := watch.NewHub()

	email := "hanako@example.com"
	directory.add(&employee.Employee{
		ID:         "emp-1",
		TenantID:   "tenant-1",
		FirstName:  "Hanako",
		LastName:   "Sato",
		Email:      &email,
		Title:      "Engineer",
		Department: "Platform",
		AvatarURL:  "https://example.com/hanako.png",
		Status:     employee.StatusActive,
	})
	projects.add(&project.Project{
		ID:       "proj-1",
		TenantID: "tenant-1",
		Name:     "Apollo",
		Code:     "APL",
		Status:   project.StatusActive,
	})
	projects.add(&project.Project{
		ID:       "proj-2",
		TenantID: "tenant-1",
		Name:     "Borealis",
		Code:     "BRL",
		Status:   project.StatusActive,
	})

	svc := NewService(repo, directory, projects, clock, nil, hub)
	return &fixture{svc: svc, repo: repo, directory: directory, projects: projects, clock: clock, hub: hub}
}

func (f *fixture) addMember(t *testing.T, projectID string, allocation int, start time.Time) *Member {
	t.Helper()
	created, err := f.svc.AddMember(context.Background(), AddMemberInput{
		TenantID:    "tenant-1",
		ProjectID:   projectID,
		EmployeeID:  "emp-1",
		ProjectRole: "developer",
		Allocation:  allocation,
		StartDate:   start,
		ActorID:     "admin-1",
	})
	if err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}
	return created
}

func TestService_AddMember_Success(t *testing.T) {
	t.Parallel()

	f := newFixture()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := f.svc.AddMember(context.Background(), AddMemberInput{
		TenantID:         " tenant-1 ",
		ProjectID:        " proj-1 ",
		EmployeeID:       " emp-1 ",
		ProjectRole:      "  developer  ",
		Responsibilities: []string{"api", "review"},
		Allocation:       60,
		HoursPerWeek:     24,
		SprintCapacity:   20,
		StartDate:        start,
		ActorID:          "admin-1",
	})
	if err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %s", created.Status)
	}
	if created.ProjectRole != "developer" {
		t.Fatalf("expected trimmed role, got %q", created.ProjectRole)
	}
	if created.ProjectName != "Apollo" {
		t.Fatalf("expected project name snapshot, got %q", created.ProjectName)
	}
	if created.Employee.Name != "Hanako Sato" || created.Employee.Department != "Platform" {
		t.Fatalf("unexpected employee snapshot: %+v", created.Employee)
	}
	if created.TasksAssigned != 0 || created.TasksCompleted != 0 || created.HoursLogged != 0 {
		t.Fatalf("expected zeroed counters")
	}
	if !created.AssignedAt.Equal(f.clock.now) || !created.UpdatedAt.Equal(f.clock.now) {
		t.Fatalf("expected timestamps to use clock now")
	}

	want := []employee.ActiveProject{{
		ProjectID:   "proj-1",
		ProjectName: "Apollo",
		Role:        "developer",
		Allocation:  60,
	}}
	if got := f.directory.summary("tenant-1", "emp-1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected summary after add: %+v", got)
	}
}

func TestService_AddMember_UnknownEmployee(t *testing.T) {
	t.Parallel()

	f := newFixture()

	_, err := f.svc.AddMember(context.Background(), AddMemberInput{
		TenantID:    "tenant-1",
		ProjectID:   "proj-1",
		EmployeeID:  "emp-missing",
		ProjectRole: "developer",
		Allocation:  50,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(f.repo.members) != 0 {
		t.Fatalf("expected no member persisted")
	}
	if f.directory.calls() != 0 {
		t.Fatalf("expected no summary write")
	}
}

func TestService_AddMember_ValidationRejectsBeforeWrite(t *testing.T) {
	t.Parallel()

	f := newFixture()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	cases := []struct {
		name    string
		input   AddMemberInput
		wantErr error
	}{
		{
			name:    "missing tenant",
			input:   AddMemberInput{ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", StartDate: start},
			wantErr: ErrInvalidTenantID,
		},
		{
			name:    "missing role",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "   ", StartDate: start},
			wantErr: ErrInvalidProjectRole,
		},
		{
			name:    "allocation over 100",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: 101, StartDate: start},
			wantErr: ErrInvalidAllocation,
		},
		{
			name:    "allocation negative",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: -1, StartDate: start},
			wantErr: ErrInvalidAllocation,
		},
		{
			name:    "hours per week negative",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: 10, HoursPerWeek: -1, StartDate: start},
			wantErr: ErrInvalidHoursPerWeek,
		},
		{
			name:    "sprint capacity negative",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: 10, SprintCapacity: -1, StartDate: start},
			wantErr: ErrInvalidSprintCapacity,
		},
		{
			name:    "missing start date",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: 10},
			wantErr: ErrInvalidStartDate,
		},
		{
			name:    "end before start",
			input:   AddMemberInput{TenantID: "tenant-1", ProjectID: "proj-1", EmployeeID: "emp-1", ProjectRole: "dev", Allocation: 10, StartDate: start, EndDate: &end},
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddMember(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(f.repo.members) != 0 {
		t.Fatalf("expected no member persisted")
	}
	if f.directory.calls() != 0 {
		t.Fatalf("expected no summary write")
	}
}

func TestService_AddMember_TenantIsolation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	other := "other@example.com"
	f.directory.add(&employee.Employee{
		ID:        "emp-other",
		TenantID:  "tenant-2",
		FirstName: "Jiro",
		LastName:  "Tanaka",
		Email:     &other,
		Status:    employee.StatusActive,
	})

	_, err := f.svc.AddMember(context.Background(), AddMemberInput{
		TenantID:    "tenant-1",
		ProjectID:   "proj-1",
		EmployeeID:  "emp-other",
		ProjectRole: "developer",
		Allocation:  10,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected not found for cross-tenant lookup, got %v", err)
	}
}

func TestService_AddMember_SummarySyncFailureKeepsRecord(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.directory.replaceErr = errors.New("directory unavailable")

	created, err := f.svc.AddMember(context.Background(), AddMemberInput{
		TenantID:    "tenant-1",
		ProjectID:   "proj-1",
		EmployeeID:  "emp-1",
		ProjectRole: "developer",
		Allocation:  40,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrSummarySyncFailed) {
		t.Fatalf("expected ErrSummarySyncFailed, got %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatalf("expected created member alongside sync error")
	}
	if _, ok := f.repo.members[created.ID]; !ok {
		t.Fatalf("expected member to remain persisted")
	}
}

func TestService_UpdateMember_AllocationChangeResyncsSummary(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	newAlloc := 30
	updated, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
		TenantID:   "tenant-1",
		ProjectID:  "proj-1",
		MemberID:   created.ID,
		Allocation: &newAlloc,
	})
	if err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}
	if updated.Allocation != 30 {
		t.Fatalf("expected allocation 30, got %d", updated.Allocation)
	}

	summary := f.directory.summary("tenant-1", "emp-1")
	if len(summary) != 1 || summary[0].Allocation != 30 {
		t.Fatalf("expected summary allocation 30, got %+v", summary)
	}
}

func TestService_UpdateMember_NonAllocationChangeSkipsResync(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	before := f.directory.calls()

	role := "tech lead"
	if _, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
		TenantID:    "tenant-1",
		ProjectID:   "proj-1",
		MemberID:    created.ID,
		ProjectRole: &role,
	}); err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}

	if f.directory.calls() != before {
		t.Fatalf("expected no summary write for role-only change")
	}
}

func TestService_UpdateMember_PerformanceScoreOutOfRange(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	before := f.directory.calls()

	for _, score := range []int{0, 6} {
		s := score
		_, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
			TenantID:            "tenant-1",
			ProjectID:           "proj-1",
			MemberID:            created.ID,
			PerformanceScore:    &s,
			PerformanceScoreSet: true,
		})
		if !errors.Is(err, ErrInvalidPerformanceScore) {
			t.Fatalf("expected ErrInvalidPerformanceScore for score %d, got %v", score, err)
		}
	}

	if f.repo.members[created.ID].PerformanceScore != nil {
		t.Fatalf("expected stored member untouched after rejected update")
	}
	if f.directory.calls() != before {
		t.Fatalf("expected no summary write for rejected update")
	}
}

func TestService_UpdateMemberStatus_TerminalRemovesFromSummary(t *testing.T) {
	t.Parallel()

	f := newFixture()
	first := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	f.addMember(t, "proj-2", 40, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.UpdateMemberStatus(context.Background(), UpdateMemberStatusInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
		MemberID:  first.ID,
		Status:    StatusCompleted,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("UpdateMemberStatus returned error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %s", updated.Status)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Fatalf("expected end date to be recorded, got %+v", updated.EndDate)
	}

	summary := f.directory.summary("tenant-1", "emp-1")
	if len(summary) != 1 || summary[0].ProjectID != "proj-2" {
		t.Fatalf("expected only proj-2 to remain in summary, got %+v", summary)
	}
}

func TestService_RemoveMember_ShrinksSummary(t *testing.T) {
	t.Parallel()

	f := newFixture()
	first := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	f.addMember(t, "proj-2", 40, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	if err := f.svc.RemoveMember(context.Background(), RemoveMemberInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
		MemberID:  first.ID,
	}); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}

	if _, ok := f.repo.members[first.ID]; ok {
		t.Fatalf("expected member to be deleted")
	}
	summary := f.directory.summary("tenant-1", "emp-1")
	if len(summary) != 1 || summary[0].ProjectID != "proj-2" {
		t.Fatalf("expected only proj-2 to remain in summary, got %+v", summary)
	}
}

func TestService_Sync_IsIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	first := f.directory.summary("tenant-1", "emp-1")

	alloc := 60
	if _, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
		TenantID:   "tenant-1",
		ProjectID:  "proj-1",
		MemberID:   created.ID,
		Allocation: &alloc,
	}); err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}

	second := f.directory.summary("tenant-1", "emp-1")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical summary after repeated sync: %+v vs %+v", first, second)
	}
}

func TestService_Sync_SelfHealsCorruptedSummary(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	// 外部要因で壊れた要約を再現する。
	f.directory.mu.Lock()
	f.directory.summaries[directoryKey("tenant-1", "emp-1")] = []employee.ActiveProject{
		{ProjectID: "ghost", ProjectName: "Ghost", Role: "phantom", Allocation: 999},
	}
	f.directory.mu.Unlock()

	alloc := 50
	if _, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
		TenantID:   "tenant-1",
		ProjectID:  "proj-1",
		MemberID:   created.ID,
		Allocation: &alloc,
	}); err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}

	want := []employee.ActiveProject{{
		ProjectID:   "proj-1",
		ProjectName: "Apollo",
		Role:        "developer",
		Allocation:  50,
	}}
	if got := f.directory.summary("tenant-1", "emp-1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected summary to self-heal, got %+v", got)
	}
}

func TestService_SetTaskCounts_AbsoluteAndNoResync(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	before := f.directory.calls()

	assigned, completed := 12, 7
	updated, err := f.svc.SetTaskCounts(context.Background(), SetTaskCountsInput{
		TenantID:       "tenant-1",
		ProjectID:      "proj-1",
		MemberID:       created.ID,
		TasksAssigned:  &assigned,
		TasksCompleted: &completed,
	})
	if err != nil {
		t.Fatalf("SetTaskCounts returned error: %v", err)
	}
	if updated.TasksAssigned != 12 || updated.TasksCompleted != 7 {
		t.Fatalf("expected absolute counts, got %d/%d", updated.TasksAssigned, updated.TasksCompleted)
	}
	if updated.LastActiveAt == nil {
		t.Fatalf("expected last active to be recorded")
	}
	if f.directory.calls() != before {
		t.Fatalf("expected no summary write for task counts")
	}
}

func TestService_LogHours_Accumulates(t *testing.T) {
	t.Parallel()

	f := newFixture()
	created := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	if _, err := f.svc.LogHours(context.Background(), LogHoursInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
		MemberID:  created.ID,
		Hours:     6.5,
	}); err != nil {
		t.Fatalf("LogHours returned error: %v", err)
	}
	updated, err := f.svc.LogHours(context.Background(), LogHoursInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
		MemberID:  created.ID,
		Hours:     1.5,
	})
	if err != nil {
		t.Fatalf("LogHours returned error: %v", err)
	}
	if updated.HoursLogged != 8 {
		t.Fatalf("expected accumulated hours 8, got %v", updated.HoursLogged)
	}

	_, err = f.svc.LogHours(context.Background(), LogHoursInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
		MemberID:  created.ID,
		Hours:     -1,
	})
	if !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}
}

func TestService_GetEmployeeProjects_CrossParent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	second := f.addMember(t, "proj-2", 40, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := f.svc.UpdateMemberStatus(context.Background(), UpdateMemberStatusInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-2",
		MemberID:  second.ID,
		Status:    StatusCompleted,
		EndDate:   &end,
	}); err != nil {
		t.Fatalf("UpdateMemberStatus returned error: %v", err)
	}

	all, err := f.svc.GetEmployeeProjects(context.Background(), GetEmployeeProjectsInput{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",
	})
	if err != nil {
		t.Fatalf("GetEmployeeProjects returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(all))
	}
	if all[0].ProjectID != "proj-2" {
		t.Fatalf("expected start-date descending order, got %s first", all[0].ProjectID)
	}

	status := StatusActive
	active, err := f.svc.GetEmployeeProjects(context.Background(), GetEmployeeProjectsInput{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",
		Status:     &status,
	})
	if err != nil {
		t.Fatalf("GetEmployeeProjects returned error: %v", err)
	}
	if len(active) != 1 || active[0].ProjectID != "proj-1" {
		t.Fatalf("expected only the active assignment, got %+v", active)
	}
}

func TestService_IsEmployeeAvailable_Boundaries(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	f.addMember(t, "proj-2", 30, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name     string
		required int
		want     bool
	}{
		{name: "fits exactly", required: 10, want: true},
		{name: "exceeds by one", required: 11, want: false},
		{name: "zero required", required: 0, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.svc.IsEmployeeAvailable(context.Background(), AvailabilityInput{
				TenantID:           "tenant-1",
				EmployeeID:         "emp-1",
				RequiredAllocation: tc.required,
			})
			if err != nil {
				t.Fatalf("IsEmployeeAvailable returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v for required %d", tc.want, tc.required)
			}
		})
	}

	if _, err := f.svc.IsEmployeeAvailable(context.Background(), AvailabilityInput{
		TenantID:           "tenant-1",
		EmployeeID:         "emp-1",
		RequiredAllocation: -5,
	}); !errors.Is(err, ErrInvalidRequiredAlloc) {
		t.Fatalf("expected ErrInvalidRequiredAlloc, got %v", err)
	}
}

func TestService_IsEmployeeAvailable_AfterReallocation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	first := f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	f.addMember(t, "proj-2", 40, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	available, err := f.svc.IsEmployeeAvailable(context.Background(), AvailabilityInput{
		TenantID:           "tenant-1",
		EmployeeID:         "emp-1",
		RequiredAllocation: 10,
	})
	if err != nil {
		t.Fatalf("IsEmployeeAvailable returned error: %v", err)
	}
	if available {
		t.Fatalf("expected unavailable at full allocation")
	}

	reduced := 30
	if _, err := f.svc.UpdateMember(context.Background(), UpdateMemberInput{
		TenantID:   "tenant-1",
		ProjectID:  "proj-1",
		MemberID:   first.ID,
		Allocation: &reduced,
	}); err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}

	available, err = f.svc.IsEmployeeAvailable(context.Background(), AvailabilityInput{
		TenantID:           "tenant-1",
		EmployeeID:         "emp-1",
		RequiredAllocation: 10,
	})
	if err != nil {
		t.Fatalf("IsEmployeeAvailable returned error: %v", err)
	}
	if !available {
		t.Fatalf("expected availability after reducing allocation")
	}
}

func TestService_WatchTeam_DeliversSnapshots(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	snapshots := make(chan []*Member, 8)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cancel, err := f.svc.WatchTeam(ctx, WatchTeamInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
	}, func(members []*Member) {
		snapshots <- members
	})
	if err != nil {
		t.Fatalf("WatchTeam returned error: %v", err)
	}
	defer cancel()

	initial := waitSnapshot(t, snapshots)
	if len(initial) != 1 {
		t.Fatalf("expected initial snapshot with 1 member, got %d", len(initial))
	}

	f.addMember(t, "proj-1", 20, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snapshot := <-snapshots:
			if len(snapshot) == 2 {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for updated snapshot")
		}
	}
}

func TestService_WatchTeam_EventDuringInitialSnapshotTriggersRefresh(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addMember(t, "proj-1", 60, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	snapshots := make(chan []*Member, 8)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var once sync.Once
	cancel, err := f.svc.WatchTeam(ctx, WatchTeamInput{
		TenantID:  "tenant-1",
		ProjectID: "proj-1",
	}, func(members []*Member) {
		// 初回配信と同時に発生した変更を模す。購読が初回配信より先に
		// 登録されていなければ、このイベントは誰にも届かない。
		once.Do(func() {
			f.hub.Publish(watch.Event{TenantID: "tenant-1", Kind: watch.KindTeam, ProjectID: "proj-1"})
		})
		snapshots <- members
	})
	if err != nil {
		t.Fatalf("WatchTeam returned error: %v", err)
	}
	defer cancel()

	waitSnapshot(t, snapshots)
	waitSnapshot(t, snapshots)
}

func waitSnapshot(t *testing.T, ch <-chan []*Member) []*Member {
	t.Helper()
	select {
	case snapshot := <-ch:
		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for snapshot")
		return nil
	}
}
