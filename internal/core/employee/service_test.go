package employee

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ogurasousui/staffhub/internal/core/watch"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	employees map[string]*Employee
	sequence  int
	order     []string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	clone := cloneEmployee(e)
	r.sequence++
	id := fmt.Sprintf("emp-%d", r.sequence)
	clone.ID = id
	r.employees[id] = clone
	r.order = append(r.order, id)
	return cloneEmployee(clone), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	existing, ok := r.employees[e.ID]
	if !ok || existing.TenantID != e.TenantID {
		return nil, ErrEmployeeNotFound
	}
	r.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, tenantID, id string) (*Employee, error) {
	emp, ok := r.employees[id]
	if !ok || emp.TenantID != tenantID {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Employee, string, error) {
	var filtered []*Employee
	for _, id := range r.order {
		emp := r.employees[id]
		if emp.TenantID != filter.TenantID {
			continue
		}
		if filter.Role != nil && emp.Role != *filter.Role {
			continue
		}
		if filter.Department != nil && emp.Department != *filter.Department {
			continue
		}
		if filter.Status != nil && emp.Status != *filter.Status {
			continue
		}
		if filter.ManagerID != nil && emp.ManagerID != *filter.ManagerID {
			continue
		}
		if filter.Skill != nil && !slices.Contains(emp.Skills, *filter.Skill) {
			continue
		}
		if filter.ExpertiseLevel != nil && emp.ExpertiseLevel != *filter.ExpertiseLevel {
			continue
		}
		filtered = append(filtered, cloneEmployee(emp))
	}

	if filter.Offset > len(filtered) {
		return []*Employee{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := filtered[filter.Offset:end]

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return page, nextToken, nil
}

func (r *fakeEmployeeRepo) ReplaceActiveProjects(_ context.Context, tenantID, id string, projects []ActiveProject, updatedAt time.Time) error {
	emp, ok := r.employees[id]
	if !ok || emp.TenantID != tenantID {
		return ErrEmployeeNotFound
	}
	summary := make([]ActiveProject, len(projects))
	copy(summary, projects)
	emp.ActiveProjects = summary
	emp.UpdatedAt = updatedAt
	return nil
}

func cloneEmployee(emp *Employee) *Employee {
	if emp == nil {
		return nil
	}
	copy := *emp
	copy.Email = cloneStringPtr(emp.Email)
	copy.Phone = cloneStringPtr(emp.Phone)
	copy.HourlyRate = cloneFloatPtr(emp.HourlyRate)
	copy.SprintCapacity = cloneIntPtr(emp.SprintCapacity)
	copy.Skills = cloneStrings(emp.Skills)
	copy.Certifications = cloneStrings(emp.Certifications)
	if emp.ActiveProjects != nil {
		summary := make([]ActiveProject, len(emp.ActiveProjects))
		for i := range emp.ActiveProjects {
			summary[i] = emp.ActiveProjects[i]
		}
		copy.ActiveProjects = summary
	}
	return &copy
}

func TestService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil, nil)

	email := "Hanako@Example.com"
	rate := 80.0

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:       " tenant-1 ",
		FirstName:      " Hanako ",
		LastName:       "  Sato  ",
		Email:          &email,
		Role:           " engineer ",
		Department:     "Platform",
		Title:          "Senior Engineer",
		WeeklyHours:    40,
		HourlyRate:     &rate,
		Skills:         []string{"go", "postgres"},
		ExpertiseLevel: "senior",
		ActorID:        "admin-1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.TenantID != "tenant-1" {
		t.Fatalf("expected normalized tenant id, got %s", created.TenantID)
	}
	if created.FirstName != "Hanako" || created.LastName != "Sato" {
		t.Fatalf("expected trimmed names, got %s %s", created.FirstName, created.LastName)
	}
	if created.Email == nil || *created.Email != "hanako@example.com" {
		t.Fatalf("expected normalized email, got %+v", created.Email)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %s", created.Status)
	}
	if created.ActiveProjects == nil || len(created.ActiveProjects) != 0 {
		t.Fatalf("expected empty active projects summary, got %+v", created.ActiveProjects)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps to use clock now")
	}
	if created.CreatedBy != "admin-1" || created.LastModifiedBy != "admin-1" {
		t.Fatalf("expected audit actor to be recorded")
	}
}

func TestService_CreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	badEmail := "not-an-email"
	negativeRate := -1.0

	cases := []struct {
		name    string
		input   CreateEmployeeInput
		wantErr error
	}{
		{
			name:    "missing tenant",
			input:   CreateEmployeeInput{FirstName: "A", LastName: "B"},
			wantErr: ErrInvalidTenantID,
		},
		{
			name:    "missing last name",
			input:   CreateEmployeeInput{TenantID: "tenant-1", FirstName: "A", LastName: "   "},
			wantErr: ErrInvalidLastName,
		},
		{
			name:    "missing first name",
			input:   CreateEmployeeInput{TenantID: "tenant-1", FirstName: "", LastName: "B"},
			wantErr: ErrInvalidFirstName,
		},
		{
			name:    "invalid email",
			input:   CreateEmployeeInput{TenantID: "tenant-1", FirstName: "A", LastName: "B", Email: &badEmail},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "negative weekly hours",
			input:   CreateEmployeeInput{TenantID: "tenant-1", FirstName: "A", LastName: "B", WeeklyHours: -1},
			wantErr: ErrInvalidWeeklyHours,
		},
		{
			name:    "negative hourly rate",
			input:   CreateEmployeeInput{TenantID: "tenant-1", FirstName: "A", LastName: "B", HourlyRate: &negativeRate},
			wantErr: ErrInvalidHourlyRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEmployee(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(repo.employees) != 0 {
		t.Fatalf("expected no employee persisted")
	}
}

func TestService_UpdateEmployee_PartialUpdate(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	clk := &stubClock{now: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clk, nil, nil)

	email := "taro@example.com"
	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     &email,
		Role:      "engineer",
		ActorID:   "admin-1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)

	newTitle := "Tech Lead"
	status := StatusOnLeave
	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		TenantID: "tenant-1",
		ID:       created.ID,
		Title:    &newTitle,
		Status:   &status,
		EmailSet: true,
		Email:    nil,
		ActorID:  "admin-2",
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.Title != "Tech Lead" {
		t.Fatalf("expected updated title, got %s", updated.Title)
	}
	if updated.Status != StatusOnLeave {
		t.Fatalf("expected on_leave status, got %s", updated.Status)
	}
	if updated.Email != nil {
		t.Fatalf("expected email to be cleared, got %+v", updated.Email)
	}
	if updated.FirstName != "Taro" || updated.Role != "engineer" {
		t.Fatalf("expected untouched fields to survive")
	}
	if !updated.UpdatedAt.Equal(clk.now) {
		t.Fatalf("expected updated_at to advance")
	}
	if updated.LastModifiedBy != "admin-2" {
		t.Fatalf("expected audit actor to change, got %s", updated.LastModifiedBy)
	}
}

func TestService_GetEmployee_TenantScoped(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Hanako",
		LastName:  "Sato",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{
		TenantID: "tenant-1",
		ID:       created.ID,
	}); err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}

	_, err = svc.GetEmployee(context.Background(), GetEmployeeInput{
		TenantID: "tenant-2",
		ID:       created.ID,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected not found for other tenant, got %v", err)
	}
}

func TestService_TerminateEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	terminated, err := svc.TerminateEmployee(context.Background(), TerminateEmployeeInput{
		TenantID: "tenant-1",
		ID:       created.ID,
		ActorID:  "admin-1",
	})
	if err != nil {
		t.Fatalf("TerminateEmployee returned error: %v", err)
	}
	if terminated.Status != StatusTerminated {
		t.Fatalf("expected terminated status, got %s", terminated.Status)
	}

	if _, ok := repo.employees[created.ID]; !ok {
		t.Fatalf("expected record to survive termination")
	}

	_, err = svc.TerminateEmployee(context.Background(), TerminateEmployeeInput{
		TenantID: "tenant-1",
		ID:       created.ID,
	})
	if !errors.Is(err, ErrEmployeeTerminated) {
		t.Fatalf("expected ErrEmployeeTerminated, got %v", err)
	}
}

func TestService_ListEmployees_Pagination(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
			TenantID:  "tenant-1",
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
		}); err != nil {
			t.Fatalf("CreateEmployee returned error: %v", err)
		}
	}

	first, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		TenantID: "tenant-1",
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(first.Employees) != 2 || first.NextPageToken == "" {
		t.Fatalf("expected first page of 2 with next token, got %d %q", len(first.Employees), first.NextPageToken)
	}

	second, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		TenantID:  "tenant-1",
		PageSize:  2,
		PageToken: first.NextPageToken,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(second.Employees) != 2 {
		t.Fatalf("expected second page of 2, got %d", len(second.Employees))
	}
	if second.Employees[0].ID == first.Employees[0].ID {
		t.Fatalf("expected pages to not overlap")
	}

	_, err = svc.ListEmployees(context.Background(), ListEmployeesInput{
		TenantID:  "tenant-1",
		PageToken: "bogus",
	})
	if !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestService_ListEmployees_Filters(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:   "tenant-1",
		FirstName:  "Hanako",
		LastName:   "Sato",
		Department: "Platform",
		Skills:     []string{"go"},
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:   "tenant-1",
		FirstName:  "Taro",
		LastName:   "Yamada",
		Department: "Design",
		Skills:     []string{"figma"},
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	skill := "go"
	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		TenantID: "tenant-1",
		Skill:    &skill,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(result.Employees) != 1 || result.Employees[0].FirstName != "Hanako" {
		t.Fatalf("expected skill filter to match one employee, got %+v", result.Employees)
	}
}

func TestSummaryWriter_ReplaceActiveProjects(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	clk := &stubClock{now: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clk, nil, nil)
	writer := NewSummaryWriter(repo, clk)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Hanako",
		LastName:  "Sato",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)

	summary := []ActiveProject{
		{ProjectID: "proj-1", ProjectName: "Apollo", Role: "developer", Allocation: 60},
	}
	if err := writer.ReplaceActiveProjects(context.Background(), "tenant-1", created.ID, summary); err != nil {
		t.Fatalf("ReplaceActiveProjects returned error: %v", err)
	}

	found, err := writer.FindEmployee(context.Background(), "tenant-1", created.ID)
	if err != nil {
		t.Fatalf("FindEmployee returned error: %v", err)
	}
	if len(found.ActiveProjects) != 1 || found.ActiveProjects[0].ProjectID != "proj-1" {
		t.Fatalf("expected replaced summary, got %+v", found.ActiveProjects)
	}
	if found.TotalActiveAllocation() != 60 {
		t.Fatalf("expected total allocation 60, got %d", found.TotalActiveAllocation())
	}
	if !found.UpdatedAt.Equal(clk.now) {
		t.Fatalf("expected updated_at to follow summary write")
	}

	// 置き換えはマージではない。
	if err := writer.ReplaceActiveProjects(context.Background(), "tenant-1", created.ID, nil); err != nil {
		t.Fatalf("ReplaceActiveProjects returned error: %v", err)
	}
	found, err = writer.FindEmployee(context.Background(), "tenant-1", created.ID)
	if err != nil {
		t.Fatalf("FindEmployee returned error: %v", err)
	}
	if len(found.ActiveProjects) != 0 {
		t.Fatalf("expected empty summary after wholesale replace, got %+v", found.ActiveProjects)
	}
}

func TestService_WatchEmployees_DeliversSnapshots(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Hanako",
		LastName:  "Sato",
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	snapshots := make(chan []*Employee, 8)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cancel, err := svc.WatchEmployees(ctx, WatchEmployeesInput{TenantID: "tenant-1"}, func(employees []*Employee) {
		snapshots <- employees
	})
	if err != nil {
		t.Fatalf("WatchEmployees returned error: %v", err)
	}
	defer cancel()

	select {
	case initial := <-snapshots:
		if len(initial) != 1 {
			t.Fatalf("expected initial snapshot with 1 employee, got %d", len(initial))
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for initial snapshot")
	}

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Taro",
		LastName:  "Yamada",
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

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

func TestService_WatchEmployees_EventDuringInitialSnapshotTriggersRefresh(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	hub := watch.NewHub()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, hub)

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		TenantID:  "tenant-1",
		FirstName: "Hanako",
		LastName:  "Sato",
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	snapshots := make(chan []*Employee, 8)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var once sync.Once
	cancel, err := svc.WatchEmployees(ctx, WatchEmployeesInput{TenantID: "tenant-1"}, func(employees []*Employee) {
		// 初回配信と同時に発生した変更を模す。購読が初回配信より先に
		// 登録されていなければ、このイベントは誰にも届かない。
		once.Do(func() {
			hub.Publish(watch.Event{TenantID: "tenant-1", Kind: watch.KindEmployee})
		})
		snapshots <- employees
	})
	if err != nil {
		t.Fatalf("WatchEmployees returned error: %v", err)
	}
	defer cancel()

	for i := 0; i < 2; i++ {
		select {
		case <-snapshots:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for snapshot %d", i+1)
		}
	}
}
