package project

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeProjectRepo struct {
	projects map[string]*Project
	sequence int
	order    []string
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *Project) (*Project, error) {
	clone := cloneProject(p)
	r.sequence++
	id := fmt.Sprintf("proj-%d", r.sequence)
	clone.ID = id
	r.projects[id] = clone
	r.order = append(r.order, id)
	return cloneProject(clone), nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *Project) (*Project, error) {
	existing, ok := r.projects[p.ID]
	if !ok || existing.TenantID != p.TenantID {
		return nil, ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, tenantID, id string) (*Project, error) {
	proj, ok := r.projects[id]
	if !ok || proj.TenantID != tenantID {
		return nil, ErrProjectNotFound
	}
	return cloneProject(proj), nil
}

func (r *fakeProjectRepo) FindByCode(_ context.Context, tenantID, code string) (*Project, error) {
	for _, proj := range r.projects {
		if proj.TenantID == tenantID && proj.Code == code {
			return cloneProject(proj), nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *fakeProjectRepo) List(_ context.Context, filter ListProjectsFilter) ([]*Project, string, error) {
	var filtered []*Project
	for _, id := range r.order {
		proj := r.projects[id]
		if proj.TenantID != filter.TenantID {
			continue
		}
		if filter.Status != nil && proj.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, cloneProject(proj))
	}

	if filter.Offset > len(filtered) {
		return []*Project{}, "", nil
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

func cloneProject(p *Project) *Project {
	if p == nil {
		return nil
	}
	copy := *p
	if p.Description != nil {
		desc := *p.Description
		copy.Description = &desc
	}
	return &copy
}

func TestService_CreateProject_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil, nil)

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: " tenant-1 ",
		Name:     "  Apollo  ",
		Code:     " APL-01 ",
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	if created.TenantID != "tenant-1" {
		t.Fatalf("expected normalized tenant id, got %s", created.TenantID)
	}
	if created.Name != "Apollo" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Code != "apl-01" {
		t.Fatalf("expected normalized code, got %q", created.Code)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %s", created.Status)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps to use clock now")
	}
}

func TestService_CreateProject_DuplicateCode(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	if _, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-1",
		Name:     "Apollo",
		Code:     "apl",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-1",
		Name:     "Apollo Two",
		Code:     "APL",
	})
	if !errors.Is(err, ErrCodeAlreadyExists) {
		t.Fatalf("expected ErrCodeAlreadyExists, got %v", err)
	}

	// 別テナントなら同じコードを使える。
	if _, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-2",
		Name:     "Apollo",
		Code:     "apl",
	}); err != nil {
		t.Fatalf("expected code to be scoped per tenant, got %v", err)
	}
}

func TestService_CreateProject_InvalidCode(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	for _, code := range []string{"", "  ", "has space", "-leading", "日本語"} {
		_, err := svc.CreateProject(context.Background(), CreateProjectInput{
			TenantID: "tenant-1",
			Name:     "Apollo",
			Code:     code,
		})
		if !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("expected ErrInvalidCode for %q, got %v", code, err)
		}
	}
}

func TestService_UpdateProject(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	clk := &stubClock{now: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clk, nil, nil)

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-1",
		Name:     "Apollo",
		Code:     "apl",
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)

	newName := "Apollo Reborn"
	status := StatusArchived
	updated, err := svc.UpdateProject(context.Background(), UpdateProjectInput{
		TenantID: "tenant-1",
		ID:       created.ID,
		Name:     &newName,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("UpdateProject returned error: %v", err)
	}

	if updated.Name != "Apollo Reborn" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Status != StatusArchived {
		t.Fatalf("expected archived status, got %s", updated.Status)
	}
	if updated.Code != "apl" {
		t.Fatalf("expected untouched code, got %q", updated.Code)
	}
	if !updated.UpdatedAt.Equal(clk.now) {
		t.Fatalf("expected updated_at to advance")
	}
}

func TestService_GetProject_TenantScoped(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-1",
		Name:     "Apollo",
		Code:     "apl",
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	_, err = svc.GetProject(context.Background(), GetProjectInput{
		TenantID: "tenant-2",
		ID:       created.ID,
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected not found for other tenant, got %v", err)
	}
}

func TestService_ListProjects_Pagination(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateProject(context.Background(), CreateProjectInput{
			TenantID: "tenant-1",
			Name:     fmt.Sprintf("Project %d", i),
			Code:     fmt.Sprintf("code-%d", i),
		}); err != nil {
			t.Fatalf("CreateProject returned error: %v", err)
		}
	}

	first, err := svc.ListProjects(context.Background(), ListProjectsInput{
		TenantID: "tenant-1",
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("ListProjects returned error: %v", err)
	}
	if len(first.Projects) != 2 || first.NextPageToken == "" {
		t.Fatalf("expected first page of 2 with next token, got %d %q", len(first.Projects), first.NextPageToken)
	}

	second, err := svc.ListProjects(context.Background(), ListProjectsInput{
		TenantID:  "tenant-1",
		PageSize:  2,
		PageToken: first.NextPageToken,
	})
	if err != nil {
		t.Fatalf("ListProjects returned error: %v", err)
	}
	if len(second.Projects) != 1 || second.NextPageToken != "" {
		t.Fatalf("expected final page of 1, got %d %q", len(second.Projects), second.NextPageToken)
	}
}

func TestFinder_FindProject(t *testing.T) {
	t.Parallel()

	repo := newFakeProjectRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, nil)
	finder := NewFinder(repo)

	created, err := svc.CreateProject(context.Background(), CreateProjectInput{
		TenantID: "tenant-1",
		Name:     "Apollo",
		Code:     "apl",
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	found, err := finder.FindProject(context.Background(), "tenant-1", created.ID)
	if err != nil {
		t.Fatalf("FindProject returned error: %v", err)
	}
	if found.Name != "Apollo" {
		t.Fatalf("expected project name, got %q", found.Name)
	}

	if _, err := finder.FindProject(context.Background(), "tenant-1", "  "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
