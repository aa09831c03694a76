package handler

import (
	"context"
	"testing"
	"time"

	projectpb "github.com/ogurasousui/staffhub/internal/adapters/grpc/gen/project/v1"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubProjectUseCase struct {
	createInput project.CreateProjectInput
	createOut   *project.Project
	createErr   error

	getInput project.GetProjectInput
	getOut   *project.Project
	getErr   error

	listInput project.ListProjectsInput
	listOut   *project.ListProjectsResult
	listErr   error

	updateInput project.UpdateProjectInput
	updateOut   *project.Project
	updateErr   error
}

func (s *stubProjectUseCase) CreateProject(ctx context.Context, in project.CreateProjectInput) (*project.Project, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubProjectUseCase) GetProject(ctx context.Context, in project.GetProjectInput) (*project.Project, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubProjectUseCase) ListProjects(ctx context.Context, in project.ListProjectsInput) (*project.ListProjectsResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubProjectUseCase) UpdateProject(ctx context.Context, in project.UpdateProjectInput) (*project.Project, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func sampleProject(now time.Time) *project.Project {
	return &project.Project{
		ID:        "proj-1",
		TenantID:  "tenant-1",
		Name:      "Apollo",
		Code:      "apollo",
		Status:    project.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProjectGrpcHandler_CreateProject_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubProjectUseCase{createOut: sampleProject(now)}
	handler := NewProjectGrpcHandler(stub)

	resp, err := handler.CreateProject(context.Background(), &projectpb.CreateProjectRequest{
		TenantId:    "tenant-1",
		Name:        "Apollo",
		Code:        "apollo",
		Description: wrapperspb.String("moon landing"),
	})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}

	if stub.createInput.Code != "apollo" {
		t.Errorf("expected code to pass through, got %s", stub.createInput.Code)
	}
	if stub.createInput.Description == nil || *stub.createInput.Description != "moon landing" {
		t.Errorf("expected description pointer to be set")
	}
	if resp.GetProject().GetId() != "proj-1" {
		t.Fatalf("expected response id 'proj-1', got %s", resp.GetProject().GetId())
	}
}

func TestProjectGrpcHandler_CreateProject_DuplicateCode(t *testing.T) {
	t.Parallel()

	stub := &stubProjectUseCase{createErr: project.ErrCodeAlreadyExists}
	handler := NewProjectGrpcHandler(stub)

	_, err := handler.CreateProject(context.Background(), &projectpb.CreateProjectRequest{
		TenantId: "tenant-1",
		Name:     "Apollo",
		Code:     "apollo",
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", status.Code(err))
	}
}

func TestProjectGrpcHandler_GetProject_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubProjectUseCase{getErr: project.ErrProjectNotFound}
	handler := NewProjectGrpcHandler(stub)

	_, err := handler.GetProject(context.Background(), &projectpb.GetProjectRequest{TenantId: "tenant-1", Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestProjectGrpcHandler_ListProjects_PassesStatusFilter(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubProjectUseCase{
		listOut: &project.ListProjectsResult{
			Projects:      []*project.Project{sampleProject(now)},
			NextPageToken: "50",
		},
	}
	handler := NewProjectGrpcHandler(stub)

	resp, err := handler.ListProjects(context.Background(), &projectpb.ListProjectsRequest{
		TenantId: "tenant-1",
		Status:   projectpb.ProjectStatus_PROJECT_STATUS_ARCHIVED,
		PageSize: 50,
	})
	if err != nil {
		t.Fatalf("ListProjects returned error: %v", err)
	}

	if stub.listInput.Status == nil || *stub.listInput.Status != project.StatusArchived {
		t.Fatalf("expected archived filter, got %+v", stub.listInput.Status)
	}
	if len(resp.GetProjects()) != 1 {
		t.Fatalf("expected one project, got %d", len(resp.GetProjects()))
	}
	if resp.GetNextPageToken() != "50" {
		t.Fatalf("expected next page token '50', got %s", resp.GetNextPageToken())
	}
}

func TestProjectGrpcHandler_UpdateProject_SetsPointers(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubProjectUseCase{updateOut: sampleProject(now)}
	handler := NewProjectGrpcHandler(stub)

	_, err := handler.UpdateProject(context.Background(), &projectpb.UpdateProjectRequest{
		TenantId: "tenant-1",
		Id:       "proj-1",
		Name:     wrapperspb.String("Apollo 2"),
		Status:   projectpb.ProjectStatus_PROJECT_STATUS_ARCHIVED,
	})
	if err != nil {
		t.Fatalf("UpdateProject returned error: %v", err)
	}

	if stub.updateInput.Name == nil || *stub.updateInput.Name != "Apollo 2" {
		t.Fatalf("expected name pointer to be set")
	}
	if stub.updateInput.Code != nil {
		t.Fatalf("expected code to stay untouched")
	}
	if stub.updateInput.Status == nil || *stub.updateInput.Status != project.StatusArchived {
		t.Fatalf("expected status to be converted to archived")
	}
}
