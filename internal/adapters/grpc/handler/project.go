package handler

import (
	"context"

	projectpb "github.com/ogurasousui/staffhub/internal/adapters/grpc/gen/project/v1"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ProjectGrpcHandler は ProjectService の gRPC 実装です。
type ProjectGrpcHandler struct {
	svc project.UseCase
	projectpb.UnimplementedProjectServiceServer
}

// NewProjectGrpcHandler は ProjectGrpcHandler を生成します。
func NewProjectGrpcHandler(svc project.UseCase) *ProjectGrpcHandler {
	return &ProjectGrpcHandler{svc: svc}
}

// CreateProject はプロジェクトを作成します。
func (h *ProjectGrpcHandler) CreateProject(ctx context.Context, req *projectpb.CreateProjectRequest) (*projectpb.CreateProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateProject(ctx, project.CreateProjectInput{
		TenantID:    req.GetTenantId(),
		Name:        req.GetName(),
		Code:        req.GetCode(),
		Description: stringValueToPointer(req.Description),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &projectpb.CreateProjectResponse{Project: toProtoProject(created)}, nil
}

// GetProject はプロジェクトを取得します。
func (h *ProjectGrpcHandler) GetProject(ctx context.Context, req *projectpb.GetProjectRequest) (*projectpb.GetProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetProject(ctx, project.GetProjectInput{
		TenantID: req.GetTenantId(),
		ID:       req.GetId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &projectpb.GetProjectResponse{Project: toProtoProject(found)}, nil
}

// ListProjects はプロジェクトの一覧を取得します。
func (h *ProjectGrpcHandler) ListProjects(ctx context.Context, req *projectpb.ListProjectsRequest) (*projectpb.ListProjectsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalProjectStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.ListProjects(ctx, project.ListProjectsInput{
		TenantID:  req.GetTenantId(),
		Status:    statusPtr,
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protos := make([]*projectpb.Project, 0, len(result.Projects))
	for _, p := range result.Projects {
		protos = append(protos, toProtoProject(p))
	}

	return &projectpb.ListProjectsResponse{
		Projects:      protos,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateProject はプロジェクト情報を更新します。
func (h *ProjectGrpcHandler) UpdateProject(ctx context.Context, req *projectpb.UpdateProjectRequest) (*projectpb.UpdateProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalProjectStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	updated, err := h.svc.UpdateProject(ctx, project.UpdateProjectInput{
		TenantID:    req.GetTenantId(),
		ID:          req.GetId(),
		Name:        stringValueToPointer(req.Name),
		Code:        stringValueToPointer(req.Code),
		Status:      statusPtr,
		Description: stringValueToPointer(req.Description),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &projectpb.UpdateProjectResponse{Project: toProtoProject(updated)}, nil
}

func toProtoProject(p *project.Project) *projectpb.Project {
	if p == nil {
		return nil
	}

	return &projectpb.Project{
		Id:          p.ID,
		TenantId:    p.TenantID,
		Name:        p.Name,
		Code:        p.Code,
		Status:      toProjectProtoStatus(p.Status),
		Description: pointerToStringValue(p.Description),
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
}

func toProjectProtoStatus(status project.Status) projectpb.ProjectStatus {
	switch status {
	case project.StatusActive:
		return projectpb.ProjectStatus_PROJECT_STATUS_ACTIVE
	case project.StatusArchived:
		return projectpb.ProjectStatus_PROJECT_STATUS_ARCHIVED
	default:
		return projectpb.ProjectStatus_PROJECT_STATUS_UNSPECIFIED
	}
}

func optionalProjectStatus(status projectpb.ProjectStatus) (*project.Status, error) {
	switch status {
	case projectpb.ProjectStatus_PROJECT_STATUS_UNSPECIFIED:
		return nil, nil
	case projectpb.ProjectStatus_PROJECT_STATUS_ACTIVE:
		s := project.StatusActive
		return &s, nil
	case projectpb.ProjectStatus_PROJECT_STATUS_ARCHIVED:
		s := project.StatusArchived
		return &s, nil
	default:
		return nil, project.ErrInvalidStatus
	}
}
