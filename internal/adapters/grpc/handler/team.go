package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	teampb "github.com/ogurasousui/staffhub/internal/adapters/grpc/gen/team/v1"
	"github.com/ogurasousui/staffhub/internal/core/team"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const dateLayout = "2006-01-02"

// TeamGrpcHandler は TeamService の gRPC 実装です。
type TeamGrpcHandler struct {
	svc team.UseCase
	teampb.UnimplementedTeamServiceServer
}

// NewTeamGrpcHandler は TeamGrpcHandler を生成します。
func NewTeamGrpcHandler(svc team.UseCase) *TeamGrpcHandler {
	return &TeamGrpcHandler{svc: svc}
}

// AddMember は社員をプロジェクトチームに追加します。レコードが保存された後に
// 要約の再同期だけが失敗した場合はエラーにせず、レスポンスのフラグで伝えます。
func (h *TeamGrpcHandler) AddMember(ctx context.Context, req *teampb.AddMemberRequest) (*teampb.AddMemberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	startDate, err := parseDateValue(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start_date: %v", err))
	}
	endDate, err := parseDateValue(req.EndDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("end_date: %v", err))
	}

	statusPtr, err := optionalMemberStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	in := team.AddMemberInput{
		TenantID:         req.GetTenantId(),
		ProjectID:        req.GetProjectId(),
		EmployeeID:       req.GetEmployeeId(),
		ProjectRole:      req.GetProjectRole(),
		Responsibilities: req.GetResponsibilities(),
		Allocation:       int(req.GetAllocation()),
		HoursPerWeek:     int(req.GetHoursPerWeek()),
		SprintCapacity:   int(req.GetSprintCapacity()),
		EndDate:          endDate,
		Status:           statusPtr,
		Permissions:      req.GetPermissions(),
		ActorID:          req.GetActorId(),
	}
	if startDate != nil {
		in.StartDate = *startDate
	}

	created, err := h.svc.AddMember(ctx, in)
	if err != nil {
		if errors.Is(err, team.ErrSummarySyncFailed) && created != nil {
			return &teampb.AddMemberResponse{
				Member:            toProtoTeamMember(created),
				SummarySyncFailed: true,
			}, nil
		}
		return nil, toStatusError(err)
	}

	return &teampb.AddMemberResponse{Member: toProtoTeamMember(created)}, nil
}

// GetMember はアサインメントを取得します。
func (h *TeamGrpcHandler) GetMember(ctx context.Context, req *teampb.GetMemberRequest) (*teampb.GetMemberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetMember(ctx, team.GetMemberInput{
		TenantID:  req.GetTenantId(),
		ProjectID: req.GetProjectId(),
		MemberID:  req.GetMemberId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.GetMemberResponse{Member: toProtoTeamMember(found)}, nil
}

// ListMembers はプロジェクト配下のメンバー一覧を取得します。
func (h *TeamGrpcHandler) ListMembers(ctx context.Context, req *teampb.ListMembersRequest) (*teampb.ListMembersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalMemberStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	members, err := h.svc.ListMembers(ctx, team.ListMembersInput{
		TenantID:   req.GetTenantId(),
		ProjectID:  req.GetProjectId(),
		EmployeeID: stringValueToPointer(req.EmployeeId),
		Status:     statusPtr,
		Limit:      int(req.GetLimit()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.ListMembersResponse{Members: toProtoTeamMembers(members)}, nil
}

// UpdateMember はアサインメントを部分更新します。
func (h *TeamGrpcHandler) UpdateMember(ctx context.Context, req *teampb.UpdateMemberRequest) (*teampb.UpdateMemberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	startDate, err := parseDateValue(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start_date: %v", err))
	}
	endDate, err := parseDateValue(req.EndDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("end_date: %v", err))
	}

	in := team.UpdateMemberInput{
		TenantID:            req.GetTenantId(),
		ProjectID:           req.GetProjectId(),
		MemberID:            req.GetMemberId(),
		ProjectRole:         stringValueToPointer(req.ProjectRole),
		Allocation:          int32ValueToPointer(req.Allocation),
		HoursPerWeek:        int32ValueToPointer(req.HoursPerWeek),
		SprintCapacity:      int32ValueToPointer(req.SprintCapacity),
		StartDate:           startDate,
		EndDate:             endDate,
		EndDateSet:          req.GetEndDateSet() || req.EndDate != nil,
		PerformanceScore:    int32ValueToPointer(req.PerformanceScore),
		PerformanceScoreSet: req.GetPerformanceScoreSet() || req.PerformanceScore != nil,
	}

	if req.Responsibilities != nil {
		in.Responsibilities = req.Responsibilities.GetValues()
		in.ResponsibilitiesSet = true
	}
	if req.Permissions != nil {
		in.Permissions = req.Permissions.GetValues()
		in.PermissionsSet = true
	}

	updated, err := h.svc.UpdateMember(ctx, in)
	if err != nil {
		if errors.Is(err, team.ErrSummarySyncFailed) && updated != nil {
			return &teampb.UpdateMemberResponse{
				Member:            toProtoTeamMember(updated),
				SummarySyncFailed: true,
			}, nil
		}
		return nil, toStatusError(err)
	}

	return &teampb.UpdateMemberResponse{Member: toProtoTeamMember(updated)}, nil
}

// UpdateMemberStatus はアサインメントの状態を遷移させます。
func (h *TeamGrpcHandler) UpdateMemberStatus(ctx context.Context, req *teampb.UpdateMemberStatusRequest) (*teampb.UpdateMemberStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalMemberStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}
	if statusPtr == nil {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	endDate, err := parseDateValue(req.EndDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("end_date: %v", err))
	}

	updated, err := h.svc.UpdateMemberStatus(ctx, team.UpdateMemberStatusInput{
		TenantID:  req.GetTenantId(),
		ProjectID: req.GetProjectId(),
		MemberID:  req.GetMemberId(),
		Status:    *statusPtr,
		EndDate:   endDate,
	})
	if err != nil {
		if errors.Is(err, team.ErrSummarySyncFailed) && updated != nil {
			return &teampb.UpdateMemberStatusResponse{
				Member:            toProtoTeamMember(updated),
				SummarySyncFailed: true,
			}, nil
		}
		return nil, toStatusError(err)
	}

	return &teampb.UpdateMemberStatusResponse{Member: toProtoTeamMember(updated)}, nil
}

// SetTaskCounts はタスクカウンタを絶対値で更新します。
func (h *TeamGrpcHandler) SetTaskCounts(ctx context.Context, req *teampb.SetTaskCountsRequest) (*teampb.SetTaskCountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.SetTaskCounts(ctx, team.SetTaskCountsInput{
		TenantID:       req.GetTenantId(),
		ProjectID:      req.GetProjectId(),
		MemberID:       req.GetMemberId(),
		TasksAssigned:  int32ValueToPointer(req.TasksAssigned),
		TasksCompleted: int32ValueToPointer(req.TasksCompleted),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.SetTaskCountsResponse{Member: toProtoTeamMember(updated)}, nil
}

// LogHours は作業時間を加算します。
func (h *TeamGrpcHandler) LogHours(ctx context.Context, req *teampb.LogHoursRequest) (*teampb.LogHoursResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.LogHours(ctx, team.LogHoursInput{
		TenantID:  req.GetTenantId(),
		ProjectID: req.GetProjectId(),
		MemberID:  req.GetMemberId(),
		Hours:     req.GetHours(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.LogHoursResponse{Member: toProtoTeamMember(updated)}, nil
}

// RemoveMember はアサインメントを削除します。
func (h *TeamGrpcHandler) RemoveMember(ctx context.Context, req *teampb.RemoveMemberRequest) (*teampb.RemoveMemberResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	err := h.svc.RemoveMember(ctx, team.RemoveMemberInput{
		TenantID:  req.GetTenantId(),
		ProjectID: req.GetProjectId(),
		MemberID:  req.GetMemberId(),
	})
	if err != nil {
		if errors.Is(err, team.ErrSummarySyncFailed) {
			return &teampb.RemoveMemberResponse{SummarySyncFailed: true}, nil
		}
		return nil, toStatusError(err)
	}

	return &teampb.RemoveMemberResponse{}, nil
}

// GetEmployeeProjects は親プロジェクトを横断して社員のアサインメントを返します。
func (h *TeamGrpcHandler) GetEmployeeProjects(ctx context.Context, req *teampb.GetEmployeeProjectsRequest) (*teampb.GetEmployeeProjectsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalMemberStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	members, err := h.svc.GetEmployeeProjects(ctx, team.GetEmployeeProjectsInput{
		TenantID:   req.GetTenantId(),
		EmployeeID: req.GetEmployeeId(),
		Status:     statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.GetEmployeeProjectsResponse{Members: toProtoTeamMembers(members)}, nil
}

// CheckAvailability はキャパシティガードの事前チェックを行います。結果は助言的です。
func (h *TeamGrpcHandler) CheckAvailability(ctx context.Context, req *teampb.CheckAvailabilityRequest) (*teampb.CheckAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	available, err := h.svc.IsEmployeeAvailable(ctx, team.AvailabilityInput{
		TenantID:           req.GetTenantId(),
		EmployeeID:         req.GetEmployeeId(),
		RequiredAllocation: int(req.GetRequiredAllocation()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &teampb.CheckAvailabilityResponse{Available: available}, nil
}

// WatchTeam はフィルタに合致するメンバー一覧のスナップショットを配信し続けます。
func (h *TeamGrpcHandler) WatchTeam(req *teampb.WatchTeamRequest, stream teampb.TeamService_WatchTeamServer) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalMemberStatus(req.GetStatus())
	if err != nil {
		return toStatusError(err)
	}

	ctx := stream.Context()
	snapshots := make(chan []*team.Member, 4)

	cancel, err := h.svc.WatchTeam(ctx, team.WatchTeamInput{
		TenantID:   req.GetTenantId(),
		ProjectID:  req.GetProjectId(),
		EmployeeID: stringValueToPointer(req.EmployeeId),
		Status:     statusPtr,
		Limit:      int(req.GetLimit()),
	}, func(members []*team.Member) {
		select {
		case snapshots <- members:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return toStatusError(err)
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot := <-snapshots:
			if err := stream.Send(&teampb.WatchTeamResponse{
				Members: toProtoTeamMembers(snapshot),
			}); err != nil {
				return err
			}
		}
	}
}

func toProtoTeamMembers(members []*team.Member) []*teampb.TeamMember {
	protos := make([]*teampb.TeamMember, 0, len(members))
	for _, m := range members {
		protos = append(protos, toProtoTeamMember(m))
	}
	return protos
}

func toProtoTeamMember(m *team.Member) *teampb.TeamMember {
	if m == nil {
		return nil
	}

	proto := &teampb.TeamMember{
		Id:         m.ID,
		TenantId:   m.TenantID,
		ProjectId:  m.ProjectID,
		EmployeeId: m.EmployeeID,
		Employee: &teampb.EmployeeSnapshot{
			Name:       m.Employee.Name,
			Email:      m.Employee.Email,
			AvatarUrl:  m.Employee.AvatarURL,
			Title:      m.Employee.Title,
			Department: m.Employee.Department,
		},
		ProjectName:      m.ProjectName,
		ProjectRole:      m.ProjectRole,
		Responsibilities: m.Responsibilities,
		Allocation:       int32(m.Allocation),
		HoursPerWeek:     int32(m.HoursPerWeek),
		SprintCapacity:   int32(m.SprintCapacity),
		StartDate:        wrapperspb.String(m.StartDate.Format(dateLayout)),
		EndDate:          timePointerToDateValue(m.EndDate),
		Status:           toMemberProtoStatus(m.Status),
		TasksAssigned:    int32(m.TasksAssigned),
		TasksCompleted:   int32(m.TasksCompleted),
		HoursLogged:      m.HoursLogged,
		PerformanceScore: pointerToInt32Value(m.PerformanceScore),
		Permissions:      m.Permissions,
		AssignedAt:       timestamppb.New(m.AssignedAt),
		AssignedBy:       m.AssignedBy,
		UpdatedAt:        timestamppb.New(m.UpdatedAt),
	}

	if m.LastActiveAt != nil {
		proto.LastActiveAt = timestamppb.New(*m.LastActiveAt)
	}

	return proto
}

func toMemberProtoStatus(status team.Status) teampb.MemberStatus {
	switch status {
	case team.StatusActive:
		return teampb.MemberStatus_MEMBER_STATUS_ACTIVE
	case team.StatusCompleted:
		return teampb.MemberStatus_MEMBER_STATUS_COMPLETED
	case team.StatusRemoved:
		return teampb.MemberStatus_MEMBER_STATUS_REMOVED
	default:
		return teampb.MemberStatus_MEMBER_STATUS_UNSPECIFIED
	}
}

func optionalMemberStatus(status teampb.MemberStatus) (*team.Status, error) {
	switch status {
	case teampb.MemberStatus_MEMBER_STATUS_UNSPECIFIED:
		return nil, nil
	case teampb.MemberStatus_MEMBER_STATUS_ACTIVE:
		s := team.StatusActive
		return &s, nil
	case teampb.MemberStatus_MEMBER_STATUS_COMPLETED:
		s := team.StatusCompleted
		return &s, nil
	case teampb.MemberStatus_MEMBER_STATUS_REMOVED:
		s := team.StatusRemoved
		return &s, nil
	default:
		return nil, team.ErrInvalidStatus
	}
}

func timePointerToDateValue(value *time.Time) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(value.Format(dateLayout))
}

func parseDateValue(value *wrapperspb.StringValue) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(value.GetValue())
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return &t, nil
}
