package handler

import (
	"context"

	employeepb "github.com/ogurasousui/staffhub/internal/adapters/grpc/gen/employee/v1"
	"github.com/ogurasousui/staffhub/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	employeepb.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// CreateEmployee は社員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *employeepb.CreateEmployeeRequest) (*employeepb.CreateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalEmployeeStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		TenantID:       req.GetTenantId(),
		ExternalUserID: req.GetExternalUserId(),
		FirstName:      req.GetFirstName(),
		LastName:       req.GetLastName(),
		Email:          stringValueToPointer(req.Email),
		Phone:          stringValueToPointer(req.Phone),
		Role:           req.GetRole(),
		Department:     req.GetDepartment(),
		Title:          req.GetTitle(),
		ManagerID:      req.GetManagerId(),
		AvatarURL:      req.GetAvatarUrl(),
		Status:         statusPtr,
		EmploymentType: req.GetEmploymentType(),
		WeeklyHours:    int(req.GetWeeklyHours()),
		HourlyRate:     doubleValueToPointer(req.HourlyRate),
		SprintCapacity: int32ValueToPointer(req.SprintCapacity),
		Skills:         req.GetSkills(),
		ExpertiseLevel: req.GetExpertiseLevel(),
		Certifications: req.GetCertifications(),
		ActorID:        req.GetActorId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.CreateEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// GetEmployee は社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *employeepb.GetEmployeeRequest) (*employeepb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{
		TenantID: req.GetTenantId(),
		ID:       req.GetId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// ListEmployees は社員の一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *employeepb.ListEmployeesRequest) (*employeepb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalEmployeeStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		TenantID:       req.GetTenantId(),
		Role:           stringValueToPointer(req.Role),
		Department:     stringValueToPointer(req.Department),
		Status:         statusPtr,
		ManagerID:      stringValueToPointer(req.ManagerId),
		Skill:          stringValueToPointer(req.Skill),
		ExpertiseLevel: stringValueToPointer(req.ExpertiseLevel),
		PageSize:       int(req.GetPageSize()),
		PageToken:      req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.ListEmployeesResponse{
		Employees:     toProtoEmployees(result.Employees),
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateEmployee は社員情報を部分更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *employeepb.UpdateEmployeeRequest) (*employeepb.UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalEmployeeStatus(req.GetStatus())
	if err != nil {
		return nil, toStatusError(err)
	}

	in := employee.UpdateEmployeeInput{
		TenantID:       req.GetTenantId(),
		ID:             req.GetId(),
		FirstName:      stringValueToPointer(req.FirstName),
		LastName:       stringValueToPointer(req.LastName),
		Email:          stringValueToPointer(req.Email),
		EmailSet:       req.GetEmailSet() || req.Email != nil,
		Phone:          stringValueToPointer(req.Phone),
		PhoneSet:       req.GetPhoneSet() || req.Phone != nil,
		Role:           stringValueToPointer(req.Role),
		Department:     stringValueToPointer(req.Department),
		Title:          stringValueToPointer(req.Title),
		ManagerID:      stringValueToPointer(req.ManagerId),
		AvatarURL:      stringValueToPointer(req.AvatarUrl),
		Status:         statusPtr,
		EmploymentType: stringValueToPointer(req.EmploymentType),
		WeeklyHours:    int32ValueToPointer(req.WeeklyHours),
		HourlyRate:     doubleValueToPointer(req.HourlyRate),
		HourlyRateSet:  req.GetHourlyRateSet() || req.HourlyRate != nil,
		SprintCapacity: int32ValueToPointer(req.SprintCapacity),
		SprintCapSet:   req.GetSprintCapacitySet() || req.SprintCapacity != nil,
		ExpertiseLevel: stringValueToPointer(req.ExpertiseLevel),
		ActorID:        req.GetActorId(),
	}

	if req.Skills != nil {
		in.Skills = req.Skills.GetValues()
		in.SkillsSet = true
	}
	if req.Certifications != nil {
		in.Certifications = req.Certifications.GetValues()
		in.CertsSet = true
	}

	updated, err := h.svc.UpdateEmployee(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.UpdateEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// TerminateEmployee は社員を在籍終了にします(論理削除)。
func (h *EmployeeGrpcHandler) TerminateEmployee(ctx context.Context, req *employeepb.TerminateEmployeeRequest) (*employeepb.TerminateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	terminated, err := h.svc.TerminateEmployee(ctx, employee.TerminateEmployeeInput{
		TenantID: req.GetTenantId(),
		ID:       req.GetId(),
		ActorID:  req.GetActorId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.TerminateEmployeeResponse{Employee: toProtoEmployee(terminated)}, nil
}

// WatchEmployees はフィルタに合致する社員一覧のスナップショットを配信し続けます。
func (h *EmployeeGrpcHandler) WatchEmployees(req *employeepb.WatchEmployeesRequest, stream employeepb.EmployeeService_WatchEmployeesServer) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	statusPtr, err := optionalEmployeeStatus(req.GetStatus())
	if err != nil {
		return toStatusError(err)
	}

	ctx := stream.Context()
	snapshots := make(chan []*employee.Employee, 4)

	cancel, err := h.svc.WatchEmployees(ctx, employee.WatchEmployeesInput{
		TenantID:   req.GetTenantId(),
		Role:       stringValueToPointer(req.Role),
		Department: stringValueToPointer(req.Department),
		Status:     statusPtr,
		ManagerID:  stringValueToPointer(req.ManagerId),
		Limit:      int(req.GetLimit()),
	}, func(employees []*employee.Employee) {
		select {
		case snapshots <- employees:
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
			if err := stream.Send(&employeepb.WatchEmployeesResponse{
				Employees: toProtoEmployees(snapshot),
			}); err != nil {
				return err
			}
		}
	}
}

func toProtoEmployees(employees []*employee.Employee) []*employeepb.Employee {
	protos := make([]*employeepb.Employee, 0, len(employees))
	for _, emp := range employees {
		protos = append(protos, toProtoEmployee(emp))
	}
	return protos
}

func toProtoEmployee(emp *employee.Employee) *employeepb.Employee {
	if emp == nil {
		return nil
	}

	return &employeepb.Employee{
		Id:             emp.ID,
		TenantId:       emp.TenantID,
		ExternalUserId: emp.ExternalUserID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          pointerToStringValue(emp.Email),
		Phone:          pointerToStringValue(emp.Phone),
		Role:           emp.Role,
		Department:     emp.Department,
		Title:          emp.Title,
		ManagerId:      emp.ManagerID,
		AvatarUrl:      emp.AvatarURL,
		Status:         toEmployeeProtoStatus(emp.Status),
		EmploymentType: emp.EmploymentType,
		WeeklyHours:    int32(emp.WeeklyHours),
		HourlyRate:     pointerToDoubleValue(emp.HourlyRate),
		SprintCapacity: pointerToInt32Value(emp.SprintCapacity),
		Skills:         emp.Skills,
		ExpertiseLevel: emp.ExpertiseLevel,
		Certifications: emp.Certifications,
		ActiveProjects: toProtoActiveProjects(emp.ActiveProjects),
		CreatedAt:      timestamppb.New(emp.CreatedAt),
		UpdatedAt:      timestamppb.New(emp.UpdatedAt),
		CreatedBy:      emp.CreatedBy,
		LastModifiedBy: emp.LastModifiedBy,
	}
}

func toProtoActiveProjects(projects []employee.ActiveProject) []*employeepb.ActiveProject {
	protos := make([]*employeepb.ActiveProject, 0, len(projects))
	for _, p := range projects {
		protos = append(protos, &employeepb.ActiveProject{
			ProjectId:   p.ProjectID,
			ProjectName: p.ProjectName,
			Role:        p.Role,
			Allocation:  int32(p.Allocation),
		})
	}
	return protos
}

func toEmployeeProtoStatus(status employee.Status) employeepb.EmployeeStatus {
	switch status {
	case employee.StatusActive:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_ACTIVE
	case employee.StatusOnLeave:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE
	case employee.StatusTerminated:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_TERMINATED
	default:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
	}
}

func optionalEmployeeStatus(status employeepb.EmployeeStatus) (*employee.Status, error) {
	switch status {
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED:
		return nil, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_ACTIVE:
		s := employee.StatusActive
		return &s, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE:
		s := employee.StatusOnLeave
		return &s, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_TERMINATED:
		s := employee.StatusTerminated
		return &s, nil
	default:
		return nil, employee.ErrInvalidStatus
	}
}

func stringValueToPointer(value *wrapperspb.StringValue) *string {
	if value == nil {
		return nil
	}
	v := value.GetValue()
	return &v
}

func pointerToStringValue(value *string) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(*value)
}

func doubleValueToPointer(value *wrapperspb.DoubleValue) *float64 {
	if value == nil {
		return nil
	}
	v := value.GetValue()
	return &v
}

func pointerToDoubleValue(value *float64) *wrapperspb.DoubleValue {
	if value == nil {
		return nil
	}
	return wrapperspb.Double(*value)
}

func int32ValueToPointer(value *wrapperspb.Int32Value) *int {
	if value == nil {
		return nil
	}
	v := int(value.GetValue())
	return &v
}

func pointerToInt32Value(value *int) *wrapperspb.Int32Value {
	if value == nil {
		return nil
	}
	return wrapperspb.Int32(int32(*value))
}
