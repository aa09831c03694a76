// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: team/v1/team.proto

package teamv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type MemberStatus int32

const (
	MemberStatus_MEMBER_STATUS_UNSPECIFIED MemberStatus = 0
	MemberStatus_MEMBER_STATUS_ACTIVE      MemberStatus = 1
	MemberStatus_MEMBER_STATUS_COMPLETED   MemberStatus = 2
	MemberStatus_MEMBER_STATUS_REMOVED     MemberStatus = 3
)

// Enum value maps for MemberStatus.
var (
	MemberStatus_name = map[int32]string{
		0: "MEMBER_STATUS_UNSPECIFIED",
		1: "MEMBER_STATUS_ACTIVE",
		2: "MEMBER_STATUS_COMPLETED",
		3: "MEMBER_STATUS_REMOVED",
	}
	MemberStatus_value = map[string]int32{
		"MEMBER_STATUS_UNSPECIFIED": 0,
		"MEMBER_STATUS_ACTIVE":      1,
		"MEMBER_STATUS_COMPLETED":   2,
		"MEMBER_STATUS_REMOVED":     3,
	}
)

func (x MemberStatus) Enum() *MemberStatus {
	p := new(MemberStatus)
	*p = x
	return p
}

func (x MemberStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MemberStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_team_v1_team_proto_enumTypes[0].Descriptor()
}

func (MemberStatus) Type() protoreflect.EnumType {
	return &file_team_v1_team_proto_enumTypes[0]
}

func (x MemberStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MemberStatus.Descriptor instead.
func (MemberStatus) EnumDescriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{0}
}

// EmployeeSnapshot is display data copied at assignment time. It does not
// track later directory edits.
type EmployeeSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	AvatarUrl     string                 `protobuf:"bytes,3,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Department    string                 `protobuf:"bytes,5,opt,name=department,proto3" json:"department,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmployeeSnapshot) Reset() {
	*x = EmployeeSnapshot{}
	mi := &file_team_v1_team_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmployeeSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmployeeSnapshot) ProtoMessage() {}

func (x *EmployeeSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmployeeSnapshot.ProtoReflect.Descriptor instead.
func (*EmployeeSnapshot) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{0}
}

func (x *EmployeeSnapshot) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *EmployeeSnapshot) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *EmployeeSnapshot) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *EmployeeSnapshot) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *EmployeeSnapshot) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

type TeamMember struct {
	state            protoimpl.MessageState  `protogen:"open.v1"`
	Id               string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId         string                  `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId        string                  `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	EmployeeId       string                  `protobuf:"bytes,4,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Employee         *EmployeeSnapshot       `protobuf:"bytes,5,opt,name=employee,proto3" json:"employee,omitempty"`
	ProjectName      string                  `protobuf:"bytes,6,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	ProjectRole      string                  `protobuf:"bytes,7,opt,name=project_role,json=projectRole,proto3" json:"project_role,omitempty"`
	Responsibilities []string                `protobuf:"bytes,8,rep,name=responsibilities,proto3" json:"responsibilities,omitempty"`
	Allocation       int32                   `protobuf:"varint,9,opt,name=allocation,proto3" json:"allocation,omitempty"`
	HoursPerWeek     int32                   `protobuf:"varint,10,opt,name=hours_per_week,json=hoursPerWeek,proto3" json:"hours_per_week,omitempty"`
	SprintCapacity   int32                   `protobuf:"varint,11,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	StartDate        *wrapperspb.StringValue `protobuf:"bytes,12,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate          *wrapperspb.StringValue `protobuf:"bytes,13,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Status           MemberStatus            `protobuf:"varint,14,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	TasksAssigned    int32                   `protobuf:"varint,15,opt,name=tasks_assigned,json=tasksAssigned,proto3" json:"tasks_assigned,omitempty"`
	TasksCompleted   int32                   `protobuf:"varint,16,opt,name=tasks_completed,json=tasksCompleted,proto3" json:"tasks_completed,omitempty"`
	HoursLogged      float64                 `protobuf:"fixed64,17,opt,name=hours_logged,json=hoursLogged,proto3" json:"hours_logged,omitempty"`
	PerformanceScore *wrapperspb.Int32Value  `protobuf:"bytes,18,opt,name=performance_score,json=performanceScore,proto3" json:"performance_score,omitempty"`
	Permissions      []string                `protobuf:"bytes,19,rep,name=permissions,proto3" json:"permissions,omitempty"`
	AssignedAt       *timestamppb.Timestamp  `protobuf:"bytes,20,opt,name=assigned_at,json=assignedAt,proto3" json:"assigned_at,omitempty"`
	AssignedBy       string                  `protobuf:"bytes,21,opt,name=assigned_by,json=assignedBy,proto3" json:"assigned_by,omitempty"`
	UpdatedAt        *timestamppb.Timestamp  `protobuf:"bytes,22,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	LastActiveAt     *timestamppb.Timestamp  `protobuf:"bytes,23,opt,name=last_active_at,json=lastActiveAt,proto3" json:"last_active_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *TeamMember) Reset() {
	*x = TeamMember{}
	mi := &file_team_v1_team_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TeamMember) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TeamMember) ProtoMessage() {}

func (x *TeamMember) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TeamMember.ProtoReflect.Descriptor instead.
func (*TeamMember) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{1}
}

func (x *TeamMember) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TeamMember) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *TeamMember) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *TeamMember) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *TeamMember) GetEmployee() *EmployeeSnapshot {
	if x != nil {
		return x.Employee
	}
	return nil
}

func (x *TeamMember) GetProjectName() string {
	if x != nil {
		return x.ProjectName
	}
	return ""
}

func (x *TeamMember) GetProjectRole() string {
	if x != nil {
		return x.ProjectRole
	}
	return ""
}

func (x *TeamMember) GetResponsibilities() []string {
	if x != nil {
		return x.Responsibilities
	}
	return nil
}

func (x *TeamMember) GetAllocation() int32 {
	if x != nil {
		return x.Allocation
	}
	return 0
}

func (x *TeamMember) GetHoursPerWeek() int32 {
	if x != nil {
		return x.HoursPerWeek
	}
	return 0
}

func (x *TeamMember) GetSprintCapacity() int32 {
	if x != nil {
		return x.SprintCapacity
	}
	return 0
}

func (x *TeamMember) GetStartDate() *wrapperspb.StringValue {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *TeamMember) GetEndDate() *wrapperspb.StringValue {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *TeamMember) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

func (x *TeamMember) GetTasksAssigned() int32 {
	if x != nil {
		return x.TasksAssigned
	}
	return 0
}

func (x *TeamMember) GetTasksCompleted() int32 {
	if x != nil {
		return x.TasksCompleted
	}
	return 0
}

func (x *TeamMember) GetHoursLogged() float64 {
	if x != nil {
		return x.HoursLogged
	}
	return 0
}

func (x *TeamMember) GetPerformanceScore() *wrapperspb.Int32Value {
	if x != nil {
		return x.PerformanceScore
	}
	return nil
}

func (x *TeamMember) GetPermissions() []string {
	if x != nil {
		return x.Permissions
	}
	return nil
}

func (x *TeamMember) GetAssignedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.AssignedAt
	}
	return nil
}

func (x *TeamMember) GetAssignedBy() string {
	if x != nil {
		return x.AssignedBy
	}
	return ""
}

func (x *TeamMember) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *TeamMember) GetLastActiveAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActiveAt
	}
	return nil
}

type StringList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []string               `protobuf:"bytes,1,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StringList) Reset() {
	*x = StringList{}
	mi := &file_team_v1_team_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StringList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StringList) ProtoMessage() {}

func (x *StringList) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StringList.ProtoReflect.Descriptor instead.
func (*StringList) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{2}
}

func (x *StringList) GetValues() []string {
	if x != nil {
		return x.Values
	}
	return nil
}

type AddMemberRequest struct {
	state            protoimpl.MessageState  `protogen:"open.v1"`
	TenantId         string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId        string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	EmployeeId       string                  `protobuf:"bytes,3,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	ProjectRole      string                  `protobuf:"bytes,4,opt,name=project_role,json=projectRole,proto3" json:"project_role,omitempty"`
	Responsibilities []string                `protobuf:"bytes,5,rep,name=responsibilities,proto3" json:"responsibilities,omitempty"`
	Allocation       int32                   `protobuf:"varint,6,opt,name=allocation,proto3" json:"allocation,omitempty"`
	HoursPerWeek     int32                   `protobuf:"varint,7,opt,name=hours_per_week,json=hoursPerWeek,proto3" json:"hours_per_week,omitempty"`
	SprintCapacity   int32                   `protobuf:"varint,8,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	StartDate        *wrapperspb.StringValue `protobuf:"bytes,9,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate          *wrapperspb.StringValue `protobuf:"bytes,10,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Status           MemberStatus            `protobuf:"varint,11,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	Permissions      []string                `protobuf:"bytes,12,rep,name=permissions,proto3" json:"permissions,omitempty"`
	ActorId          string                  `protobuf:"bytes,13,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AddMemberRequest) Reset() {
	*x = AddMemberRequest{}
	mi := &file_team_v1_team_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddMemberRequest) ProtoMessage() {}

func (x *AddMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddMemberRequest.ProtoReflect.Descriptor instead.
func (*AddMemberRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{3}
}

func (x *AddMemberRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *AddMemberRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AddMemberRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *AddMemberRequest) GetProjectRole() string {
	if x != nil {
		return x.ProjectRole
	}
	return ""
}

func (x *AddMemberRequest) GetResponsibilities() []string {
	if x != nil {
		return x.Responsibilities
	}
	return nil
}

func (x *AddMemberRequest) GetAllocation() int32 {
	if x != nil {
		return x.Allocation
	}
	return 0
}

func (x *AddMemberRequest) GetHoursPerWeek() int32 {
	if x != nil {
		return x.HoursPerWeek
	}
	return 0
}

func (x *AddMemberRequest) GetSprintCapacity() int32 {
	if x != nil {
		return x.SprintCapacity
	}
	return 0
}

func (x *AddMemberRequest) GetStartDate() *wrapperspb.StringValue {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *AddMemberRequest) GetEndDate() *wrapperspb.StringValue {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *AddMemberRequest) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

func (x *AddMemberRequest) GetPermissions() []string {
	if x != nil {
		return x.Permissions
	}
	return nil
}

func (x *AddMemberRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type AddMemberResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Member *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	// Set when the member was persisted but the employee summary resync
	// failed. The summary heals on the next allocation-affecting change.
	SummarySyncFailed bool `protobuf:"varint,2,opt,name=summary_sync_failed,json=summarySyncFailed,proto3" json:"summary_sync_failed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *AddMemberResponse) Reset() {
	*x = AddMemberResponse{}
	mi := &file_team_v1_team_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddMemberResponse) ProtoMessage() {}

func (x *AddMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddMemberResponse.ProtoReflect.Descriptor instead.
func (*AddMemberResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{4}
}

func (x *AddMemberResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *AddMemberResponse) GetSummarySyncFailed() bool {
	if x != nil {
		return x.SummarySyncFailed
	}
	return false
}

type GetMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMemberRequest) Reset() {
	*x = GetMemberRequest{}
	mi := &file_team_v1_team_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMemberRequest) ProtoMessage() {}

func (x *GetMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMemberRequest.ProtoReflect.Descriptor instead.
func (*GetMemberRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{5}
}

func (x *GetMemberRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *GetMemberRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *GetMemberRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type GetMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMemberResponse) Reset() {
	*x = GetMemberResponse{}
	mi := &file_team_v1_team_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMemberResponse) ProtoMessage() {}

func (x *GetMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMemberResponse.ProtoReflect.Descriptor instead.
func (*GetMemberResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{6}
}

func (x *GetMemberResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

type ListMembersRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	EmployeeId    *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Status        MemberStatus            `protobuf:"varint,4,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	Limit         int32                   `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMembersRequest) Reset() {
	*x = ListMembersRequest{}
	mi := &file_team_v1_team_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMembersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMembersRequest) ProtoMessage() {}

func (x *ListMembersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMembersRequest.ProtoReflect.Descriptor instead.
func (*ListMembersRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{7}
}

func (x *ListMembersRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ListMembersRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ListMembersRequest) GetEmployeeId() *wrapperspb.StringValue {
	if x != nil {
		return x.EmployeeId
	}
	return nil
}

func (x *ListMembersRequest) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

func (x *ListMembersRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListMembersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*TeamMember          `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMembersResponse) Reset() {
	*x = ListMembersResponse{}
	mi := &file_team_v1_team_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMembersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMembersResponse) ProtoMessage() {}

func (x *ListMembersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMembersResponse.ProtoReflect.Descriptor instead.
func (*ListMembersResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{8}
}

func (x *ListMembersResponse) GetMembers() []*TeamMember {
	if x != nil {
		return x.Members
	}
	return nil
}

type UpdateMemberRequest struct {
	state               protoimpl.MessageState  `protogen:"open.v1"`
	TenantId            string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId           string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId            string                  `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	ProjectRole         *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=project_role,json=projectRole,proto3" json:"project_role,omitempty"`
	Responsibilities    *StringList             `protobuf:"bytes,5,opt,name=responsibilities,proto3" json:"responsibilities,omitempty"`
	Allocation          *wrapperspb.Int32Value  `protobuf:"bytes,6,opt,name=allocation,proto3" json:"allocation,omitempty"`
	HoursPerWeek        *wrapperspb.Int32Value  `protobuf:"bytes,7,opt,name=hours_per_week,json=hoursPerWeek,proto3" json:"hours_per_week,omitempty"`
	SprintCapacity      *wrapperspb.Int32Value  `protobuf:"bytes,8,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	StartDate           *wrapperspb.StringValue `protobuf:"bytes,9,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate             *wrapperspb.StringValue `protobuf:"bytes,10,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	EndDateSet          bool                    `protobuf:"varint,11,opt,name=end_date_set,json=endDateSet,proto3" json:"end_date_set,omitempty"`
	PerformanceScore    *wrapperspb.Int32Value  `protobuf:"bytes,12,opt,name=performance_score,json=performanceScore,proto3" json:"performance_score,omitempty"`
	PerformanceScoreSet bool                    `protobuf:"varint,13,opt,name=performance_score_set,json=performanceScoreSet,proto3" json:"performance_score_set,omitempty"`
	Permissions         *StringList             `protobuf:"bytes,14,opt,name=permissions,proto3" json:"permissions,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *UpdateMemberRequest) Reset() {
	*x = UpdateMemberRequest{}
	mi := &file_team_v1_team_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMemberRequest) ProtoMessage() {}

func (x *UpdateMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMemberRequest.ProtoReflect.Descriptor instead.
func (*UpdateMemberRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateMemberRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *UpdateMemberRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *UpdateMemberRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *UpdateMemberRequest) GetProjectRole() *wrapperspb.StringValue {
	if x != nil {
		return x.ProjectRole
	}
	return nil
}

func (x *UpdateMemberRequest) GetResponsibilities() *StringList {
	if x != nil {
		return x.Responsibilities
	}
	return nil
}

func (x *UpdateMemberRequest) GetAllocation() *wrapperspb.Int32Value {
	if x != nil {
		return x.Allocation
	}
	return nil
}

func (x *UpdateMemberRequest) GetHoursPerWeek() *wrapperspb.Int32Value {
	if x != nil {
		return x.HoursPerWeek
	}
	return nil
}

func (x *UpdateMemberRequest) GetSprintCapacity() *wrapperspb.Int32Value {
	if x != nil {
		return x.SprintCapacity
	}
	return nil
}

func (x *UpdateMemberRequest) GetStartDate() *wrapperspb.StringValue {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *UpdateMemberRequest) GetEndDate() *wrapperspb.StringValue {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *UpdateMemberRequest) GetEndDateSet() bool {
	if x != nil {
		return x.EndDateSet
	}
	return false
}

func (x *UpdateMemberRequest) GetPerformanceScore() *wrapperspb.Int32Value {
	if x != nil {
		return x.PerformanceScore
	}
	return nil
}

func (x *UpdateMemberRequest) GetPerformanceScoreSet() bool {
	if x != nil {
		return x.PerformanceScoreSet
	}
	return false
}

func (x *UpdateMemberRequest) GetPermissions() *StringList {
	if x != nil {
		return x.Permissions
	}
	return nil
}

type UpdateMemberResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Member            *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	SummarySyncFailed bool                   `protobuf:"varint,2,opt,name=summary_sync_failed,json=summarySyncFailed,proto3" json:"summary_sync_failed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateMemberResponse) Reset() {
	*x = UpdateMemberResponse{}
	mi := &file_team_v1_team_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMemberResponse) ProtoMessage() {}

func (x *UpdateMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMemberResponse.ProtoReflect.Descriptor instead.
func (*UpdateMemberResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateMemberResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *UpdateMemberResponse) GetSummarySyncFailed() bool {
	if x != nil {
		return x.SummarySyncFailed
	}
	return false
}

type UpdateMemberStatusRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId      string                  `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	Status        MemberStatus            `protobuf:"varint,4,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	EndDate       *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMemberStatusRequest) Reset() {
	*x = UpdateMemberStatusRequest{}
	mi := &file_team_v1_team_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMemberStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMemberStatusRequest) ProtoMessage() {}

func (x *UpdateMemberStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMemberStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateMemberStatusRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateMemberStatusRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *UpdateMemberStatusRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *UpdateMemberStatusRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *UpdateMemberStatusRequest) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

func (x *UpdateMemberStatusRequest) GetEndDate() *wrapperspb.StringValue {
	if x != nil {
		return x.EndDate
	}
	return nil
}

type UpdateMemberStatusResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Member            *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	SummarySyncFailed bool                   `protobuf:"varint,2,opt,name=summary_sync_failed,json=summarySyncFailed,proto3" json:"summary_sync_failed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateMemberStatusResponse) Reset() {
	*x = UpdateMemberStatusResponse{}
	mi := &file_team_v1_team_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMemberStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMemberStatusResponse) ProtoMessage() {}

func (x *UpdateMemberStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMemberStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateMemberStatusResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateMemberStatusResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *UpdateMemberStatusResponse) GetSummarySyncFailed() bool {
	if x != nil {
		return x.SummarySyncFailed
	}
	return false
}

type SetTaskCountsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TenantId       string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId      string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId       string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	TasksAssigned  *wrapperspb.Int32Value `protobuf:"bytes,4,opt,name=tasks_assigned,json=tasksAssigned,proto3" json:"tasks_assigned,omitempty"`
	TasksCompleted *wrapperspb.Int32Value `protobuf:"bytes,5,opt,name=tasks_completed,json=tasksCompleted,proto3" json:"tasks_completed,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SetTaskCountsRequest) Reset() {
	*x = SetTaskCountsRequest{}
	mi := &file_team_v1_team_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskCountsRequest) ProtoMessage() {}

func (x *SetTaskCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskCountsRequest.ProtoReflect.Descriptor instead.
func (*SetTaskCountsRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{13}
}

func (x *SetTaskCountsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *SetTaskCountsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *SetTaskCountsRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *SetTaskCountsRequest) GetTasksAssigned() *wrapperspb.Int32Value {
	if x != nil {
		return x.TasksAssigned
	}
	return nil
}

func (x *SetTaskCountsRequest) GetTasksCompleted() *wrapperspb.Int32Value {
	if x != nil {
		return x.TasksCompleted
	}
	return nil
}

type SetTaskCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTaskCountsResponse) Reset() {
	*x = SetTaskCountsResponse{}
	mi := &file_team_v1_team_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskCountsResponse) ProtoMessage() {}

func (x *SetTaskCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskCountsResponse.ProtoReflect.Descriptor instead.
func (*SetTaskCountsResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{14}
}

func (x *SetTaskCountsResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

type LogHoursRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	Hours         float64                `protobuf:"fixed64,4,opt,name=hours,proto3" json:"hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogHoursRequest) Reset() {
	*x = LogHoursRequest{}
	mi := &file_team_v1_team_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogHoursRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogHoursRequest) ProtoMessage() {}

func (x *LogHoursRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogHoursRequest.ProtoReflect.Descriptor instead.
func (*LogHoursRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{15}
}

func (x *LogHoursRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *LogHoursRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *LogHoursRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *LogHoursRequest) GetHours() float64 {
	if x != nil {
		return x.Hours
	}
	return 0
}

type LogHoursResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *TeamMember            `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogHoursResponse) Reset() {
	*x = LogHoursResponse{}
	mi := &file_team_v1_team_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogHoursResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogHoursResponse) ProtoMessage() {}

func (x *LogHoursResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogHoursResponse.ProtoReflect.Descriptor instead.
func (*LogHoursResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{16}
}

func (x *LogHoursResponse) GetMember() *TeamMember {
	if x != nil {
		return x.Member
	}
	return nil
}

type RemoveMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveMemberRequest) Reset() {
	*x = RemoveMemberRequest{}
	mi := &file_team_v1_team_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveMemberRequest) ProtoMessage() {}

func (x *RemoveMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveMemberRequest.ProtoReflect.Descriptor instead.
func (*RemoveMemberRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{17}
}

func (x *RemoveMemberRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *RemoveMemberRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *RemoveMemberRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type RemoveMemberResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	SummarySyncFailed bool                   `protobuf:"varint,1,opt,name=summary_sync_failed,json=summarySyncFailed,proto3" json:"summary_sync_failed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RemoveMemberResponse) Reset() {
	*x = RemoveMemberResponse{}
	mi := &file_team_v1_team_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveMemberResponse) ProtoMessage() {}

func (x *RemoveMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveMemberResponse.ProtoReflect.Descriptor instead.
func (*RemoveMemberResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{18}
}

func (x *RemoveMemberResponse) GetSummarySyncFailed() bool {
	if x != nil {
		return x.SummarySyncFailed
	}
	return false
}

type GetEmployeeProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Status        MemberStatus           `protobuf:"varint,3,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeProjectsRequest) Reset() {
	*x = GetEmployeeProjectsRequest{}
	mi := &file_team_v1_team_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeProjectsRequest) ProtoMessage() {}

func (x *GetEmployeeProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeProjectsRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeProjectsRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{19}
}

func (x *GetEmployeeProjectsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *GetEmployeeProjectsRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *GetEmployeeProjectsRequest) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

type GetEmployeeProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*TeamMember          `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeProjectsResponse) Reset() {
	*x = GetEmployeeProjectsResponse{}
	mi := &file_team_v1_team_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeProjectsResponse) ProtoMessage() {}

func (x *GetEmployeeProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeProjectsResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeProjectsResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{20}
}

func (x *GetEmployeeProjectsResponse) GetMembers() []*TeamMember {
	if x != nil {
		return x.Members
	}
	return nil
}

type CheckAvailabilityRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TenantId           string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	EmployeeId         string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	RequiredAllocation int32                  `protobuf:"varint,3,opt,name=required_allocation,json=requiredAllocation,proto3" json:"required_allocation,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CheckAvailabilityRequest) Reset() {
	*x = CheckAvailabilityRequest{}
	mi := &file_team_v1_team_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAvailabilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAvailabilityRequest) ProtoMessage() {}

func (x *CheckAvailabilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAvailabilityRequest.ProtoReflect.Descriptor instead.
func (*CheckAvailabilityRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{21}
}

func (x *CheckAvailabilityRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *CheckAvailabilityRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CheckAvailabilityRequest) GetRequiredAllocation() int32 {
	if x != nil {
		return x.RequiredAllocation
	}
	return 0
}

type CheckAvailabilityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Available     bool                   `protobuf:"varint,1,opt,name=available,proto3" json:"available,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckAvailabilityResponse) Reset() {
	*x = CheckAvailabilityResponse{}
	mi := &file_team_v1_team_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAvailabilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAvailabilityResponse) ProtoMessage() {}

func (x *CheckAvailabilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAvailabilityResponse.ProtoReflect.Descriptor instead.
func (*CheckAvailabilityResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{22}
}

func (x *CheckAvailabilityResponse) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

type WatchTeamRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ProjectId     string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	EmployeeId    *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Status        MemberStatus            `protobuf:"varint,4,opt,name=status,proto3,enum=staffhub.team.v1.MemberStatus" json:"status,omitempty"`
	Limit         int32                   `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchTeamRequest) Reset() {
	*x = WatchTeamRequest{}
	mi := &file_team_v1_team_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchTeamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchTeamRequest) ProtoMessage() {}

func (x *WatchTeamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchTeamRequest.ProtoReflect.Descriptor instead.
func (*WatchTeamRequest) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{23}
}

func (x *WatchTeamRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *WatchTeamRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *WatchTeamRequest) GetEmployeeId() *wrapperspb.StringValue {
	if x != nil {
		return x.EmployeeId
	}
	return nil
}

func (x *WatchTeamRequest) GetStatus() MemberStatus {
	if x != nil {
		return x.Status
	}
	return MemberStatus_MEMBER_STATUS_UNSPECIFIED
}

func (x *WatchTeamRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

// Each message carries the full current snapshot, not a diff.
type WatchTeamResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*TeamMember          `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchTeamResponse) Reset() {
	*x = WatchTeamResponse{}
	mi := &file_team_v1_team_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchTeamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchTeamResponse) ProtoMessage() {}

func (x *WatchTeamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_team_v1_team_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchTeamResponse.ProtoReflect.Descriptor instead.
func (*WatchTeamResponse) Descriptor() ([]byte, []int) {
	return file_team_v1_team_proto_rawDescGZIP(), []int{24}
}

func (x *WatchTeamResponse) GetMembers() []*TeamMember {
	if x != nil {
		return x.Members
	}
	return nil
}

var File_team_v1_team_proto protoreflect.FileDescriptor

const file_team_v1_team_proto_rawDesc = "" +
	"\n" +
	"\x12team/v1/team.proto\x12\x10staffhub.team.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x91\x01\n" +
	"\x10EmployeeSnapshot\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x03 \x01(\tR\tavatarUrl\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x1e\n" +
	"\n" +
	"department\x18\x05 \x01(\tR\n" +
	"department\"\x82\b\n" +
	"\n" +
	"TeamMember\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x03 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vemployee_id\x18\x04 \x01(\tR\n" +
	"employeeId\x12>\n" +
	"\bemployee\x18\x05 \x01(\v2\".staffhub.team.v1.EmployeeSnapshotR\bemployee\x12!\n" +
	"\fproject_name\x18\x06 \x01(\tR\vprojectName\x12!\n" +
	"\fproject_role\x18\a \x01(\tR\vprojectRole\x12*\n" +
	"\x10responsibilities\x18\b \x03(\tR\x10responsibilities\x12\x1e\n" +
	"\n" +
	"allocation\x18\t \x01(\x05R\n" +
	"allocation\x12$\n" +
	"\x0ehours_per_week\x18\n" +
	" \x01(\x05R\fhoursPerWeek\x12'\n" +
	"\x0fsprint_capacity\x18\v \x01(\x05R\x0esprintCapacity\x12;\n" +
	"\n" +
	"start_date\x18\f \x01(\v2\x1c.google.protobuf.StringValueR\tstartDate\x127\n" +
	"\bend_date\x18\r \x01(\v2\x1c.google.protobuf.StringValueR\aendDate\x126\n" +
	"\x06status\x18\x0e \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\x12%\n" +
	"\x0etasks_assigned\x18\x0f \x01(\x05R\rtasksAssigned\x12'\n" +
	"\x0ftasks_completed\x18\x10 \x01(\x05R\x0etasksCompleted\x12!\n" +
	"\fhours_logged\x18\x11 \x01(\x01R\vhoursLogged\x12H\n" +
	"\x11performance_score\x18\x12 \x01(\v2\x1b.google.protobuf.Int32ValueR\x10performanceScore\x12 \n" +
	"\vpermissions\x18\x13 \x03(\tR\vpermissions\x12;\n" +
	"\vassigned_at\x18\x14 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"assignedAt\x12\x1f\n" +
	"\vassigned_by\x18\x15 \x01(\tR\n" +
	"assignedBy\x129\n" +
	"\n" +
	"updated_at\x18\x16 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12@\n" +
	"\x0elast_active_at\x18\x17 \x01(\v2\x1a.google.protobuf.TimestampR\flastActiveAt\"$\n" +
	"\n" +
	"StringList\x12\x16\n" +
	"\x06values\x18\x01 \x03(\tR\x06values\"\x98\x04\n" +
	"\x10AddMemberRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vemployee_id\x18\x03 \x01(\tR\n" +
	"employeeId\x12!\n" +
	"\fproject_role\x18\x04 \x01(\tR\vprojectRole\x12*\n" +
	"\x10responsibilities\x18\x05 \x03(\tR\x10responsibilities\x12\x1e\n" +
	"\n" +
	"allocation\x18\x06 \x01(\x05R\n" +
	"allocation\x12$\n" +
	"\x0ehours_per_week\x18\a \x01(\x05R\fhoursPerWeek\x12'\n" +
	"\x0fsprint_capacity\x18\b \x01(\x05R\x0esprintCapacity\x12;\n" +
	"\n" +
	"start_date\x18\t \x01(\v2\x1c.google.protobuf.StringValueR\tstartDate\x127\n" +
	"\bend_date\x18\n" +
	" \x01(\v2\x1c.google.protobuf.StringValueR\aendDate\x126\n" +
	"\x06status\x18\v \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\x12 \n" +
	"\vpermissions\x18\f \x03(\tR\vpermissions\x12\x19\n" +
	"\bactor_id\x18\r \x01(\tR\aactorId\"y\n" +
	"\x11AddMemberResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\x12.\n" +
	"\x13summary_sync_failed\x18\x02 \x01(\bR\x11summarySyncFailed\"k\n" +
	"\x10GetMemberRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\"I\n" +
	"\x11GetMemberResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\"\xdd\x01\n" +
	"\x12ListMembersRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12=\n" +
	"\vemployee_id\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"employeeId\x126\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\"M\n" +
	"\x13ListMembersResponse\x126\n" +
	"\amembers\x18\x01 \x03(\v2\x1c.staffhub.team.v1.TeamMemberR\amembers\"\x95\x06\n" +
	"\x13UpdateMemberRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x12?\n" +
	"\fproject_role\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\vprojectRole\x12H\n" +
	"\x10responsibilities\x18\x05 \x01(\v2\x1c.staffhub.team.v1.StringListR\x10responsibilities\x12;\n" +
	"\n" +
	"allocation\x18\x06 \x01(\v2\x1b.google.protobuf.Int32ValueR\n" +
	"allocation\x12A\n" +
	"\x0ehours_per_week\x18\a \x01(\v2\x1b.google.protobuf.Int32ValueR\fhoursPerWeek\x12D\n" +
	"\x0fsprint_capacity\x18\b \x01(\v2\x1b.google.protobuf.Int32ValueR\x0esprintCapacity\x12;\n" +
	"\n" +
	"start_date\x18\t \x01(\v2\x1c.google.protobuf.StringValueR\tstartDate\x127\n" +
	"\bend_date\x18\n" +
	" \x01(\v2\x1c.google.protobuf.StringValueR\aendDate\x12 \n" +
	"\fend_date_set\x18\v \x01(\bR\n" +
	"endDateSet\x12H\n" +
	"\x11performance_score\x18\f \x01(\v2\x1b.google.protobuf.Int32ValueR\x10performanceScore\x122\n" +
	"\x15performance_score_set\x18\r \x01(\bR\x13performanceScoreSet\x12>\n" +
	"\vpermissions\x18\x0e \x01(\v2\x1c.staffhub.team.v1.StringListR\vpermissions\"|\n" +
	"\x14UpdateMemberResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\x12.\n" +
	"\x13summary_sync_failed\x18\x02 \x01(\bR\x11summarySyncFailed\"\xe5\x01\n" +
	"\x19UpdateMemberStatusRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x126\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\x127\n" +
	"\bend_date\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\aendDate\"\x82\x01\n" +
	"\x1aUpdateMemberStatusResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\x12.\n" +
	"\x13summary_sync_failed\x18\x02 \x01(\bR\x11summarySyncFailed\"\xf9\x01\n" +
	"\x14SetTaskCountsRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x12B\n" +
	"\x0etasks_assigned\x18\x04 \x01(\v2\x1b.google.protobuf.Int32ValueR\rtasksAssigned\x12D\n" +
	"\x0ftasks_completed\x18\x05 \x01(\v2\x1b.google.protobuf.Int32ValueR\x0etasksCompleted\"M\n" +
	"\x15SetTaskCountsResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\"\x80\x01\n" +
	"\x0fLogHoursRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x12\x14\n" +
	"\x05hours\x18\x04 \x01(\x01R\x05hours\"H\n" +
	"\x10LogHoursResponse\x124\n" +
	"\x06member\x18\x01 \x01(\v2\x1c.staffhub.team.v1.TeamMemberR\x06member\"n\n" +
	"\x13RemoveMemberRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\"F\n" +
	"\x14RemoveMemberResponse\x12.\n" +
	"\x13summary_sync_failed\x18\x01 \x01(\bR\x11summarySyncFailed\"\x92\x01\n" +
	"\x1aGetEmployeeProjectsRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x126\n" +
	"\x06status\x18\x03 \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\"U\n" +
	"\x1bGetEmployeeProjectsResponse\x126\n" +
	"\amembers\x18\x01 \x03(\v2\x1c.staffhub.team.v1.TeamMemberR\amembers\"\x89\x01\n" +
	"\x18CheckAvailabilityRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12/\n" +
	"\x13required_allocation\x18\x03 \x01(\x05R\x12requiredAllocation\"9\n" +
	"\x19CheckAvailabilityResponse\x12\x1c\n" +
	"\tavailable\x18\x01 \x01(\bR\tavailable\"\xdb\x01\n" +
	"\x10WatchTeamRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12=\n" +
	"\vemployee_id\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"employeeId\x126\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1e.staffhub.team.v1.MemberStatusR\x06status\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\"K\n" +
	"\x11WatchTeamResponse\x126\n" +
	"\amembers\x18\x01 \x03(\v2\x1c.staffhub.team.v1.TeamMemberR\amembers*\x7f\n" +
	"\fMemberStatus\x12\x1d\n" +
	"\x19MEMBER_STATUS_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14MEMBER_STATUS_ACTIVE\x10\x01\x12\x1b\n" +
	"\x17MEMBER_STATUS_COMPLETED\x10\x02\x12\x19\n" +
	"\x15MEMBER_STATUS_REMOVED\x10\x032\xb3\b\n" +
	"\vTeamService\x12T\n" +
	"\tAddMember\x12\".staffhub.team.v1.AddMemberRequest\x1a#.staffhub.team.v1.AddMemberResponse\x12T\n" +
	"\tGetMember\x12\".staffhub.team.v1.GetMemberRequest\x1a#.staffhub.team.v1.GetMemberResponse\x12Z\n" +
	"\vListMembers\x12$.staffhub.team.v1.ListMembersRequest\x1a%.staffhub.team.v1.ListMembersResponse\x12]\n" +
	"\fUpdateMember\x12%.staffhub.team.v1.UpdateMemberRequest\x1a&.staffhub.team.v1.UpdateMemberResponse\x12o\n" +
	"\x12UpdateMemberStatus\x12+.staffhub.team.v1.UpdateMemberStatusRequest\x1a,.staffhub.team.v1.UpdateMemberStatusResponse\x12`\n" +
	"\rSetTaskCounts\x12&.staffhub.team.v1.SetTaskCountsRequest\x1a'.staffhub.team.v1.SetTaskCountsResponse\x12Q\n" +
	"\bLogHours\x12!.staffhub.team.v1.LogHoursRequest\x1a\".staffhub.team.v1.LogHoursResponse\x12]\n" +
	"\fRemoveMember\x12%.staffhub.team.v1.RemoveMemberRequest\x1a&.staffhub.team.v1.RemoveMemberResponse\x12r\n" +
	"\x13GetEmployeeProjects\x12,.staffhub.team.v1.GetEmployeeProjectsRequest\x1a-.staffhub.team.v1.GetEmployeeProjectsResponse\x12l\n" +
	"\x11CheckAvailability\x12*.staffhub.team.v1.CheckAvailabilityRequest\x1a+.staffhub.team.v1.CheckAvailabilityResponse\x12V\n" +
	"\tWatchTeam\x12\".staffhub.team.v1.WatchTeamRequest\x1a#.staffhub.team.v1.WatchTeamResponse0\x01BKZIgithub.com/ogurasousui/staffhub/internal/adapters/grpc/gen/team/v1;teamv1b\x06proto3"

var (
	file_team_v1_team_proto_rawDescOnce sync.Once
	file_team_v1_team_proto_rawDescData []byte
)

func file_team_v1_team_proto_rawDescGZIP() []byte {
	file_team_v1_team_proto_rawDescOnce.Do(func() {
		file_team_v1_team_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_team_v1_team_proto_rawDesc), len(file_team_v1_team_proto_rawDesc)))
	})
	return file_team_v1_team_proto_rawDescData
}

var file_team_v1_team_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_team_v1_team_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_team_v1_team_proto_goTypes = []any{
	(MemberStatus)(0),                   // 0: staffhub.team.v1.MemberStatus
	(*EmployeeSnapshot)(nil),            // 1: staffhub.team.v1.EmployeeSnapshot
	(*TeamMember)(nil),                  // 2: staffhub.team.v1.TeamMember
	(*StringList)(nil),                  // 3: staffhub.team.v1.StringList
	(*AddMemberRequest)(nil),            // 4: staffhub.team.v1.AddMemberRequest
	(*AddMemberResponse)(nil),           // 5: staffhub.team.v1.AddMemberResponse
	(*GetMemberRequest)(nil),            // 6: staffhub.team.v1.GetMemberRequest
	(*GetMemberResponse)(nil),           // 7: staffhub.team.v1.GetMemberResponse
	(*ListMembersRequest)(nil),          // 8: staffhub.team.v1.ListMembersRequest
	(*ListMembersResponse)(nil),         // 9: staffhub.team.v1.ListMembersResponse
	(*UpdateMemberRequest)(nil),         // 10: staffhub.team.v1.UpdateMemberRequest
	(*UpdateMemberResponse)(nil),        // 11: staffhub.team.v1.UpdateMemberResponse
	(*UpdateMemberStatusRequest)(nil),   // 12: staffhub.team.v1.UpdateMemberStatusRequest
	(*UpdateMemberStatusResponse)(nil),  // 13: staffhub.team.v1.UpdateMemberStatusResponse
	(*SetTaskCountsRequest)(nil),        // 14: staffhub.team.v1.SetTaskCountsRequest
	(*SetTaskCountsResponse)(nil),       // 15: staffhub.team.v1.SetTaskCountsResponse
	(*LogHoursRequest)(nil),             // 16: staffhub.team.v1.LogHoursRequest
	(*LogHoursResponse)(nil),            // 17: staffhub.team.v1.LogHoursResponse
	(*RemoveMemberRequest)(nil),         // 18: staffhub.team.v1.RemoveMemberRequest
	(*RemoveMemberResponse)(nil),        // 19: staffhub.team.v1.RemoveMemberResponse
	(*GetEmployeeProjectsRequest)(nil),  // 20: staffhub.team.v1.GetEmployeeProjectsRequest
	(*GetEmployeeProjectsResponse)(nil), // 21: staffhub.team.v1.GetEmployeeProjectsResponse
	(*CheckAvailabilityRequest)(nil),    // 22: staffhub.team.v1.CheckAvailabilityRequest
	(*CheckAvailabilityResponse)(nil),   // 23: staffhub.team.v1.CheckAvailabilityResponse
	(*WatchTeamRequest)(nil),            // 24: staffhub.team.v1.WatchTeamRequest
	(*WatchTeamResponse)(nil),           // 25: staffhub.team.v1.WatchTeamResponse
	(*wrapperspb.StringValue)(nil),      // 26: google.protobuf.StringValue
	(*wrapperspb.Int32Value)(nil),       // 27: google.protobuf.Int32Value
	(*timestamppb.Timestamp)(nil),       // 28: google.protobuf.Timestamp
}
var file_team_v1_team_proto_depIdxs = []int32{
	1,  // 0: staffhub.team.v1.TeamMember.employee:type_name -> staffhub.team.v1.EmployeeSnapshot
	26, // 1: staffhub.team.v1.TeamMember.start_date:type_name -> google.protobuf.StringValue
	26, // 2: staffhub.team.v1.TeamMember.end_date:type_name -> google.protobuf.StringValue
	0,  // 3: staffhub.team.v1.TeamMember.status:type_name -> staffhub.team.v1.MemberStatus
	27, // 4: staffhub.team.v1.TeamMember.performance_score:type_name -> google.protobuf.Int32Value
	28, // 5: staffhub.team.v1.TeamMember.assigned_at:type_name -> google.protobuf.Timestamp
	28, // 6: staffhub.team.v1.TeamMember.updated_at:type_name -> google.protobuf.Timestamp
	28, // 7: staffhub.team.v1.TeamMember.last_active_at:type_name -> google.protobuf.Timestamp
	26, // 8: staffhub.team.v1.AddMemberRequest.start_date:type_name -> google.protobuf.StringValue
	26, // 9: staffhub.team.v1.AddMemberRequest.end_date:type_name -> google.protobuf.StringValue
	0,  // 10: staffhub.team.v1.AddMemberRequest.status:type_name -> staffhub.team.v1.MemberStatus
	2,  // 11: staffhub.team.v1.AddMemberResponse.member:type_name -> staffhub.team.v1.TeamMember
	2,  // 12: staffhub.team.v1.GetMemberResponse.member:type_name -> staffhub.team.v1.TeamMember
	26, // 13: staffhub.team.v1.ListMembersRequest.employee_id:type_name -> google.protobuf.StringValue
	0,  // 14: staffhub.team.v1.ListMembersRequest.status:type_name -> staffhub.team.v1.MemberStatus
	2,  // 15: staffhub.team.v1.ListMembersResponse.members:type_name -> staffhub.team.v1.TeamMember
	26, // 16: staffhub.team.v1.UpdateMemberRequest.project_role:type_name -> google.protobuf.StringValue
	3,  // 17: staffhub.team.v1.UpdateMemberRequest.responsibilities:type_name -> staffhub.team.v1.StringList
	27, // 18: staffhub.team.v1.UpdateMemberRequest.allocation:type_name -> google.protobuf.Int32Value
	27, // 19: staffhub.team.v1.UpdateMemberRequest.hours_per_week:type_name -> google.protobuf.Int32Value
	27, // 20: staffhub.team.v1.UpdateMemberRequest.sprint_capacity:type_name -> google.protobuf.Int32Value
	26, // 21: staffhub.team.v1.UpdateMemberRequest.start_date:type_name -> google.protobuf.StringValue
	26, // 22: staffhub.team.v1.UpdateMemberRequest.end_date:type_name -> google.protobuf.StringValue
	27, // 23: staffhub.team.v1.UpdateMemberRequest.performance_score:type_name -> google.protobuf.Int32Value
	3,  // 24: staffhub.team.v1.UpdateMemberRequest.permissions:type_name -> staffhub.team.v1.StringList
	2,  // 25: staffhub.team.v1.UpdateMemberResponse.member:type_name -> staffhub.team.v1.TeamMember
	0,  // 26: staffhub.team.v1.UpdateMemberStatusRequest.status:type_name -> staffhub.team.v1.MemberStatus
	26, // 27: staffhub.team.v1.UpdateMemberStatusRequest.end_date:type_name -> google.protobuf.StringValue
	2,  // 28: staffhub.team.v1.UpdateMemberStatusResponse.member:type_name -> staffhub.team.v1.TeamMember
	27, // 29: staffhub.team.v1.SetTaskCountsRequest.tasks_assigned:type_name -> google.protobuf.Int32Value
	27, // 30: staffhub.team.v1.SetTaskCountsRequest.tasks_completed:type_name -> google.protobuf.Int32Value
	2,  // 31: staffhub.team.v1.SetTaskCountsResponse.member:type_name -> staffhub.team.v1.TeamMember
	2,  // 32: staffhub.team.v1.LogHoursResponse.member:type_name -> staffhub.team.v1.TeamMember
	0,  // 33: staffhub.team.v1.GetEmployeeProjectsRequest.status:type_name -> staffhub.team.v1.MemberStatus
	2,  // 34: staffhub.team.v1.GetEmployeeProjectsResponse.members:type_name -> staffhub.team.v1.TeamMember
	26, // 35: staffhub.team.v1.WatchTeamRequest.employee_id:type_name -> google.protobuf.StringValue
	0,  // 36: staffhub.team.v1.WatchTeamRequest.status:type_name -> staffhub.team.v1.MemberStatus
	2,  // 37: staffhub.team.v1.WatchTeamResponse.members:type_name -> staffhub.team.v1.TeamMember
	4,  // 38: staffhub.team.v1.TeamService.AddMember:input_type -> staffhub.team.v1.AddMemberRequest
	6,  // 39: staffhub.team.v1.TeamService.GetMember:input_type -> staffhub.team.v1.GetMemberRequest
	8,  // 40: staffhub.team.v1.TeamService.ListMembers:input_type -> staffhub.team.v1.ListMembersRequest
	10, // 41: staffhub.team.v1.TeamService.UpdateMember:input_type -> staffhub.team.v1.UpdateMemberRequest
	12, // 42: staffhub.team.v1.TeamService.UpdateMemberStatus:input_type -> staffhub.team.v1.UpdateMemberStatusRequest
	14, // 43: staffhub.team.v1.TeamService.SetTaskCounts:input_type -> staffhub.team.v1.SetTaskCountsRequest
	16, // 44: staffhub.team.v1.TeamService.LogHours:input_type -> staffhub.team.v1.LogHoursRequest
	18, // 45: staffhub.team.v1.TeamService.RemoveMember:input_type -> staffhub.team.v1.RemoveMemberRequest
	20, // 46: staffhub.team.v1.TeamService.GetEmployeeProjects:input_type -> staffhub.team.v1.GetEmployeeProjectsRequest
	22, // 47: staffhub.team.v1.TeamService.CheckAvailability:input_type -> staffhub.team.v1.CheckAvailabilityRequest
	24, // 48: staffhub.team.v1.TeamService.WatchTeam:input_type -> staffhub.team.v1.WatchTeamRequest
	5,  // 49: staffhub.team.v1.TeamService.AddMember:output_type -> staffhub.team.v1.AddMemberResponse
	7,  // 50: staffhub.team.v1.TeamService.GetMember:output_type -> staffhub.team.v1.GetMemberResponse
	9,  // 51: staffhub.team.v1.TeamService.ListMembers:output_type -> staffhub.team.v1.ListMembersResponse
	11, // 52: staffhub.team.v1.TeamService.UpdateMember:output_type -> staffhub.team.v1.UpdateMemberResponse
	13, // 53: staffhub.team.v1.TeamService.UpdateMemberStatus:output_type -> staffhub.team.v1.UpdateMemberStatusResponse
	15, // 54: staffhub.team.v1.TeamService.SetTaskCounts:output_type -> staffhub.team.v1.SetTaskCountsResponse
	17, // 55: staffhub.team.v1.TeamService.LogHours:output_type -> staffhub.team.v1.LogHoursResponse
	19, // 56: staffhub.team.v1.TeamService.RemoveMember:output_type -> staffhub.team.v1.RemoveMemberResponse
	21, // 57: staffhub.team.v1.TeamService.GetEmployeeProjects:output_type -> staffhub.team.v1.GetEmployeeProjectsResponse
	23, // 58: staffhub.team.v1.TeamService.CheckAvailability:output_type -> staffhub.team.v1.CheckAvailabilityResponse
	25, // 59: staffhub.team.v1.TeamService.WatchTeam:output_type -> staffhub.team.v1.WatchTeamResponse
	49, // [49:60] is the sub-list for method output_type
	38, // [38:49] is the sub-list for method input_type
	38, // [38:38] is the sub-list for extension type_name
	38, // [38:38] is the sub-list for extension extendee
	0,  // [0:38] is the sub-list for field type_name
}

func init() { file_team_v1_team_proto_init() }
func file_team_v1_team_proto_init() {
	if File_team_v1_team_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_team_v1_team_proto_rawDesc), len(file_team_v1_team_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_team_v1_team_proto_goTypes,
		DependencyIndexes: file_team_v1_team_proto_depIdxs,
		EnumInfos:         file_team_v1_team_proto_enumTypes,
		MessageInfos:      file_team_v1_team_proto_msgTypes,
	}.Build()
	File_team_v1_team_proto = out.File
	file_team_v1_team_proto_goTypes = nil
	file_team_v1_team_proto_depIdxs = nil
}
