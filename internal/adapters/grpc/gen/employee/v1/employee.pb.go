// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: employee/v1/employee.proto

package employeev1

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

type EmployeeStatus int32

const (
	EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED EmployeeStatus = 0
	EmployeeStatus_EMPLOYEE_STATUS_ACTIVE      EmployeeStatus = 1
	EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE    EmployeeStatus = 2
	EmployeeStatus_EMPLOYEE_STATUS_TERMINATED  EmployeeStatus = 3
)

// Enum value maps for EmployeeStatus.
var (
	EmployeeStatus_name = map[int32]string{
		0: "EMPLOYEE_STATUS_UNSPECIFIED",
		1: "EMPLOYEE_STATUS_ACTIVE",
		2: "EMPLOYEE_STATUS_ON_LEAVE",
		3: "EMPLOYEE_STATUS_TERMINATED",
	}
	EmployeeStatus_value = map[string]int32{
		"EMPLOYEE_STATUS_UNSPECIFIED": 0,
		"EMPLOYEE_STATUS_ACTIVE":      1,
		"EMPLOYEE_STATUS_ON_LEAVE":    2,
		"EMPLOYEE_STATUS_TERMINATED":  3,
	}
)

func (x EmployeeStatus) Enum() *EmployeeStatus {
	p := new(EmployeeStatus)
	*p = x
	return p
}

func (x EmployeeStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EmployeeStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_employee_v1_employee_proto_enumTypes[0].Descriptor()
}

func (EmployeeStatus) Type() protoreflect.EnumType {
	return &file_employee_v1_employee_proto_enumTypes[0]
}

func (x EmployeeStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EmployeeStatus.Descriptor instead.
func (EmployeeStatus) EnumDescriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{0}
}

// ActiveProject is a denormalized summary entry derived from the team
// registry. It is read-only on this surface.
type ActiveProject struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ProjectName   string                 `protobuf:"bytes,2,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Allocation    int32                  `protobuf:"varint,4,opt,name=allocation,proto3" json:"allocation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActiveProject) Reset() {
	*x = ActiveProject{}
	mi := &file_employee_v1_employee_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActiveProject) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActiveProject) ProtoMessage() {}

func (x *ActiveProject) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActiveProject.ProtoReflect.Descriptor instead.
func (*ActiveProject) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{0}
}

func (x *ActiveProject) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ActiveProject) GetProjectName() string {
	if x != nil {
		return x.ProjectName
	}
	return ""
}

func (x *ActiveProject) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ActiveProject) GetAllocation() int32 {
	if x != nil {
		return x.Allocation
	}
	return 0
}

type Employee struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	Id             string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId       string                  `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ExternalUserId string                  `protobuf:"bytes,3,opt,name=external_user_id,json=externalUserId,proto3" json:"external_user_id,omitempty"`
	FirstName      string                  `protobuf:"bytes,4,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName       string                  `protobuf:"bytes,5,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email          *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=email,proto3" json:"email,omitempty"`
	Phone          *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	Role           string                  `protobuf:"bytes,8,opt,name=role,proto3" json:"role,omitempty"`
	Department     string                  `protobuf:"bytes,9,opt,name=department,proto3" json:"department,omitempty"`
	Title          string                  `protobuf:"bytes,10,opt,name=title,proto3" json:"title,omitempty"`
	ManagerId      string                  `protobuf:"bytes,11,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	AvatarUrl      string                  `protobuf:"bytes,12,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Status         EmployeeStatus          `protobuf:"varint,13,opt,name=status,proto3,enum=staffhub.employee.v1.EmployeeStatus" json:"status,omitempty"`
	EmploymentType string                  `protobuf:"bytes,14,opt,name=employment_type,json=employmentType,proto3" json:"employment_type,omitempty"`
	WeeklyHours    int32                   `protobuf:"varint,15,opt,name=weekly_hours,json=weeklyHours,proto3" json:"weekly_hours,omitempty"`
	HourlyRate     *wrapperspb.DoubleValue `protobuf:"bytes,16,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	SprintCapacity *wrapperspb.Int32Value  `protobuf:"bytes,17,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	Skills         []string                `protobuf:"bytes,18,rep,name=skills,proto3" json:"skills,omitempty"`
	ExpertiseLevel string                  `protobuf:"bytes,19,opt,name=expertise_level,json=expertiseLevel,proto3" json:"expertise_level,omitempty"`
	Certifications []string                `protobuf:"bytes,20,rep,name=certifications,proto3" json:"certifications,omitempty"`
	ActiveProjects []*ActiveProject        `protobuf:"bytes,21,rep,name=active_projects,json=activeProjects,proto3" json:"active_projects,omitempty"`
	CreatedAt      *timestamppb.Timestamp  `protobuf:"bytes,22,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp  `protobuf:"bytes,23,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CreatedBy      string                  `protobuf:"bytes,24,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	LastModifiedBy string                  `protobuf:"bytes,25,opt,name=last_modified_by,json=lastModifiedBy,proto3" json:"last_modified_by,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Employee) Reset() {
	*x = Employee{}
	mi := &file_employee_v1_employee_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Employee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Employee) ProtoMessage() {}

func (x *Employee) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Employee.ProtoReflect.Descriptor instead.
func (*Employee) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{1}
}

func (x *Employee) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Employee) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *Employee) GetExternalUserId() string {
	if x != nil {
		return x.ExternalUserId
	}
	return ""
}

func (x *Employee) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *Employee) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *Employee) GetEmail() *wrapperspb.StringValue {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *Employee) GetPhone() *wrapperspb.StringValue {
	if x != nil {
		return x.Phone
	}
	return nil
}

func (x *Employee) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Employee) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Employee) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Employee) GetManagerId() string {
	if x != nil {
		return x.ManagerId
	}
	return ""
}

func (x *Employee) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *Employee) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *Employee) GetEmploymentType() string {
	if x != nil {
		return x.EmploymentType
	}
	return ""
}

func (x *Employee) GetWeeklyHours() int32 {
	if x != nil {
		return x.WeeklyHours
	}
	return 0
}

func (x *Employee) GetHourlyRate() *wrapperspb.DoubleValue {
	if x != nil {
		return x.HourlyRate
	}
	return nil
}

func (x *Employee) GetSprintCapacity() *wrapperspb.Int32Value {
	if x != nil {
		return x.SprintCapacity
	}
	return nil
}

func (x *Employee) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Employee) GetExpertiseLevel() string {
	if x != nil {
		return x.ExpertiseLevel
	}
	return ""
}

func (x *Employee) GetCertifications() []string {
	if x != nil {
		return x.Certifications
	}
	return nil
}

func (x *Employee) GetActiveProjects() []*ActiveProject {
	if x != nil {
		return x.ActiveProjects
	}
	return nil
}

func (x *Employee) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Employee) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Employee) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *Employee) GetLastModifiedBy() string {
	if x != nil {
		return x.LastModifiedBy
	}
	return ""
}

type StringList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []string               `protobuf:"bytes,1,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StringList) Reset() {
	*x = StringList{}
	mi := &file_employee_v1_employee_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StringList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StringList) ProtoMessage() {}

func (x *StringList) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[2]
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
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{2}
}

func (x *StringList) GetValues() []string {
	if x != nil {
		return x.Values
	}
	return nil
}

type CreateEmployeeRequest struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	TenantId       string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	ExternalUserId string                  `protobuf:"bytes,2,opt,name=external_user_id,json=externalUserId,proto3" json:"external_user_id,omitempty"`
	FirstName      string                  `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName       string                  `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email          *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone          *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Role           string                  `protobuf:"bytes,7,opt,name=role,proto3" json:"role,omitempty"`
	Department     string                  `protobuf:"bytes,8,opt,name=department,proto3" json:"department,omitempty"`
	Title          string                  `protobuf:"bytes,9,opt,name=title,proto3" json:"title,omitempty"`
	ManagerId      string                  `protobuf:"bytes,10,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	AvatarUrl      string                  `protobuf:"bytes,11,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Status         EmployeeStatus          `protobuf:"varint,12,opt,name=status,proto3,enum=staffhub.employee.v1.EmployeeStatus" json:"status,omitempty"`
	EmploymentType string                  `protobuf:"bytes,13,opt,name=employment_type,json=employmentType,proto3" json:"employment_type,omitempty"`
	WeeklyHours    int32                   `protobuf:"varint,14,opt,name=weekly_hours,json=weeklyHours,proto3" json:"weekly_hours,omitempty"`
	HourlyRate     *wrapperspb.DoubleValue `protobuf:"bytes,15,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	SprintCapacity *wrapperspb.Int32Value  `protobuf:"bytes,16,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	Skills         []string                `protobuf:"bytes,17,rep,name=skills,proto3" json:"skills,omitempty"`
	ExpertiseLevel string                  `protobuf:"bytes,18,opt,name=expertise_level,json=expertiseLevel,proto3" json:"expertise_level,omitempty"`
	Certifications []string                `protobuf:"bytes,19,rep,name=certifications,proto3" json:"certifications,omitempty"`
	ActorId        string                  `protobuf:"bytes,20,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateEmployeeRequest) Reset() {
	*x = CreateEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEmployeeRequest) ProtoMessage() {}

func (x *CreateEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEmployeeRequest.ProtoReflect.Descriptor instead.
func (*CreateEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{3}
}

func (x *CreateEmployeeRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *CreateEmployeeRequest) GetExternalUserId() string {
	if x != nil {
		return x.ExternalUserId
	}
	return ""
}

func (x *CreateEmployeeRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CreateEmployeeRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *CreateEmployeeRequest) GetEmail() *wrapperspb.StringValue {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *CreateEmployeeRequest) GetPhone() *wrapperspb.StringValue {
	if x != nil {
		return x.Phone
	}
	return nil
}

func (x *CreateEmployeeRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *CreateEmployeeRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *CreateEmployeeRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateEmployeeRequest) GetManagerId() string {
	if x != nil {
		return x.ManagerId
	}
	return ""
}

func (x *CreateEmployeeRequest) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *CreateEmployeeRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *CreateEmployeeRequest) GetEmploymentType() string {
	if x != nil {
		return x.EmploymentType
	}
	return ""
}

func (x *CreateEmployeeRequest) GetWeeklyHours() int32 {
	if x != nil {
		return x.WeeklyHours
	}
	return 0
}

func (x *CreateEmployeeRequest) GetHourlyRate() *wrapperspb.DoubleValue {
	if x != nil {
		return x.HourlyRate
	}
	return nil
}

func (x *CreateEmployeeRequest) GetSprintCapacity() *wrapperspb.Int32Value {
	if x != nil {
		return x.SprintCapacity
	}
	return nil
}

func (x *CreateEmployeeRequest) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *CreateEmployeeRequest) GetExpertiseLevel() string {
	if x != nil {
		return x.ExpertiseLevel
	}
	return ""
}

func (x *CreateEmployeeRequest) GetCertifications() []string {
	if x != nil {
		return x.Certifications
	}
	return nil
}

func (x *CreateEmployeeRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type CreateEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateEmployeeResponse) Reset() {
	*x = CreateEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEmployeeResponse) ProtoMessage() {}

func (x *CreateEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEmployeeResponse.ProtoReflect.Descriptor instead.
func (*CreateEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{4}
}

func (x *CreateEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type GetEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Id            string                 `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeRequest) Reset() {
	*x = GetEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeRequest) ProtoMessage() {}

func (x *GetEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{5}
}

func (x *GetEmployeeRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *GetEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeResponse) Reset() {
	*x = GetEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeResponse) ProtoMessage() {}

func (x *GetEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{6}
}

func (x *GetEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type ListEmployeesRequest struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	TenantId       string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Role           *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	Department     *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=department,proto3" json:"department,omitempty"`
	Status         EmployeeStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=staffhub.employee.v1.EmployeeStatus" json:"status,omitempty"`
	ManagerId      *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	Skill          *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=skill,proto3" json:"skill,omitempty"`
	ExpertiseLevel *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=expertise_level,json=expertiseLevel,proto3" json:"expertise_level,omitempty"`
	PageSize       int32                   `protobuf:"varint,8,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken      string                  `protobuf:"bytes,9,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListEmployeesRequest) Reset() {
	*x = ListEmployeesRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesRequest) ProtoMessage() {}

func (x *ListEmployeesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesRequest.ProtoReflect.Descriptor instead.
func (*ListEmployeesRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{7}
}

func (x *ListEmployeesRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ListEmployeesRequest) GetRole() *wrapperspb.StringValue {
	if x != nil {
		return x.Role
	}
	return nil
}

func (x *ListEmployeesRequest) GetDepartment() *wrapperspb.StringValue {
	if x != nil {
		return x.Department
	}
	return nil
}

func (x *ListEmployeesRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *ListEmployeesRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *ListEmployeesRequest) GetSkill() *wrapperspb.StringValue {
	if x != nil {
		return x.Skill
	}
	return nil
}

func (x *ListEmployeesRequest) GetExpertiseLevel() *wrapperspb.StringValue {
	if x != nil {
		return x.ExpertiseLevel
	}
	return nil
}

func (x *ListEmployeesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListEmployeesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListEmployeesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employees     []*Employee            `protobuf:"bytes,1,rep,name=employees,proto3" json:"employees,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeesResponse) Reset() {
	*x = ListEmployeesResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesResponse) ProtoMessage() {}

func (x *ListEmployeesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesResponse.ProtoReflect.Descriptor instead.
func (*ListEmployeesResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{8}
}

func (x *ListEmployeesResponse) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

func (x *ListEmployeesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdateEmployeeRequest struct {
	state             protoimpl.MessageState  `protogen:"open.v1"`
	TenantId          string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Id                string                  `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	FirstName         *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName          *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email             *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	EmailSet          bool                    `protobuf:"varint,6,opt,name=email_set,json=emailSet,proto3" json:"email_set,omitempty"`
	Phone             *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	PhoneSet          bool                    `protobuf:"varint,8,opt,name=phone_set,json=phoneSet,proto3" json:"phone_set,omitempty"`
	Role              *wrapperspb.StringValue `protobuf:"bytes,9,opt,name=role,proto3" json:"role,omitempty"`
	Department        *wrapperspb.StringValue `protobuf:"bytes,10,opt,name=department,proto3" json:"department,omitempty"`
	Title             *wrapperspb.StringValue `protobuf:"bytes,11,opt,name=title,proto3" json:"title,omitempty"`
	ManagerId         *wrapperspb.StringValue `protobuf:"bytes,12,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	AvatarUrl         *wrapperspb.StringValue `protobuf:"bytes,13,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Status            EmployeeStatus          `protobuf:"varint,14,opt,name=status,proto3,enum=staffhub.employee.v1.EmployeeStatus" json:"status,omitempty"`
	EmploymentType    *wrapperspb.StringValue `protobuf:"bytes,15,opt,name=employment_type,json=employmentType,proto3" json:"employment_type,omitempty"`
	WeeklyHours       *wrapperspb.Int32Value  `protobuf:"bytes,16,opt,name=weekly_hours,json=weeklyHours,proto3" json:"weekly_hours,omitempty"`
	HourlyRate        *wrapperspb.DoubleValue `protobuf:"bytes,17,opt,name=hourly_rate,json=hourlyRate,proto3" json:"hourly_rate,omitempty"`
	HourlyRateSet     bool                    `protobuf:"varint,18,opt,name=hourly_rate_set,json=hourlyRateSet,proto3" json:"hourly_rate_set,omitempty"`
	SprintCapacity    *wrapperspb.Int32Value  `protobuf:"bytes,19,opt,name=sprint_capacity,json=sprintCapacity,proto3" json:"sprint_capacity,omitempty"`
	SprintCapacitySet bool                    `protobuf:"varint,20,opt,name=sprint_capacity_set,json=sprintCapacitySet,proto3" json:"sprint_capacity_set,omitempty"`
	Skills            *StringList             `protobuf:"bytes,21,opt,name=skills,proto3" json:"skills,omitempty"`
	ExpertiseLevel    *wrapperspb.StringValue `protobuf:"bytes,22,opt,name=expertise_level,json=expertiseLevel,proto3" json:"expertise_level,omitempty"`
	Certifications    *StringList             `protobuf:"bytes,23,opt,name=certifications,proto3" json:"certifications,omitempty"`
	ActorId           string                  `protobuf:"bytes,24,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateEmployeeRequest) Reset() {
	*x = UpdateEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEmployeeRequest) ProtoMessage() {}

func (x *UpdateEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEmployeeRequest.ProtoReflect.Descriptor instead.
func (*UpdateEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateEmployeeRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *UpdateEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateEmployeeRequest) GetFirstName() *wrapperspb.StringValue {
	if x != nil {
		return x.FirstName
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetLastName() *wrapperspb.StringValue {
	if x != nil {
		return x.LastName
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetEmail() *wrapperspb.StringValue {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetEmailSet() bool {
	if x != nil {
		return x.EmailSet
	}
	return false
}

func (x *UpdateEmployeeRequest) GetPhone() *wrapperspb.StringValue {
	if x != nil {
		return x.Phone
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetPhoneSet() bool {
	if x != nil {
		return x.PhoneSet
	}
	return false
}

func (x *UpdateEmployeeRequest) GetRole() *wrapperspb.StringValue {
	if x != nil {
		return x.Role
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetDepartment() *wrapperspb.StringValue {
	if x != nil {
		return x.Department
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetTitle() *wrapperspb.StringValue {
	if x != nil {
		return x.Title
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetAvatarUrl() *wrapperspb.StringValue {
	if x != nil {
		return x.AvatarUrl
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *UpdateEmployeeRequest) GetEmploymentType() *wrapperspb.StringValue {
	if x != nil {
		return x.EmploymentType
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetWeeklyHours() *wrapperspb.Int32Value {
	if x != nil {
		return x.WeeklyHours
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetHourlyRate() *wrapperspb.DoubleValue {
	if x != nil {
		return x.HourlyRate
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetHourlyRateSet() bool {
	if x != nil {
		return x.HourlyRateSet
	}
	return false
}

func (x *UpdateEmployeeRequest) GetSprintCapacity() *wrapperspb.Int32Value {
	if x != nil {
		return x.SprintCapacity
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetSprintCapacitySet() bool {
	if x != nil {
		return x.SprintCapacitySet
	}
	return false
}

func (x *UpdateEmployeeRequest) GetSkills() *StringList {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetExpertiseLevel() *wrapperspb.StringValue {
	if x != nil {
		return x.ExpertiseLevel
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetCertifications() *StringList {
	if x != nil {
		return x.Certifications
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type UpdateEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateEmployeeResponse) Reset() {
	*x = UpdateEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEmployeeResponse) ProtoMessage() {}

func (x *UpdateEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEmployeeResponse.ProtoReflect.Descriptor instead.
func (*UpdateEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type TerminateEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Id            string                 `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TerminateEmployeeRequest) Reset() {
	*x = TerminateEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TerminateEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TerminateEmployeeRequest) ProtoMessage() {}

func (x *TerminateEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TerminateEmployeeRequest.ProtoReflect.Descriptor instead.
func (*TerminateEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{11}
}

func (x *TerminateEmployeeRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *TerminateEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TerminateEmployeeRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type TerminateEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TerminateEmployeeResponse) Reset() {
	*x = TerminateEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TerminateEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TerminateEmployeeResponse) ProtoMessage() {}

func (x *TerminateEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TerminateEmployeeResponse.ProtoReflect.Descriptor instead.
func (*TerminateEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{12}
}

func (x *TerminateEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type WatchEmployeesRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	TenantId      string                  `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Role          *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	Department    *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=department,proto3" json:"department,omitempty"`
	Status        EmployeeStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=staffhub.employee.v1.EmployeeStatus" json:"status,omitempty"`
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	Limit         int32                   `protobuf:"varint,6,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchEmployeesRequest) Reset() {
	*x = WatchEmployeesRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchEmployeesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchEmployeesRequest) ProtoMessage() {}

func (x *WatchEmployeesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchEmployeesRequest.ProtoReflect.Descriptor instead.
func (*WatchEmployeesRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{13}
}

func (x *WatchEmployeesRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *WatchEmployeesRequest) GetRole() *wrapperspb.StringValue {
	if x != nil {
		return x.Role
	}
	return nil
}

func (x *WatchEmployeesRequest) GetDepartment() *wrapperspb.StringValue {
	if x != nil {
		return x.Department
	}
	return nil
}

func (x *WatchEmployeesRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *WatchEmployeesRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *WatchEmployeesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

// Each message carries the full current snapshot, not a diff.
type WatchEmployeesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employees     []*Employee            `protobuf:"bytes,1,rep,name=employees,proto3" json:"employees,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchEmployeesResponse) Reset() {
	*x = WatchEmployeesResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchEmployeesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchEmployeesResponse) ProtoMessage() {}

func (x *WatchEmployeesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchEmployeesResponse.ProtoReflect.Descriptor instead.
func (*WatchEmployeesResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{14}
}

func (x *WatchEmployeesResponse) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

var File_employee_v1_employee_proto protoreflect.FileDescriptor

const file_employee_v1_employee_proto_rawDesc = "" +
	"\n" +
	"\x1aemployee/v1/employee.proto\x12\x14staffhub.employee.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x85\x01\n" +
	"\rActiveProject\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12!\n" +
	"\fproject_name\x18\x02 \x01(\tR\vprojectName\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1e\n" +
	"\n" +
	"allocation\x18\x04 \x01(\x05R\n" +
	"allocation\"\x92\b\n" +
	"\bEmployee\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12(\n" +
	"\x10external_user_id\x18\x03 \x01(\tR\x0eexternalUserId\x12\x1d\n" +
	"\n" +
	"first_name\x18\x04 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x05 \x01(\tR\blastName\x122\n" +
	"\x05email\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\x05email\x122\n" +
	"\x05phone\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\x05phone\x12\x12\n" +
	"\x04role\x18\b \x01(\tR\x04role\x12\x1e\n" +
	"\n" +
	"department\x18\t \x01(\tR\n" +
	"department\x12\x14\n" +
	"\x05title\x18\n" +
	" \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"manager_id\x18\v \x01(\tR\tmanagerId\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\f \x01(\tR\tavatarUrl\x12<\n" +
	"\x06status\x18\r \x01(\x0e2$.staffhub.employee.v1.EmployeeStatusR\x06status\x12'\n" +
	"\x0femployment_type\x18\x0e \x01(\tR\x0eemploymentType\x12!\n" +
	"\fweekly_hours\x18\x0f \x01(\x05R\vweeklyHours\x12=\n" +
	"\vhourly_rate\x18\x10 \x01(\v2\x1c.google.protobuf.DoubleValueR\n" +
	"hourlyRate\x12D\n" +
	"\x0fsprint_capacity\x18\x11 \x01(\v2\x1b.google.protobuf.Int32ValueR\x0esprintCapacity\x12\x16\n" +
	"\x06skills\x18\x12 \x03(\tR\x06skills\x12'\n" +
	"\x0fexpertise_level\x18\x13 \x01(\tR\x0eexpertiseLevel\x12&\n" +
	"\x0ecertifications\x18\x14 \x03(\tR\x0ecertifications\x12L\n" +
	"\x0factive_projects\x18\x15 \x03(\v2#.staffhub.employee.v1.ActiveProjectR\x0eactiveProjects\x129\n" +
	"\n" +
	"created_at\x18\x16 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x17 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\x1d\n" +
	"\n" +
	"created_by\x18\x18 \x01(\tR\tcreatedBy\x12(\n" +
	"\x10last_modified_by\x18\x19 \x01(\tR\x0elastModifiedBy\"$\n" +
	"\n" +
	"StringList\x12\x16\n" +
	"\x06values\x18\x01 \x03(\tR\x06values\"\x9d\x06\n" +
	"\x15CreateEmployeeRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12(\n" +
	"\x10external_user_id\x18\x02 \x01(\tR\x0eexternalUserId\x12\x1d\n" +
	"\n" +
	"first_name\x18\x03 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x04 \x01(\tR\blastName\x122\n" +
	"\x05email\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\x05email\x122\n" +
	"\x05phone\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\x05phone\x12\x12\n" +
	"\x04role\x18\a \x01(\tR\x04role\x12\x1e\n" +
	"\n" +
	"department\x18\b \x01(\tR\n" +
	"department\x12\x14\n" +
	"\x05title\x18\t \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"manager_id\x18\n" +
	" \x01(\tR\tmanagerId\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\v \x01(\tR\tavatarUrl\x12<\n" +
	"\x06status\x18\f \x01(\x0e2$.staffhub.employee.v1.EmployeeStatusR\x06status\x12'\n" +
	"\x0femployment_type\x18\r \x01(\tR\x0eemploymentType\x12!\n" +
	"\fweekly_hours\x18\x0e \x01(\x05R\vweeklyHours\x12=\n" +
	"\vhourly_rate\x18\x0f \x01(\v2\x1c.google.protobuf.DoubleValueR\n" +
	"hourlyRate\x12D\n" +
	"\x0fsprint_capacity\x18\x10 \x01(\v2\x1b.google.protobuf.Int32ValueR\x0esprintCapacity\x12\x16\n" +
	"\x06skills\x18\x11 \x03(\tR\x06skills\x12'\n" +
	"\x0fexpertise_level\x18\x12 \x01(\tR\x0eexpertiseLevel\x12&\n" +
	"\x0ecertifications\x18\x13 \x03(\tR\x0ecertifications\x12\x19\n" +
	"\bactor_id\x18\x14 \x01(\tR\aactorId\"T\n" +
	"\x16CreateEmployeeResponse\x12:\n" +
	"\bemployee\x18\x01 \x01(\v2\x1e.staffhub.employee.v1.EmployeeR\bemployee\"A\n" +
	"\x12GetEmployeeRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x0e\n" +
	"\x02id\x18\x02 \x01(\tR\x02id\"Q\n" +
	"\x13GetEmployeeResponse\x12:\n" +
	"\bemployee\x18\x01 \x01(\v2\x1e.staffhub.employee.v1.EmployeeR\bemployee\"\xd5\x03\n" +
	"\x14ListEmployeesRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x120\n" +
	"\x04role\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\x04role\x12<\n" +
	"\n" +
	"department\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"department\x12<\n" +
	"\x06status\x18\x04 \x01(\x0e2$.staffhub.employee.v1.EmployeeStatusR\x06status\x12;\n" +
	"\n" +
	"manager_id\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x122\n" +
	"\x05skill\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\x05skill\x12E\n" +
	"\x0fexpertise_level\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\x0eexpertiseLevel\x12\x1b\n" +
	"\tpage_size\x18\b \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\t \x01(\tR\tpageToken\"}\n" +
	"\x15ListEmployeesResponse\x12<\n" +
	"\temployees\x18\x01 \x03(\v2\x1e.staffhub.employee.v1.EmployeeR\temployees\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x84\n" +
	"\n" +
	"\x15UpdateEmployeeRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x0e\n" +
	"\x02id\x18\x02 \x01(\tR\x02id\x12;\n" +
	"\n" +
	"first_name\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\tfirstName\x129\n" +
	"\tlast_name\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\blastName\x122\n" +
	"\x05email\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\x05email\x12\x1b\n" +
	"\temail_set\x18\x06 \x01(\bR\bemailSet\x122\n" +
	"\x05phone\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\x05phone\x12\x1b\n" +
	"\tphone_set\x18\b \x01(\bR\bphoneSet\x120\n" +
	"\x04role\x18\t \x01(\v2\x1c.google.protobuf.StringValueR\x04role\x12<\n" +
	"\n" +
	"department\x18\n" +
	" \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"department\x122\n" +
	"\x05title\x18\v \x01(\v2\x1c.google.protobuf.StringValueR\x05title\x12;\n" +
	"\n" +
	"manager_id\x18\f \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x12;\n" +
	"\n" +
	"avatar_url\x18\r \x01(\v2\x1c.google.protobuf.StringValueR\tavatarUrl\x12<\n" +
	"\x06status\x18\x0e \x01(\x0e2$.staffhub.employee.v1.EmployeeStatusR\x06status\x12E\n" +
	"\x0femployment_type\x18\x0f \x01(\v2\x1c.google.protobuf.StringValueR\x0eemploymentType\x12>\n" +
	"\fweekly_hours\x18\x10 \x01(\v2\x1b.google.protobuf.Int32ValueR\vweeklyHours\x12=\n" +
	"\vhourly_rate\x18\x11 \x01(\v2\x1c.google.protobuf.DoubleValueR\n" +
	"hourlyRate\x12&\n" +
	"\x0fhourly_rate_set\x18\x12 \x01(\bR\rhourlyRateSet\x12D\n" +
	"\x0fsprint_capacity\x18\x13 \x01(\v2\x1b.google.protobuf.Int32ValueR\x0esprintCapacity\x12.\n" +
	"\x13sprint_capacity_set\x18\x14 \x01(\bR\x11sprintCapacitySet\x128\n" +
	"\x06skills\x18\x15 \x01(\v2 .staffhub.employee.v1.StringListR\x06skills\x12E\n" +
	"\x0fexpertise_level\x18\x16 \x01(\v2\x1c.google.protobuf.StringValueR\x0eexpertiseLevel\x12H\n" +
	"\x0ecertifications\x18\x17 \x01(\v2 .staffhub.employee.v1.StringListR\x0ecertifications\x12\x19\n" +
	"\bactor_id\x18\x18 \x01(\tR\aactorId\"T\n" +
	"\x16UpdateEmployeeResponse\x12:\n" +
	"\bemployee\x18\x01 \x01(\v2\x1e.staffhub.employee.v1.EmployeeR\bemployee\"b\n" +
	"\x18TerminateEmployeeRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x0e\n" +
	"\x02id\x18\x02 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\"W\n" +
	"\x19TerminateEmployeeResponse\x12:\n" +
	"\bemployee\x18\x01 \x01(\v2\x1e.staffhub.employee.v1.EmployeeR\bemployee\"\xb5\x02\n" +
	"\x15WatchEmployeesRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x120\n" +
	"\x04role\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\x04role\x12<\n" +
	"\n" +
	"department\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"department\x12<\n" +
	"\x06status\x18\x04 \x01(\x0e2$.staffhub.employee.v1.EmployeeStatusR\x06status\x12;\n" +
	"\n" +
	"manager_id\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x12\x14\n" +
	"\x05limit\x18\x06 \x01(\x05R\x05limit\"V\n" +
	"\x16WatchEmployeesResponse\x12<\n" +
	"\temployees\x18\x01 \x03(\v2\x1e.staffhub.employee.v1.EmployeeR\temployees*\x8b\x01\n" +
	"\x0eEmployeeStatus\x12\x1f\n" +
	"\x1bEMPLOYEE_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16EMPLOYEE_STATUS_ACTIVE\x10\x01\x12\x1c\n" +
	"\x18EMPLOYEE_STATUS_ON_LEAVE\x10\x02\x12\x1e\n" +
	"\x1aEMPLOYEE_STATUS_TERMINATED\x10\x032\x9e\x05\n" +
	"\x0fEmployeeService\x12k\n" +
	"\x0eCreateEmployee\x12+.staffhub.employee.v1.CreateEmployeeRequest\x1a,.staffhub.employee.v1.CreateEmployeeResponse\x12b\n" +
	"\vGetEmployee\x12(.staffhub.employee.v1.GetEmployeeRequest\x1a).staffhub.employee.v1.GetEmployeeResponse\x12h\n" +
	"\rListEmployees\x12*.staffhub.employee.v1.ListEmployeesRequest\x1a+.staffhub.employee.v1.ListEmployeesResponse\x12k\n" +
	"\x0eUpdateEmployee\x12+.staffhub.employee.v1.UpdateEmployeeRequest\x1a,.staffhub.employee.v1.UpdateEmployeeResponse\x12t\n" +
	"\x11TerminateEmployee\x12..staffhub.employee.v1.TerminateEmployeeRequest\x1a/.staffhub.employee.v1.TerminateEmployeeResponse\x12m\n" +
	"\x0eWatchEmployees\x12+.staffhub.employee.v1.WatchEmployeesRequest\x1a,.staffhub.employee.v1.WatchEmployeesResponse0\x01BSZQgithub.com/ogurasousui/staffhub/internal/adapters/grpc/gen/employee/v1;employeev1b\x06proto3"

var (
	file_employee_v1_employee_proto_rawDescOnce sync.Once
	file_employee_v1_employee_proto_rawDescData []byte
)

func file_employee_v1_employee_proto_rawDescGZIP() []byte {
	file_employee_v1_employee_proto_rawDescOnce.Do(func() {
		file_employee_v1_employee_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_employee_v1_employee_proto_rawDesc), len(file_employee_v1_employee_proto_rawDesc)))
	})
	return file_employee_v1_employee_proto_rawDescData
}

var file_employee_v1_employee_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_employee_v1_employee_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_employee_v1_employee_proto_goTypes = []any{
	(EmployeeStatus)(0),               // 0: staffhub.employee.v1.EmployeeStatus
	(*ActiveProject)(nil),             // 1: staffhub.employee.v1.ActiveProject
	(*Employee)(nil),                  // 2: staffhub.employee.v1.Employee
	(*StringList)(nil),                // 3: staffhub.employee.v1.StringList
	(*CreateEmployeeRequest)(nil),     // 4: staffhub.employee.v1.CreateEmployeeRequest
	(*CreateEmployeeResponse)(nil),    // 5: staffhub.employee.v1.CreateEmployeeResponse
	(*GetEmployeeRequest)(nil),        // 6: staffhub.employee.v1.GetEmployeeRequest
	(*GetEmployeeResponse)(nil),       // 7: staffhub.employee.v1.GetEmployeeResponse
	(*ListEmployeesRequest)(nil),      // 8: staffhub.employee.v1.ListEmployeesRequest
	(*ListEmployeesResponse)(nil),     // 9: staffhub.employee.v1.ListEmployeesResponse
	(*UpdateEmployeeRequest)(nil),     // 10: staffhub.employee.v1.UpdateEmployeeRequest
	(*UpdateEmployeeResponse)(nil),    // 11: staffhub.employee.v1.UpdateEmployeeResponse
	(*TerminateEmployeeRequest)(nil),  // 12: staffhub.employee.v1.TerminateEmployeeRequest
	(*TerminateEmployeeResponse)(nil), // 13: staffhub.employee.v1.TerminateEmployeeResponse
	(*WatchEmployeesRequest)(nil),     // 14: staffhub.employee.v1.WatchEmployeesRequest
	(*WatchEmployeesResponse)(nil),    // 15: staffhub.employee.v1.WatchEmployeesResponse
	(*wrapperspb.StringValue)(nil),    // 16: google.protobuf.StringValue
	(*wrapperspb.DoubleValue)(nil),    // 17: google.protobuf.DoubleValue
	(*wrapperspb.Int32Value)(nil),     // 18: google.protobuf.Int32Value
	(*timestamppb.Timestamp)(nil),     // 19: google.protobuf.Timestamp
}
var file_employee_v1_employee_proto_depIdxs = []int32{
	16, // 0: staffhub.employee.v1.Employee.email:type_name -> google.protobuf.StringValue
	16, // 1: staffhub.employee.v1.Employee.phone:type_name -> google.protobuf.StringValue
	0,  // 2: staffhub.employee.v1.Employee.status:type_name -> staffhub.employee.v1.EmployeeStatus
	17, // 3: staffhub.employee.v1.Employee.hourly_rate:type_name -> google.protobuf.DoubleValue
	18, // 4: staffhub.employee.v1.Employee.sprint_capacity:type_name -> google.protobuf.Int32Value
	1,  // 5: staffhub.employee.v1.Employee.active_projects:type_name -> staffhub.employee.v1.ActiveProject
	19, // 6: staffhub.employee.v1.Employee.created_at:type_name -> google.protobuf.Timestamp
	19, // 7: staffhub.employee.v1.Employee.updated_at:type_name -> google.protobuf.Timestamp
	16, // 8: staffhub.employee.v1.CreateEmployeeRequest.email:type_name -> google.protobuf.StringValue
	16, // 9: staffhub.employee.v1.CreateEmployeeRequest.phone:type_name -> google.protobuf.StringValue
	0,  // 10: staffhub.employee.v1.CreateEmployeeRequest.status:type_name -> staffhub.employee.v1.EmployeeStatus
	17, // 11: staffhub.employee.v1.CreateEmployeeRequest.hourly_rate:type_name -> google.protobuf.DoubleValue
	18, // 12: staffhub.employee.v1.CreateEmployeeRequest.sprint_capacity:type_name -> google.protobuf.Int32Value
	2,  // 13: staffhub.employee.v1.CreateEmployeeResponse.employee:type_name -> staffhub.employee.v1.Employee
	2,  // 14: staffhub.employee.v1.GetEmployeeResponse.employee:type_name -> staffhub.employee.v1.Employee
	16, // 15: staffhub.employee.v1.ListEmployeesRequest.role:type_name -> google.protobuf.StringValue
	16, // 16: staffhub.employee.v1.ListEmployeesRequest.department:type_name -> google.protobuf.StringValue
	0,  // 17: staffhub.employee.v1.ListEmployeesRequest.status:type_name -> staffhub.employee.v1.EmployeeStatus
	16, // 18: staffhub.employee.v1.ListEmployeesRequest.manager_id:type_name -> google.protobuf.StringValue
	16, // 19: staffhub.employee.v1.ListEmployeesRequest.skill:type_name -> google.protobuf.StringValue
	16, // 20: staffhub.employee.v1.ListEmployeesRequest.expertise_level:type_name -> google.protobuf.StringValue
	2,  // 21: staffhub.employee.v1.ListEmployeesResponse.employees:type_name -> staffhub.employee.v1.Employee
	16, // 22: staffhub.employee.v1.UpdateEmployeeRequest.first_name:type_name -> google.protobuf.StringValue
	16, // 23: staffhub.employee.v1.UpdateEmployeeRequest.last_name:type_name -> google.protobuf.StringValue
	16, // 24: staffhub.employee.v1.UpdateEmployeeRequest.email:type_name -> google.protobuf.StringValue
	16, // 25: staffhub.employee.v1.UpdateEmployeeRequest.phone:type_name -> google.protobuf.StringValue
	16, // 26: staffhub.employee.v1.UpdateEmployeeRequest.role:type_name -> google.protobuf.StringValue
	16, // 27: staffhub.employee.v1.UpdateEmployeeRequest.department:type_name -> google.protobuf.StringValue
	16, // 28: staffhub.employee.v1.UpdateEmployeeRequest.title:type_name -> google.protobuf.StringValue
	16, // 29: staffhub.employee.v1.UpdateEmployeeRequest.manager_id:type_name -> google.protobuf.StringValue
	16, // 30: staffhub.employee.v1.UpdateEmployeeRequest.avatar_url:type_name -> google.protobuf.StringValue
	0,  // 31: staffhub.employee.v1.UpdateEmployeeRequest.status:type_name -> staffhub.employee.v1.EmployeeStatus
	16, // 32: staffhub.employee.v1.UpdateEmployeeRequest.employment_type:type_name -> google.protobuf.StringValue
	18, // 33: staffhub.employee.v1.UpdateEmployeeRequest.weekly_hours:type_name -> google.protobuf.Int32Value
	17, // 34: staffhub.employee.v1.UpdateEmployeeRequest.hourly_rate:type_name -> google.protobuf.DoubleValue
	18, // 35: staffhub.employee.v1.UpdateEmployeeRequest.sprint_capacity:type_name -> google.protobuf.Int32Value
	3,  // 36: staffhub.employee.v1.UpdateEmployeeRequest.skills:type_name -> staffhub.employee.v1.StringList
	16, // 37: staffhub.employee.v1.UpdateEmployeeRequest.expertise_level:type_name -> google.protobuf.StringValue
	3,  // 38: staffhub.employee.v1.UpdateEmployeeRequest.certifications:type_name -> staffhub.employee.v1.StringList
	2,  // 39: staffhub.employee.v1.UpdateEmployeeResponse.employee:type_name -> staffhub.employee.v1.Employee
	2,  // 40: staffhub.employee.v1.TerminateEmployeeResponse.employee:type_name -> staffhub.employee.v1.Employee
	16, // 41: staffhub.employee.v1.WatchEmployeesRequest.role:type_name -> google.protobuf.StringValue
	16, // 42: staffhub.employee.v1.WatchEmployeesRequest.department:type_name -> google.protobuf.StringValue
	0,  // 43: staffhub.employee.v1.WatchEmployeesRequest.status:type_name -> staffhub.employee.v1.EmployeeStatus
	16, // 44: staffhub.employee.v1.WatchEmployeesRequest.manager_id:type_name -> google.protobuf.StringValue
	2,  // 45: staffhub.employee.v1.WatchEmployeesResponse.employees:type_name -> staffhub.employee.v1.Employee
	4,  // 46: staffhub.employee.v1.EmployeeService.CreateEmployee:input_type -> staffhub.employee.v1.CreateEmployeeRequest
	6,  // 47: staffhub.employee.v1.EmployeeService.GetEmployee:input_type -> staffhub.employee.v1.GetEmployeeRequest
	8,  // 48: staffhub.employee.v1.EmployeeService.ListEmployees:input_type -> staffhub.employee.v1.ListEmployeesRequest
	10, // 49: staffhub.employee.v1.EmployeeService.UpdateEmployee:input_type -> staffhub.employee.v1.UpdateEmployeeRequest
	12, // 50: staffhub.employee.v1.EmployeeService.TerminateEmployee:input_type -> staffhub.employee.v1.TerminateEmployeeRequest
	14, // 51: staffhub.employee.v1.EmployeeService.WatchEmployees:input_type -> staffhub.employee.v1.WatchEmployeesRequest
	5,  // 52: staffhub.employee.v1.EmployeeService.CreateEmployee:output_type -> staffhub.employee.v1.CreateEmployeeResponse
	7,  // 53: staffhub.employee.v1.EmployeeService.GetEmployee:output_type -> staffhub.employee.v1.GetEmployeeResponse
	9,  // 54: staffhub.employee.v1.EmployeeService.ListEmployees:output_type -> staffhub.employee.v1.ListEmployeesResponse
	11, // 55: staffhub.employee.v1.EmployeeService.UpdateEmployee:output_type -> staffhub.employee.v1.UpdateEmployeeResponse
	13, // 56: staffhub.employee.v1.EmployeeService.TerminateEmployee:output_type -> staffhub.employee.v1.TerminateEmployeeResponse
	15, // 57: staffhub.employee.v1.EmployeeService.WatchEmployees:output_type -> staffhub.employee.v1.WatchEmployeesResponse
	52, // [52:58] is the sub-list for method output_type
	46, // [46:52] is the sub-list for method input_type
	46, // [46:46] is the sub-list for extension type_name
	46, // [46:46] is the sub-list for extension extendee
	0,  // [0:46] is the sub-list for field type_name
}

func init() { file_employee_v1_employee_proto_init() }
func file_employee_v1_employee_proto_init() {
	if File_employee_v1_employee_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_employee_v1_employee_proto_rawDesc), len(file_employee_v1_employee_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_employee_v1_employee_proto_goTypes,
		DependencyIndexes: file_employee_v1_employee_proto_depIdxs,
		EnumInfos:         file_employee_v1_employee_proto_enumTypes,
		MessageInfos:      file_employee_v1_employee_proto_msgTypes,
	}.Build()
	File_employee_v1_employee_proto = out.File
	file_employee_v1_employee_proto_goTypes = nil
	file_employee_v1_employee_proto_depIdxs = nil
}
