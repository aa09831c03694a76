package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	teampb "github.com/ogurasousui/staffhub/internal/adapters/grpc/gen/team/v1"
	"github.com/ogurasousui/staffhub/internal/core/team"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubTeamUseCase struct {
	addInput team.AddMemberInput
	addOut   *team.Member
	addErr   error

	getInput team.GetMemberInput
	getOut   *team.Member
	getErr   error

	listInput team.ListMembersInput
	listOut   []*team.Member
	listErr   error

	updateInput team.UpdateMemberInput
	updateOut   *team.Member
	updateErr   error

	statusInput team.UpdateMemberStatusInput
	statusOut   *team.Member
	statusErr   error

	taskInput team.SetTaskCountsInput
	taskOut   *team.Member
	taskErr   error

	hoursInput team.LogHoursInput
	hoursOut   *team.Member
	hoursErr   error

	removeInput team.RemoveMemberInput
	removeErr   error

	projectsInput team.GetEmployeeProjectsInput
	projectsOut   []*team.Member
	projectsErr   error

	availInput team.AvailabilityInput
	availOut   bool
	availErr   error

	watchInput team.WatchTeamInput
	watchErr   error
}

func (s *stubTeamUseCase) AddMember(ctx context.Context, in team.AddMemberInput) (*team.Member, error) {
	s.addInput = in
	return s.addOut, s.addErr
}

func (s *stubTeamUseCase) GetMember(ctx context.Context, in team.GetMemberInput) (*team.Member, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubTeamUseCase) ListMembers(ctx context.Context, in team.ListMembersInput) ([]*team.Member, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubTeamUseCase) UpdateMember(ctx context.Context, in team.UpdateMemberInput) (*team.Member, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubTeamUseCase) UpdateMemberStatus(ctx context.Context, in team.UpdateMemberStatusInput) (*team.Member, error) {
	s.statusInput = in
	return s.statusOut, s.statusErr
}

func (s *stubTeamUseCase) SetTaskCounts(ctx context.Context, in team.SetTaskCountsInput) (*team.Member, error) {
	s.taskInput = in
	return s.taskOut, s.taskErr
}

func (s *stubTeamUseCase) LogHours(ctx context.Context, in team.LogHoursInput) (*team.Member, error) {
	s.hoursInput = in
	return s.hoursOut, s.hoursErr
}

func (s *stubTeamUseCase) RemoveMember(ctx context.Context, in team.RemoveMemberInput) error {
	s.removeInput = in
	return s.removeErr
}

func (s *stubTeamUseCase) GetEmployeeProjects(ctx context.Context, in team.GetEmployeeProjectsInput) ([]*team.Member, error) {
	s.projectsInput = in
	return s.projectsOut, s.projectsErr
}

func (s *stubTeamUseCase) IsEmployeeAvailable(ctx context.Context, in team.AvailabilityInput) (bool, error) {
	s.availInput = in
	return s.availOut, s.availErr
}

func (s *stubTeamUseCase) WatchTeam(ctx context.Context, in team.WatchTeamInput, fn team.SnapshotFunc) (func(), error) {
	s.watchInput = in
	if s.watchErr != nil {
		return nil, s.watchErr
	}
	return func() {}, nil
}

func sampleMember(now time.Time) *team.Member {
	score := 4
	return &team.Member{
		ID:         "member-1",
		TenantID:   "tenant-1",
		ProjectID:  "proj-1",
		EmployeeID: "emp-1",
		Employee: team.EmployeeSnapshot{
			Name:  "Hanako Sato",
			Email: "hanako@example.com",
			Title: "Engineer",
		},
		ProjectName:      "Apollo",
		ProjectRole:      "developer",
		Allocation:       60,
		HoursPerWeek:     24,
		StartDate:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:           team.StatusActive,
		HoursLogged:      12.5,
		PerformanceScore: &score,
		AssignedAt:       now,
		AssignedBy:       "admin-1",
		UpdatedAt:        now,
	}
}

func TestTeamGrpcHandler_AddMember_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{addOut: sampleMember(now)}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.AddMember(context.Background(), &teampb.AddMemberRequest{
		TenantId:    "tenant-1",
		ProjectId:   "proj-1",
		EmployeeId:  "emp-1",
		ProjectRole: "developer",
		Allocation:  60,
		StartDate:   wrapperspb.String("2026-01-15"),
		ActorId:     "admin-1",
	})
	if err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}

	if stub.addInput.Allocation != 60 {
		t.Errorf("expected allocation to pass through, got %d", stub.addInput.Allocation)
	}
	if got := stub.addInput.StartDate.Format("2006-01-02"); got != "2026-01-15" {
		t.Errorf("expected start date parsed, got %s", got)
	}
	if resp.GetSummarySyncFailed() {
		t.Fatalf("expected summary sync flag to be unset")
	}
	if resp.GetMember().GetEmployee().GetName() != "Hanako Sato" {
		t.Fatalf("expected employee snapshot in response, got %s", resp.GetMember().GetEmployee().GetName())
	}
	if resp.GetMember().GetStartDate().GetValue() != "2026-01-15" {
		t.Fatalf("expected formatted start date, got %s", resp.GetMember().GetStartDate().GetValue())
	}
}

func TestTeamGrpcHandler_AddMember_InvalidDateFormat(t *testing.T) {
	t.Parallel()

	handler := NewTeamGrpcHandler(&stubTeamUseCase{})

	_, err := handler.AddMember(context.Background(), &teampb.AddMemberRequest{
		TenantId:   "tenant-1",
		ProjectId:  "proj-1",
		EmployeeId: "emp-1",
		StartDate:  wrapperspb.String("2026/01/15"),
	})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("expected invalid argument for date parse, got %v", st.Code())
	}
}

func TestTeamGrpcHandler_AddMember_SummarySyncFailed(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{
		addOut: sampleMember(now),
		addErr: errors.Join(team.ErrSummarySyncFailed, errors.New("connection refused")),
	}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.AddMember(context.Background(), &teampb.AddMemberRequest{
		TenantId:    "tenant-1",
		ProjectId:   "proj-1",
		EmployeeId:  "emp-1",
		ProjectRole: "developer",
		Allocation:  60,
		StartDate:   wrapperspb.String("2026-01-15"),
	})
	if err != nil {
		t.Fatalf("expected partial success without error, got %v", err)
	}
	if !resp.GetSummarySyncFailed() {
		t.Fatalf("expected summary sync flag to be set")
	}
	if resp.GetMember().GetId() != "member-1" {
		t.Fatalf("expected persisted member in response")
	}
}

func TestTeamGrpcHandler_AddMember_CapacityExceeded(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{addErr: team.ErrInvalidAllocation}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.AddMember(context.Background(), &teampb.AddMemberRequest{
		TenantId:   "tenant-1",
		ProjectId:  "proj-1",
		EmployeeId: "emp-1",
		Allocation: 150,
		StartDate:  wrapperspb.String("2026-01-15"),
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", status.Code(err))
	}
}

func TestTeamGrpcHandler_AddMember_TenantIsolation(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{addErr: team.ErrTenantIsolation}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.AddMember(context.Background(), &teampb.AddMemberRequest{
		TenantId:   "tenant-2",
		ProjectId:  "proj-1",
		EmployeeId: "emp-1",
		StartDate:  wrapperspb.String("2026-01-15"),
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}

func TestTeamGrpcHandler_GetMember_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{getErr: team.ErrMemberNotFound}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.GetMember(context.Background(), &teampb.GetMemberRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "missing",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestTeamGrpcHandler_ListMembers_PassesFilters(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{listOut: []*team.Member{sampleMember(now)}}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.ListMembers(context.Background(), &teampb.ListMembersRequest{
		TenantId:   "tenant-1",
		ProjectId:  "proj-1",
		EmployeeId: wrapperspb.String("emp-1"),
		Status:     teampb.MemberStatus_MEMBER_STATUS_ACTIVE,
		Limit:      25,
	})
	if err != nil {
		t.Fatalf("ListMembers returned error: %v", err)
	}

	if stub.listInput.EmployeeID == nil || *stub.listInput.EmployeeID != "emp-1" {
		t.Fatalf("expected employee filter to be passed")
	}
	if stub.listInput.Status == nil || *stub.listInput.Status != team.StatusActive {
		t.Fatalf("expected status filter to be passed")
	}
	if stub.listInput.Limit != 25 {
		t.Fatalf("expected limit 25, got %d", stub.listInput.Limit)
	}
	if len(resp.GetMembers()) != 1 {
		t.Fatalf("expected one member, got %d", len(resp.GetMembers()))
	}
}

func TestTeamGrpcHandler_UpdateMember_SetsPointers(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{updateOut: sampleMember(now)}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.UpdateMember(context.Background(), &teampb.UpdateMemberRequest{
		TenantId:         "tenant-1",
		ProjectId:        "proj-1",
		MemberId:         "member-1",
		Allocation:       wrapperspb.Int32(80),
		EndDateSet:       true,
		Responsibilities: &teampb.StringList{Values: []string{"backend", "reviews"}},
	})
	if err != nil {
		t.Fatalf("UpdateMember returned error: %v", err)
	}

	if stub.updateInput.Allocation == nil || *stub.updateInput.Allocation != 80 {
		t.Fatalf("expected allocation pointer to be set")
	}
	if !stub.updateInput.EndDateSet || stub.updateInput.EndDate != nil {
		t.Fatalf("expected end date to be explicitly cleared")
	}
	if !stub.updateInput.ResponsibilitiesSet || len(stub.updateInput.Responsibilities) != 2 {
		t.Fatalf("expected responsibilities to be replaced")
	}
	if stub.updateInput.PerformanceScoreSet {
		t.Fatalf("expected performance score to stay untouched")
	}
}

func TestTeamGrpcHandler_UpdateMemberStatus_RequiresStatus(t *testing.T) {
	t.Parallel()

	handler := NewTeamGrpcHandler(&stubTeamUseCase{})

	_, err := handler.UpdateMemberStatus(context.Background(), &teampb.UpdateMemberStatusRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "member-1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument for missing status, got %v", status.Code(err))
	}
}

func TestTeamGrpcHandler_UpdateMemberStatus_SummarySyncFailed(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	completed := sampleMember(now)
	completed.Status = team.StatusCompleted
	stub := &stubTeamUseCase{
		statusOut: completed,
		statusErr: errors.Join(team.ErrSummarySyncFailed, errors.New("timeout")),
	}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.UpdateMemberStatus(context.Background(), &teampb.UpdateMemberStatusRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "member-1",
		Status:    teampb.MemberStatus_MEMBER_STATUS_COMPLETED,
	})
	if err != nil {
		t.Fatalf("expected partial success without error, got %v", err)
	}
	if !resp.GetSummarySyncFailed() {
		t.Fatalf("expected summary sync flag to be set")
	}
	if resp.GetMember().GetStatus() != teampb.MemberStatus_MEMBER_STATUS_COMPLETED {
		t.Fatalf("expected completed status in response")
	}
}

func TestTeamGrpcHandler_SetTaskCounts_PassesAbsoluteValues(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{taskOut: sampleMember(now)}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.SetTaskCounts(context.Background(), &teampb.SetTaskCountsRequest{
		TenantId:      "tenant-1",
		ProjectId:     "proj-1",
		MemberId:      "member-1",
		TasksAssigned: wrapperspb.Int32(10),
	})
	if err != nil {
		t.Fatalf("SetTaskCounts returned error: %v", err)
	}

	if stub.taskInput.TasksAssigned == nil || *stub.taskInput.TasksAssigned != 10 {
		t.Fatalf("expected tasks assigned pointer to be set")
	}
	if stub.taskInput.TasksCompleted != nil {
		t.Fatalf("expected tasks completed to stay untouched")
	}
}

func TestTeamGrpcHandler_LogHours_PassesThrough(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{hoursOut: sampleMember(now)}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.LogHours(context.Background(), &teampb.LogHoursRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "member-1",
		Hours:     7.5,
	})
	if err != nil {
		t.Fatalf("LogHours returned error: %v", err)
	}

	if stub.hoursInput.Hours != 7.5 {
		t.Fatalf("expected hours 7.5, got %f", stub.hoursInput.Hours)
	}
	if resp.GetMember().GetHoursLogged() != 12.5 {
		t.Fatalf("expected logged hours echoed from domain, got %f", resp.GetMember().GetHoursLogged())
	}
}

func TestTeamGrpcHandler_RemoveMember_SummarySyncFailed(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{
		removeErr: errors.Join(team.ErrSummarySyncFailed, errors.New("timeout")),
	}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.RemoveMember(context.Background(), &teampb.RemoveMemberRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "member-1",
	})
	if err != nil {
		t.Fatalf("expected partial success without error, got %v", err)
	}
	if !resp.GetSummarySyncFailed() {
		t.Fatalf("expected summary sync flag to be set")
	}
}

func TestTeamGrpcHandler_RemoveMember_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{removeErr: team.ErrMemberNotFound}
	handler := NewTeamGrpcHandler(stub)

	_, err := handler.RemoveMember(context.Background(), &teampb.RemoveMemberRequest{
		TenantId:  "tenant-1",
		ProjectId: "proj-1",
		MemberId:  "missing",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
	if stub.removeInput.MemberID != "missing" {
		t.Fatalf("expected remove input to capture member id")
	}
}

func TestTeamGrpcHandler_GetEmployeeProjects_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubTeamUseCase{projectsOut: []*team.Member{sampleMember(now)}}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.GetEmployeeProjects(context.Background(), &teampb.GetEmployeeProjectsRequest{
		TenantId:   "tenant-1",
		EmployeeId: "emp-1",
		Status:     teampb.MemberStatus_MEMBER_STATUS_ACTIVE,
	})
	if err != nil {
		t.Fatalf("GetEmployeeProjects returned error: %v", err)
	}

	if stub.projectsInput.EmployeeID != "emp-1" {
		t.Fatalf("expected employee id passed to use case")
	}
	if stub.projectsInput.Status == nil || *stub.projectsInput.Status != team.StatusActive {
		t.Fatalf("expected status filter to be passed")
	}
	if len(resp.GetMembers()) != 1 {
		t.Fatalf("expected one member, got %d", len(resp.GetMembers()))
	}
}

func TestTeamGrpcHandler_CheckAvailability_PassesThrough(t *testing.T) {
	t.Parallel()

	stub := &stubTeamUseCase{availOut: true}
	handler := NewTeamGrpcHandler(stub)

	resp, err := handler.CheckAvailability(context.Background(), &teampb.CheckAvailabilityRequest{
		TenantId:           "tenant-1",
		EmployeeId:         "emp-1",
		RequiredAllocation: 40,
	})
	if err != nil {
		t.Fatalf("CheckAvailability returned error: %v", err)
	}

	if stub.availInput.RequiredAllocation != 40 {
		t.Fatalf("expected required allocation 40, got %d", stub.availInput.RequiredAllocation)
	}
	if !resp.GetAvailable() {
		t.Fatalf("expected available true")
	}
}

func TestTeamGrpcHandler_NilRequest(t *testing.T) {
	t.Parallel()

	handler := NewTeamGrpcHandler(&stubTeamUseCase{})

	_, err := handler.AddMember(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument for nil request")
	}
}
