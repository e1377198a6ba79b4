package handler

import (
	"context"

	"group-exercise-api/internal/dto"
)

// MockGroupService is a mock implementation of service.GroupService
type MockGroupService struct {
	CreateGroupFunc    func(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetGroupDetailFunc func(ctx context.Context, id uint) (*dto.GroupResponse, error)
	ListGroupsFunc     func(ctx context.Context, req *dto.ListGroupsRequest) (*dto.GroupListResponse, error)
	UpdateGroupFunc    func(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	DeleteGroupFunc    func(ctx context.Context, id uint, ownerPassword string) error
}

func (m *MockGroupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if m.CreateGroupFunc != nil {
		return m.CreateGroupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockGroupService) GetGroupDetail(ctx context.Context, id uint) (*dto.GroupResponse, error) {
	if m.GetGroupDetailFunc != nil {
		return m.GetGroupDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGroupService) ListGroups(ctx context.Context, req *dto.ListGroupsRequest) (*dto.GroupListResponse, error) {
	if m.ListGroupsFunc != nil {
		return m.ListGroupsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockGroupService) UpdateGroup(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	if m.UpdateGroupFunc != nil {
		return m.UpdateGroupFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockGroupService) DeleteGroup(ctx context.Context, id uint, ownerPassword string) error {
	if m.DeleteGroupFunc != nil {
		return m.DeleteGroupFunc(ctx, id, ownerPassword)
	}
	return nil
}

// MockLikeService is a mock implementation of service.LikeService
type MockLikeService struct {
	IncrementLikeFunc func(ctx context.Context, groupID uint) (*dto.LikeCountData, error)
	DecrementLikeFunc func(ctx context.Context, groupID uint) (*dto.LikeCountData, error)
}

func (m *MockLikeService) IncrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error) {
	if m.IncrementLikeFunc != nil {
		return m.IncrementLikeFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *MockLikeService) DecrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error) {
	if m.DecrementLikeFunc != nil {
		return m.DecrementLikeFunc(ctx, groupID)
	}
	return nil, nil
}

// MockParticipantService is a mock implementation of service.ParticipantService
type MockParticipantService struct {
	JoinFunc  func(ctx context.Context, groupID uint, req *dto.JoinGroupRequest) (*dto.ParticipantResponse, error)
	LeaveFunc func(ctx context.Context, groupID uint, req *dto.LeaveGroupRequest) error
}

func (m *MockParticipantService) Join(ctx context.Context, groupID uint, req *dto.JoinGroupRequest) (*dto.ParticipantResponse, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, groupID, req)
	}
	return nil, nil
}

func (m *MockParticipantService) Leave(ctx context.Context, groupID uint, req *dto.LeaveGroupRequest) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, groupID, req)
	}
	return nil
}

// MockRecordService is a mock implementation of service.RecordService
type MockRecordService struct {
	CreateRecordFunc func(ctx context.Context, groupID uint, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
	GetRecordFunc    func(ctx context.Context, groupID, recordID uint) (*dto.RecordResponse, error)
	ListRecordsFunc  func(ctx context.Context, groupID uint, req *dto.ListRecordsRequest) (*dto.RecordListResponse, error)
	GetRankFunc      func(ctx context.Context, groupID uint, duration string) (*dto.RankResponse, error)
}

func (m *MockRecordService) CreateRecord(ctx context.Context, groupID uint, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, groupID, req)
	}
	return nil, nil
}

func (m *MockRecordService) GetRecord(ctx context.Context, groupID, recordID uint) (*dto.RecordResponse, error) {
	if m.GetRecordFunc != nil {
		return m.GetRecordFunc(ctx, groupID, recordID)
	}
	return nil, nil
}

func (m *MockRecordService) ListRecords(ctx context.Context, groupID uint, req *dto.ListRecordsRequest) (*dto.RecordListResponse, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx, groupID, req)
	}
	return nil, nil
}

func (m *MockRecordService) GetRank(ctx context.Context, groupID uint, duration string) (*dto.RankResponse, error) {
	if m.GetRankFunc != nil {
		return m.GetRankFunc(ctx, groupID, duration)
	}
	return nil, nil
}
