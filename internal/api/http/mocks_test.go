package http_test

import (
	"context"
	"io"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).([]domain.Group), args.Error(2)
}
func (m *MockProfileService) UpdateProfile(ctx context.Context, userID int32, update service.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockProfileService) ToggleAvailability(ctx context.Context, userID int32) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProfileService) AttachPhoto(ctx context.Context, userID int32, ext string, photo io.Reader) (string, error) {
	args := m.Called(ctx, userID, ext, photo)
	return args.String(0), args.Error(1)
}
func (m *MockProfileService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockMatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) ListAvailable(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockMatchService) MatchBySkills(ctx context.Context, skills string) ([]domain.User, error) {
	args := m.Called(ctx, skills)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockTeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) SendTeamUpRequest(ctx context.Context, senderID, receiverID int32) (*domain.ConnectionRequest, error) {
	args := m.Called(ctx, senderID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectionRequest), args.Error(1)
}
func (m *MockTeamService) AcceptRequest(ctx context.Context, actingUserID, requestID int32) (*domain.Group, error) {
	args := m.Called(ctx, actingUserID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockTeamService) RejectRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error) {
	args := m.Called(ctx, actingUserID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectionRequest), args.Error(1)
}
func (m *MockTeamService) CancelRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error) {
	args := m.Called(ctx, actingUserID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectionRequest), args.Error(1)
}
func (m *MockTeamService) ListIncomingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ConnectionRequest), args.Error(1)
}
func (m *MockTeamService) ListOutgoingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ConnectionRequest), args.Error(1)
}
func (m *MockTeamService) JoinGroup(ctx context.Context, actingUserID, groupID int32) (*domain.Group, error) {
	args := m.Called(ctx, actingUserID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockTeamService) GetGroup(ctx context.Context, groupID int32) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockTeamService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockTeamService) ListGroupsForUser(ctx context.Context, userID int32) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Group), args.Error(1)
}
