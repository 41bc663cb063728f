package service_test

import (
	"context"
	"io"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockUserRepo) ListAvailable(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) SearchBySkills(ctx context.Context, skills []string) ([]domain.User, error) {
	args := m.Called(ctx, skills)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.ConnectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.ConnectionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectionRequest), args.Error(1)
}
func (m *MockRequestRepo) FindPendingBetween(ctx context.Context, userA, userB int32) (*domain.ConnectionRequest, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectionRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByReceiver(ctx context.Context, receiverID int32, status domain.ConnectionRequestStatus) ([]domain.ConnectionRequest, error) {
	args := m.Called(ctx, receiverID, status)
	return args.Get(0).([]domain.ConnectionRequest), args.Error(1)
}
func (m *MockRequestRepo) ListBySender(ctx context.Context, senderID int32) ([]domain.ConnectionRequest, error) {
	args := m.Called(ctx, senderID)
	return args.Get(0).([]domain.ConnectionRequest), args.Error(1)
}
func (m *MockRequestRepo) Resolve(ctx context.Context, id int32, status domain.ConnectionRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRequestRepo) AcceptAndFormGroup(ctx context.Context, requestID int32, groupName string, clearAvailability bool) (*domain.Group, error) {
	args := m.Called(ctx, requestID, groupName, clearAvailability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

// MockGroupRepo
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) GetByID(ctx context.Context, id int32) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupRepo) List(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupRepo) ListByMember(ctx context.Context, userID int32) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupRepo) ListMembers(ctx context.Context, groupID int32) ([]domain.User, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockGroupRepo) AddMember(ctx context.Context, groupID, userID int32) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendTeamUpRequestNotification(ctx context.Context, receiverEmail, receiverName, senderName string) error {
	args := m.Called(ctx, receiverEmail, receiverName, senderName)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestAcceptedNotification(ctx context.Context, senderEmail, senderName, receiverName, groupName string) error {
	args := m.Called(ctx, senderEmail, senderName, receiverName, groupName)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestRejectedNotification(ctx context.Context, senderEmail, senderName, receiverName string) error {
	args := m.Called(ctx, senderEmail, senderName, receiverName)
	return args.Error(0)
}

// MockPhotoStorage
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) SaveFile(name string, reader io.Reader) error {
	args := m.Called(name, reader)
	return args.Error(0)
}
func (m *MockPhotoStorage) ReadFile(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockPhotoStorage) DeleteFile(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
