package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"
)

type teamService struct {
	reqRepo   repository.ConnectionRequestRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService

	// clearAvailability flips both founders to unavailable when a group
	// forms. Config policy, off by default.
	clearAvailability bool
}

func NewTeamService(
	reqRepo repository.ConnectionRequestRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	clearAvailability bool,
) TeamService {
	return &teamService{
		reqRepo:           reqRepo,
		groupRepo:         groupRepo,
		userRepo:          userRepo,
		emailSvc:          emailSvc,
		clearAvailability: clearAvailability,
	}
}

func (s *teamService) SendTeamUpRequest(ctx context.Context, senderID, receiverID int32) (*domain.ConnectionRequest, error) {
	if senderID == receiverID {
		return nil, domain.ErrSelfRequest
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}
	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receiver: %w", err)
	}

	// Fast path: report a duplicate before hitting the insert. The unique
	// index in the store still backstops concurrent creations.
	if _, err := s.reqRepo.FindPendingBetween(ctx, senderID, receiverID); err == nil {
		return nil, domain.ErrDuplicatePending
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	req := &domain.ConnectionRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	req.SenderUsername = sender.Username
	req.ReceiverUsername = receiver.Username

	logger.Info("Team-up request sent", "request_id", req.ID, "sender", sender.Username, "receiver", receiver.Username)

	// Best effort; the request stands whether or not the mail goes out.
	if receiver.Email != "" {
		if err := s.emailSvc.SendTeamUpRequestNotification(ctx, receiver.Email, receiver.Name, sender.Name); err != nil {
			logger.Warn("Failed to send team-up request notification", "error", err, "request_id", req.ID)
		}
	}

	return req, nil
}

func (s *teamService) AcceptRequest(ctx context.Context, actingUserID, requestID int32) (*domain.Group, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != actingUserID {
		// Only the receiver decides; the sender cannot accept their own request.
		return nil, domain.ErrNotAuthorized
	}
	if req.Status != domain.ConnectionRequestStatusPending {
		return nil, domain.ErrInvalidState
	}

	name := domain.GroupName(req.SenderUsername, req.ReceiverUsername)
	group, err := s.reqRepo.AcceptAndFormGroup(ctx, requestID, name, s.clearAvailability)
	if err != nil {
		return nil, err
	}

	members, err := s.groupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}
	group.Members = members

	logger.Info("Team-up request accepted", "request_id", requestID, "group_id", group.ID, "group", group.Name)

	if sender, err := s.userRepo.GetByID(ctx, req.SenderID); err == nil && sender.Email != "" {
		if err := s.emailSvc.SendRequestAcceptedNotification(ctx, sender.Email, sender.Name, req.ReceiverUsername, group.Name); err != nil {
			logger.Warn("Failed to send acceptance notification", "error", err, "request_id", requestID)
		}
	}

	return group, nil
}

func (s *teamService) RejectRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error) {
	return s.resolve(ctx, actingUserID, requestID, domain.ConnectionRequestStatusRejected)
}

func (s *teamService) CancelRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error) {
	return s.resolve(ctx, actingUserID, requestID, domain.ConnectionRequestStatusCancelled)
}

func (s *teamService) resolve(ctx context.Context, actingUserID, requestID int32, status domain.ConnectionRequestStatus) (*domain.ConnectionRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.ConnectionRequestStatusRejected:
		if req.ReceiverID != actingUserID {
			return nil, domain.ErrNotAuthorized
		}
	case domain.ConnectionRequestStatusCancelled:
		if req.SenderID != actingUserID {
			return nil, domain.ErrNotAuthorized
		}
	}
	if req.Status != domain.ConnectionRequestStatusPending {
		return nil, domain.ErrInvalidState
	}

	if err := s.reqRepo.Resolve(ctx, requestID, status); err != nil {
		return nil, err
	}
	req.Status = status

	logger.Info("Team-up request resolved", "request_id", requestID, "status", status)

	if status == domain.ConnectionRequestStatusRejected {
		if sender, err := s.userRepo.GetByID(ctx, req.SenderID); err == nil && sender.Email != "" {
			if err := s.emailSvc.SendRequestRejectedNotification(ctx, sender.Email, sender.Name, req.ReceiverUsername); err != nil {
				logger.Warn("Failed to send rejection notification", "error", err, "request_id", requestID)
			}
		}
	}

	return req, nil
}

func (s *teamService) ListIncomingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error) {
	// Only pending requests are actionable for the receiver.
	return s.reqRepo.ListByReceiver(ctx, userID, domain.ConnectionRequestStatusPending)
}

func (s *teamService) ListOutgoingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error) {
	// All statuses, so the sender sees what happened to each request.
	return s.reqRepo.ListBySender(ctx, userID)
}

func (s *teamService) JoinGroup(ctx context.Context, actingUserID, groupID int32) (*domain.Group, error) {
	// Open membership: any user may join any existing group.
	if _, err := s.userRepo.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}
	if err := s.groupRepo.AddMember(ctx, groupID, actingUserID); err != nil {
		return nil, err
	}
	logger.Info("User joined group", "group_id", groupID, "user_id", actingUserID)
	return s.GetGroup(ctx, groupID)
}

func (s *teamService) GetGroup(ctx context.Context, groupID int32) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}
	group.Members = members
	return group, nil
}

func (s *teamService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *teamService) ListGroupsForUser(ctx context.Context, userID int32) ([]domain.Group, error) {
	return s.groupRepo.ListByMember(ctx, userID)
}
