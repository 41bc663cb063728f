package service

import (
	"context"
	"io"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
)

// RegisterInput carries the profile fields collected at signup.
type RegisterInput struct {
	Username  string
	Name      string
	Email     string
	Skills    string
	LinkedIn  string
	GitHub    string
	Education string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Name      string
	Email     string
	Skills    string
	LinkedIn  string
	GitHub    string
	Education string
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Group, error)
	UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.User, error)
	ToggleAvailability(ctx context.Context, userID int32) (bool, error)
	AttachPhoto(ctx context.Context, userID int32, ext string, photo io.Reader) (string, error)
	OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error)
}

type MatchService interface {
	ListAvailable(ctx context.Context) ([]domain.User, error)
	// MatchBySkills filters available users by a comma-separated skill list,
	// case-insensitive substring match, all skills required.
	MatchBySkills(ctx context.Context, skills string) ([]domain.User, error)
}

type TeamService interface {
	SendTeamUpRequest(ctx context.Context, senderID, receiverID int32) (*domain.ConnectionRequest, error)
	AcceptRequest(ctx context.Context, actingUserID, requestID int32) (*domain.Group, error)
	RejectRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error)
	CancelRequest(ctx context.Context, actingUserID, requestID int32) (*domain.ConnectionRequest, error)
	ListIncomingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error)
	ListOutgoingRequests(ctx context.Context, userID int32) ([]domain.ConnectionRequest, error)
	JoinGroup(ctx context.Context, actingUserID, groupID int32) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID int32) (*domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	ListGroupsForUser(ctx context.Context, userID int32) ([]domain.Group, error)
}

type EmailService interface {
	SendTeamUpRequestNotification(ctx context.Context, receiverEmail, receiverName, senderName string) error
	SendRequestAcceptedNotification(ctx context.Context, senderEmail, senderName, receiverName, groupName string) error
	SendRequestRejectedNotification(ctx context.Context, senderEmail, senderName, receiverName string) error
}
