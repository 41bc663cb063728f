package repository

import (
	"context"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetAvailability(ctx context.Context, id int32, available bool) error
	ListAvailable(ctx context.Context) ([]domain.User, error)
	// SearchBySkills returns available users whose skills field contains every
	// given skill as a case-insensitive substring.
	SearchBySkills(ctx context.Context, skills []string) ([]domain.User, error)
}

type ConnectionRequestRepository interface {
	// Create inserts a new PENDING request. Returns domain.ErrDuplicatePending
	// if a pending request already exists between the pair in either direction.
	Create(ctx context.Context, req *domain.ConnectionRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ConnectionRequest, error)
	// FindPendingBetween looks up a pending request between two users
	// regardless of direction. Returns domain.ErrNotFound when there is none.
	FindPendingBetween(ctx context.Context, userA, userB int32) (*domain.ConnectionRequest, error)
	ListByReceiver(ctx context.Context, receiverID int32, status domain.ConnectionRequestStatus) ([]domain.ConnectionRequest, error)
	ListBySender(ctx context.Context, senderID int32) ([]domain.ConnectionRequest, error)
	// Resolve moves a PENDING request to a terminal status. Returns
	// domain.ErrInvalidState if the request is no longer pending.
	Resolve(ctx context.Context, id int32, status domain.ConnectionRequestStatus) error
	// AcceptAndFormGroup atomically marks the request ACCEPTED, creates the
	// group with both founders as members, and optionally clears both
	// founders' availability. The status flip and the group creation commit
	// together or not at all.
	AcceptAndFormGroup(ctx context.Context, requestID int32, groupName string, clearAvailability bool) (*domain.Group, error)
}

type GroupRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	ListByMember(ctx context.Context, userID int32) ([]domain.Group, error)
	ListMembers(ctx context.Context, groupID int32) ([]domain.User, error)
	// AddMember appends a user to a group. Returns domain.ErrNotFound for an
	// unknown group and domain.ErrAlreadyMember for an existing member.
	AddMember(ctx context.Context, groupID, userID int32) error
}
