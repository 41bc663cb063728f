package domain

import "errors"

// Workflow errors. All of these are user-facing and recoverable; storage
// failures are wrapped separately and surface as opaque internal errors.
var (
	ErrSelfRequest      = errors.New("cannot send a team-up request to yourself")
	ErrDuplicatePending = errors.New("a pending request already exists between these users")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthorized    = errors.New("not authorized to perform this action")
	ErrInvalidState     = errors.New("request is not pending")
	ErrAlreadyMember    = errors.New("user is already a member of this group")
	ErrUsernameTaken    = errors.New("username already taken")
)
