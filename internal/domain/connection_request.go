package domain

type ConnectionRequestStatus string

const (
	ConnectionRequestStatusPending   ConnectionRequestStatus = "PENDING"
	ConnectionRequestStatusAccepted  ConnectionRequestStatus = "ACCEPTED"
	ConnectionRequestStatusRejected  ConnectionRequestStatus = "REJECTED"
	ConnectionRequestStatusCancelled ConnectionRequestStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are allowed from this status.
func (s ConnectionRequestStatus) Terminal() bool {
	return s != ConnectionRequestStatusPending
}

// ConnectionRequest is a directed team-up proposal from one user to another.
// It is created PENDING and resolved exactly once: the receiver accepts or
// rejects it, or the sender cancels it.
type ConnectionRequest struct {
	ID         int32                   `json:"id"`
	SenderID   int32                   `json:"sender_id"`
	ReceiverID int32                   `json:"receiver_id"`
	Status     ConnectionRequestStatus `json:"status"`
	CreatedOn  string                  `json:"created_on"`
	ResolvedOn *string                 `json:"resolved_on,omitempty"`

	// Populated on reads that join the users table; not persisted here.
	SenderUsername   string `json:"sender_username,omitempty"`
	ReceiverUsername string `json:"receiver_username,omitempty"`
}
