package domain

import "fmt"

// Group is a named team formed from an accepted connection request.
// Groups are never deleted and only grow via joins.
type Group struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
	Members   []User `json:"members,omitempty"` // insertion order, founders first
}

// GroupName derives the canonical name for a newly formed group,
// sender first, receiver second.
func GroupName(senderUsername, receiverUsername string) string {
	return fmt.Sprintf("Team_%s_%s", senderUsername, receiverUsername)
}
