package domain_test

import (
	"testing"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, domain.SplitSkills("Go, SQL"))
	assert.Equal(t, []string{"go"}, domain.SplitSkills(" go ,, "))
	assert.Empty(t, domain.SplitSkills(""))
	assert.Empty(t, domain.SplitSkills(" , ,"))
}

func TestGroupName(t *testing.T) {
	assert.Equal(t, "Team_alice_bob", domain.GroupName("alice", "bob"))
}

func TestConnectionRequestStatus_Terminal(t *testing.T) {
	assert.False(t, domain.ConnectionRequestStatusPending.Terminal())
	assert.True(t, domain.ConnectionRequestStatusAccepted.Terminal())
	assert.True(t, domain.ConnectionRequestStatusRejected.Terminal())
	assert.True(t, domain.ConnectionRequestStatusCancelled.Terminal())
}
