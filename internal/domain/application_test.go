package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCounterDelta(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		want int
	}{
		{"active to rejected decrements", domain.ApplicationStatusPending, domain.ApplicationStatusRejected, -1},
		{"active to withdrawn decrements", domain.ApplicationStatusInterviewed, domain.ApplicationStatusWithdrawn, -1},
		{"rejected back to active increments", domain.ApplicationStatusRejected, domain.ApplicationStatusReviewing, +1},
		{"withdrawn to pending increments", domain.ApplicationStatusWithdrawn, domain.ApplicationStatusPending, +1},
		{"active to active is neutral", domain.ApplicationStatusPending, domain.ApplicationStatusShortlisted, 0},
		{"inactive to inactive is neutral", domain.ApplicationStatusRejected, domain.ApplicationStatusWithdrawn, 0},
		// OFFERED sits outside both sets, so offers never touch the counter.
		{"active to offered is neutral", domain.ApplicationStatusInterviewed, domain.ApplicationStatusOffered, 0},
		{"offered to rejected is neutral", domain.ApplicationStatusOffered, domain.ApplicationStatusRejected, 0},
		{"rejected to offered is neutral", domain.ApplicationStatusRejected, domain.ApplicationStatusOffered, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CounterDelta(tc.old, tc.new))
		})
	}
}

func TestIsActiveApplicationStatus(t *testing.T) {
	for _, s := range domain.ActiveApplicationStatuses {
		assert.True(t, domain.IsActiveApplicationStatus(s), s)
	}
	assert.False(t, domain.IsActiveApplicationStatus(domain.ApplicationStatusRejected))
	assert.False(t, domain.IsActiveApplicationStatus(domain.ApplicationStatusWithdrawn))
	assert.False(t, domain.IsActiveApplicationStatus(domain.ApplicationStatusOffered))
}

func TestInterviewOutcomeStatus(t *testing.T) {
	status, ok := domain.InterviewOutcomeStatus(domain.InterviewStatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, domain.ApplicationStatusInterviewed, status)

	status, ok = domain.InterviewOutcomeStatus(domain.InterviewStatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, domain.ApplicationStatusShortlisted, status)

	_, ok = domain.InterviewOutcomeStatus(domain.InterviewStatusRescheduled)
	assert.False(t, ok)

	_, ok = domain.InterviewOutcomeStatus(domain.InterviewStatusScheduled)
	assert.False(t, ok)
}
