package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, allowed: true},
		{name: "pending to checked_in", from: model.StatusPending, to: model.StatusCheckedIn, allowed: false},
		{name: "pending to checked_out", from: model.StatusPending, to: model.StatusCheckedOut, allowed: false},
		{name: "confirmed to checked_in", from: model.StatusConfirmed, to: model.StatusCheckedIn, allowed: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, allowed: false},
		{name: "checked_in to checked_out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, allowed: true},
		{name: "checked_in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, allowed: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, allowed: false},
		{name: "checked_out is terminal", from: model.StatusCheckedOut, to: model.StatusConfirmed, allowed: false},
		{name: "same status is not a transition", from: model.StatusPending, to: model.StatusPending, allowed: false},
		{name: "unknown status", from: "unknown", to: model.StatusConfirmed, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusPending))
	assert.False(t, model.IsTerminal(model.StatusConfirmed))
	assert.False(t, model.IsTerminal(model.StatusCheckedIn))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
	assert.True(t, model.IsTerminal(model.StatusCheckedOut))
}

func TestBlockingStatuses(t *testing.T) {
	blocking := model.BlockingStatuses()

	assert.Contains(t, blocking, model.StatusConfirmed)
	assert.Contains(t, blocking, model.StatusCheckedIn)
	assert.NotContains(t, blocking, model.StatusPending)
	assert.NotContains(t, blocking, model.StatusCancelled)
	assert.NotContains(t, blocking, model.StatusCheckedOut)
}
