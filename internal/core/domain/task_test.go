package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workdeck/internal/core/domain"
)

func TestNormalizeTaskStatus(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TaskStatus
		ok   bool
	}{
		{"open", domain.TaskStatusOpen, true},
		{"in_progress", domain.TaskStatusInProgress, true},
		{"blocked", domain.TaskStatusBlocked, true},
		{"closed", domain.TaskStatusClosed, true},
		{"todo", domain.TaskStatusOpen, true},
		{"inprogress", domain.TaskStatusInProgress, true},
		{"done", domain.TaskStatusClosed, true},
		{"archived", "", false},
		{"", "", false},
		{"OPEN", "", false},
	}

	for _, tt := range tests {
		got, ok := domain.NormalizeTaskStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, domain.TaskStatusOpen.Valid())
	assert.True(t, domain.TaskStatusClosed.Valid())
	assert.False(t, domain.TaskStatus("todo").Valid())
	assert.False(t, domain.TaskStatus("").Valid())
}

func TestTaskPriorityValid(t *testing.T) {
	assert.True(t, domain.TaskPriorityLow.Valid())
	assert.True(t, domain.TaskPriorityUrgent.Valid())
	assert.False(t, domain.TaskPriority("critical").Valid())
}

func TestTaskClosed(t *testing.T) {
	assert.True(t, domain.Task{Status: domain.TaskStatusClosed}.Closed())
	assert.False(t, domain.Task{Status: domain.TaskStatusOpen}.Closed())
}
