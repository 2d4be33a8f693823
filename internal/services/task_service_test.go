package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/storage/memory"
)

func newTestTaskService() TaskService {
	return NewTaskService(zerolog.Nop(), memory.NewTaskStore())
}

func validCreateParams(callerID string) CreateTaskParams {
	return CreateTaskParams{
		CallerID: callerID,
		Title:    "Buy milk",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
		DueDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "ann", task.AssignedBy)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestTaskService_CreateTaskValidation(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	missing := []CreateTaskParams{
		{CallerID: "ann", Status: models.StatusTodo, Priority: models.PriorityLow, DueDate: time.Now()},
		{CallerID: "ann", Title: "t", Priority: models.PriorityLow, DueDate: time.Now()},
		{CallerID: "ann", Title: "t", Status: models.StatusTodo, DueDate: time.Now()},
		{CallerID: "ann", Title: "t", Status: models.StatusTodo, Priority: models.PriorityLow},
	}
	for _, params := range missing {
		_, err := tasks.CreateTask(ctx, params)
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	badStatus := validCreateParams("ann")
	badStatus.Status = "archived"
	_, err := tasks.CreateTask(ctx, badStatus)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	badPriority := validCreateParams("ann")
	badPriority.Priority = "urgent"
	_, err = tasks.CreateTask(ctx, badPriority)
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestTaskService_AccessControl(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	params := validCreateParams("ann")
	params.AssignedTo = "bob"
	task, err := tasks.CreateTask(ctx, params)
	require.NoError(t, err)

	// Creator and assignee may read, a stranger may not.
	_, err = tasks.TaskByID(ctx, task.ID, "ann")
	assert.NoError(t, err)
	_, err = tasks.TaskByID(ctx, task.ID, "bob")
	assert.NoError(t, err)
	_, err = tasks.TaskByID(ctx, task.ID, "eve")
	assert.ErrorIs(t, err, ErrTaskForbidden)

	// Creator and assignee may update, a stranger may not.
	title := "Buy more milk"
	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{Title: &title}, "bob")
	assert.NoError(t, err)
	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{Title: &title}, "eve")
	assert.ErrorIs(t, err, ErrTaskForbidden)

	// Delete is creator-only, stricter than read and update.
	err = tasks.DeleteTask(ctx, task.ID, "bob")
	assert.ErrorIs(t, err, ErrTaskForbidden)
	err = tasks.DeleteTask(ctx, task.ID, "ann")
	assert.NoError(t, err)

	_, err = tasks.TaskByID(ctx, task.ID, "ann")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UnassignedTaskIsCreatorOnly(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	_, err = tasks.TaskByID(ctx, task.ID, "ann")
	assert.NoError(t, err)

	// An empty assignee must not match a caller with an empty id
	// or any other caller.
	_, err = tasks.TaskByID(ctx, task.ID, "bob")
	assert.ErrorIs(t, err, ErrTaskForbidden)
	_, err = tasks.TaskByID(ctx, task.ID, "")
	assert.ErrorIs(t, err, ErrTaskForbidden)
}

func TestTaskService_UpdateTask(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	status := models.StatusCompleted
	updated, err := tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{Status: &status}, "ann")
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	// Untouched fields survive a partial patch.
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Priority, updated.Priority)
	assert.True(t, updated.UpdatedAt.After(task.CreatedAt))

	fetched, err := tasks.TaskByID(ctx, task.ID, "ann")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, fetched.Status)
}

func TestTaskService_UpdateTaskValidation(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	badStatus := "archived"
	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{Status: &badStatus}, "ann")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	badPriority := "urgent"
	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{Priority: &badPriority}, "ann")
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = tasks.UpdateTask(ctx, "no-such-task", UpdateTaskParams{}, "ann")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_CreatorIsImmutable(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	assignee := "bob"
	updated, err := tasks.UpdateTask(ctx, task.ID, UpdateTaskParams{AssignedTo: &assignee}, "ann")
	require.NoError(t, err)
	assert.Equal(t, "ann", updated.AssignedBy)
	assert.Equal(t, "bob", updated.AssignedTo)

	fetched, err := tasks.TaskByID(ctx, task.ID, "ann")
	require.NoError(t, err)
	assert.Equal(t, "ann", fetched.AssignedBy)
}

func TestTaskService_TasksByCaller(t *testing.T) {
	tasks := newTestTaskService()
	ctx := context.Background()

	first, err := tasks.CreateTask(ctx, validCreateParams("ann"))
	require.NoError(t, err)

	assigned := validCreateParams("bob")
	assigned.Title = "Review report"
	assigned.AssignedTo = "ann"
	second, err := tasks.CreateTask(ctx, assigned)
	require.NoError(t, err)

	foreign := validCreateParams("bob")
	foreign.Title = "Bob's own task"
	_, err = tasks.CreateTask(ctx, foreign)
	require.NoError(t, err)

	listed, err := tasks.TasksByCaller(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestTaskService_DeleteTaskNotFound(t *testing.T) {
	tasks := newTestTaskService()

	err := tasks.DeleteTask(context.Background(), "no-such-task", "ann")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
