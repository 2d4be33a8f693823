package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  storage.TaskStore
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskStore,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if params.Title == "" || params.Status == "" ||
		params.Priority == "" || params.DueDate.IsZero() {
		s.logger.Error().Msg("missing required task fields")
		return nil, ErrMissingFields
	}
	if !models.ValidStatus(params.Status) {
		return nil, ErrInvalidStatus
	}
	if !models.ValidPriority(params.Priority) {
		return nil, ErrInvalidPriority
	}

	now := time.Now()
	task := &models.Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		AssignedBy:  params.CallerID,
		AssignedTo:  params.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}
	task.ID = taskUUID.String()

	err = s.tasks.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", task.AssignedBy).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) TasksByCaller(ctx context.Context, callerID string) ([]*models.Task, error) {
	tasks, err := s.tasks.TasksByMember(ctx, callerID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", callerID).
			Msg("failed to select tasks by member")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", callerID).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) TaskByID(ctx context.Context, id, callerID string) (*models.Task, error) {
	task, err := s.taskVisibleTo(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("task_id", task.ID).
		Str("user_id", callerID).
		Msg("task found")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, params UpdateTaskParams, callerID string) (*models.Task, error) {
	if params.Status != nil && !models.ValidStatus(*params.Status) {
		return nil, ErrInvalidStatus
	}
	if params.Priority != nil && !models.ValidPriority(*params.Priority) {
		return nil, ErrInvalidPriority
	}

	task, err := s.taskVisibleTo(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	if params.DueDate != nil {
		task.DueDate = *params.DueDate
	}
	if params.AssignedTo != nil {
		task.AssignedTo = *params.AssignedTo
	}
	task.UpdatedAt = time.Now()

	err = s.tasks.UpdateTask(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", callerID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id, callerID string) error {
	task, err := s.tasks.TaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to select task by id")
		return err
	}

	// Delete is stricter than read and update: the creator only.
	if task.AssignedBy != callerID {
		s.logger.Error().
			Str("task_id", id).
			Str("user_id", callerID).
			Msg("caller is not the task creator")
		return ErrTaskForbidden
	}

	err = s.tasks.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", id).
		Str("user_id", callerID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) taskVisibleTo(ctx context.Context, id, callerID string) (*models.Task, error) {
	task, err := s.tasks.TaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to select task by id")
		return nil, err
	}

	if !task.Member(callerID) {
		s.logger.Error().
			Str("task_id", id).
			Str("user_id", callerID).
			Msg("caller is neither creator nor assignee")
		return nil, ErrTaskForbidden
	}
	return task, nil
}
