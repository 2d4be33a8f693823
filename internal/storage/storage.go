package storage

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-api/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already taken")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)

type UserStore interface {
	// CreateUser inserts the user and returns ErrEmailTaken
	// if another user already owns the same email.
	CreateUser(ctx context.Context, user *models.User) error

	// UserByEmail returns ErrUserNotFound if no user owns the email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	// UserByID returns ErrUserNotFound if the id is unknown.
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error

	// TasksByMember returns the tasks where userID is the creator
	// or the assignee, in insertion order.
	TasksByMember(ctx context.Context, userID string) ([]*models.Task, error)

	// TaskByID returns ErrTaskNotFound if the id is unknown.
	TaskByID(ctx context.Context, id string) (*models.Task, error)

	// UpdateTask overwrites the mutable fields of the stored record
	// wholly or not at all. The creator id is never touched.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask returns ErrTaskNotFound if the id is unknown.
	DeleteTask(ctx context.Context, id string) error
}
