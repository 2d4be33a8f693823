package services

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/taskboard-api/internal/models"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskForbidden      = errors.New("not authorized for this task")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidPriority    = errors.New("invalid task priority")
)

type AuthService interface {
	// Register creates a user with a hashed password and issues a
	// session token.
	//
	// It returns ErrMissingFields if any field is empty or
	// ErrEmailTaken if the email is already registered.
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)

	// Login authenticates the user by email and password and issues
	// a session token.
	//
	// It returns ErrInvalidCredentials both when the email is unknown
	// and when the password doesn't match, so a caller cannot probe
	// which emails are registered.
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)

	// UserByID returns ErrUserNotFound if the id is unknown.
	UserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenService issues and verifies signed session tokens. Verification
// is stateless; nothing is persisted and a token cannot be revoked
// before its expiry.
type TokenService interface {
	Issue(userID string) (token string, expiresAt time.Time, err error)

	// Verify returns the user id the token was issued for, or
	// ErrInvalidToken for malformed, tampered or expired tokens.
	Verify(token string) (userID string, err error)
}

type TaskService interface {
	// CreateTask validates the required fields and records the caller
	// as the immutable creator.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// TasksByCaller lists the tasks where the caller is the creator or
	// the assignee, in insertion order.
	TasksByCaller(ctx context.Context, callerID string) ([]*models.Task, error)

	// TaskByID returns ErrTaskNotFound if the id is unknown or
	// ErrTaskForbidden if the caller is neither creator nor assignee.
	TaskByID(ctx context.Context, id, callerID string) (*models.Task, error)

	// UpdateTask merges the provided fields over the stored record
	// under the same visibility rule as TaskByID. The creator id
	// cannot be patched.
	UpdateTask(ctx context.Context, id string, params UpdateTaskParams, callerID string) (*models.Task, error)

	// DeleteTask is allowed for the creator only; an assignee gets
	// ErrTaskForbidden.
	DeleteTask(ctx context.Context, id, callerID string) error
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	User           *models.User
	Token          string
	TokenExpiresAt time.Time
}

type CreateTaskParams struct {
	CallerID    string
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     time.Time
	AssignedTo  string
}

// UpdateTaskParams is a shallow patch: nil fields keep the stored
// value. There is intentionally no creator field.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	AssignedTo  *string
}
