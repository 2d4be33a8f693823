// Package memory holds mutex-guarded in-memory implementations of the
// storage interfaces. They back tests and local runs without postgres;
// records are copied in and out so callers never alias stored state.
package memory

import (
	"context"
	"sync"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/storage"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return storage.ErrEmailTaken
	}

	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *UserStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	user := s.byID[id]
	return &user, nil
}

func (s *UserStore) UserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &user, nil
}

type TaskStore struct {
	mu    sync.RWMutex
	byID  map[string]models.Task
	order []string
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		byID: make(map[string]models.Task),
	}
}

func (s *TaskStore) CreateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[task.ID] = *task
	s.order = append(s.order, task.ID)
	return nil
}

func (s *TaskStore) TasksByMember(_ context.Context, userID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0)
	for _, id := range s.order {
		task, ok := s.byID[id]
		if !ok || !task.Member(userID) {
			continue
		}
		t := task
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

func (s *TaskStore) TaskByID(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrTaskNotFound
	}
	return &task, nil
}

func (s *TaskStore) UpdateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[task.ID]
	if !ok {
		return storage.ErrTaskNotFound
	}

	updated := *task
	// The creator id is immutable at the store level.
	updated.AssignedBy = current.AssignedBy
	updated.CreatedAt = current.CreatedAt
	s.byID[task.ID] = updated
	return nil
}

func (s *TaskStore) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return storage.ErrTaskNotFound
	}
	delete(s.byID, id)

	for i, taskID := range s.order {
		if taskID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
