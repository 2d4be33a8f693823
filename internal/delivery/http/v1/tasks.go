package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/services"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	AssignedBy  string    `json:"assignedBy"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		AssignedBy:  task.AssignedBy,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// parseDueDate accepts RFC 3339 instants and bare dates, which is what
// the browser client sends from a date picker.
func parseDueDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`
	AssignedTo  string `json:"assignedTo"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgTokenRequired))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgTaskFieldsMissing))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("due_date", req.DueDate).
			Msg("failed to parse due date")
		abort(c, newBadRequestError(msgTaskFieldsMissing))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		CallerID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrInvalidPriority):
			abort(c, newBadRequestError(err.Error()))
		default:
			abort(c, newServerError())
		}
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgTokenRequired))
		return
	}

	tasks, err := h.tasks.TasksByCaller(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newServerError())
		return
	}

	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, newTaskResponse(task))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgTokenRequired))
		return
	}

	task, err := h.tasks.TaskByID(c, c.Param("id"), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get task")
		abortTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assignedTo"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgTokenRequired))
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgTaskFieldsMissing))
		return
	}

	params := services.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			h.logger.Error().
				Err(err).
				Str("due_date", *req.DueDate).
				Msg("failed to parse due date")
			abort(c, newBadRequestError(msgTaskFieldsMissing))
			return
		}
		params.DueDate = &dueDate
	}

	task, err := h.tasks.UpdateTask(c, c.Param("id"), params, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrInvalidPriority):
			abort(c, newBadRequestError(err.Error()))
		default:
			abortTaskError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(msgTokenRequired))
		return
	}

	err := h.tasks.DeleteTask(c, c.Param("id"), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		abortTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgTaskDeleted})
}

func abortTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(msgTaskNotFound))
	case errors.Is(err, services.ErrTaskForbidden):
		abort(c, newForbiddenError(msgNotAuthorized))
	default:
		abort(c, newServerError())
	}
}
