package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

// TaskListResponse wraps an owner's tasks
type TaskListResponse struct {
	OwnerID string              `json:"owner_id"`
	Tasks   []domain.TaskRecord `json:"tasks"`
}

// TaskHandler serves the task list
type TaskHandler struct {
	tasks repository.TaskStore
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks repository.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// HandleListTasks lists an owner's tasks ordered by due date
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} TaskListResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [get]
func (h *TaskHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := GetQueryParam(r, w, ParamOwnerID)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListTasksFailed, err)
		return
	}
	if tasks == nil {
		tasks = []domain.TaskRecord{}
	}

	respondJSON(w, http.StatusOK, TaskListResponse{OwnerID: ownerID, Tasks: tasks})
}

// HandleMarkDone completes a task. Completing twice keeps the first time.
// @Summary Complete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} domain.TaskRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id}/done [post]
func (h *TaskHandler) HandleMarkDone(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := GetQueryParam(r, w, ParamOwnerID)
	if !ok {
		return
	}
	id := chi.URLParam(r, ParamTaskID)

	task, err := h.tasks.MarkDone(r.Context(), ownerID, id)
	if err != nil {
		respondServiceError(w, r, ErrMsgMarkDoneFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgTaskCompleted, "owner_id", ownerID, "task_id", id)
	respondJSON(w, http.StatusOK, task)
}
