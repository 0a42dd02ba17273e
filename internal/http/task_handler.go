package http

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"taskboard/internal/tasks"
)

// TaskHandler exposes task CRUD endpoints.
type TaskHandler struct {
	service *tasks.Service
	logger  *slog.Logger
}

// NewTaskHandler creates a handler.
func NewTaskHandler(service *tasks.Service, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

// List returns all tasks ordered by creation time descending.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create stores a new task. Title and description are required; completed
// defaults to false when omitted.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
	}

	if err := decodeJSONBody(w, r, &payload); err != nil {
		writeJSONDecodeError(w, err)
		return
	}

	task, err := h.service.Create(r.Context(), tasks.CreateTaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   payload.Completed,
	})
	if err != nil {
		if errors.Is(err, tasks.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Title and description are required")
			return
		}
		h.logger.Error("create task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// Update applies a partial merge to an existing task. Only fields present in
// the request body overwrite stored values.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var payload struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}

	if err := decodeJSONBody(w, r, &payload); err != nil {
		writeJSONDecodeError(w, err)
		return
	}

	task, err := h.service.Update(r.Context(), id, tasks.UpdateTaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   payload.Completed,
	})
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.logger.Error("update task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.logger.Error("delete task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

func parseUUIDParam(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	value := chi.URLParam(r, key)
	id, err := uuid.Parse(value)
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return id, true
}
