// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-chi/chi/v5"
)

const (
	taskIDParam       = "taskId"
	completionIDParam = "completionId"
)

// createTask godoc
// @Summary      Create a task
// @Description  One-off tasks need taskDate, recurring tasks need recTaskDate. Every tagId must name a tag of the user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                    true  "User ID"
// @Param        task    body      models.CreateTaskRequest  true  "Task"
// @Success      201     {object}  models.Task
// @Failure      400     {object}  models.Message  "Bad Request: Missing date field(s) / Invalid tag(s)"
// @Failure      401     {object}  models.Message
// @Router       /api/tasks/{userId} [post]
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), chi.URLParam(r, userIDParam), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

// listTasks godoc
// @Summary      List tasks
// @Description  Lists the tasks of a user. Filters combine with AND.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string    true   "User ID"
// @Param        tag     query     []string  false  "Tag ID; the task must carry every listed tag"  collectionFormat(multi)
// @Param        status  query     string    false  "completed or in-progress"
// @Param        from    query     int       false  "Lower bound of taskDate, unix seconds"
// @Param        to      query     int       false  "Upper bound of taskDate, unix seconds"
// @Success      200     {array}   models.Task
// @Failure      400     {object}  models.Message
// @Failure      404     {object}  models.Message  "User Not Found"
// @Router       /api/tasks/{userId} [get]
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := taskFilterFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

// getTask godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  models.Task
// @Failure      404     {object}  models.Message  "Task Not Found"
// @Router       /api/tasks/{userId}/{taskId} [get]
func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.services.TaskService.GetTask(r.Context(), chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// updateTask godoc
// @Summary      Update a task
// @Description  Partial update. A present tagIds replaces the tag set; the result must still satisfy the date rule.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string                    true  "User ID"
// @Param        taskId  path      string                    true  "Task ID"
// @Param        task    body      models.UpdateTaskRequest  true  "Fields to change"
// @Success      200     {object}  models.Task
// @Failure      400     {object}  models.Message
// @Failure      404     {object}  models.Message  "Task Not Found"
// @Router       /api/tasks/{userId}/{taskId} [put]
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(),
		chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// deleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  models.Message
// @Failure      404     {object}  models.Message  "Task Not Found"
// @Router       /api/tasks/{userId}/{taskId} [delete]
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TaskService.DeleteTask(r.Context(), chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: "Task deleted"}, http.StatusOK)
}

// completeTask godoc
// @Summary      Complete a task
// @Description  Marks the task done on completionDate (YYYY-MM-DD, defaults to today UTC). The body may be empty.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId      path      string                 true   "User ID"
// @Param        taskId      path      string                 true   "Task ID"
// @Param        completion  body      models.TaskCompletion  false  "completionDate"
// @Success      201         {object}  models.TaskCompletion
// @Failure      404         {object}  models.Message  "Task Not Found"
// @Failure      409         {object}  models.Message  "Task already completed on this date"
// @Router       /api/tasks/{userId}/{taskId}/completions [post]
func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	var completion models.TaskCompletion
	if err := decodeJSON(r, &completion); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, err)
		return
	}

	created, err := h.services.TaskService.CompleteTask(r.Context(),
		chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam), completion)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// uncompleteTask godoc
// @Summary      Remove a completion
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        userId        path      string  true  "User ID"
// @Param        taskId        path      string  true  "Task ID"
// @Param        completionId  path      string  true  "Completion ID"
// @Success      200           {object}  models.Message
// @Failure      404           {object}  models.Message
// @Router       /api/tasks/{userId}/{taskId}/completions/{completionId} [delete]
func (h *Handler) uncompleteTask(w http.ResponseWriter, r *http.Request) {
	err := h.services.TaskService.UncompleteTask(r.Context(),
		chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam), chi.URLParam(r, completionIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: "Completion removed"}, http.StatusOK)
}

func taskFilterFromRequest(r *http.Request) (models.TaskFilter, error) {
	query := r.URL.Query()

	filter := models.TaskFilter{
		UserID: chi.URLParam(r, userIDParam),
		TagIDs: query["tag"],
		Status: models.TaskStatus(query.Get("status")),
	}

	var err error
	if filter.From, err = unixParam(query.Get("from"), "from"); err != nil {
		return models.TaskFilter{}, err
	}
	if filter.To, err = unixParam(query.Get("to"), "to"); err != nil {
		return models.TaskFilter{}, err
	}

	return filter, nil
}

func unixParam(raw, name string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be unix seconds", validators.ErrInvalidData, name)
	}

	return &value, nil
}
