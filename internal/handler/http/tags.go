package http

import (
	"net/http"

	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-chi/chi/v5"
)

const tagIDParam = "tagId"

// createTag godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string      true  "User ID"
// @Param        tag     body      models.Tag  true  "tagName and tagColor"
// @Success      201     {object}  models.Tag
// @Failure      400     {object}  models.Message
// @Failure      409     {object}  models.Message  "Tag name already exists"
// @Router       /api/tags/{userId} [post]
func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var tag models.Tag
	if err := decodeJSON(r, &tag); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.TagService.CreateTag(r.Context(), chi.URLParam(r, userIDParam), tag)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// createTagForTask godoc
// @Summary      Create a tag on a task
// @Description  Creates the tag and links it to the task in one step.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string      true  "User ID"
// @Param        taskId  path      string      true  "Task ID"
// @Param        tag     body      models.Tag  true  "tagName and tagColor"
// @Success      201     {object}  models.Tag
// @Failure      404     {object}  models.Message  "Task Not Found"
// @Router       /api/tags/{userId}/tasks/{taskId} [post]
func (h *Handler) createTagForTask(w http.ResponseWriter, r *http.Request) {
	var tag models.Tag
	if err := decodeJSON(r, &tag); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.TagService.CreateTagForTask(r.Context(),
		chi.URLParam(r, userIDParam), chi.URLParam(r, taskIDParam), tag)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listTags godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {array}   models.Tag
// @Router       /api/tags/{userId} [get]
func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.TagService.ListTags(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

// getTag godoc
// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Param        tagId   path      string  true  "Tag ID"
// @Success      200     {object}  models.Tag
// @Failure      404     {object}  models.Message  "Not Found"
// @Router       /api/tags/{userId}/{tagId} [get]
func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.services.TagService.GetTag(r.Context(), chi.URLParam(r, userIDParam), chi.URLParam(r, tagIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

// updateTag godoc
// @Summary      Update a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string            true  "User ID"
// @Param        tagId   path      string            true  "Tag ID"
// @Param        tag     body      models.TagUpdate  true  "Fields to change"
// @Success      200     {object}  models.Tag
// @Failure      400     {object}  models.Message
// @Failure      404     {object}  models.Message  "Not Found"
// @Router       /api/tags/{userId}/{tagId} [put]
func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	var update models.TagUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.services.TagService.UpdateTag(r.Context(),
		chi.URLParam(r, userIDParam), chi.URLParam(r, tagIDParam), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

// deleteTag godoc
// @Summary      Delete a tag
// @Description  Deleting a tag detaches it from every task.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Param        tagId   path      string  true  "Tag ID"
// @Success      200     {object}  models.Message
// @Failure      404     {object}  models.Message  "Not Found"
// @Router       /api/tags/{userId}/{tagId} [delete]
func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TagService.DeleteTag(r.Context(), chi.URLParam(r, userIDParam), chi.URLParam(r, tagIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: "Tag deleted"}, http.StatusOK)
}
