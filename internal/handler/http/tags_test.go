package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tagsPath = "/api/tags/" + testUserID

func TestCreateTag(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().CreateTag(gomock.Any(), testUserID, models.Tag{TagName: "home", TagColor: "green"}).
		Return(models.Tag{ID: testTagID, UserID: testUserID, TagName: "home", TagColor: "green"}, nil)

	rr := api.do(http.MethodPost, tagsPath, `{"tagName":"home","tagColor":"green"}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, testTagID, decodeBody[models.Tag](t, rr).ID)
}

func TestCreateTag_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing name",
			err:         fmt.Errorf("tag validation failed: %w: tagName is required", validators.ErrInvalidData),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "duplicate name",
			err:         fmt.Errorf("tag creation ended with error: %w", store.ErrTagAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "Tag name already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.tags.EXPECT().CreateTag(gomock.Any(), testUserID, gomock.Any()).Return(models.Tag{}, tt.err)

			rr := api.do(http.MethodPost, tagsPath, `{"tagColor":"green"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestCreateTagForTask(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().CreateTagForTask(gomock.Any(), testUserID, testTaskID, gomock.Any()).
		Return(models.Tag{ID: testTagID}, nil)

	rr := api.do(http.MethodPost, tagsPath+"/tasks/"+testTaskID, `{"tagName":"urgent","tagColor":"red"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateTagForTask_UnknownTask(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().CreateTagForTask(gomock.Any(), testUserID, testTaskID, gomock.Any()).
		Return(models.Tag{}, fmt.Errorf("task lookup failed: %w", store.ErrTaskNotFound))

	rr := api.do(http.MethodPost, tagsPath+"/tasks/"+testTaskID, `{"tagName":"urgent","tagColor":"red"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task Not Found", decodeMessage(t, rr))
}

func TestListTags(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().ListTags(gomock.Any(), testUserID).Return([]models.Tag{{ID: testTagID}}, nil)

	rr := api.do(http.MethodGet, tagsPath, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Tag](t, rr), 1)
}

func TestGetTag_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().GetTag(gomock.Any(), testUserID, testTagID).Return(models.Tag{}, store.ErrTagNotFound)

	rr := api.do(http.MethodGet, tagsPath+"/"+testTagID, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeMessage(t, rr))
}

func TestUpdateTag(t *testing.T) {
	api := newTestAPI(t)

	color := "blue"
	api.tags.EXPECT().UpdateTag(gomock.Any(), testUserID, testTagID, models.TagUpdate{TagColor: &color}).
		Return(models.Tag{ID: testTagID, TagColor: color}, nil)

	rr := api.do(http.MethodPut, tagsPath+"/"+testTagID, `{"tagColor":"blue"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "blue", decodeBody[models.Tag](t, rr).TagColor)
}

func TestDeleteTag(t *testing.T) {
	api := newTestAPI(t)
	api.tags.EXPECT().DeleteTag(gomock.Any(), testUserID, testTagID).Return(nil)

	rr := api.do(http.MethodDelete, tagsPath+"/"+testTagID, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Tag deleted", decodeMessage(t, rr))
}

func TestTagRoutes_RequireToken(t *testing.T) {
	api := newTestAPI(t)

	rr := api.doAs("", http.MethodGet, tagsPath, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad request, please provide token in authorization headers", decodeMessage(t, rr))
}
