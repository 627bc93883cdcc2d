package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/mock"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTagSvc(t *testing.T) (*tagService, *mock.MockTagRepository, *mock.MockTaskRepository) {
	t.Helper()
	svc, _, tags, tasks := newTestTagSvcWithUsers(t)
	return svc, tags, tasks
}

func newTestTagSvcWithUsers(t *testing.T) (*tagService, *mock.MockUserRepository, *mock.MockTagRepository, *mock.MockTaskRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	tags := mock.NewMockTagRepository(ctrl)
	tasks := mock.NewMockTaskRepository(ctrl)

	svc := NewTagService(users, tags, tasks, validators.NewRequestValidator(), logger.Nop()).(*tagService)
	svc.now = func() time.Time { return fixedNow }

	return svc, users, tags, tasks
}

func returnTag(_ context.Context, tag models.Tag) (models.Tag, error) {
	return tag, nil
}

func TestTagService_CreateTag(t *testing.T) {
	svc, tags, _ := newTestTagSvc(t)

	tags.EXPECT().CreateTag(gomock.Any(), gomock.Any()).DoAndReturn(returnTag)

	got, err := svc.CreateTag(context.Background(), testUserID, models.Tag{
		TagName:  "home",
		TagColor: "#00ff00",
		// client supplied owner is ignored
		UserID: "someone-else",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, testUserID, got.UserID)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestTagService_CreateTag_MissingColor(t *testing.T) {
	svc, _, _ := newTestTagSvc(t)

	_, err := svc.CreateTag(context.Background(), testUserID, models.Tag{TagName: "home"})

	require.ErrorIs(t, err, validators.ErrInvalidData)
	assert.Contains(t, err.Error(), "tagColor is required")
}

func TestTagService_CreateTag_Duplicate(t *testing.T) {
	svc, tags, _ := newTestTagSvc(t)

	tags.EXPECT().CreateTag(gomock.Any(), gomock.Any()).Return(models.Tag{}, store.ErrTagAlreadyExists)

	_, err := svc.CreateTag(context.Background(), testUserID, models.Tag{TagName: "home", TagColor: "red"})

	assert.ErrorIs(t, err, store.ErrTagAlreadyExists)
}

func TestTagService_CreateTagForTask(t *testing.T) {
	svc, tags, tasks := newTestTagSvc(t)

	tasks.EXPECT().GetTask(gomock.Any(), testUserID, testTaskID).Return(models.Task{ID: testTaskID}, nil)
	tags.EXPECT().CreateTagForTask(gomock.Any(), gomock.Any(), testTaskID).DoAndReturn(
		func(_ context.Context, tag models.Tag, _ string) (models.Tag, error) {
			return tag, nil
		},
	)

	got, err := svc.CreateTagForTask(context.Background(), testUserID, testTaskID,
		models.Tag{TagName: "urgent", TagColor: "red"})
	require.NoError(t, err)

	assert.Equal(t, "urgent", got.TagName)
}

func TestTagService_CreateTagForTask_ForeignTask(t *testing.T) {
	svc, _, tasks := newTestTagSvc(t)

	tasks.EXPECT().GetTask(gomock.Any(), testUserID, testTaskID).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.CreateTagForTask(context.Background(), testUserID, testTaskID,
		models.Tag{TagName: "urgent", TagColor: "red"})

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTagService_CreateTagForTask_MalformedTaskID(t *testing.T) {
	svc, _, _ := newTestTagSvc(t)

	_, err := svc.CreateTagForTask(context.Background(), testUserID, "abc",
		models.Tag{TagName: "urgent", TagColor: "red"})

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTagService_ListTags(t *testing.T) {
	svc, users, tags, _ := newTestTagSvcWithUsers(t)

	users.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(models.User{ID: testUserID}, nil)
	tags.EXPECT().ListTags(gomock.Any(), testUserID).Return([]models.Tag{{ID: testTagID}}, nil)

	got, err := svc.ListTags(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Len(t, got, 1)
}

func TestTagService_ListTags_UnknownUser(t *testing.T) {
	svc, users, _, _ := newTestTagSvcWithUsers(t)

	users.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.ListTags(context.Background(), testUserID)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestTagService_ListTags_MalformedUserID(t *testing.T) {
	svc, _, _, _ := newTestTagSvcWithUsers(t)

	_, err := svc.ListTags(context.Background(), "abc")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestTagService_GetTag_MalformedID(t *testing.T) {
	svc, _, _ := newTestTagSvc(t)

	_, err := svc.GetTag(context.Background(), testUserID, "abc")

	assert.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestTagService_UpdateTag(t *testing.T) {
	svc, tags, _ := newTestTagSvc(t)

	color := "blue"
	stored := models.Tag{ID: testTagID, UserID: testUserID, TagName: "home", TagColor: "red"}
	tags.EXPECT().GetTag(gomock.Any(), testUserID, testTagID).Return(stored, nil)
	tags.EXPECT().UpdateTag(gomock.Any(), gomock.Any()).DoAndReturn(returnTag)

	got, err := svc.UpdateTag(context.Background(), testUserID, testTagID, models.TagUpdate{TagColor: &color})
	require.NoError(t, err)

	assert.Equal(t, "home", got.TagName)
	assert.Equal(t, "blue", got.TagColor)
}

func TestTagService_UpdateTag_Empty(t *testing.T) {
	svc, _, _ := newTestTagSvc(t)

	_, err := svc.UpdateTag(context.Background(), testUserID, testTagID, models.TagUpdate{})

	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestTagService_UpdateTag_NotFound(t *testing.T) {
	svc, tags, _ := newTestTagSvc(t)

	name := "work"
	tags.EXPECT().GetTag(gomock.Any(), testUserID, testTagID).Return(models.Tag{}, store.ErrTagNotFound)

	_, err := svc.UpdateTag(context.Background(), testUserID, testTagID, models.TagUpdate{TagName: &name})

	assert.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestTagService_DeleteTag(t *testing.T) {
	svc, tags, _ := newTestTagSvc(t)

	tags.EXPECT().DeleteTag(gomock.Any(), testUserID, testTagID).Return(store.ErrTagNotFound)

	assert.ErrorIs(t, svc.DeleteTag(context.Background(), testUserID, testTagID), store.ErrTagNotFound)
}
