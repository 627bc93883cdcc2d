package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-01-01", "")
	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "v1.2.3-beta+build.42", got.Version)
	assert.Equal(t, "2026-01-01", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestGetAppInfo_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(models.AppBuildInfo{Version: "2.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppInfo(context.Background()).Version)
	assert.Equal(t, "2.0.0", svc2.GetAppInfo(context.Background()).Version)
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
