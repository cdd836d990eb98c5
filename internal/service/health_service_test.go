package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

type stubHealthRepo struct {
	now time.Time
	err error
}

func (s stubHealthRepo) Now(ctx context.Context) (time.Time, error) {
	return s.now, s.err
}

func TestHealthServicePing(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	got, err := NewHealthService(stubHealthRepo{now: now}, nil).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestHealthServicePingFailure(t *testing.T) {
	_, err := NewHealthService(stubHealthRepo{err: errors.New("connection refused")}, nil).Ping(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrStorage.Code, appErr.Code)
	assert.Equal(t, "connection refused", appErr.Details())
}
