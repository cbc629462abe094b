package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webfolio/contact-backend/types"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestCheckHealthUp(t *testing.T) {
	svc := NewHealthService(&fakePinger{}, "test")

	health := svc.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["database"].Status)
	assert.Equal(t, "test", health.Version)
	assert.NotEmpty(t, health.Timestamp)
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	svc := NewHealthService(&fakePinger{err: errors.New("dial refused")}, "test")

	health := svc.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDown, health.Status)
	assert.Equal(t, types.HealthStatusDown, health.Components["database"].Status)
	assert.Equal(t, "Database connection failed", health.Components["database"].Details)
}
