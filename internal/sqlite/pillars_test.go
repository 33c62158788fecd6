package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplove-app/uplove/pkg/types"
)

func TestCreatePillarRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	created, err := s.CreatePillar(ctx, " Communication ", "high", 8)
	require.NoError(t, err)
	assert.Equal(t, "Communication", created.Name)
	assert.Equal(t, types.PriorityHigh, created.Priority)
	assert.Equal(t, 8, created.Satisfaction)

	got, err := s.GetPillar(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestCreatePillarValidation(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	tests := []struct {
		name         string
		pillarName   string
		priority     string
		satisfaction int
	}{
		{name: "invalid priority", pillarName: "X", priority: "extreme", satisfaction: 5},
		{name: "satisfaction zero", pillarName: "X", priority: "high", satisfaction: 0},
		{name: "satisfaction eleven", pillarName: "X", priority: "high", satisfaction: 11},
		{name: "empty name", pillarName: "", priority: "high", satisfaction: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreatePillar(ctx, tt.pillarName, tt.priority, tt.satisfaction)
			assert.True(t, types.IsValidation(err), "expected ValidationError, got %v", err)
		})
	}

	pillars, err := s.GetAllPillars(ctx)
	require.NoError(t, err)
	assert.Empty(t, pillars, "rejected inputs must not write rows")
}

func TestUpdatePillar(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	err := s.UpdatePillar(ctx, "missing-id", "X", "high", 5)
	assert.True(t, types.IsNotFound(err))

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)

	require.NoError(t, s.UpdatePillar(ctx, pillar.ID, "Listening", "very-high", 6))

	got, err := s.GetPillar(ctx, pillar.ID)
	require.NoError(t, err)
	assert.Equal(t, "Listening", got.Name)
	assert.Equal(t, types.PriorityVeryHigh, got.Priority)
	assert.Equal(t, 6, got.Satisfaction)

	err = s.UpdatePillar(ctx, pillar.ID, "Listening", "very-high", 11)
	assert.True(t, types.IsValidation(err), "out-of-range satisfaction is rejected, not clamped")
}

func TestDeletePillar(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)

	require.NoError(t, s.DeletePillar(ctx, pillar.ID))

	got, err := s.GetPillar(ctx, pillar.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeletePillarReferencedByCheckIn(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)
	_, err = s.CreateUpLove(ctx, time.Now(), []string{pillar.ID}, nil, nil)
	require.NoError(t, err)

	err = s.DeletePillar(ctx, pillar.ID)
	assert.True(t, types.IsDataIntegrity(err), "deleting a referenced pillar is refused, got %v", err)

	got, err := s.GetPillar(ctx, pillar.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "refused delete leaves the pillar in place")
}

func TestGetPillarStats(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	stats, err := s.GetPillarStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	require.Len(t, stats.ByPriority, len(types.Priorities))

	_, err = s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)
	_, err = s.CreatePillar(ctx, "Trust", "high", 6)
	require.NoError(t, err)
	_, err = s.CreatePillar(ctx, "Fun", "low", 9)
	require.NoError(t, err)

	stats, err = s.GetPillarStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)

	byPriority := make(map[types.Priority]types.PriorityStats)
	sum := 0
	for _, bucket := range stats.ByPriority {
		byPriority[bucket.Priority] = bucket
		sum += bucket.Count
	}
	assert.Equal(t, 3, sum, "bucket counts sum to the pillar total")
	assert.Equal(t, 2, byPriority[types.PriorityHigh].Count)
	assert.InDelta(t, 7.0, byPriority[types.PriorityHigh].MeanSatisfaction, 0.001)
	assert.Equal(t, 1, byPriority[types.PriorityLow].Count)
	assert.InDelta(t, 9.0, byPriority[types.PriorityLow].MeanSatisfaction, 0.001)
	assert.Equal(t, 0, byPriority[types.PriorityMedium].Count)
}
