package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplove-app/uplove/pkg/types"
)

func TestCreateUpLoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)

	date := time.Now().Add(-time.Hour)
	created, err := s.CreateUpLove(ctx, date,
		[]string{pillar.ID}, []string{" Listen more "}, []string{"Great week"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Listen more"}, created.ToImprove)
	assert.Equal(t, []string{"Great week"}, created.ToPraise)

	got, err := s.GetUpLove(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Pillars, 1)
	assert.Equal(t, "Communication", got.Pillars[0].Name)
	assert.Equal(t, 8, got.Pillars[0].Satisfaction)
	assert.Equal(t, []string{"Listen more"}, got.ToImprove)
	assert.Equal(t, []string{"Great week"}, got.ToPraise)
	assert.Equal(t, date.UnixMilli(), got.Date.UnixMilli(), "dates round-trip at millisecond precision")
}

func TestCreateUpLoveAtomicity(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)

	// Second pillar id does not exist: nothing may persist.
	_, err = s.CreateUpLove(ctx, time.Now(),
		[]string{pillar.ID, "missing-pillar"}, []string{"Listen more"}, nil)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
	assert.Contains(t, err.Error(), "missing-pillar", "the error names the dangling id")

	upLoves, err := s.GetAllUpLoves(ctx)
	require.NoError(t, err)
	assert.Empty(t, upLoves, "partial writes never persist")

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM up_love_pillars").Scan(&count))
	assert.Zero(t, count)
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM up_love_items").Scan(&count))
	assert.Zero(t, count)
}

func TestCreateUpLoveValidation(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillarIDs := make([]string, types.MaxUpLovePillars+1)
	for i := range pillarIDs {
		pillarIDs[i] = generateID()
	}
	_, err := s.CreateUpLove(ctx, time.Now(), pillarIDs, nil, nil)
	assert.True(t, types.IsValidation(err), "over ten pillar refs rejected")

	_, err = s.CreateUpLove(ctx, time.Time{}, nil, nil, nil)
	assert.True(t, types.IsValidation(err), "zero date rejected")

	_, err = s.CreateUpLove(ctx, time.Now(), nil, []string{"a", "a"}, nil)
	assert.True(t, types.IsValidation(err), "duplicate items rejected")
}

func TestGetUpLoveMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	got, err := s.GetUpLove(ctx, "missing-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUpLoveDanglingPillarIsDataIntegrity(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)
	upLove, err := s.CreateUpLove(ctx, time.Now(), []string{pillar.ID}, nil, nil)
	require.NoError(t, err)

	// Force the corruption the store normally refuses: drop the pillar row
	// behind its back with enforcement off. Pinning one connection keeps the
	// pragma and the delete together; enforcement stays on everywhere else.
	conn, err := s.db.Conn(ctx)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF;")
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "DELETE FROM pillars WHERE id = ?", pillar.ID)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON;")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	_, err = s.GetUpLove(ctx, upLove.ID)
	assert.True(t, types.IsDataIntegrity(err),
		"dangling stored reference is DataIntegrity, not NotFound; got %v", err)
	assert.False(t, types.IsNotFound(err))
}

func TestGetAllUpLoves(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	upLoves, err := s.GetAllUpLoves(ctx)
	require.NoError(t, err)
	require.NotNil(t, upLoves)
	assert.Empty(t, upLoves)

	first, err := s.CreateUpLove(ctx, time.Now().Add(-48*time.Hour), nil, []string{"Listen more"}, nil)
	require.NoError(t, err)
	second, err := s.CreateUpLove(ctx, time.Now().Add(-24*time.Hour), nil, nil, []string{"Great week"})
	require.NoError(t, err)

	upLoves, err = s.GetAllUpLoves(ctx)
	require.NoError(t, err)
	require.Len(t, upLoves, 2)
	assert.Equal(t, first.ID, upLoves[0].ID, "oldest first")
	assert.Equal(t, second.ID, upLoves[1].ID)
}

func TestUpdateUpLoveReplacesAssociations(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	communication, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)
	trust, err := s.CreatePillar(ctx, "Trust", "medium", 6)
	require.NoError(t, err)

	upLove, err := s.CreateUpLove(ctx, time.Now(),
		[]string{communication.ID}, []string{"Listen more"}, []string{"Great week"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateUpLove(ctx, upLove.ID,
		[]string{trust.ID}, []string{"Share plans earlier"}, nil))

	got, err := s.GetUpLove(ctx, upLove.ID)
	require.NoError(t, err)
	require.Len(t, got.Pillars, 1)
	assert.Equal(t, trust.ID, got.Pillars[0].ID, "old references are fully replaced")
	assert.Equal(t, []string{"Share plans earlier"}, got.ToImprove)
	assert.Empty(t, got.ToPraise)
	assert.Equal(t, upLove.Date.UnixMilli(), got.Date.UnixMilli(), "date is not mutable")
}

func TestUpdateUpLoveErrors(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	err := s.UpdateUpLove(ctx, "missing-id", nil, nil, nil)
	assert.True(t, types.IsNotFound(err))

	upLove, err := s.CreateUpLove(ctx, time.Now(), nil, []string{"Listen more"}, nil)
	require.NoError(t, err)

	err = s.UpdateUpLove(ctx, upLove.ID, []string{"missing-pillar"}, nil, nil)
	assert.True(t, types.IsNotFound(err))

	// The failed update must not have touched the existing lists.
	got, err := s.GetUpLove(ctx, upLove.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Listen more"}, got.ToImprove)
}

func TestDeleteUpLove(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	err := s.DeleteUpLove(ctx, "missing-id")
	assert.True(t, types.IsNotFound(err))

	pillar, err := s.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)
	upLove, err := s.CreateUpLove(ctx, time.Now(),
		[]string{pillar.ID}, []string{"Listen more"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUpLove(ctx, upLove.ID))

	got, err := s.GetUpLove(ctx, upLove.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Association and item rows followed the snapshot.
	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM up_love_pillars").Scan(&count))
	assert.Zero(t, count)
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM up_love_items").Scan(&count))
	assert.Zero(t, count)

	// The pillar itself is untouched and deletable again.
	require.NoError(t, s.DeletePillar(ctx, pillar.ID))
}

func TestUpLoveItemOrderPreserved(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	items := []string{"c", "a", "b"}
	upLove, err := s.CreateUpLove(ctx, time.Now(), nil, items, nil)
	require.NoError(t, err)

	got, err := s.GetUpLove(ctx, upLove.ID)
	require.NoError(t, err)
	assert.Equal(t, items, got.ToImprove, "lists keep insertion order")
}
