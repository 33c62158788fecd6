package uplove_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplove-app/uplove/pkg/types"
	"github.com/uplove-app/uplove/pkg/uplove"
)

// TestStoreLifecycle drives the public surface end to end: open, populate
// every entity kind, read it back, reset, close.
func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()

	store, err := uplove.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.InitializeRelationshipMetadata(ctx, "Us"))

	person, err := store.CreatePerson(ctx, "Anna")
	require.NoError(t, err)
	_, err = store.CreateNecessity(ctx, person.ID, "Quiet time", "An hour alone after work")
	require.NoError(t, err)

	pillar, err := store.CreatePillar(ctx, "Communication", "high", 8)
	require.NoError(t, err)

	checkIn, err := store.CreateUpLove(ctx, time.Now().Add(-time.Hour),
		[]string{pillar.ID}, []string{"Listen more"}, []string{"Great week"})
	require.NoError(t, err)

	got, err := store.GetUpLove(ctx, checkIn.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Pillars, 1)
	assert.Equal(t, "Communication", got.Pillars[0].Name)
	assert.Equal(t, []string{"Listen more"}, got.ToImprove)
	assert.Equal(t, []string{"Great week"}, got.ToPraise)

	persons, err := store.GetAllPersons(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Len(t, persons[0].Necessities, 1)

	require.NoError(t, store.Reset(ctx))
	metadata, err := store.GetRelationshipMetadata(ctx)
	require.NoError(t, err)
	assert.Nil(t, metadata)

	require.NoError(t, store.Close())
	_, err = store.GetAllPersons(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
