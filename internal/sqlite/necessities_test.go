package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplove-app/uplove/pkg/types"
)

func TestCreateNecessityRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	person, err := s.CreatePerson(ctx, "Anna")
	require.NoError(t, err)

	created, err := s.CreateNecessity(ctx, person.ID, " Quiet time ", " An hour alone after work ")
	require.NoError(t, err)
	assert.Equal(t, "Quiet time", created.Name)
	assert.Equal(t, "An hour alone after work", created.Description)

	got, err := s.GetNecessity(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestCreateNecessityMissingPerson(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.CreateNecessity(ctx, "missing-person", "Quiet time", "An hour alone")
	assert.True(t, types.IsNotFound(err), "expected NotFound for missing owner, got %v", err)
}

func TestCreateNecessityValidation(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	person, err := s.CreatePerson(ctx, "Anna")
	require.NoError(t, err)

	_, err = s.CreateNecessity(ctx, person.ID, "", "desc")
	assert.True(t, types.IsValidation(err))

	_, err = s.CreateNecessity(ctx, person.ID, "name", strings.Repeat("d", 1001))
	assert.True(t, types.IsValidation(err), "description over 1000 chars is rejected")
}

func TestGetNecessitiesByPerson(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.GetNecessitiesByPerson(ctx, "missing-person")
	assert.True(t, types.IsNotFound(err))

	person, err := s.CreatePerson(ctx, "Anna")
	require.NoError(t, err)

	necessities, err := s.GetNecessitiesByPerson(ctx, person.ID)
	require.NoError(t, err)
	assert.Empty(t, necessities)

	_, err = s.CreateNecessity(ctx, person.ID, "Quiet time", "An hour alone")
	require.NoError(t, err)
	_, err = s.CreateNecessity(ctx, person.ID, "Exercise", "Regular runs")
	require.NoError(t, err)

	necessities, err = s.GetNecessitiesByPerson(ctx, person.ID)
	require.NoError(t, err)
	assert.Len(t, necessities, 2)
}

func TestUpdateNecessity(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	err := s.UpdateNecessity(ctx, "missing-id", "name", "desc")
	assert.True(t, types.IsNotFound(err))

	person, err := s.CreatePerson(ctx, "Anna")
	require.NoError(t, err)
	necessity, err := s.CreateNecessity(ctx, person.ID, "Quiet time", "An hour alone")
	require.NoError(t, err)

	require.NoError(t, s.UpdateNecessity(ctx, necessity.ID, "Down time", "Two hours alone"))

	got, err := s.GetNecessity(ctx, necessity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Down time", got.Name)
	assert.Equal(t, "Two hours alone", got.Description)
}

func TestDeleteNecessity(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	err := s.DeleteNecessity(ctx, "missing-id")
	assert.True(t, types.IsNotFound(err))

	person, err := s.CreatePerson(ctx, "Anna")
	require.NoError(t, err)
	necessity, err := s.CreateNecessity(ctx, person.ID, "Quiet time", "An hour alone")
	require.NoError(t, err)

	require.NoError(t, s.DeleteNecessity(ctx, necessity.ID))

	got, err := s.GetNecessity(ctx, necessity.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Owner is untouched.
	gotPerson, err := s.GetPerson(ctx, person.ID)
	require.NoError(t, err)
	require.NotNil(t, gotPerson)
	assert.Empty(t, gotPerson.Necessities)
}
