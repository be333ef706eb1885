package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/pkg/errors"
	"gamestore/pkg/utils"
)

func TestGenreParentRules(t *testing.T) {
	uc := NewGenreUseCase(newFixture(t).genres)

	unknown := uuid.New()
	_, err := uc.Add(ctx, &CreateGenreInput{Name: "Orphan", ParentID: &unknown})
	assert.True(t, errors.IsNotFound(err))

	empty := uuid.Nil
	_, err = uc.Add(ctx, &CreateGenreInput{Name: "Empty", ParentID: &empty})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

// Action <- Shooter: deleting Action leaves Shooter as a root genre.
func TestGenreDeletePromotesChildrenToRoot(t *testing.T) {
	uc := NewGenreUseCase(newFixture(t).genres)

	action, err := uc.Add(ctx, &CreateGenreInput{Name: "Action"})
	require.NoError(t, err)
	shooter, err := uc.Add(ctx, &CreateGenreInput{Name: "Shooter", ParentID: &action.ID})
	require.NoError(t, err)

	subs, err := uc.ListSubGenres(ctx, action.ID, utils.PagingParams{})
	require.NoError(t, err)
	require.Len(t, subs.Items, 1)
	assert.Equal(t, shooter.ID, subs.Items[0].ID)

	ok, err := uc.Delete(ctx, action.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := uc.GetByID(ctx, shooter.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ParentID)

	_, err = uc.ListSubGenres(ctx, action.ID, utils.PagingParams{})
	assert.True(t, errors.IsNotFound(err))
}

func TestGenreGetByIDIncludesSubGenres(t *testing.T) {
	uc := NewGenreUseCase(newFixture(t).genres)

	racing, err := uc.Add(ctx, &CreateGenreInput{Name: "Racing"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, &CreateGenreInput{Name: "Kart", ParentID: &racing.ID})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, racing.ID, "subGenres")
	require.NoError(t, err)
	require.Len(t, got.SubGenres, 1)
	assert.Equal(t, "Kart", got.SubGenres[0].Name)
}
