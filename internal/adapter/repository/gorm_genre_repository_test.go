package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/utils"
)

func addGenre(t *testing.T, repo repository.GenreRepository, name string, parent *uuid.UUID) entity.Genre {
	t.Helper()
	g := entity.NewGenre(name, parent)
	_, err := repo.Add(ctx, &g)
	require.NoError(t, err)
	return g
}

func TestGenreAddValidatesParent(t *testing.T) {
	repo := NewGormGenreRepository(newTestDB(t))
	root := addGenre(t, repo, "Action", nil)

	child := addGenre(t, repo, "Shooter", &root.ID)
	assert.Equal(t, root.ID, *child.ParentID)

	nilParent := uuid.Nil
	g := entity.NewGenre("Broken", &nilParent)
	_, err := repo.Add(ctx, &g)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	unknown := uuid.New()
	g = entity.NewGenre("Orphan", &unknown)
	_, err = repo.Add(ctx, &g)
	assert.True(t, errors.IsNotFound(err))

	count, err := repo.Count(ctx, repository.QueryCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGenreUpdateRejectsCycles(t *testing.T) {
	repo := NewGormGenreRepository(newTestDB(t))
	a := addGenre(t, repo, "A", nil)
	b := addGenre(t, repo, "B", &a.ID)
	c := addGenre(t, repo, "C", &b.ID)

	a.ParentID = &c.ID
	_, err := repo.Update(ctx, &a)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	b.ParentID = &b.ID
	_, err = repo.Update(ctx, &b)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	c.ParentID = &a.ID
	ok, err := repo.Update(ctx, &c)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenreUpdateMissingReturnsFalse(t *testing.T) {
	repo := NewGormGenreRepository(newTestDB(t))
	unknown := uuid.New()

	ok, err := repo.Update(ctx, &entity.Genre{ID: uuid.New(), Name: "ghost", ParentID: &unknown})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenreDeletePromotesChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormGenreRepository(db)
	games := NewGormGameRepository(db)

	action := addGenre(t, repo, "Action", nil)
	shooter := addGenre(t, repo, "Shooter", &action.ID)
	fps := addGenre(t, repo, "FPS", &shooter.ID)

	game := entity.NewGame("Doom", "doom")
	game.Genres = []entity.Genre{action, shooter}
	_, err := games.Add(ctx, &game)
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, action.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, shooter.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsRoot())

	grandchild, err := repo.GetByID(ctx, fps.ID)
	require.NoError(t, err)
	require.NotNil(t, grandchild)
	assert.Equal(t, shooter.ID, *grandchild.ParentID, "only direct children are promoted")

	stored, err := games.GetByID(ctx, game.ID, "genres")
	require.NoError(t, err)
	require.Len(t, stored.Genres, 1)
	assert.Equal(t, shooter.ID, stored.Genres[0].ID)

	ok, err = repo.Delete(ctx, action.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenreSubGenresFilter(t *testing.T) {
	repo := NewGormGenreRepository(newTestDB(t))
	root := addGenre(t, repo, "RPG", nil)
	addGenre(t, repo, "JRPG", &root.ID)
	addGenre(t, repo, "ARPG", &root.ID)
	addGenre(t, repo, "Puzzle", nil)

	res, err := repo.Query(ctx, repository.QueryCriteria{}.Where("parent_id", repository.OpEq, root.ID), utils.PagingParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalItems)

	roots, err := repo.Count(ctx, repository.QueryCriteria{}.Where("ParentID", repository.OpNull, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(2), roots)

	withChildren, err := repo.GetByID(ctx, root.ID, "sub_genres")
	require.NoError(t, err)
	assert.Len(t, withChildren.SubGenres, 2)
}
