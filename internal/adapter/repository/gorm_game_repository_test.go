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

func TestGameRelationsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	games := NewGormGameRepository(db)
	genres := NewGormGenreRepository(db)
	platforms := NewGormPlatformRepository(db)

	rpg := addGenre(t, genres, "RPG", nil)
	pc := entity.NewPlatform("PC")
	_, err := platforms.Add(ctx, &pc)
	require.NoError(t, err)

	game := entity.NewGame("Baldur's Gate 3", "bg3")
	game.Genres = []entity.Genre{rpg, rpg}
	game.Platforms = []entity.Platform{pc}
	_, err = games.Add(ctx, &game)
	require.NoError(t, err)

	got, err := games.GetByID(ctx, game.ID, "Genres", "platforms")
	require.NoError(t, err)
	assert.Len(t, got.Genres, 1)
	assert.Len(t, got.Platforms, 1)

	plain, err := games.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, plain.Genres, "relations load only on request")

	got.Genres = nil
	ok, err := games.Update(ctx, got)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = games.GetByID(ctx, game.ID, "genres", "platforms")
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
	assert.Len(t, got.Platforms, 1)
}

func TestGameListByGenreAndPlatform(t *testing.T) {
	db := newTestDB(t)
	games := NewGormGameRepository(db)
	genres := NewGormGenreRepository(db)
	platforms := NewGormPlatformRepository(db)

	strategy := addGenre(t, genres, "Strategy", nil)
	racing := addGenre(t, genres, "Racing", nil)
	sw := entity.NewPlatform("Switch")
	_, err := platforms.Add(ctx, &sw)
	require.NoError(t, err)

	for _, g := range []struct {
		key      string
		genre    entity.Genre
		onSwitch bool
	}{
		{"civ", strategy, true},
		{"aoe", strategy, false},
		{"mario-kart", racing, true},
	} {
		game := entity.NewGame(g.key, g.key)
		game.Genres = []entity.Genre{g.genre}
		if g.onSwitch {
			game.Platforms = []entity.Platform{sw}
		}
		_, err := games.Add(ctx, &game)
		require.NoError(t, err)
	}

	res, err := games.ListByGenre(ctx, strategy.ID, utils.NewPagingParams(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Items, 1)
	assert.Contains(t, []string{"civ", "aoe"}, res.Items[0].Key)

	res, err = games.ListByPlatform(ctx, sw.ID, utils.PagingParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalItems)

	res, err = games.ListByGenre(ctx, uuid.New(), utils.PagingParams{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.TotalItems)
}

func TestGameKeyIsUnique(t *testing.T) {
	repo := NewGormGameRepository(newTestDB(t))
	first := entity.NewGame("Hades", "hades")
	_, err := repo.Add(ctx, &first)
	require.NoError(t, err)

	second := entity.NewGame("Hades II", "hades")
	_, err = repo.Add(ctx, &second)
	assert.True(t, errors.Is(err, errors.CodeConflict))

	got, err := repo.GetByKey(ctx, "hades")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	missing, err := repo.GetByKey(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGameDeleteRemovesLicenseAndLinks(t *testing.T) {
	db := newTestDB(t)
	games := NewGormGameRepository(db)
	licenses := NewGormLicenseRepository(db)
	platforms := NewGormPlatformRepository(db)

	ps := entity.NewPlatform("PS5")
	_, err := platforms.Add(ctx, &ps)
	require.NoError(t, err)

	game := entity.NewGame("Returnal", "returnal")
	game.Platforms = []entity.Platform{ps}
	_, err = games.Add(ctx, &game)
	require.NoError(t, err)

	lic := entity.NewLicense(game.ID, "LIC-1")
	_, err = licenses.Add(ctx, &lic)
	require.NoError(t, err)

	ok, err := games.Delete(ctx, game.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := licenses.GetByGameID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var links int64
	require.NoError(t, db.Model(&entity.GamePlatform{}).Count(&links).Error)
	assert.Zero(t, links)

	remaining, err := platforms.Count(ctx, repository.QueryCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}

func TestLicenseGameIDIsUnique(t *testing.T) {
	db := newTestDB(t)
	licenses := NewGormLicenseRepository(db)
	game := entity.NewGame("Celeste", "celeste")
	_, err := NewGormGameRepository(db).Add(ctx, &game)
	require.NoError(t, err)
	gameID := game.ID

	first := entity.NewLicense(gameID, "A")
	_, err = licenses.Add(ctx, &first)
	require.NoError(t, err)

	second := entity.NewLicense(gameID, "B")
	_, err = licenses.Add(ctx, &second)
	assert.True(t, errors.Is(err, errors.CodeConflict))
}
