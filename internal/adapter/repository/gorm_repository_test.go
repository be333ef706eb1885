package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/utils"
)

func seedPlatforms(t *testing.T, repo repository.PlatformRepository, n int) []entity.Platform {
	t.Helper()
	out := make([]entity.Platform, 0, n)
	for i := 0; i < n; i++ {
		p := entity.NewPlatform(fmt.Sprintf("platform-%02d", i))
		_, err := repo.Add(ctx, &p)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestQueryVisitsEveryRecordOnce(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	seeded := seedPlatforms(t, repo, 23)

	for _, pageSize := range []int{1, 5, 10, 23, 50} {
		seen := map[uuid.UUID]int{}
		first, err := repo.Query(ctx, repository.QueryCriteria{}, utils.NewPagingParams(1, pageSize))
		require.NoError(t, err)
		assert.Equal(t, int64(23), first.TotalItems)
		assert.Equal(t, utils.TotalPages(23, pageSize), first.TotalPages)

		for page := 1; page <= first.TotalPages; page++ {
			res, err := repo.Query(ctx, repository.QueryCriteria{}, utils.NewPagingParams(page, pageSize))
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Items), pageSize)
			for _, p := range res.Items {
				seen[p.ID]++
			}
		}

		assert.Len(t, seen, len(seeded), "page size %d", pageSize)
		for id, n := range seen {
			assert.Equal(t, 1, n, "platform %s seen %d times", id, n)
		}
	}
}

func TestQueryCountsFilteredRecords(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	seedPlatforms(t, repo, 12)

	criteria := repository.QueryCriteria{}.Where("name", repository.OpLike, "PLATFORM-0")
	res, err := repo.Query(ctx, criteria, utils.NewPagingParams(1, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.TotalItems)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Items, 4)

	count, err := repo.Count(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestQueryContainsMatchesWildcardsLiterally(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	for _, name := range []string{"Half%Price", "Under_Score", "Back\\Slash", "Plain"} {
		p := entity.NewPlatform(name)
		_, err := repo.Add(ctx, &p)
		require.NoError(t, err)
	}

	cases := map[string]int64{
		"%":     1,
		"_":     1,
		"\\":    1,
		"%p":    1,
		"plain": 1,
		"a":     3,
		"zz%":   0,
	}
	for search, want := range cases {
		count, err := repo.Count(ctx, repository.QueryCriteria{}.Where("name", repository.OpLike, search))
		require.NoError(t, err)
		assert.Equal(t, want, count, "search %q", search)
	}
}

func TestQuerySortsByRequestedField(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	seedPlatforms(t, repo, 5)

	res, err := repo.Query(ctx, repository.QueryCriteria{Sort: repository.ParseSort("-name")}, utils.PagingParams{})
	require.NoError(t, err)

	require.Len(t, res.Items, 5)
	assert.Equal(t, "platform-04", res.Items[0].Name)
	assert.Equal(t, "platform-00", res.Items[4].Name)
}

func TestQueryDefaultsToInsertionOrder(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	names := []string{"Xbox", "PC", "Switch"}
	for _, name := range names {
		p := entity.NewPlatform(name)
		_, err := repo.Add(ctx, &p)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	res, err := repo.Query(ctx, repository.QueryCriteria{}, utils.PagingParams{})
	require.NoError(t, err)

	got := make([]string, 0, len(res.Items))
	for _, p := range res.Items {
		got = append(got, p.Name)
	}
	assert.Equal(t, names, got)
}

func TestQueryRejectsUnknownFieldsAndRelations(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))

	_, err := repo.Query(ctx, repository.QueryCriteria{Sort: repository.ParseSort("password")}, utils.PagingParams{})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = repo.Query(ctx, repository.QueryCriteria{}.Where("name; DROP TABLE platforms", repository.OpEq, "x"), utils.PagingParams{})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = repo.Query(ctx, repository.QueryCriteria{Include: []string{"games"}}, utils.PagingParams{})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestExistsAndGetByID(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	p := seedPlatforms(t, repo, 1)[0]

	ok, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)

	missing, err := repo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddAssignsMissingID(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))

	stored, err := repo.Add(ctx, &entity.Platform{Name: "Stadia"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestAddAndUpdateRejectNil(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))

	_, err := repo.Add(ctx, nil)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = repo.Update(ctx, nil)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestUpdateReplacesRecord(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	p := entity.NewPlatform("PS4")
	p.Description = "Sony"
	_, err := repo.Add(ctx, &p)
	require.NoError(t, err)

	ok, err := repo.Update(ctx, &entity.Platform{ID: p.ID, Name: "PS5"})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "PS5", got.Name)
	assert.Empty(t, got.Description, "full replace clears omitted fields")
	assert.WithinDuration(t, p.CreatedAt, got.CreatedAt, time.Second)
}

func TestUpdateMissingReturnsFalse(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))

	ok, err := repo.Update(ctx, &entity.Platform{ID: uuid.New(), Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repo.Count(ctx, repository.QueryCriteria{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteTwice(t *testing.T) {
	repo := NewGormPlatformRepository(newTestDB(t))
	p := seedPlatforms(t, repo, 1)[0]

	ok, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConditionOperators(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormGameRepository(db)
	for i, price := range []float64{5, 15, 25, 35} {
		g := entity.NewGame(fmt.Sprintf("Game %d", i), fmt.Sprintf("game-%d", i))
		g.Price = price
		_, err := repo.Add(ctx, &g)
		require.NoError(t, err)
	}

	count := func(c repository.QueryCriteria) int64 {
		n, err := repo.Count(ctx, c)
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, int64(2), count(repository.QueryCriteria{}.Where("price", repository.OpGte, 15).Where("price", repository.OpLt, 35)))
	assert.Equal(t, int64(3), count(repository.QueryCriteria{}.Where("key", repository.OpNe, "game-0")))
	assert.Equal(t, int64(1), count(repository.QueryCriteria{}.Where("Name", repository.OpEqFold, "GAME 2")))
	assert.Equal(t, int64(2), count(repository.QueryCriteria{}.Where("key", repository.OpIn, []interface{}{"game-1", "game-3"})))
	assert.Equal(t, int64(1), count(repository.QueryCriteria{}.Where("price", repository.OpGt, 30)))
	assert.Equal(t, int64(1), count(repository.QueryCriteria{}.Where("price", repository.OpLte, 5)))
}
