package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	adapter "gamestore/internal/adapter/repository"
	"gamestore/internal/domain/repository"
	"gamestore/internal/infrastructure/database"
)

type fixture struct {
	games       repository.GameRepository
	genres      repository.GenreRepository
	platforms   repository.PlatformRepository
	licenses    repository.LicenseRepository
	users       repository.UserRepository
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	return &fixture{
		games:       adapter.NewGormGameRepository(db),
		genres:      adapter.NewGormGenreRepository(db),
		platforms:   adapter.NewGormPlatformRepository(db),
		licenses:    adapter.NewGormLicenseRepository(db),
		users:       adapter.NewGormUserRepository(db),
		roles:       adapter.NewGormRoleRepository(db),
		permissions: adapter.NewGormPermissionRepository(db),
	}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, NewSeedUseCase(f.permissions, f.roles, f.users).Run(context.Background(), SeedInput{}))
}

var ctx = context.Background()
