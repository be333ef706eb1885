package database

import (
	"gorm.io/gorm"

	"gamestore/internal/domain/entity"
)

type joinTable struct {
	model interface{}
	field string
	join  interface{}
}

var joinTables = []joinTable{
	{&entity.Game{}, "Genres", &entity.GameGenre{}},
	{&entity.Game{}, "Platforms", &entity.GamePlatform{}},
	{&entity.User{}, "Roles", &entity.UserRole{}},
	{&entity.Role{}, "Permissions", &entity.RolePermission{}},
}

// Migrate registers the explicit join models and creates or updates every
// table.
func Migrate(db *gorm.DB) error {
	for _, jt := range joinTables {
		if err := db.SetupJoinTable(jt.model, jt.field, jt.join); err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&entity.Genre{},
		&entity.Platform{},
		&entity.Game{},
		&entity.License{},
		&entity.Permission{},
		&entity.Role{},
		&entity.User{},
		&entity.GameGenre{},
		&entity.GamePlatform{},
		&entity.RolePermission{},
		&entity.UserRole{},
	)
}
