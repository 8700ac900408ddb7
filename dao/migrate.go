package dao

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/fcurti/falegnameria-backend/dao/model"
)

// Migrate runs the versioned schema migrations. It is called once at startup,
// before seeding and before the server accepts traffic.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202408010001_create_site_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Project{}, &model.Listing{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("projects", "real_estate")
			},
		},
	})
	return m.Migrate()
}
