package dao

import (
	_ "embed"

	"gorm.io/gorm"
	"sigs.k8s.io/yaml"

	"github.com/fcurti/falegnameria-backend/dao/model"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

//go:embed fixtures/seed.yaml
var seedFixture []byte

type seedData struct {
	Projects []model.Project `json:"projects"`
	Listings []model.Listing `json:"listings"`
}

// Seed inserts the default dataset into each table that is still empty. A
// non-empty table is left untouched; there is no reconciliation with the
// fixture after first run.
func Seed(db *gorm.DB) error {
	var data seedData
	if err := yaml.Unmarshal(seedFixture, &data); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Project{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&data.Projects).Error; err != nil {
				return err
			}
			logutils.Log.Infof("seeded %d projects", len(data.Projects))
		}

		if err := tx.Model(&model.Listing{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&data.Listings).Error; err != nil {
				return err
			}
			logutils.Log.Infof("seeded %d listings", len(data.Listings))
		}
		return nil
	})
}
