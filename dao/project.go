package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fcurti/falegnameria-backend/dao/model"
)

// ListProjects returns all projects, most recent first.
func ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	// id breaks ties between rows created in the same transaction (seeding).
	err := GetDB().WithContext(ctx).Order("created_at DESC, id DESC").Find(&projects).Error
	return projects, err
}

// RecentProjects returns the n most recent projects for the home page.
func RecentProjects(ctx context.Context, n int) ([]model.Project, error) {
	var projects []model.Project
	err := GetDB().WithContext(ctx).Order("created_at DESC, id DESC").Limit(n).Find(&projects).Error
	return projects, err
}

// GetProject returns nil without an error when no row matches.
func GetProject(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := GetDB().WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject inserts the project and returns the assigned id.
func CreateProject(ctx context.Context, project *model.Project) (uint, error) {
	err := GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
	if err != nil {
		return 0, err
	}
	return project.ID, nil
}

// UpdateProject overwrites every editable field of the row with the given id.
func UpdateProject(ctx context.Context, project *model.Project) error {
	return GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Project{ID: project.ID}).
			Select("title", "location", "goal", "solution", "materials", "image").
			Updates(project).Error
	})
}

// DeleteProject removes the row by id. Deleting a missing id is a no-op.
func DeleteProject(ctx context.Context, id uint) error {
	return GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Project{}, id).Error
	})
}
