package model

import "time"

// Project is a portfolio entry describing a past carpentry job.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Location  string    `gorm:"type:text;not null" json:"location"`
	Goal      string    `gorm:"type:text;not null" json:"goal"`
	Solution  string    `gorm:"type:text;not null" json:"solution"`
	Materials string    `gorm:"type:text;not null" json:"materials"`
	Image     string    `gorm:"type:text;default:''" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Project) TableName() string {
	return "projects"
}
