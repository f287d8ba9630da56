package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID                   string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title                string    `gorm:"not null" json:"title"`
	Description          string    `gorm:"not null" json:"description"`
	Weeks                string    `gorm:"not null" json:"weeks"`
	Tuition              float64   `gorm:"not null" json:"tuition"`
	MinimumSkill         string    `gorm:"type:varchar(20);not null" json:"minimum_skill"`
	ScholarshipAvailable bool      `json:"scholarship_available"`
	BootcampID           string    `gorm:"type:uuid;not null;index" json:"bootcamp_id"`
	UserID               string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt            time.Time `json:"created_at"`

	Bootcamp *Bootcamp `gorm:"foreignKey:BootcampID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}
