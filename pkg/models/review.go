package models

import (
	"time"

	"gorm.io/gorm"
)

// Review belongs to either a bootcamp or a category.
type Review struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(100);not null" json:"title"`
	Text       string    `gorm:"not null" json:"text"`
	Rating     int       `gorm:"not null" json:"rating"`
	BootcampID *string   `gorm:"type:uuid;index" json:"bootcamp_id"`
	CategoryID *string   `gorm:"type:uuid;index" json:"category_id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`

	Bootcamp *Bootcamp `gorm:"foreignKey:BootcampID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
