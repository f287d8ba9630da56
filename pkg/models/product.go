package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string    `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"index" json:"slug"`
	Description string    `gorm:"not null" json:"description"`
	Photo       string    `gorm:"default:'no-photo.jpg'" json:"photo"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `json:"quantity"`
	Sold        int       `gorm:"default:0" json:"sold"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}
