package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Bootcamp struct {
	ID               string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug             string         `gorm:"index" json:"slug"`
	Description      string         `gorm:"type:varchar(500);not null" json:"description"`
	Website          string         `json:"website"`
	Phone            string         `gorm:"type:varchar(20)" json:"phone"`
	Email            string         `json:"email"`
	Address          string         `json:"address"`
	Latitude         *float64       `json:"latitude"`
	Longitude        *float64       `json:"longitude"`
	FormattedAddress string         `json:"formatted_address"`
	Street           string         `json:"street"`
	City             string         `json:"city"`
	State            string         `json:"state"`
	Zipcode          string         `gorm:"index" json:"zipcode"`
	Country          string         `json:"country"`
	Careers          pq.StringArray `gorm:"type:text[]" json:"careers"`
	AverageRating    *float64       `json:"average_rating"`
	AverageCost      *float64       `json:"average_cost"`
	Photo            string         `gorm:"default:'no-photo.jpg'" json:"photo"`
	Housing          bool           `json:"housing"`
	JobAssistance    bool           `json:"job_assistance"`
	JobGuarantee     bool           `json:"job_guarantee"`
	AcceptGI         bool           `gorm:"column:accept_gi" json:"accept_gi"`
	CreatedAt        time.Time      `json:"created_at"`

	Courses []Course `gorm:"foreignKey:BootcampID" json:"-"`
}

func (Bootcamp) TableName() string {
	return "bootcamps"
}

func (b *Bootcamp) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}
