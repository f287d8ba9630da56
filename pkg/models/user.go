package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                  string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string     `gorm:"not null" json:"name"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Role                string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Password            string     `gorm:"not null" json:"password"`
	ResetPasswordToken  *string    `gorm:"index" json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}
