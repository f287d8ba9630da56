package entity

import "time"

type Category struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required,max=500"`
	Photo       string    `json:"photo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (in CategoryInput) ApplyTo(c *Category) {
	setString(&c.Name, in.Name)
	setString(&c.Description, in.Description)
}
