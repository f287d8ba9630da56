package entity

import "time"

type Product struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CategoryID  string    `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=50"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required"`
	Photo       string    `json:"photo"`
	Price       float64   `json:"price" validate:"gte=0"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Sold        int       `json:"sold" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Category    *Summary  `json:"category,omitempty"`
}

type ProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"category_id"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Sold        *int     `json:"sold"`
}

func (in ProductInput) ApplyTo(p *Product) {
	setString(&p.Name, in.Name)
	setString(&p.Description, in.Description)
	setString(&p.CategoryID, in.CategoryID)
	setFloat(&p.Price, in.Price)
	setInt(&p.Quantity, in.Quantity)
	setInt(&p.Sold, in.Sold)
}
