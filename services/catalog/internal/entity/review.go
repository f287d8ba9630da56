package entity

import "time"

type Review struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" validate:"required,max=100"`
	Text       string    `json:"text" validate:"required"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=10"`
	BootcampID *string   `json:"bootcamp_id,omitempty"`
	CategoryID *string   `json:"category_id,omitempty"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	Bootcamp   *Summary  `json:"bootcamp,omitempty"`
}

type ReviewInput struct {
	Title  *string `json:"title"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func (in ReviewInput) ApplyTo(r *Review) {
	setString(&r.Title, in.Title)
	setString(&r.Text, in.Text)
	setInt(&r.Rating, in.Rating)
}
