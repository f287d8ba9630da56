package entity

import "time"

// Summary is the reduced view of a related document in list expansions.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Course struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description" validate:"required"`
	Weeks                string    `json:"weeks" validate:"required"`
	Tuition              float64   `json:"tuition" validate:"gte=0"`
	MinimumSkill         string    `json:"minimum_skill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool      `json:"scholarship_available"`
	BootcampID           string    `json:"bootcamp_id"`
	UserID               string    `json:"user_id"`
	CreatedAt            time.Time `json:"created_at"`
	Bootcamp             *Summary  `json:"bootcamp,omitempty"`
}

type CourseInput struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *string  `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimum_skill"`
	ScholarshipAvailable *bool    `json:"scholarship_available"`
}

func (in CourseInput) ApplyTo(c *Course) {
	setString(&c.Title, in.Title)
	setString(&c.Description, in.Description)
	setString(&c.Weeks, in.Weeks)
	setFloat(&c.Tuition, in.Tuition)
	setString(&c.MinimumSkill, in.MinimumSkill)
	setBool(&c.ScholarshipAvailable, in.ScholarshipAvailable)
}
