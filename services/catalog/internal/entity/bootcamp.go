package entity

import "time"

type Location struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	Street           string  `json:"street"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zipcode          string  `json:"zipcode"`
	Country          string  `json:"country"`
}

type Bootcamp struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name" validate:"required,max=50"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description" validate:"required,max=500"`
	Website       string    `json:"website,omitempty" validate:"omitempty,url"`
	Phone         string    `json:"phone,omitempty" validate:"max=20"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email"`
	Address       string    `json:"address" validate:"required"`
	Location      *Location `json:"location,omitempty"`
	Careers       []string  `json:"careers" validate:"required,min=1,dive,career"`
	AverageRating *float64  `json:"average_rating,omitempty" validate:"omitempty,gte=1,lte=10"`
	AverageCost   *float64  `json:"average_cost,omitempty"`
	Photo         string    `json:"photo"`
	Housing       bool      `json:"housing"`
	JobAssistance bool      `json:"job_assistance"`
	JobGuarantee  bool      `json:"job_guarantee"`
	AcceptGI      bool      `json:"accept_gi"`
	CreatedAt     time.Time `json:"created_at"`
	Courses       []*Course `json:"courses,omitempty"`
}

type BootcampInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Website       *string   `json:"website"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Careers       *[]string `json:"careers"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"job_assistance"`
	JobGuarantee  *bool     `json:"job_guarantee"`
	AcceptGI      *bool     `json:"accept_gi"`
}

func (in BootcampInput) ApplyTo(b *Bootcamp) {
	setString(&b.Name, in.Name)
	setString(&b.Description, in.Description)
	setString(&b.Website, in.Website)
	setString(&b.Phone, in.Phone)
	setString(&b.Email, in.Email)
	setString(&b.Address, in.Address)
	if in.Careers != nil {
		b.Careers = *in.Careers
	}
	setBool(&b.Housing, in.Housing)
	setBool(&b.JobAssistance, in.JobAssistance)
	setBool(&b.JobGuarantee, in.JobGuarantee)
	setBool(&b.AcceptGI, in.AcceptGI)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
