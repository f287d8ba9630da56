package persistent

import (
	"campshop/pkg/access"
	"campshop/pkg/models"
	"campshop/services/catalog/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                  m.ID,
		Name:                m.Name,
		Email:               m.Email,
		Role:                access.Role(m.Role),
		Password:            m.Password,
		ResetPasswordToken:  m.ResetPasswordToken,
		ResetPasswordExpire: m.ResetPasswordExpire,
		CreatedAt:           m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:                  e.ID,
		Name:                e.Name,
		Email:               e.Email,
		Role:                string(e.Role),
		Password:            e.Password,
		ResetPasswordToken:  e.ResetPasswordToken,
		ResetPasswordExpire: e.ResetPasswordExpire,
		CreatedAt:           e.CreatedAt,
	}
}

func ToBootcampEntity(m *models.Bootcamp) *entity.Bootcamp {
	if m == nil {
		return nil
	}

	e := &entity.Bootcamp{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Slug:          m.Slug,
		Description:   m.Description,
		Website:       m.Website,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		Careers:       []string(m.Careers),
		AverageRating: m.AverageRating,
		AverageCost:   m.AverageCost,
		Photo:         m.Photo,
		Housing:       m.Housing,
		JobAssistance: m.JobAssistance,
		JobGuarantee:  m.JobGuarantee,
		AcceptGI:      m.AcceptGI,
		CreatedAt:     m.CreatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		e.Location = &entity.Location{
			Latitude:         *m.Latitude,
			Longitude:        *m.Longitude,
			FormattedAddress: m.FormattedAddress,
			Street:           m.Street,
			City:             m.City,
			State:            m.State,
			Zipcode:          m.Zipcode,
			Country:          m.Country,
		}
	}

	if len(m.Courses) > 0 {
		e.Courses = make([]*entity.Course, 0, len(m.Courses))
		for i := range m.Courses {
			e.Courses = append(e.Courses, ToCourseEntity(&m.Courses[i]))
		}
	}

	return e
}

func ToBootcampModel(e *entity.Bootcamp) *models.Bootcamp {
	if e == nil {
		return nil
	}

	m := &models.Bootcamp{
		ID:            e.ID,
		UserID:        e.UserID,
		Name:          e.Name,
		Slug:          e.Slug,
		Description:   e.Description,
		Website:       e.Website,
		Phone:         e.Phone,
		Email:         e.Email,
		Address:       e.Address,
		Careers:       e.Careers,
		AverageRating: e.AverageRating,
		AverageCost:   e.AverageCost,
		Photo:         e.Photo,
		Housing:       e.Housing,
		JobAssistance: e.JobAssistance,
		JobGuarantee:  e.JobGuarantee,
		AcceptGI:      e.AcceptGI,
		CreatedAt:     e.CreatedAt,
	}

	if loc := e.Location; loc != nil {
		lat, lng := loc.Latitude, loc.Longitude
		m.Latitude = &lat
		m.Longitude = &lng
		m.FormattedAddress = loc.FormattedAddress
		m.Street = loc.Street
		m.City = loc.City
		m.State = loc.State
		m.Zipcode = loc.Zipcode
		m.Country = loc.Country
	}

	return m
}

func ToCourseEntity(m *models.Course) *entity.Course {
	if m == nil {
		return nil
	}

	e := &entity.Course{
		ID:                   m.ID,
		Title:                m.Title,
		Description:          m.Description,
		Weeks:                m.Weeks,
		Tuition:              m.Tuition,
		MinimumSkill:         m.MinimumSkill,
		ScholarshipAvailable: m.ScholarshipAvailable,
		BootcampID:           m.BootcampID,
		UserID:               m.UserID,
		CreatedAt:            m.CreatedAt,
	}
	if m.Bootcamp != nil {
		e.Bootcamp = &entity.Summary{ID: m.Bootcamp.ID, Name: m.Bootcamp.Name, Description: m.Bootcamp.Description}
	}
	return e
}

func ToCourseModel(e *entity.Course) *models.Course {
	if e == nil {
		return nil
	}

	return &models.Course{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Weeks:                e.Weeks,
		Tuition:              e.Tuition,
		MinimumSkill:         e.MinimumSkill,
		ScholarshipAvailable: e.ScholarshipAvailable,
		BootcampID:           e.BootcampID,
		UserID:               e.UserID,
		CreatedAt:            e.CreatedAt,
	}
}

func ToReviewEntity(m *models.Review) *entity.Review {
	if m == nil {
		return nil
	}

	e := &entity.Review{
		ID:         m.ID,
		Title:      m.Title,
		Text:       m.Text,
		Rating:     m.Rating,
		BootcampID: m.BootcampID,
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
	if m.Bootcamp != nil {
		e.Bootcamp = &entity.Summary{ID: m.Bootcamp.ID, Name: m.Bootcamp.Name, Description: m.Bootcamp.Description}
	}
	return e
}

func ToReviewModel(e *entity.Review) *models.Review {
	if e == nil {
		return nil
	}

	return &models.Review{
		ID:         e.ID,
		Title:      e.Title,
		Text:       e.Text,
		Rating:     e.Rating,
		BootcampID: e.BootcampID,
		CategoryID: e.CategoryID,
		UserID:     e.UserID,
		CreatedAt:  e.CreatedAt,
	}
}

func ToCategoryEntity(m *models.Category) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Photo:       m.Photo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *models.Category {
	if e == nil {
		return nil
	}

	return &models.Category{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		Photo:       e.Photo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToProductEntity(m *models.Product) *entity.Product {
	if m == nil {
		return nil
	}

	e := &entity.Product{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Photo:       m.Photo,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Sold:        m.Sold,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		e.Category = &entity.Summary{ID: m.Category.ID, Name: m.Category.Name}
	}
	return e
}

func ToProductModel(e *entity.Product) *models.Product {
	if e == nil {
		return nil
	}

	return &models.Product{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		Photo:       e.Photo,
		Price:       e.Price,
		Quantity:    e.Quantity,
		Sold:        e.Sold,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func mapAll[M any, E any](items []M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
