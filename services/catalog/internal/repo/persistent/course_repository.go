package persistent

import (
	"context"

	"campshop/pkg/models"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, spec query.Spec) ([]*entity.Course, int64, error)
}

var courseBootcamp = &query.Expand{
	Path:       "Bootcamp",
	Columns:    []string{"id", "name", "description"},
	ForeignKey: "bootcamp_id",
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	m := ToCourseModel(course)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	*course = *ToCourseEntity(m)
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m models.Course
	err := r.db.WithContext(ctx).
		Preload("Bootcamp", func(tx *gorm.DB) *gorm.DB { return tx.Select(courseBootcamp.Columns) }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return ToCourseEntity(&m), nil
}

func (r *courseRepository) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error) {
	var items []models.Course
	if !validID(bootcampID) {
		return mapAll(items, ToCourseEntity), nil
	}
	if err := r.db.WithContext(ctx).Where("bootcamp_id = ?", bootcampID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return mapAll(items, ToCourseEntity), nil
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ToCourseModel(course)).Error
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Course{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Course, int64, error) {
	items, total, err := query.Run[models.Course](ctx, r.db, courseSchema, spec, courseBootcamp)
	if err != nil {
		return nil, 0, err
	}
	return mapAll(items, ToCourseEntity), total, nil
}
