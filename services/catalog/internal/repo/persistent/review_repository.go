package persistent

import (
	"context"

	"campshop/pkg/models"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, spec query.Spec) ([]*entity.Review, int64, error)
}

var reviewBootcamp = &query.Expand{
	Path:       "Bootcamp",
	Columns:    []string{"id", "name", "description"},
	ForeignKey: "bootcamp_id",
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := ToReviewModel(review)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	*review = *ToReviewEntity(m)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m models.Review
	err := r.db.WithContext(ctx).
		Preload("Bootcamp", func(tx *gorm.DB) *gorm.DB { return tx.Select(reviewBootcamp.Columns) }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return ToReviewEntity(&m), nil
}

func (r *reviewRepository) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error) {
	return r.listBy(ctx, "bootcamp_id", bootcampID)
}

func (r *reviewRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error) {
	return r.listBy(ctx, "category_id", categoryID)
}

func (r *reviewRepository) listBy(ctx context.Context, column, id string) ([]*entity.Review, error) {
	var items []models.Review
	if !validID(id) {
		return mapAll(items, ToReviewEntity), nil
	}
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToReviewEntity), nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ToReviewModel(review)).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Review, int64, error) {
	items, total, err := query.Run[models.Review](ctx, r.db, reviewSchema, spec, reviewBootcamp)
	if err != nil {
		return nil, 0, err
	}
	return mapAll(items, ToReviewEntity), total, nil
}
