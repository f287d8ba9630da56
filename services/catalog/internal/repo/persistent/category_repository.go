package persistent

import (
	"context"

	"campshop/pkg/models"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	UpdatePhoto(ctx context.Context, id, photo string) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, spec query.Spec) ([]*entity.Category, int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	m := ToCategoryModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *ToCategoryEntity(m)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&m), nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(ToCategoryModel(category)).Error
}

func (r *categoryRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("photo", photo).Error
}

// Delete removes the category with every product and review that references it.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *categoryRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Category, int64, error) {
	items, total, err := query.Run[models.Category](ctx, r.db, categorySchema, spec, nil)
	if err != nil {
		return nil, 0, err
	}
	return mapAll(items, ToCategoryEntity), total, nil
}
