package persistent

import (
	"context"

	"campshop/pkg/models"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdatePhoto(ctx context.Context, id, photo string) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, spec query.Spec) ([]*entity.Product, int64, error)
}

var productCategory = &query.Expand{
	Path:       "Category",
	Columns:    []string{"id", "name"},
	ForeignKey: "category_id",
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := ToProductModel(product)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	*product = *ToProductEntity(m)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m models.Product
	err := r.db.WithContext(ctx).
		Preload("Category", func(tx *gorm.DB) *gorm.DB { return tx.Select(productCategory.Columns) }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return ToProductEntity(&m), nil
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var items []models.Product
	if !validID(categoryID) {
		return mapAll(items, ToProductEntity), nil
	}
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return mapAll(items, ToProductEntity), nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ToProductModel(product)).Error
}

func (r *productRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("photo", photo).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Product, int64, error) {
	items, total, err := query.Run[models.Product](ctx, r.db, productSchema, spec, productCategory)
	if err != nil {
		return nil, 0, err
	}
	return mapAll(items, ToProductEntity), total, nil
}
