package usecase

import (
	"context"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/logger"
	"campshop/pkg/query"
	"campshop/pkg/storage"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/repo/persistent"

	"github.com/gosimple/slug"
)

type ProductUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, p *access.Principal, categoryID string, in entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, p *access.Principal, id string, in entity.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, p *access.Principal, id string) error
	UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error)
}

type productUseCase struct {
	productRepo  persistent.ProductRepository
	categoryRepo persistent.CategoryRepository
	photos       *storage.PhotoUploader
	photoDir     string
	logger       *logger.Logger
}

func NewProductUseCase(
	productRepo persistent.ProductRepository,
	categoryRepo persistent.CategoryRepository,
	photos *storage.PhotoUploader,
	photoDir string,
	logger *logger.Logger,
) ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		photos:       photos,
		photoDir:     photoDir,
		logger:       logger,
	}
}

func (uc *productUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.productRepo.Query(ctx, spec)
	return envelope(spec, items, total, err, "category")
}

func (uc *productUseCase) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return product, nil
}

// CreateProduct places the product in categoryID, or in the category named by
// the body when categoryID is empty.
func (uc *productUseCase) CreateProduct(ctx context.Context, p *access.Principal, categoryID string, in entity.ProductInput) (*entity.Product, error) {
	if categoryID != "" {
		in.CategoryID = &categoryID
	}

	product := &entity.Product{UserID: p.ID}
	in.ApplyTo(product)
	product.Slug = slug.Make(product.Name)
	if err := validate(product); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return product, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, p *access.Principal, id string, in entity.ProductInput) (*entity.Product, error) {
	product, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return nil, err
	}

	categoryID := product.CategoryID
	in.ApplyTo(product)
	product.Slug = slug.Make(product.Name)
	if err := validate(product); err != nil {
		return nil, err
	}
	if product.CategoryID != categoryID {
		if err := uc.checkCategory(ctx, product.CategoryID); err != nil {
			return nil, err
		}
		product.Category = nil
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return product, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, p *access.Principal, id string) error {
	if _, err := uc.owned(ctx, p, id, "delete"); err != nil {
		return err
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	return nil
}

func (uc *productUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	product, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return "", err
	}

	name, err := uc.photos.Upload(ctx, uc.photoDir, id, file)
	if err != nil {
		return "", err
	}
	if err := uc.productRepo.UpdatePhoto(ctx, id, name); err != nil {
		return "", errs.FromStore(err, nil)
	}
	if product.Photo != name {
		if err := uc.photos.Remove(ctx, uc.photoDir, product.Photo); err != nil {
			uc.logger.Warn("Failed to remove old photo %s: %v", product.Photo, err)
		}
	}
	return name, nil
}

func (uc *productUseCase) owned(ctx context.Context, p *access.Principal, id, action string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	if !access.CanMutate(p, product.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to %s product %s", p.ID, action, id)
	}
	return product, nil
}

func (uc *productUseCase) checkCategory(ctx context.Context, categoryID string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return lookupErr(err, categoryID)
	}
	return nil
}
