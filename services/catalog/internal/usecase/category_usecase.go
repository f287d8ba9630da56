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

type CategoryUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, p *access.Principal, in entity.CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, p *access.Principal, id string, in entity.CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, p *access.Principal, id string) error
	UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	photos       *storage.PhotoUploader
	photoDir     string
	logger       *logger.Logger
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	photos *storage.PhotoUploader,
	photoDir string,
	logger *logger.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		photos:       photos,
		photoDir:     photoDir,
		logger:       logger,
	}
}

func (uc *categoryUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.categoryRepo.Query(ctx, spec)
	return envelope(spec, items, total, err)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return category, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, p *access.Principal, in entity.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{UserID: p.ID}
	in.ApplyTo(category)
	category.Slug = slug.Make(category.Name)

	if err := validate(category); err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, p *access.Principal, id string, in entity.CategoryInput) (*entity.Category, error) {
	category, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(category)
	category.Slug = slug.Make(category.Name)
	if err := validate(category); err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return category, nil
}

// DeleteCategory also removes the products and reviews of the category.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, p *access.Principal, id string) error {
	if _, err := uc.owned(ctx, p, id); err != nil {
		return err
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	uc.logger.Info("Category deleted with its products and reviews: %s", id)
	return nil
}

func (uc *categoryUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	category, err := uc.owned(ctx, p, id)
	if err != nil {
		return "", err
	}

	name, err := uc.photos.Upload(ctx, uc.photoDir, id, file)
	if err != nil {
		return "", err
	}
	if err := uc.categoryRepo.UpdatePhoto(ctx, id, name); err != nil {
		return "", errs.FromStore(err, nil)
	}
	if category.Photo != name {
		if err := uc.photos.Remove(ctx, uc.photoDir, category.Photo); err != nil {
			uc.logger.Warn("Failed to remove old photo %s: %v", category.Photo, err)
		}
	}
	return name, nil
}

func (uc *categoryUseCase) owned(ctx context.Context, p *access.Principal, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	if !access.CanMutate(p, category.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to change category %s", p.ID, id)
	}
	return category, nil
}
