package usecase

import (
	"context"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/logger"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/repo/persistent"
)

type ReviewUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error)
	GetReview(ctx context.Context, id string) (*entity.Review, error)
	ReviewBootcamp(ctx context.Context, p *access.Principal, bootcampID string, in entity.ReviewInput) (*entity.Review, error)
	ReviewCategory(ctx context.Context, p *access.Principal, categoryID string, in entity.ReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, p *access.Principal, id string, in entity.ReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, p *access.Principal, id string) error
}

type reviewUseCase struct {
	reviewRepo   persistent.ReviewRepository
	bootcampRepo persistent.BootcampRepository
	categoryRepo persistent.CategoryRepository
	logger       *logger.Logger
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	bootcampRepo persistent.BootcampRepository,
	categoryRepo persistent.CategoryRepository,
	logger *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo:   reviewRepo,
		bootcampRepo: bootcampRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *reviewUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.reviewRepo.Query(ctx, spec)
	return envelope(spec, items, total, err, "bootcamp")
}

func (uc *reviewUseCase) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByBootcamp(ctx, bootcampID)
	if err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return reviews, nil
}

func (uc *reviewUseCase) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return reviews, nil
}

func (uc *reviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return review, nil
}

func (uc *reviewUseCase) ReviewBootcamp(ctx context.Context, p *access.Principal, bootcampID string, in entity.ReviewInput) (*entity.Review, error) {
	bootcamp, err := uc.bootcampRepo.GetByID(ctx, bootcampID)
	if err != nil {
		return nil, lookupErr(err, bootcampID)
	}

	review := &entity.Review{BootcampID: &bootcamp.ID, UserID: p.ID}
	if err := uc.create(ctx, review, in); err != nil {
		return nil, err
	}
	uc.refreshRating(ctx, review)
	return review, nil
}

func (uc *reviewUseCase) ReviewCategory(ctx context.Context, p *access.Principal, categoryID string, in entity.ReviewInput) (*entity.Review, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, lookupErr(err, categoryID)
	}

	review := &entity.Review{CategoryID: &category.ID, UserID: p.ID}
	if err := uc.create(ctx, review, in); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *reviewUseCase) UpdateReview(ctx context.Context, p *access.Principal, id string, in entity.ReviewInput) (*entity.Review, error) {
	review, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return nil, err
	}

	in.ApplyTo(review)
	if err := validate(review); err != nil {
		return nil, err
	}
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	uc.refreshRating(ctx, review)
	return review, nil
}

func (uc *reviewUseCase) DeleteReview(ctx context.Context, p *access.Principal, id string) error {
	review, err := uc.owned(ctx, p, id, "delete")
	if err != nil {
		return err
	}
	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	uc.refreshRating(ctx, review)
	return nil
}

func (uc *reviewUseCase) create(ctx context.Context, review *entity.Review, in entity.ReviewInput) error {
	in.ApplyTo(review)
	if err := validate(review); err != nil {
		return err
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return errs.FromStore(err, nil)
	}
	return nil
}

func (uc *reviewUseCase) owned(ctx context.Context, p *access.Principal, id, action string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	if !access.CanMutate(p, review.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to %s review %s", p.ID, action, id)
	}
	return review, nil
}

// refreshRating only applies to bootcamp reviews.
func (uc *reviewUseCase) refreshRating(ctx context.Context, review *entity.Review) {
	if review.BootcampID == nil {
		return
	}
	if err := uc.bootcampRepo.RefreshAverageRating(ctx, *review.BootcampID); err != nil {
		uc.logger.Error("Failed to refresh average rating for bootcamp %s: %v", *review.BootcampID, err)
	}
}
