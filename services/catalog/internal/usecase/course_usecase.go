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

type CourseUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	CreateCourse(ctx context.Context, p *access.Principal, bootcampID string, in entity.CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, p *access.Principal, id string, in entity.CourseInput) (*entity.Course, error)
	DeleteCourse(ctx context.Context, p *access.Principal, id string) error
}

type courseUseCase struct {
	courseRepo   persistent.CourseRepository
	bootcampRepo persistent.BootcampRepository
	logger       *logger.Logger
}

func NewCourseUseCase(
	courseRepo persistent.CourseRepository,
	bootcampRepo persistent.BootcampRepository,
	logger *logger.Logger,
) CourseUseCase {
	return &courseUseCase{
		courseRepo:   courseRepo,
		bootcampRepo: bootcampRepo,
		logger:       logger,
	}
}

func (uc *courseUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.courseRepo.Query(ctx, spec)
	return envelope(spec, items, total, err, "bootcamp")
}

func (uc *courseUseCase) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error) {
	courses, err := uc.courseRepo.ListByBootcamp(ctx, bootcampID)
	if err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return courses, nil
}

func (uc *courseUseCase) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return course, nil
}

func (uc *courseUseCase) CreateCourse(ctx context.Context, p *access.Principal, bootcampID string, in entity.CourseInput) (*entity.Course, error) {
	bootcamp, err := uc.bootcampRepo.GetByID(ctx, bootcampID)
	if err != nil {
		return nil, lookupErr(err, bootcampID)
	}
	if !access.CanMutate(p, bootcamp.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to add a course to bootcamp %s", p.ID, bootcampID)
	}

	course := &entity.Course{BootcampID: bootcamp.ID, UserID: p.ID}
	in.ApplyTo(course)
	if err := validate(course); err != nil {
		return nil, err
	}

	if err := uc.courseRepo.Create(ctx, course); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	uc.refreshCost(ctx, course.BootcampID)
	return course, nil
}

func (uc *courseUseCase) UpdateCourse(ctx context.Context, p *access.Principal, id string, in entity.CourseInput) (*entity.Course, error) {
	course, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return nil, err
	}

	in.ApplyTo(course)
	if err := validate(course); err != nil {
		return nil, err
	}
	if err := uc.courseRepo.Update(ctx, course); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	uc.refreshCost(ctx, course.BootcampID)
	return course, nil
}

func (uc *courseUseCase) DeleteCourse(ctx context.Context, p *access.Principal, id string) error {
	course, err := uc.owned(ctx, p, id, "delete")
	if err != nil {
		return err
	}
	if err := uc.courseRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	uc.refreshCost(ctx, course.BootcampID)
	return nil
}

func (uc *courseUseCase) owned(ctx context.Context, p *access.Principal, id, action string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	if !access.CanMutate(p, course.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to %s course %s", p.ID, action, id)
	}
	return course, nil
}

// refreshCost is best effort: the course write already happened.
func (uc *courseUseCase) refreshCost(ctx context.Context, bootcampID string) {
	if err := uc.bootcampRepo.RefreshAverageCost(ctx, bootcampID); err != nil {
		uc.logger.Error("Failed to refresh average cost for bootcamp %s: %v", bootcampID, err)
	}
}
