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

// UserUseCase is the admin-only user administration.
type UserUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, in entity.UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{userRepo: userRepo, logger: logger}
}

func (uc *userUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.userRepo.Query(ctx, spec)
	return envelope(spec, items, total, err)
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return user, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	user := &entity.User{Role: access.RoleUser}
	in.ApplyTo(user)

	password := ""
	if in.Password != nil {
		password = *in.Password
	}
	if err := validate(user, &entity.Credentials{Password: password}); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	uc.logger.Info("User created: %s (%s)", user.ID, user.Role)
	return user, nil
}

// UpdateUser applies the given fields. A supplied password is hashed like on
// registration.
func (uc *userUseCase) UpdateUser(ctx context.Context, id string, in entity.UserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}

	in.ApplyTo(user)
	checks := []interface{}{user}
	if in.Password != nil {
		checks = append(checks, &entity.Credentials{Password: *in.Password})
	}
	if err := validate(checks...); err != nil {
		return nil, err
	}

	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return user, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	return nil
}
