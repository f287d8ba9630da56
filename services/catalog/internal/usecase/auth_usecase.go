package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/jwt"
	"campshop/pkg/logger"
	"campshop/pkg/mailer"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 10 * time.Minute

var (
	errInvalidCredentials = errs.Unauthorized("Invalid credentials")
	errIncorrectPassword  = errs.Unauthorized("Incorrect password")
	errInvalidResetToken  = errs.BadRequest("Invalid token")
)

type AuthUseCase interface {
	Register(ctx context.Context, in entity.UserInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Me(ctx context.Context, userID string) (*entity.User, error)
	UpdateDetails(ctx context.Context, userID string, name, email *string) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID, current, next string) (*entity.User, string, error)
	ForgotPassword(ctx context.Context, email, resetURLPrefix string) error
	ResetPassword(ctx context.Context, token, password string) (*entity.User, string, error)
	ResolvePrincipal(ctx context.Context, id string) (*access.Principal, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	mailer     mailer.Mailer
	logger     *logger.Logger
	now        func() time.Time
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	mailer mailer.Mailer,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		mailer:     mailer,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *authUseCase) Register(ctx context.Context, in entity.UserInput) (*entity.User, string, error) {
	user := &entity.User{Role: access.RoleUser}
	in.ApplyTo(user)
	if user.Role == access.RoleAdmin || !user.Role.Valid() {
		return nil, "", errs.BadRequest("Role %s can not be chosen at registration", user.Role)
	}

	password := ""
	if in.Password != nil {
		password = *in.Password
	}
	if err := validate(user, &entity.Credentials{Password: password}); err != nil {
		return nil, "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.Password = hash

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", errs.FromStore(err, nil)
	}
	uc.logger.Info("User registered: %s (%s)", user.ID, user.Role)

	return uc.withToken(user)
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errs.BadRequest("Please enter credentials")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", errs.FromStore(err, nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", errInvalidCredentials
	}

	return uc.withToken(user)
}

func (uc *authUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, userID)
	}
	return user, nil
}

func (uc *authUseCase) UpdateDetails(ctx context.Context, userID string, name, email *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, userID)
	}

	entity.UserInput{Name: name, Email: email}.ApplyTo(user)
	if err := validate(user); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return user, nil
}

func (uc *authUseCase) UpdatePassword(ctx context.Context, userID, current, next string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", lookupErr(err, userID)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return nil, "", errIncorrectPassword
	}
	if err := validate(&entity.Credentials{Password: next}); err != nil {
		return nil, "", err
	}

	hash, err := hashPassword(next)
	if err != nil {
		return nil, "", err
	}
	user.Password = hash
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, "", errs.FromStore(err, nil)
	}

	return uc.withToken(user)
}

// ForgotPassword issues a reset token and mails its link. The stored token is
// cleared again when the mail can not be delivered.
func (uc *authUseCase) ForgotPassword(ctx context.Context, email, resetURLPrefix string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return errs.FromStore(err, errs.NotFound("There is no user with that email"))
	}

	token, hash, err := newResetToken()
	if err != nil {
		return errs.ServerError("Server Error").Wrap(err)
	}
	expire := uc.now().Add(resetTokenTTL)
	user.ResetPasswordToken = &hash
	user.ResetPasswordExpire = &expire
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return errs.FromStore(err, nil)
	}

	msg := mailer.Message{
		To:      user.Email,
		Subject: "Password reset token",
		Text: fmt.Sprintf("You are receiving this email because you (or someone else) has requested the reset of a password. "+
			"Please make a PUT request to: \n\n %s%s", resetURLPrefix, token),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Error("Failed to send reset email to %s: %v", user.ID, err)
		user.ClearResetToken()
		if uerr := uc.userRepo.Update(ctx, user); uerr != nil {
			uc.logger.Error("Failed to clear reset token for %s: %v", user.ID, uerr)
		}
		return errs.ServerError("Email could not be sent").Wrap(err)
	}

	return nil
}

func (uc *authUseCase) ResetPassword(ctx context.Context, token, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByResetToken(ctx, hashResetToken(token), uc.now())
	if err != nil {
		return nil, "", errs.FromStore(err, errInvalidResetToken)
	}

	if err := validate(&entity.Credentials{Password: password}); err != nil {
		return nil, "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.Password = hash
	user.ClearResetToken()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, "", errs.FromStore(err, nil)
	}

	return uc.withToken(user)
}

func (uc *authUseCase) ResolvePrincipal(ctx context.Context, id string) (*access.Principal, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return user.Principal(), nil
}

func (uc *authUseCase) withToken(user *entity.User) (*entity.User, string, error) {
	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", errs.ServerError("Server Error").Wrap(err)
	}
	return user, token, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.ServerError("Server Error").Wrap(err)
	}
	return string(hash), nil
}

// newResetToken returns the token for the mail and the digest to store.
func newResetToken() (string, string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token := hex.EncodeToString(buf)
	return token, hashResetToken(token), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
