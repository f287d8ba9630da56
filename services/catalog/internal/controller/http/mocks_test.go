package http

import (
	"context"

	"campshop/pkg/access"
	"campshop/pkg/query"
	"campshop/pkg/storage"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, in entity.UserInput) (*entity.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateDetails(ctx context.Context, userID string, name, email *string) (*entity.User, error) {
	args := m.Called(ctx, userID, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdatePassword(ctx context.Context, userID, current, next string) (*entity.User, string, error) {
	args := m.Called(ctx, userID, current, next)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) ForgotPassword(ctx context.Context, email, resetURLPrefix string) error {
	args := m.Called(ctx, email, resetURLPrefix)
	return args.Error(0)
}

func (m *MockAuthUseCase) ResetPassword(ctx context.Context, token, password string) (*entity.User, string, error) {
	args := m.Called(ctx, token, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) ResolvePrincipal(ctx context.Context, id string) (*access.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Principal), args.Error(1)
}

type MockBootcampUseCase struct {
	mock.Mock
}

func (m *MockBootcampUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockBootcampUseCase) GetBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampUseCase) CreateBootcamp(ctx context.Context, p *access.Principal, in entity.BootcampInput) (*entity.Bootcamp, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampUseCase) UpdateBootcamp(ctx context.Context, p *access.Principal, id string, in entity.BootcampInput) (*entity.Bootcamp, error) {
	args := m.Called(ctx, p, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampUseCase) DeleteBootcamp(ctx context.Context, p *access.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockBootcampUseCase) BootcampsInRadius(ctx context.Context, zipcode string, distanceKm float64) ([]*entity.Bootcamp, error) {
	args := m.Called(ctx, zipcode, distanceKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	args := m.Called(ctx, p, id, file)
	return args.String(0), args.Error(1)
}

type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockCourseUseCase) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error) {
	args := m.Called(ctx, bootcampID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) CreateCourse(ctx context.Context, p *access.Principal, bootcampID string, in entity.CourseInput) (*entity.Course, error) {
	args := m.Called(ctx, p, bootcampID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) UpdateCourse(ctx context.Context, p *access.Principal, id string, in entity.CourseInput) (*entity.Course, error) {
	args := m.Called(ctx, p, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) DeleteCourse(ctx context.Context, p *access.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockReviewUseCase) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error) {
	args := m.Called(ctx, bootcampID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) ReviewBootcamp(ctx context.Context, p *access.Principal, bootcampID string, in entity.ReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, p, bootcampID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) ReviewCategory(ctx context.Context, p *access.Principal, categoryID string, in entity.ReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, p, categoryID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) UpdateReview(ctx context.Context, p *access.Principal, id string, in entity.ReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, p, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) DeleteReview(ctx context.Context, p *access.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

type MockCategoryUseCase struct {
	mock.Mock
}

func (m *MockCategoryUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockCategoryUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) CreateCategory(ctx context.Context, p *access.Principal, in entity.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) UpdateCategory(ctx context.Context, p *access.Principal, id string, in entity.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, p, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryUseCase) DeleteCategory(ctx context.Context, p *access.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockCategoryUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	args := m.Called(ctx, p, id, file)
	return args.String(0), args.Error(1)
}

type MockProductUseCase struct {
	mock.Mock
}

func (m *MockProductUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockProductUseCase) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUseCase) CreateProduct(ctx context.Context, p *access.Principal, categoryID string, in entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, p, categoryID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUseCase) UpdateProduct(ctx context.Context, p *access.Principal, id string, in entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, p, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUseCase) DeleteProduct(ctx context.Context, p *access.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockProductUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	args := m.Called(ctx, p, id, file)
	return args.String(0), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Envelope), args.Error(1)
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, id string, in entity.UserInput) (*entity.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ usecase.AuthUseCase     = (*MockAuthUseCase)(nil)
	_ usecase.BootcampUseCase = (*MockBootcampUseCase)(nil)
	_ usecase.CourseUseCase   = (*MockCourseUseCase)(nil)
	_ usecase.ReviewUseCase   = (*MockReviewUseCase)(nil)
	_ usecase.CategoryUseCase = (*MockCategoryUseCase)(nil)
	_ usecase.ProductUseCase  = (*MockProductUseCase)(nil)
	_ usecase.UserUseCase     = (*MockUserUseCase)(nil)
)
