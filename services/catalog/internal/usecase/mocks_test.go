package usecase

import (
	"bytes"
	"context"
	"io"
	"time"

	"campshop/pkg/geocoder"
	"campshop/pkg/mailer"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	args := m.Called(ctx, tokenHash, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.User, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.User), args.Get(1).(int64), args.Error(2)
}

type MockBootcampRepository struct {
	mock.Mock
}

func (m *MockBootcampRepository) Create(ctx context.Context, bootcamp *entity.Bootcamp) error {
	args := m.Called(ctx, bootcamp)
	return args.Error(0)
}

func (m *MockBootcampRepository) GetByID(ctx context.Context, id string) (*entity.Bootcamp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBootcampRepository) Update(ctx context.Context, bootcamp *entity.Bootcamp) error {
	args := m.Called(ctx, bootcamp)
	return args.Error(0)
}

func (m *MockBootcampRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

func (m *MockBootcampRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBootcampRepository) WithinRadius(ctx context.Context, lat, lng, radians float64) ([]*entity.Bootcamp, error) {
	args := m.Called(ctx, lat, lng, radians)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) RefreshAverageCost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBootcampRepository) RefreshAverageRating(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBootcampRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Bootcamp, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Bootcamp), args.Get(1).(int64), args.Error(2)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Course, error) {
	args := m.Called(ctx, bootcampID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Course, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Course), args.Get(1).(int64), args.Error(2)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByBootcamp(ctx context.Context, bootcampID string) ([]*entity.Review, error) {
	args := m.Called(ctx, bootcampID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Review, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Review, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Review), args.Get(1).(int64), args.Error(2)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Category, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Category), args.Get(1).(int64), args.Error(2)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

var (
	_ persistent.UserRepository     = (*MockUserRepository)(nil)
	_ persistent.BootcampRepository = (*MockBootcampRepository)(nil)
	_ persistent.CourseRepository   = (*MockCourseRepository)(nil)
	_ persistent.ReviewRepository   = (*MockReviewRepository)(nil)
	_ persistent.CategoryRepository = (*MockCategoryRepository)(nil)
	_ persistent.ProductRepository  = (*MockProductRepository)(nil)
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (*geocoder.Location, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocoder.Location), args.Error(1)
}

var (
	_ mailer.Mailer     = (*MockMailer)(nil)
	_ geocoder.Geocoder = (*MockGeocoder)(nil)
)

// memoryStore keeps saved uploads in memory.
type memoryStore struct {
	files map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{files: map[string][]byte{}}
}

func (s *memoryStore) Save(ctx context.Context, dir, name string, body io.ReadSeeker, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	s.files[dir+"/"+name] = buf.Bytes()
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, dir, name string) error {
	delete(s.files, dir+"/"+name)
	return nil
}
