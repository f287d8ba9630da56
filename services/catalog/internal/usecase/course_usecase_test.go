package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"campshop/pkg/errs"
	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courseInput() entity.CourseInput {
	tuition := 8000.0
	return entity.CourseInput{
		Title:        strPtr("Front End Web Development"),
		Description:  strPtr("HTML, CSS and JavaScript"),
		Weeks:        strPtr("8"),
		Tuition:      &tuition,
		MinimumSkill: strPtr("beginner"),
	}
}

func TestCreateCourse_RefreshesAverageCost(t *testing.T) {
	courses := new(MockCourseRepository)
	bootcamps := new(MockBootcampRepository)
	uc := NewCourseUseCase(courses, bootcamps, logger.NewWithWriter(io.Discard))

	bootcamps.On("GetByID", mock.Anything, "bc-1").Return(&entity.Bootcamp{ID: "bc-1", UserID: "pub-1"}, nil)
	courses.On("Create", mock.Anything, mock.AnythingOfType("*entity.Course")).Return(nil)
	bootcamps.On("RefreshAverageCost", mock.Anything, "bc-1").Return(nil)

	course, err := uc.CreateCourse(context.Background(), publisher, "bc-1", courseInput())

	require.NoError(t, err)
	assert.Equal(t, "bc-1", course.BootcampID)
	assert.Equal(t, "pub-1", course.UserID)
	bootcamps.AssertExpectations(t)
}

func TestCreateCourse_NotBootcampOwner(t *testing.T) {
	courses := new(MockCourseRepository)
	bootcamps := new(MockBootcampRepository)
	uc := NewCourseUseCase(courses, bootcamps, logger.NewWithWriter(io.Discard))

	bootcamps.On("GetByID", mock.Anything, "bc-1").Return(&entity.Bootcamp{ID: "bc-1", UserID: "pub-1"}, nil)

	_, err := uc.CreateCourse(context.Background(), stranger, "bc-1", courseInput())

	assert.Equal(t, http.StatusForbidden, errs.Status(err))
	courses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCourse_InvalidSkill(t *testing.T) {
	courses := new(MockCourseRepository)
	bootcamps := new(MockBootcampRepository)
	uc := NewCourseUseCase(courses, bootcamps, logger.NewWithWriter(io.Discard))

	bootcamps.On("GetByID", mock.Anything, "bc-1").Return(&entity.Bootcamp{ID: "bc-1", UserID: "pub-1"}, nil)

	in := courseInput()
	in.MinimumSkill = strPtr("expert")
	_, err := uc.CreateCourse(context.Background(), admin, "bc-1", in)

	assert.Equal(t, http.StatusBadRequest, errs.Status(err))
	assert.Contains(t, errs.As(err).Message, "minimum_skill")
}

func TestDeleteCourse_CostRefreshFailureIsLogged(t *testing.T) {
	courses := new(MockCourseRepository)
	bootcamps := new(MockBootcampRepository)
	uc := NewCourseUseCase(courses, bootcamps, logger.NewWithWriter(io.Discard))

	courses.On("GetByID", mock.Anything, "c-1").Return(&entity.Course{ID: "c-1", BootcampID: "bc-1", UserID: "pub-1"}, nil)
	courses.On("Delete", mock.Anything, "c-1").Return(nil)
	bootcamps.On("RefreshAverageCost", mock.Anything, "bc-1").Return(errors.New("timeout"))

	assert.NoError(t, uc.DeleteCourse(context.Background(), publisher, "c-1"))
}

func TestReviewBootcamp_RefreshesRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	bootcamps := new(MockBootcampRepository)
	categories := new(MockCategoryRepository)
	uc := NewReviewUseCase(reviews, bootcamps, categories, logger.NewWithWriter(io.Discard))

	reader := reviewer
	bootcamps.On("GetByID", mock.Anything, "bc-1").Return(&entity.Bootcamp{ID: "bc-1"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
	bootcamps.On("RefreshAverageRating", mock.Anything, "bc-1").Return(nil)

	rating := 8
	review, err := uc.ReviewBootcamp(context.Background(), reader, "bc-1", entity.ReviewInput{
		Title: strPtr("Great"), Text: strPtr("Learned a lot"), Rating: &rating,
	})

	require.NoError(t, err)
	require.NotNil(t, review.BootcampID)
	assert.Equal(t, "bc-1", *review.BootcampID)
	assert.Nil(t, review.CategoryID)
	assert.Equal(t, reader.ID, review.UserID)
	bootcamps.AssertExpectations(t)
}

func TestReviewCategory_NoRatingRefresh(t *testing.T) {
	reviews := new(MockReviewRepository)
	bootcamps := new(MockBootcampRepository)
	categories := new(MockCategoryRepository)
	uc := NewReviewUseCase(reviews, bootcamps, categories, logger.NewWithWriter(io.Discard))

	categories.On("GetByID", mock.Anything, "cat-1").Return(&entity.Category{ID: "cat-1"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

	rating := 3
	review, err := uc.ReviewCategory(context.Background(), reviewer, "cat-1", entity.ReviewInput{
		Title: strPtr("Meh"), Text: strPtr("Thin selection"), Rating: &rating,
	})

	require.NoError(t, err)
	assert.Equal(t, "cat-1", *review.CategoryID)
	bootcamps.AssertNotCalled(t, "RefreshAverageRating", mock.Anything, mock.Anything)
}

func TestUpdateReview_OnlyAuthorOrAdmin(t *testing.T) {
	reviews := new(MockReviewRepository)
	bootcamps := new(MockBootcampRepository)
	uc := NewReviewUseCase(reviews, bootcamps, new(MockCategoryRepository), logger.NewWithWriter(io.Discard))

	bcID := "bc-1"
	reviews.On("GetByID", mock.Anything, "r-1").
		Return(&entity.Review{ID: "r-1", UserID: reviewer.ID, BootcampID: &bcID, Title: "t", Text: "x", Rating: 5}, nil)

	_, err := uc.UpdateReview(context.Background(), stranger, "r-1", entity.ReviewInput{Title: strPtr("Hijacked")})
	assert.Equal(t, http.StatusForbidden, errs.Status(err))

	reviews.On("Update", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
	bootcamps.On("RefreshAverageRating", mock.Anything, "bc-1").Return(nil)

	got, err := uc.UpdateReview(context.Background(), admin, "r-1", entity.ReviewInput{Title: strPtr("Edited")})
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)
}
