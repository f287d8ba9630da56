package http

import (
	"net/http"

	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
	logger        *logger.Logger
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase, logger *logger.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

// ListCourses godoc
// @Summary      List courses
// @Description  Paged list with the bootcamp name and description attached
// @Tags         courses
// @Produce      json
// @Success      200  {object}  query.Envelope
// @Router       /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	respondEnvelope(c)
}

// ListBootcampCourses godoc
// @Summary      Courses of a bootcamp
// @Tags         courses
// @Produce      json
// @Param        id path string true "Bootcamp ID"
// @Success      200  {object}  ListResponse
// @Router       /bootcamps/{id}/courses [get]
func (h *CourseHandler) ListBootcampCourses(c *gin.Context) {
	courses, err := h.courseUseCase.ListByBootcamp(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respondList(c, courses)
}

// GetCourse godoc
// @Summary      Get course by ID
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  Response{data=entity.Course}
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUseCase.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, course)
}

// CreateCourse godoc
// @Summary      Add a course to a bootcamp
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Bootcamp ID"
// @Param        request body entity.CourseInput true "Course"
// @Success      201  {object}  Response{data=entity.Course}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /bootcamps/{id}/courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.CourseInput
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseUseCase.CreateCourse(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        request body entity.CourseInput true "Fields to change"
// @Success      200  {object}  Response{data=entity.Course}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.CourseInput
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseUseCase.UpdateCourse(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary      Delete course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.courseUseCase.DeleteCourse(c.Request.Context(), p, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}
