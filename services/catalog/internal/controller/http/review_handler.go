package http

import (
	"net/http"

	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		logger:        logger,
	}
}

// ListReviews godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  query.Envelope
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	respondEnvelope(c)
}

// ListBootcampReviews godoc
// @Summary      Reviews of a bootcamp
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Bootcamp ID"
// @Success      200  {object}  ListResponse
// @Router       /bootcamps/{id}/reviews [get]
func (h *ReviewHandler) ListBootcampReviews(c *gin.Context) {
	reviews, err := h.reviewUseCase.ListByBootcamp(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respondList(c, reviews)
}

// ListCategoryReviews godoc
// @Summary      Reviews of a category
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  ListResponse
// @Router       /categories/{id}/reviews [get]
func (h *ReviewHandler) ListCategoryReviews(c *gin.Context) {
	reviews, err := h.reviewUseCase.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respondList(c, reviews)
}

// GetReview godoc
// @Summary      Get review by ID
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200  {object}  Response{data=entity.Review}
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewUseCase.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, review)
}

// ReviewBootcamp godoc
// @Summary      Review a bootcamp
// @Description  One review per user and bootcamp
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Bootcamp ID"
// @Param        request body entity.ReviewInput true "Review"
// @Success      201  {object}  Response{data=entity.Review}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /bootcamps/{id}/reviews [post]
func (h *ReviewHandler) ReviewBootcamp(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.ReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewUseCase.ReviewBootcamp(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusCreated, review)
}

// ReviewCategory godoc
// @Summary      Review a category
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        request body entity.ReviewInput true "Review"
// @Success      201  {object}  Response{data=entity.Review}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id}/reviews [post]
func (h *ReviewHandler) ReviewCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.ReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewUseCase.ReviewCategory(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusCreated, review)
}

// UpdateReview godoc
// @Summary      Update review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Param        request body entity.ReviewInput true "Fields to change"
// @Success      200  {object}  Response{data=entity.Review}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.ReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.reviewUseCase.DeleteReview(c.Request.Context(), p, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}
