package http

import (
	"net/http"

	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  query.Envelope
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	respondEnvelope(c)
}

// GetCategory godoc
// @Summary      Get category by ID
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  Response{data=entity.Category}
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryUseCase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, category)
}

// CreateCategory godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.CategoryInput true "Category"
// @Success      201  {object}  Response{data=entity.Category}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request.Context(), p, req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        request body entity.CategoryInput true "Fields to change"
// @Success      200  {object}  Response{data=entity.Category}
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete category
// @Description  Products and reviews of the category are deleted with it
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.categoryUseCase.DeleteCategory(c.Request.Context(), p, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

// UploadPhoto godoc
// @Summary      Upload category photo
// @Tags         categories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Param        file formData file true "Image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /categories/{id}/photo [put]
func (h *CategoryHandler) UploadPhoto(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	file, closeFile, err := uploadedFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeFile()

	name, err := h.categoryUseCase.UploadPhoto(c.Request.Context(), p, c.Param("id"), file)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, name)
}
