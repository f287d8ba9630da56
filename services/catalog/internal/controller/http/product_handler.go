package http

import (
	"net/http"

	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *logger.Logger
}

func NewProductHandler(productUseCase usecase.ProductUseCase, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListProducts godoc
// @Summary      List products
// @Description  Paged list with the category name attached, e.g. ?price[lte]=100&sort=-price
// @Tags         products
// @Produce      json
// @Success      200  {object}  query.Envelope
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	respondEnvelope(c)
}

// ListCategoryProducts godoc
// @Summary      Products of a category
// @Tags         products
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  ListResponse
// @Router       /categories/{id}/products [get]
func (h *ProductHandler) ListCategoryProducts(c *gin.Context) {
	products, err := h.productUseCase.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respondList(c, products)
}

// GetProduct godoc
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  Response{data=entity.Product}
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUseCase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, product)
}

// CreateProduct godoc
// @Summary      Create product
// @Description  The category comes from the path on /categories/{id}/products, otherwise from category_id in the body
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.ProductInput true "Product"
// @Success      201  {object}  Response{data=entity.Product}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products [post]
// @Router       /categories/{id}/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.ProductInput
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productUseCase.CreateProduct(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Product created: %s by %s", product.ID, p.ID)
	respond(c, http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Param        request body entity.ProductInput true "Fields to change"
// @Success      200  {object}  Response{data=entity.Product}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.ProductInput
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productUseCase.UpdateProduct(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.productUseCase.DeleteProduct(c.Request.Context(), p, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

// UploadPhoto godoc
// @Summary      Upload product photo
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Param        file formData file true "Image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /products/{id}/photo [put]
func (h *ProductHandler) UploadPhoto(c *gin.Context) {
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

	name, err := h.productUseCase.UploadPhoto(c.Request.Context(), p, c.Param("id"), file)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, name)
}
