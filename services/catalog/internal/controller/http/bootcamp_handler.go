package http

import (
	"net/http"
	"strconv"

	"campshop/pkg/errs"
	"campshop/pkg/logger"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BootcampHandler struct {
	bootcampUseCase usecase.BootcampUseCase
	logger          *logger.Logger
}

func NewBootcampHandler(bootcampUseCase usecase.BootcampUseCase, logger *logger.Logger) *BootcampHandler {
	return &BootcampHandler{
		bootcampUseCase: bootcampUseCase,
		logger:          logger,
	}
}

// ListBootcamps godoc
// @Summary      List bootcamps
// @Description  Filter with field[lt|lte|gt|gte|in]=value, project with select, order with sort, page with page and limit
// @Tags         bootcamps
// @Produce      json
// @Param        select query string false "Comma separated fields"
// @Param        sort query string false "Comma separated fields, - for descending" default(-created_at)
// @Param        page query int false "Page" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  query.Envelope
// @Failure      500  {object}  ErrorResponse
// @Router       /bootcamps [get]
func (h *BootcampHandler) ListBootcamps(c *gin.Context) {
	respondEnvelope(c)
}

// GetBootcamp godoc
// @Summary      Get bootcamp by ID
// @Tags         bootcamps
// @Produce      json
// @Param        id path string true "Bootcamp ID"
// @Success      200  {object}  Response{data=entity.Bootcamp}
// @Failure      404  {object}  ErrorResponse
// @Router       /bootcamps/{id} [get]
func (h *BootcampHandler) GetBootcamp(c *gin.Context) {
	bootcamp, err := h.bootcampUseCase.GetBootcamp(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, bootcamp)
}

// CreateBootcamp godoc
// @Summary      Create bootcamp
// @Description  Publishers may own one bootcamp, admins any number
// @Tags         bootcamps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.BootcampInput true "Bootcamp"
// @Success      201  {object}  Response{data=entity.Bootcamp}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /bootcamps [post]
func (h *BootcampHandler) CreateBootcamp(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.BootcampInput
	if !bindJSON(c, &req) {
		return
	}

	bootcamp, err := h.bootcampUseCase.CreateBootcamp(c.Request.Context(), p, req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusCreated, bootcamp)
}

// UpdateBootcamp godoc
// @Summary      Update bootcamp
// @Tags         bootcamps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Bootcamp ID"
// @Param        request body entity.BootcampInput true "Fields to change"
// @Success      200  {object}  Response{data=entity.Bootcamp}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /bootcamps/{id} [put]
func (h *BootcampHandler) UpdateBootcamp(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req entity.BootcampInput
	if !bindJSON(c, &req) {
		return
	}

	bootcamp, err := h.bootcampUseCase.UpdateBootcamp(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, bootcamp)
}

// DeleteBootcamp godoc
// @Summary      Delete bootcamp
// @Description  Removes the bootcamp with its courses and reviews
// @Tags         bootcamps
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Bootcamp ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /bootcamps/{id} [delete]
func (h *BootcampHandler) DeleteBootcamp(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.bootcampUseCase.DeleteBootcamp(c.Request.Context(), p, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

// BootcampsInRadius godoc
// @Summary      Bootcamps near a zipcode
// @Tags         bootcamps
// @Produce      json
// @Param        zipcode path string true "Zipcode"
// @Param        distance path number true "Distance in km"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /bootcamps/radius/{zipcode}/{distance} [get]
func (h *BootcampHandler) BootcampsInRadius(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil {
		c.Error(errs.BadRequest("Please provide a positive distance"))
		return
	}

	bootcamps, err := h.bootcampUseCase.BootcampsInRadius(c.Request.Context(), c.Param("zipcode"), distance)
	if err != nil {
		c.Error(err)
		return
	}

	respondList(c, bootcamps)
}

// UploadPhoto godoc
// @Summary      Upload bootcamp photo
// @Tags         bootcamps
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Bootcamp ID"
// @Param        file formData file true "Image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /bootcamps/{id}/photo [put]
func (h *BootcampHandler) UploadPhoto(c *gin.Context) {
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

	name, err := h.bootcampUseCase.UploadPhoto(c.Request.Context(), p, c.Param("id"), file)
	if err != nil {
		c.Error(err)
		return
	}

	h.logger.Info("Bootcamp photo uploaded: %s", name)
	respond(c, http.StatusOK, name)
}
