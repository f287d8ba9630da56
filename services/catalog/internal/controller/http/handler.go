package http

import (
	"errors"
	"io"
	"net/http"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/middleware"
	"campshop/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Response is the success body of single-document endpoints.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse is the success body of nested list endpoints.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// ErrorResponse documents what the error responder writes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, ListResponse{Success: true, Count: len(items), Data: items})
}

// respondEnvelope writes the page the advanced filter left on the context.
func respondEnvelope(c *gin.Context) {
	env, ok := middleware.AdvancedFilterResult(c)
	if !ok {
		c.Error(errs.ServerError("Failed to retrieve resources"))
		return
	}
	c.JSON(http.StatusOK, env)
}

func principal(c *gin.Context) (*access.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.Error(errs.Unauthorized("Not authorized to access this route"))
	}
	return p, ok
}

// bindJSON accepts an empty body as an empty document.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		c.Error(errs.BadRequest("Invalid request body").Wrap(err))
		return false
	}
	return true
}

// uploadedFile opens the multipart "file" field. A missing field yields a nil
// file so the uploader reports it.
func uploadedFile(c *gin.Context) (*storage.File, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, func() {}, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, errs.ServerError("Problem with file upload").Wrap(err)
	}
	return &storage.File{Name: header.Filename, Size: header.Size, Reader: f}, func() { f.Close() }, nil
}
