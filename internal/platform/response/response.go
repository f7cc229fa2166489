package response

import (
	"errors"
	"net/http"

	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// Envelope is the wire format for every API response: the payload under
// "data", optional paging information under "meta".
type Envelope struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// Meta carries pagination details for list responses.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ErrorBody is the wire format for error responses.
type ErrorBody struct {
	Message string `json:"message"`
}

// Success writes a 200 response with the payload wrapped in the envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 response with the payload wrapped in the envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// Paginated writes a 200 response with list data and paging meta.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, Envelope{
		Data: items,
		Meta: &Meta{Total: total, Page: page, Limit: limit},
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// Error maps a domain error to the appropriate HTTP status. Unclassified
// errors become 500s with a generic message so internals never leak.
func Error(c *gin.Context, err error) {
	var validationErr *shared.ValidationError
	var notFoundErr *shared.NotFoundError
	var conflictErr *shared.ConflictError
	var unauthorizedErr *shared.UnauthorizedError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorBody{Message: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorBody{Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorBody{Message: conflictErr.Message})
	case errors.As(err, &unauthorizedErr):
		c.JSON(http.StatusUnauthorized, ErrorBody{Message: unauthorizedErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, ErrorBody{Message: "internal server error"})
	}
}
