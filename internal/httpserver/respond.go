package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopcart/internal/domain"
	customersvc "shopcart/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a service error to a status code and a stable message.
// Internal detail is logged, never returned to the caller.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, customersvc.ErrInvalidCredentials), errors.Is(err, customersvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
