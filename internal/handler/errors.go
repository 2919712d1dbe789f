package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/repository"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
)

// failFromError maps service and repository errors onto the HTTP error
// taxonomy. Unknown errors become a generic 500 so internals never leak.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateEmail)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrOtpNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrOtpNotFound)
	case errors.Is(err, service.ErrOtpMismatch):
		response.Fail(c, http.StatusUnauthorized, response.ErrOtpMismatch)
	case errors.Is(err, service.ErrOtpExpired):
		response.Fail(c, http.StatusUnauthorized, response.ErrOtpExpired)
	case errors.Is(err, service.ErrOtpThrottled):
		response.Fail(c, http.StatusTooManyRequests, response.ErrOtpThrottled)
	case errors.Is(err, service.ErrEmptyCSV):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyCSV)
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
