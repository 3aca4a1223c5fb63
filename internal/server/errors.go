package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/source"
	"github.com/cleared-dev/ledgertree/internal/workspace"
)

// AbortWithError writes err as a JSON error with a status derived from it.
func AbortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, workspace.ErrNodeNotFound), errors.Is(err, ledgers.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledgers.ErrInvalid), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, source.ErrUnauthorized):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
