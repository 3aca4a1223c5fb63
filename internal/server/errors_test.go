package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/source"
	"github.com/cleared-dev/ledgertree/internal/workspace"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", workspace.ErrNodeNotFound), http.StatusNotFound},
		{fmt.Errorf("parent 9: %w", ledgers.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: name is required", ledgers.ErrInvalid), http.StatusBadRequest},
		{fmt.Errorf("HTTP 401: %w", source.ErrUnauthorized), http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
